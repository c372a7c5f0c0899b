// Copyright 2024 RADE Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emlayers

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// EmitterSystem is one emitter hardware unit of an emitting entity, owning a
// collection of beams.
//
// The fixed portion has the following format, followed by the beam records:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  Data Length  | Num. of Beams |            Padding            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          Emitter Name         |    Function   |     Number    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  Location X, Y, Z (3 x f32)                   |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type EmitterSystem struct {
	// ReportedDataLength is the system data length field from the most
	// recent decode, in 32-bit words. Encoding recomputes the field.
	ReportedDataLength uint8
	// Name is the emitter name code from the emitter database.
	Name uint16
	// Function is the emitter function code.
	Function uint8
	// Number identifies the emitter on the entity.
	Number uint8
	// Location is the emitter location relative to the entity origin, in
	// meters, entity coordinate system.
	Location [3]float32

	beams []*Beam

	// parentEmission is a non-owning back reference used for PDU budget
	// arithmetic.
	parentEmission *Emission

	lengthRead uint16
}

// AddBeam appends b to the system and wires the parent back reference.
func (s *EmitterSystem) AddBeam(b *Beam) {
	s.beams = append(s.beams, b)
	b.SetParentSystem(s)
}

// Beams returns the owned beams. The slice must not be mutated.
func (s *EmitterSystem) Beams() []*Beam {
	return s.beams
}

// SetParentEmission stores a non-owning back reference to the enclosing
// emission PDU.
func (s *EmitterSystem) SetParentEmission(e *Emission) {
	s.parentEmission = e
}

// ParentEmission returns the back reference to the enclosing emission, if
// set.
func (s *EmitterSystem) ParentEmission() *Emission {
	return s.parentEmission
}

// LengthRead returns the octets consumed by the most recent decode, trailer
// included.
func (s *EmitterSystem) LengthRead() uint16 {
	return s.lengthRead
}

// OctetLength returns the true byte count of the encoded system including
// all beams.
func (s *EmitterSystem) OctetLength() uint16 {
	length := uint16(SystemBaseLen)
	for _, b := range s.beams {
		length += b.OctetLength()
	}
	return length
}

// DataLength returns the on-wire system data length field: the octet length
// in 32-bit words, or 0 if that overflows the field.
func (s *EmitterSystem) DataLength() uint8 {
	words := s.OctetLength() / 4
	if words > math.MaxUint8 {
		return 0
	}
	return uint8(words)
}

// DecodeFromBytes populates the system and its beams from a raw buffer.
// Trailing octets implied by the declared data length are consumed and
// discarded. On error the system must be discarded.
func (s *EmitterSystem) DecodeFromBytes(raw []byte) error {
	s.beams = nil
	r := NewOctetReader(raw)
	base, err := r.Bytes(SystemBaseLen)
	if err != nil {
		return serrors.Wrap("decoding emitter system", err)
	}
	s.ReportedDataLength = base[0]
	numBeams := base[1]
	// base[2:4] is padding.
	s.Name = binary.BigEndian.Uint16(base[4:6])
	s.Function = base[6]
	s.Number = base[7]
	for i := 0; i < 3; i++ {
		s.Location[i] = math.Float32frombits(
			binary.BigEndian.Uint32(base[8+4*i : 12+4*i]))
	}

	for i := 0; i < int(numBeams); i++ {
		b := &Beam{}
		if err := b.DecodeFromBytes(raw[r.Offset():]); err != nil {
			return serrors.Wrap("decoding beam", err, "index", i)
		}
		if err := r.Skip(int(b.lengthRead)); err != nil {
			return err
		}
		s.AddBeam(b)
	}

	s.lengthRead = uint16(r.Offset())
	declared := 4 * uint16(s.ReportedDataLength)
	switch {
	case s.ReportedDataLength == 0:
		// Large system: the true length is implied by the beam records.
	case declared < s.lengthRead:
		return serrors.Join(ErrMalformedRecord, nil,
			"declared", declared, "read", s.lengthRead)
	case declared > s.lengthRead:
		if err := r.Skip(int(declared - s.lengthRead)); err != nil {
			return serrors.Wrap("consuming system trailer", err)
		}
		s.lengthRead = declared
	}
	return nil
}

// SerializeTo writes the system and its beams into the provided buffer,
// which must hold at least OctetLength octets. Length fields are recomputed.
func (s *EmitterSystem) SerializeTo(buf []byte) error {
	if len(s.beams) > math.MaxUint8 {
		return serrors.New("too many beams", "count", len(s.beams))
	}
	if len(buf) < int(s.OctetLength()) {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", s.OctetLength(), "actual", len(buf))
	}
	w := NewOctetWriter(buf)
	w.U8(s.DataLength())
	w.U8(uint8(len(s.beams)))
	w.Zero(2)
	w.U16(s.Name)
	w.U8(s.Function)
	w.U8(s.Number)
	for i := 0; i < 3; i++ {
		w.F32(s.Location[i])
	}
	for _, b := range s.beams {
		chunk, err := w.Bytes(int(b.OctetLength()))
		if err != nil {
			return err
		}
		if err := b.SerializeTo(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (s *EmitterSystem) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "EmitterSystem %d {Name: %d, Function: %d, Location: %v}\n",
		s.Number, s.Name, s.Function, s.Location)
	for _, b := range s.beams {
		sb.WriteString(b.String())
	}
	return sb.String()
}
