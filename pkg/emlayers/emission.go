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
	"strings"

	"github.com/gopacket/gopacket"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// PDU header constants per IEEE 1278.1-2012.
const (
	// ProtocolVersion is the DIS protocol version transmitted in the PDU
	// header.
	ProtocolVersion uint8 = 7
	// PDUTypeEmission is the PDU type code of the electromagnetic emission
	// PDU.
	PDUTypeEmission uint8 = 23
	// FamilyDistributedEmissionRegeneration is the protocol family of the
	// emission PDU.
	FamilyDistributedEmissionRegeneration uint8 = 6
)

// State update indicator values.
const (
	StateUpdateHeartbeat   uint8 = 0
	StateUpdateChangedData uint8 = 1
)

// EntityID identifies a simulated entity.
type EntityID struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d:%d", id.Site, id.Application, id.Entity)
}

// EventID identifies the event that caused a PDU to be issued.
type EventID struct {
	Site        uint16
	Application uint16
	Event       uint16
}

func (id EventID) String() string {
	return fmt.Sprintf("%d:%d:%d", id.Site, id.Application, id.Event)
}

// Emission is the electromagnetic emission PDU. It describes the current
// emissions of one entity as a collection of emitter systems, each owning a
// collection of beams.
//
// The fixed portion has the following format, followed by the emitter system
// records:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    Version    |  Exercise ID  |    PDU Type   |     Family    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           Timestamp                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|             Length            |   PDU Status  |    Padding    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  Emitting Entity ID (3 x u16)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      Event ID (3 x u16)                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  State Update | Num. Systems  |            Padding            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Emission struct {
	BaseLayer

	// ExerciseID identifies the exercise.
	ExerciseID uint8
	// Timestamp is the DIS timestamp of the PDU.
	Timestamp uint32
	// Length is the total PDU length in octets from the most recent decode.
	// Serialization with FixLengths recomputes it.
	Length uint16
	// PDUStatus is the PDU status record from the header.
	PDUStatus uint8
	// EmittingEntity is the entity whose emissions this PDU describes.
	EmittingEntity EntityID
	// Event is the event that caused this PDU.
	Event EventID
	// StateUpdate indicates heartbeat or changed-data issuance.
	StateUpdate uint8

	systems []*EmitterSystem
}

// LayerType returns LayerTypeDISEmission.
func (e *Emission) LayerType() gopacket.LayerType {
	return LayerTypeDISEmission
}

// CanDecode returns the set of layer types that this instance can decode.
func (e *Emission) CanDecode() gopacket.LayerClass {
	return LayerClassDISEmission
}

// NextLayerType returns the layer type contained by this layer.
func (e *Emission) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// AddSystem appends s to the PDU and wires the parent back reference.
func (e *Emission) AddSystem(s *EmitterSystem) {
	e.systems = append(e.systems, s)
	s.SetParentEmission(e)
}

// Systems returns the owned emitter systems. The slice must not be mutated.
func (e *Emission) Systems() []*EmitterSystem {
	return e.systems
}

// OctetLength returns the true byte count of the encoded PDU.
func (e *Emission) OctetLength() uint16 {
	length := uint16(EmissionBaseLen)
	for _, s := range e.systems {
		length += s.OctetLength()
	}
	return length
}

// DecodeFromBytes implements the gopacket.DecodingLayer.DecodeFromBytes
// method. The declared PDU length delimits the PDU; octets between the last
// decoded system and the declared length are consumed and discarded, octets
// beyond it become the payload.
func (e *Emission) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	e.systems = nil
	if len(data) < EmissionBaseLen {
		df.SetTruncated()
		return serrors.Join(ErrEndOfStream, nil,
			"expected", EmissionBaseLen, "actual", len(data))
	}
	if data[2] != PDUTypeEmission {
		return serrors.New("not an emission PDU", "type", data[2])
	}
	// The protocol version in data[0] is not checked: older revisions share
	// the on-wire layout of this PDU.
	e.ExerciseID = data[1]
	e.Timestamp = binary.BigEndian.Uint32(data[4:8])
	e.Length = binary.BigEndian.Uint16(data[8:10])
	e.PDUStatus = data[10]
	e.EmittingEntity = EntityID{
		Site:        binary.BigEndian.Uint16(data[12:14]),
		Application: binary.BigEndian.Uint16(data[14:16]),
		Entity:      binary.BigEndian.Uint16(data[16:18]),
	}
	e.Event = EventID{
		Site:        binary.BigEndian.Uint16(data[18:20]),
		Application: binary.BigEndian.Uint16(data[20:22]),
		Event:       binary.BigEndian.Uint16(data[22:24]),
	}
	e.StateUpdate = data[24]
	numSystems := data[25]

	r := NewOctetReader(data)
	r.Skip(EmissionBaseLen)
	for i := 0; i < int(numSystems); i++ {
		s := &EmitterSystem{}
		if err := s.DecodeFromBytes(data[r.Offset():]); err != nil {
			return serrors.Wrap("decoding emitter system", err, "index", i)
		}
		if err := r.Skip(int(s.lengthRead)); err != nil {
			return err
		}
		e.AddSystem(s)
	}

	hlen := int(e.Length)
	switch {
	case hlen < r.Offset():
		return serrors.Join(ErrMalformedRecord, nil,
			"declared", hlen, "read", r.Offset())
	case hlen > len(data):
		df.SetTruncated()
		return serrors.Join(ErrEndOfStream, nil,
			"expected", hlen, "actual", len(data))
	}
	e.BaseLayer = BaseLayer{Contents: data[:hlen], Payload: data[hlen:]}
	return nil
}

// SerializeTo implements the gopacket.SerializableLayer.SerializeTo method.
// With opts.FixLengths, the header length and all nested length fields are
// recomputed.
func (e *Emission) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	total := int(e.OctetLength())
	if len(e.systems) > 255 {
		return serrors.New("too many emitter systems", "count", len(e.systems))
	}
	buf, err := b.PrependBytes(total)
	if err != nil {
		return err
	}
	if opts.FixLengths {
		e.Length = uint16(total)
	}
	w := NewOctetWriter(buf)
	w.U8(ProtocolVersion)
	w.U8(e.ExerciseID)
	w.U8(PDUTypeEmission)
	w.U8(FamilyDistributedEmissionRegeneration)
	w.U32(e.Timestamp)
	w.U16(e.Length)
	w.U8(e.PDUStatus)
	w.Zero(1)
	w.U16(e.EmittingEntity.Site)
	w.U16(e.EmittingEntity.Application)
	w.U16(e.EmittingEntity.Entity)
	w.U16(e.Event.Site)
	w.U16(e.Event.Application)
	w.U16(e.Event.Event)
	w.U8(e.StateUpdate)
	w.U8(uint8(len(e.systems)))
	w.Zero(2)
	for _, s := range e.systems {
		chunk, err := w.Bytes(int(s.OctetLength()))
		if err != nil {
			return err
		}
		if err := s.SerializeTo(chunk); err != nil {
			return err
		}
	}
	return nil
}

// NumBeams returns the total number of beams across all systems.
func (e *Emission) NumBeams() int {
	n := 0
	for _, s := range e.systems {
		n += len(s.beams)
	}
	return n
}

func (e *Emission) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Emission {Entity: %s, Event: %s, StateUpdate: %d, Systems: %d}\n",
		e.EmittingEntity, e.Event, e.StateUpdate, len(e.systems))
	for _, s := range e.systems {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func decodeDISEmission(data []byte, pb gopacket.PacketBuilder) error {
	e := &Emission{}
	err := e.DecodeFromBytes(data, pb)
	pb.AddLayer(e)
	if err != nil {
		return err
	}
	return pb.NextDecoder(gopacket.LayerTypePayload)
}
