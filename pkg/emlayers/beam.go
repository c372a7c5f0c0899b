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
	"sort"
	"strings"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// Beam is one active radiation pattern of an emitter system.
//
// The fixed portion has the following format, followed by the track/jam
// entries:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  Data Length  |  Beam Number  |        Parameter Index        |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         Frequency (f32)                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      Frequency Range (f32)                    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                Effective Radiated Power (f32)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                Pulse Repetition Frequency (f32)               |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                       Pulse Width (f32)                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Data (5 x f32)                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    Function   | Num. Targets  | High Density  |     Status    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                  Jamming Technique (4 x u8)                   |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The data length field counts 32-bit words and is written as zero when the
// true length overflows it ("large beam"); the target count and high density
// flag written to the wire are the effective projections of the stored state,
// not the stored values themselves.
type Beam struct {
	// ReportedDataLength is the data length field from the most recent
	// decode, in 32-bit words, or 0 if the beam was never decoded. Encoding
	// recomputes the field, it is kept for diagnostics only.
	ReportedDataLength uint8
	// Number identifies the beam within its system. The reserved values
	// NoBeam and AllBeams must not be used.
	Number uint8
	// ParameterIndex is a key into the external emitter database.
	ParameterIndex uint16

	// Frequency is the center frequency in Hz.
	Frequency float32
	// FrequencyRange is the bandwidth around the center frequency in Hz.
	FrequencyRange float32
	// ERP is the effective radiated power in dBm.
	ERP float32
	// PRF is the pulse repetition frequency in Hz.
	PRF float32
	// PulseWidth is the pulse duration in microseconds. It must not exceed
	// the pulse period 1e6/PRF.
	PulseWidth float32

	// Data describes the scan volume.
	Data BeamData
	// Function is the intended use of the beam.
	Function BeamFunction
	// ReportedTargets is the number-of-targets field from the most recent
	// decode. Encoding recomputes the field, it is kept for diagnostics only.
	ReportedTargets uint8
	// HighDensity is the stored high-density flag. The wire carries the
	// effective projection, see EffectiveHighDensity.
	HighDensity HighDensity
	// Jamming is the jamming technique employed, if any.
	Jamming JammingTechnique

	status    BeamStatus
	trackJams []TrackJam

	// parentSystem is a non-owning back reference used for PDU budget
	// arithmetic. The system must outlive the beam or clear the reference.
	parentSystem *EmitterSystem

	lengthRead uint16
}

// Status returns the beam status.
func (b *Beam) Status() BeamStatus {
	return b.status
}

// SetStatus assigns the beam status. Deactivating a beam clears its track/jam
// set; reactivating has no side effect.
func (b *Beam) SetStatus(s BeamStatus) {
	b.status = s
	if !s.Active() {
		b.trackJams = nil
	}
}

// IsActive reports whether bit 0 of the status indicates an active beam.
func (b *Beam) IsActive() bool {
	return b.status.Active()
}

// SetParentSystem stores a non-owning back reference to the enclosing system.
// CanAddTrackJam consults it when called without an explicit system.
func (b *Beam) SetParentSystem(s *EmitterSystem) {
	b.parentSystem = s
}

// ParentSystem returns the back reference to the enclosing system, if set.
func (b *Beam) ParentSystem() *EmitterSystem {
	return b.parentSystem
}

// LengthRead returns the number of octets consumed by the most recent decode,
// including any trailing octets implied by the declared data length.
func (b *Beam) LengthRead() uint16 {
	return b.lengthRead
}

// AddTarget inserts t into the track/jam set. Inserting into an inactive beam
// is silently dropped, so producers may pre-load targets in any order
// relative to activation. Duplicates are dropped. The high-density threshold
// is deliberately not checked here: oversubscription is represented by the
// effective high-density flag flipping to Selected, not by a refusal to
// insert.
func (b *Beam) AddTarget(t TrackJam) {
	if !b.IsActive() {
		return
	}
	i := sort.Search(len(b.trackJams), func(i int) bool {
		return !b.trackJams[i].Less(t)
	})
	if i < len(b.trackJams) && b.trackJams[i] == t {
		return
	}
	b.trackJams = append(b.trackJams, TrackJam{})
	copy(b.trackJams[i+1:], b.trackJams[i:])
	b.trackJams[i] = t
}

// RemoveTarget removes t from the track/jam set if present.
func (b *Beam) RemoveTarget(t TrackJam) {
	i := sort.Search(len(b.trackJams), func(i int) bool {
		return !b.trackJams[i].Less(t)
	})
	if i < len(b.trackJams) && b.trackJams[i] == t {
		b.trackJams = append(b.trackJams[:i], b.trackJams[i+1:]...)
	}
}

// RemoveAllTargets clears the track/jam set.
func (b *Beam) RemoveAllTargets() {
	b.trackJams = nil
}

// NumTargets returns the stored track/jam cardinality.
func (b *Beam) NumTargets() int {
	return len(b.trackJams)
}

// Targets returns a point-in-time copy of the track/jam set in its natural
// order. The copy is the concurrency boundary: it remains usable while the
// beam is mutated.
func (b *Beam) Targets() []TrackJam {
	ts := make([]TrackJam, len(b.trackJams))
	copy(ts, b.trackJams)
	return ts
}

// EffectiveHighDensity returns the high-density flag as reported on the wire:
// Selected whenever the stored flag is Selected, the beam is inactive, or the
// track/jam cardinality exceeds the exercise-agreed threshold.
func (b *Beam) EffectiveHighDensity() HighDensity {
	if b.HighDensity == HighDensitySelected || !b.IsActive() ||
		len(b.trackJams) > params.HighDensityThreshold {

		return HighDensitySelected
	}
	return HighDensityNotSelected
}

// EffectiveTargets returns the number of track/jam entries transmitted on the
// wire: zero whenever the effective high-density flag is Selected or the beam
// is inactive, the set cardinality otherwise.
func (b *Beam) EffectiveTargets() uint8 {
	if !b.IsActive() || b.EffectiveHighDensity() == HighDensitySelected {
		return 0
	}
	return uint8(len(b.trackJams))
}

// OctetLength returns the true byte count of the encoded beam.
func (b *Beam) OctetLength() uint16 {
	return BeamBaseLen + TrackJamLen*uint16(b.EffectiveTargets())
}

// DataLength returns the on-wire data length field: the octet length in
// 32-bit words, or 0 if that overflows the field ("large beam"). Callers
// budgeting PDU space must use OctetLength, which never saturates.
func (b *Beam) DataLength() uint8 {
	words := b.OctetLength() / 4
	if words > math.MaxUint8 {
		return 0
	}
	return uint8(words)
}

// CanAddTrackJam reports whether one more target can be inserted without
// exceeding the exercise PDU budget. The enclosing system defaults to the
// parent back reference and the enclosing emission to the system's parent;
// when neither is known, worst-case base overheads are assumed. The check is
// side-effect free.
func (b *Beam) CanAddTrackJam(system *EmitterSystem, emission *Emission) bool {
	if !b.IsActive() || b.HighDensity == HighDensitySelected ||
		len(b.trackJams) >= params.HighDensityThreshold {

		return false
	}
	budget := params.MaxPDUOctets
	effSystem := system
	if effSystem == nil {
		effSystem = b.parentSystem
		if effSystem != nil {
			// The parent's length already includes this beam; add it back so
			// it is not counted twice.
			budget += int(b.OctetLength())
		}
	}
	effEmission := emission
	if effEmission == nil && effSystem != nil {
		effEmission = effSystem.parentEmission
	}
	switch {
	case effEmission != nil:
		budget -= int(effEmission.OctetLength())
	case effSystem != nil:
		budget -= EmissionBaseLen + int(effSystem.OctetLength())
	default:
		budget -= EmissionBaseLen + SystemBaseLen
	}
	budget -= int(b.OctetLength())
	return budget >= TrackJamLen
}

// DecodeFromBytes populates the beam from a raw buffer in one pass: the fixed
// portion, then exactly the declared number of track/jam entries, then any
// trailing octets implied by the declared data length, which are consumed and
// discarded for forward compatibility. The track/jam set is cleared first.
// On error the beam is left in an unspecified state and must be discarded.
func (b *Beam) DecodeFromBytes(raw []byte) error {
	b.trackJams = nil
	r := NewOctetReader(raw)
	base, err := r.Bytes(BeamBaseLen)
	if err != nil {
		return serrors.Wrap("decoding beam", err)
	}
	b.ReportedDataLength = base[0]
	b.Number = base[1]
	b.ParameterIndex = binary.BigEndian.Uint16(base[2:4])
	b.Frequency = math.Float32frombits(binary.BigEndian.Uint32(base[4:8]))
	b.FrequencyRange = math.Float32frombits(binary.BigEndian.Uint32(base[8:12]))
	b.ERP = math.Float32frombits(binary.BigEndian.Uint32(base[12:16]))
	b.PRF = math.Float32frombits(binary.BigEndian.Uint32(base[16:20]))
	b.PulseWidth = math.Float32frombits(binary.BigEndian.Uint32(base[20:24]))
	if err := b.Data.DecodeFromBytes(base[24:44]); err != nil {
		return serrors.Wrap("decoding beam data", err)
	}
	b.Function = BeamFunction(base[44])
	b.ReportedTargets = base[45]
	b.HighDensity = HighDensity(base[46])
	b.status = BeamStatus(base[47])
	if err := b.Jamming.DecodeFromBytes(base[48:52]); err != nil {
		return serrors.Wrap("decoding jamming technique", err)
	}

	for i := 0; i < int(b.ReportedTargets); i++ {
		entry, err := r.Bytes(TrackJamLen)
		if err != nil {
			return serrors.Wrap("decoding track/jam entry", err, "index", i)
		}
		var tj TrackJam
		if err := tj.DecodeFromBytes(entry); err != nil {
			return err
		}
		// An inactive beam keeps an empty set; the entry octets are still
		// consumed.
		b.AddTarget(tj)
	}

	b.lengthRead = uint16(r.Offset())
	declared := 4 * uint16(b.ReportedDataLength)
	switch {
	case b.ReportedDataLength == 0:
		// Large beam: the true length is implied by the target count.
	case declared < b.lengthRead:
		return serrors.Join(ErrMalformedRecord, nil,
			"declared", declared, "read", b.lengthRead)
	case declared > b.lengthRead:
		if err := r.Skip(int(declared - b.lengthRead)); err != nil {
			return serrors.Wrap("consuming beam trailer", err)
		}
		b.lengthRead = declared
	}
	return nil
}

// SerializeTo writes the beam into the provided buffer, which must hold at
// least OctetLength octets. The data length and target count fields are
// recomputed; an inactive beam serializes zeros for the five fundamental
// parameters and the beam data record while the stored values are preserved.
func (b *Beam) SerializeTo(buf []byte) error {
	if len(buf) < int(b.OctetLength()) {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", b.OctetLength(), "actual", len(buf))
	}
	w := NewOctetWriter(buf)
	w.U8(b.DataLength())
	w.U8(b.Number)
	w.U16(b.ParameterIndex)
	if b.IsActive() {
		w.F32(b.Frequency)
		w.F32(b.FrequencyRange)
		w.F32(b.ERP)
		w.F32(b.PRF)
		w.F32(b.PulseWidth)
		bd, _ := w.Bytes(BeamDataLen)
		if err := b.Data.SerializeTo(bd); err != nil {
			return err
		}
	} else {
		w.Zero(10 * 4)
	}
	w.U8(uint8(b.Function))
	w.U8(b.EffectiveTargets())
	w.U8(uint8(b.EffectiveHighDensity()))
	w.U8(uint8(b.status))
	jt, _ := w.Bytes(JammingTechniqueLen)
	if err := b.Jamming.SerializeTo(jt); err != nil {
		return err
	}
	if n := b.EffectiveTargets(); n > 0 {
		for i := 0; i < int(n); i++ {
			entry, err := w.Bytes(TrackJamLen)
			if err != nil {
				return err
			}
			if err := b.trackJams[i].SerializeTo(entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// Valid reports whether the beam satisfies its invariants: a non-reserved
// beam number, finite non-negative fundamental parameters, a pulse width not
// exceeding the pulse period, valid enumerations and valid beam data.
func (b *Beam) Valid() bool {
	if b.Number == NoBeam || b.Number == AllBeams {
		return false
	}
	if !nonNegative(b.Frequency) || !nonNegative(b.FrequencyRange) ||
		!finite(b.ERP) || !nonNegative(b.PRF) || !nonNegative(b.PulseWidth) {

		return false
	}
	if b.PRF > 0 && b.PulseWidth > 0 && float64(b.PulseWidth) >= 1e6/float64(b.PRF) {
		return false
	}
	return b.Function.Valid() && b.HighDensity.Valid() && b.Data.Valid()
}

// CheckValid returns ErrInvalidRecord with context if the beam fails its
// validity predicate. Encoding an invalid beam is still permitted; callers
// decide whether to drop or transmit it.
func (b *Beam) CheckValid() error {
	if b.Valid() {
		return nil
	}
	return serrors.Join(ErrInvalidRecord, nil, "beam", b.Number)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func nonNegative(v float32) bool {
	return finite(v) && v >= 0
}

func (b *Beam) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Beam %d (%s)\n", b.Number, b.status)
	fmt.Fprintf(&sb, "  ParameterIndex: %d  Function: %s\n", b.ParameterIndex, b.Function)
	fmt.Fprintf(&sb, "  Frequency: %g Hz (+/- %g)  ERP: %g dBm  PRF: %g Hz  PW: %g us\n",
		b.Frequency, b.FrequencyRange, b.ERP, b.PRF, b.PulseWidth)
	fmt.Fprintf(&sb, "  Scan: %s\n", b.Data)
	fmt.Fprintf(&sb, "  Jamming: %s  HighDensity: %s (effective %s)\n",
		b.Jamming, b.HighDensity, b.EffectiveHighDensity())
	fmt.Fprintf(&sb, "  Targets (%d):\n", len(b.trackJams))
	for _, tj := range b.trackJams {
		fmt.Fprintf(&sb, "    %s\n", tj)
	}
	return sb.String()
}
