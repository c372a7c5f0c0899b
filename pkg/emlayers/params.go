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

// Fixed record sizes, in octets, per IEEE 1278.1-2012.
const (
	// EmissionBaseLen is the fixed portion of an Emission PDU: the 12-octet
	// PDU header, emitting entity ID, event ID, state update indicator,
	// number of systems and padding.
	EmissionBaseLen = 28
	// SystemBaseLen is the fixed portion of an emitter system record.
	SystemBaseLen = 20
	// BeamBaseLen is the fixed portion of a beam record, up to and including
	// the jamming technique record.
	BeamBaseLen = 52
	// TrackJamLen is the size of one track/jam entry.
	TrackJamLen = 8
	// BeamDataLen is the size of the five-float beam data record.
	BeamDataLen = 20
	// JammingTechniqueLen is the size of the jamming technique record.
	JammingTechniqueLen = 4
	// UABeamLen is the fixed size of an underwater-acoustic beam record.
	UABeamLen = 24

	// LargeBeamOctets is the largest beam that can still express its length
	// in the 8-bit word count. Beyond this the on-wire data length field is
	// written as zero and consumers derive the length from the target count.
	LargeBeamOctets = 1020
)

// Reserved beam numbers. A beam may not use either as its own number.
const (
	NoBeam   uint8 = 0
	AllBeams uint8 = 0xFF
)

// Exercise-agreed parameter defaults.
const (
	// DefaultHighDensityThreshold is the track/jam cardinality above which a
	// beam reports high-density track/jam instead of an enumerated list.
	DefaultHighDensityThreshold = 10
	// DefaultMaxPDUOctets is the exercise-agreed maximum emission PDU size.
	DefaultMaxPDUOctets = 8192
)

// ExerciseParams holds the tunable parameters agreed out-of-band for an
// exercise.
type ExerciseParams struct {
	// HighDensityThreshold is the maximum track/jam cardinality reported as
	// an enumerated list.
	HighDensityThreshold int
	// MaxPDUOctets is the maximum size of an emission PDU on the wire.
	MaxPDUOctets int
}

// DefaultExerciseParams returns the defaults from the exercise agreement.
func DefaultExerciseParams() ExerciseParams {
	return ExerciseParams{
		HighDensityThreshold: DefaultHighDensityThreshold,
		MaxPDUOctets:         DefaultMaxPDUOctets,
	}
}

// params is process-wide. It is expected to be set once at startup, before
// any beams are encoded; SetExerciseParams is not safe for concurrent use
// with encoding.
var params = DefaultExerciseParams()

// SetExerciseParams installs exercise-wide tunables. Zero fields keep their
// defaults.
func SetExerciseParams(p ExerciseParams) {
	if p.HighDensityThreshold == 0 {
		p.HighDensityThreshold = DefaultHighDensityThreshold
	}
	if p.MaxPDUOctets == 0 {
		p.MaxPDUOctets = DefaultMaxPDUOctets
	}
	params = p
}

// Exercise returns the currently installed exercise parameters.
func Exercise() ExerciseParams {
	return params
}
