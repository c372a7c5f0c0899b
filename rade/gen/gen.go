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

// Package gen produces deterministic sample emission PDU streams for tooling
// and integration checks.
package gen

import (
	"math"

	"github.com/gopacket/gopacket"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
)

// Config shapes the generated stream.
type Config struct {
	// PDUs is the number of PDUs to generate. Zero means 2.
	PDUs int
	// ExerciseID is stamped on every PDU.
	ExerciseID uint8
}

// Stream serializes a deterministic sequence of emission PDUs: each PDU
// carries one search radar system with a track beam and a jamming beam, with
// the timestamp and the tracked entity varying per PDU.
func Stream(cfg Config) ([]byte, error) {
	n := cfg.PDUs
	if n == 0 {
		n = 2
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	// SerializeTo prepends, so the PDUs are built in reverse order.
	for i := n - 1; i >= 0; i-- {
		e := samplePDU(cfg.ExerciseID, i)
		if err := e.SerializeTo(buf, opts); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func samplePDU(exercise uint8, seq int) *emlayers.Emission {
	track := &emlayers.Beam{
		Number:         1,
		ParameterIndex: 100,
		Frequency:      9.4e9,
		FrequencyRange: 5e6,
		ERP:            60,
		PRF:            1500,
		PulseWidth:     1.2,
		Data: emlayers.BeamData{
			AzimuthCenter:  float32(seq) * 0.1,
			AzimuthSweep:   math.Pi / 6,
			ElevationSweep: math.Pi / 12,
		},
		Function: emlayers.BeamFunctionTracking,
	}
	track.AddTarget(emlayers.TrackJam{
		Site: 1, Application: 1, Entity: uint16(200 + seq),
	})

	jam := &emlayers.Beam{
		Number:         2,
		ParameterIndex: 101,
		Frequency:      9.4e9,
		FrequencyRange: 2e7,
		ERP:            80,
		Function:       emlayers.BeamFunctionJamming,
		Jamming:        emlayers.JammingTechnique{Kind: 1, Category: 2},
	}

	sys := &emlayers.EmitterSystem{
		Name:     4321,
		Function: 1,
		Number:   1,
		Location: [3]float32{2.5, 0, 1.0},
	}
	sys.AddBeam(track)
	sys.AddBeam(jam)

	e := &emlayers.Emission{
		ExerciseID:     exercise,
		Timestamp:      uint32(1000 * (seq + 1)),
		EmittingEntity: emlayers.EntityID{Site: 1, Application: 1, Entity: 42},
		Event:          emlayers.EventID{Site: 1, Application: 1, Event: uint16(seq + 1)},
		StateUpdate:    emlayers.StateUpdateHeartbeat,
	}
	e.AddSystem(sys)
	return e
}
