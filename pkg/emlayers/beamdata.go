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

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// BeamData describes the scan volume of a beam.
//
// BeamData has the following format:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Azimuth Center (f32)                 |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Azimuth Sweep (f32)                  |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Elevation Center (f32)               |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Elevation Sweep (f32)                |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Beam Sweep Sync (f32)                     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type BeamData struct {
	// AzimuthCenter is the azimuth scan center in radians. Both the signed
	// [-π, π] and the unsigned [0, 2π] producer conventions are accepted.
	AzimuthCenter float32
	// AzimuthSweep is the azimuth sweep half-angle in radians, in [0, π].
	AzimuthSweep float32
	// ElevationCenter is the elevation scan center in radians, in [-π/2, π/2].
	ElevationCenter float32
	// ElevationSweep is the elevation sweep half-angle in radians, in [0, π].
	ElevationSweep float32
	// SweepSync is the percentage of the scan pattern completed, in [0, 100).
	SweepSync float32
}

// sweepEpsilon is one ULP of π in single precision. Bound checks tolerate it
// so that values computed at the boundary in float arithmetic stay valid.
var sweepEpsilon = float64(math.Nextafter32(math.Pi, 4) - math.Pi)

// DecodeFromBytes populates the fields from a raw buffer. The buffer must be
// of length >= BeamDataLen.
func (bd *BeamData) DecodeFromBytes(raw []byte) error {
	if len(raw) < BeamDataLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", BeamDataLen, "actual", len(raw))
	}
	bd.AzimuthCenter = math.Float32frombits(binary.BigEndian.Uint32(raw[0:4]))
	bd.AzimuthSweep = math.Float32frombits(binary.BigEndian.Uint32(raw[4:8]))
	bd.ElevationCenter = math.Float32frombits(binary.BigEndian.Uint32(raw[8:12]))
	bd.ElevationSweep = math.Float32frombits(binary.BigEndian.Uint32(raw[12:16]))
	bd.SweepSync = math.Float32frombits(binary.BigEndian.Uint32(raw[16:20]))
	return nil
}

// SerializeTo writes the fields into the provided buffer. The buffer must be
// of length >= BeamDataLen.
func (bd *BeamData) SerializeTo(b []byte) error {
	if len(b) < BeamDataLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", BeamDataLen, "actual", len(b))
	}
	binary.BigEndian.PutUint32(b[0:4], math.Float32bits(bd.AzimuthCenter))
	binary.BigEndian.PutUint32(b[4:8], math.Float32bits(bd.AzimuthSweep))
	binary.BigEndian.PutUint32(b[8:12], math.Float32bits(bd.ElevationCenter))
	binary.BigEndian.PutUint32(b[12:16], math.Float32bits(bd.ElevationSweep))
	binary.BigEndian.PutUint32(b[16:20], math.Float32bits(bd.SweepSync))
	return nil
}

// Valid reports whether all fields are finite and within their declared
// ranges. Comparisons tolerate one single-precision ULP of π at the bounds.
func (bd *BeamData) Valid() bool {
	return inRange(bd.AzimuthCenter, -math.Pi, 2*math.Pi) &&
		inRange(bd.AzimuthSweep, 0, math.Pi) &&
		inRange(bd.ElevationCenter, -math.Pi/2, math.Pi/2) &&
		inRange(bd.ElevationSweep, 0, math.Pi) &&
		validSweepSync(bd.SweepSync)
}

func inRange(v float32, lo, hi float64) bool {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= lo-sweepEpsilon && f <= hi+sweepEpsilon
}

func validSweepSync(v float32) bool {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= -sweepEpsilon && f < 100.0
}

func (bd BeamData) String() string {
	return fmt.Sprintf("{AzCenter: %g, AzSweep: %g, ElCenter: %g, ElSweep: %g, SweepSync: %g}",
		bd.AzimuthCenter, bd.AzimuthSweep, bd.ElevationCenter, bd.ElevationSweep, bd.SweepSync)
}
