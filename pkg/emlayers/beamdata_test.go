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

package emlayers_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
	"github.com/li-ning888/afsim-rade-sub001/pkg/private/xtest"
)

func TestBeamDataRoundTrip(t *testing.T) {
	want := emlayers.BeamData{
		AzimuthCenter:   0.5,
		AzimuthSweep:    math.Pi / 2,
		ElevationCenter: -0.25,
		ElevationSweep:  math.Pi / 4,
		SweepSync:       37.5,
	}
	buf := make([]byte, emlayers.BeamDataLen)
	require.NoError(t, want.SerializeTo(buf))

	// Field order and byte order on the wire.
	assert.Equal(t, math.Float32bits(0.5), binary.BigEndian.Uint32(buf[0:4]))
	assert.Equal(t, math.Float32bits(math.Pi/2), binary.BigEndian.Uint32(buf[4:8]))
	assert.Equal(t, math.Float32bits(-0.25), binary.BigEndian.Uint32(buf[8:12]))
	assert.Equal(t, math.Float32bits(math.Pi/4), binary.BigEndian.Uint32(buf[12:16]))
	assert.Equal(t, math.Float32bits(37.5), binary.BigEndian.Uint32(buf[16:20]))

	var got emlayers.BeamData
	require.NoError(t, got.DecodeFromBytes(buf))
	assert.Equal(t, want, got)
}

func TestBeamDataShortBuffer(t *testing.T) {
	var bd emlayers.BeamData
	err := bd.DecodeFromBytes(xtest.MustParseHexString("00 01 02 03"))
	assert.True(t, errors.Is(err, emlayers.ErrEndOfStream))
	assert.Error(t, bd.SerializeTo(make([]byte, emlayers.BeamDataLen-1)))
}

func TestBeamDataValid(t *testing.T) {
	testCases := map[string]struct {
		data  emlayers.BeamData
		valid bool
	}{
		"zero": {
			data:  emlayers.BeamData{},
			valid: true,
		},
		"signed azimuth convention": {
			data:  emlayers.BeamData{AzimuthCenter: -math.Pi},
			valid: true,
		},
		"unsigned azimuth convention": {
			data:  emlayers.BeamData{AzimuthCenter: 2 * math.Pi},
			valid: true,
		},
		"azimuth center too small": {
			data:  emlayers.BeamData{AzimuthCenter: -3.2},
			valid: false,
		},
		"azimuth center too large": {
			data:  emlayers.BeamData{AzimuthCenter: 6.5},
			valid: false,
		},
		"sweep at pi": {
			data:  emlayers.BeamData{AzimuthSweep: math.Pi},
			valid: true,
		},
		"sweep tiny negative": {
			// One float32 ULP of pi below zero, accepted for float
			// stability.
			data:  emlayers.BeamData{AzimuthSweep: -(math.Nextafter32(math.Pi, 4) - math.Pi)},
			valid: true,
		},
		"sweep negative": {
			data:  emlayers.BeamData{AzimuthSweep: -0.1},
			valid: false,
		},
		"elevation center at bound": {
			data:  emlayers.BeamData{ElevationCenter: math.Pi / 2},
			valid: true,
		},
		"elevation center beyond bound": {
			data:  emlayers.BeamData{ElevationCenter: 1.7},
			valid: false,
		},
		"sweep sync below 100": {
			data:  emlayers.BeamData{SweepSync: 99.9995},
			valid: true,
		},
		"sweep sync at 100": {
			data:  emlayers.BeamData{SweepSync: 100},
			valid: false,
		},
		"NaN": {
			data:  emlayers.BeamData{ElevationSweep: float32(math.NaN())},
			valid: false,
		},
		"Inf": {
			data:  emlayers.BeamData{SweepSync: float32(math.Inf(1))},
			valid: false,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, tc.data.Valid())
		})
	}
}
