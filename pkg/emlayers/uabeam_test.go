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
)

func TestUABeamRoundTrip(t *testing.T) {
	u := emlayers.UABeam{
		Number:          3,
		ParameterIndex:  0xBEEF,
		ScanPattern:     2,
		AzimuthCenter:   0.5,
		AzimuthSweep:    math.Pi,
		ElevationCenter: -0.25,
		ElevationSweep:  math.Pi / 8,
	}
	buf := make([]byte, emlayers.UABeamLen)
	require.NoError(t, u.SerializeTo(buf))
	assert.Equal(t, uint8(6), buf[0])
	assert.Equal(t, uint8(3), buf[1])
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(buf[2:4]), "padding")
	assert.Equal(t, uint16(0xBEEF), binary.BigEndian.Uint16(buf[4:6]))
	assert.Equal(t, uint16(2), binary.BigEndian.Uint16(buf[6:8]))
	assert.Equal(t, math.Float32bits(math.Pi), binary.BigEndian.Uint32(buf[12:16]))

	var got emlayers.UABeam
	require.NoError(t, got.DecodeFromBytes(buf))
	assert.Equal(t, uint8(6), got.ReportedDataLength)
	assert.Equal(t, uint16(emlayers.UABeamLen), got.LengthRead())
	assert.Equal(t, u.Number, got.Number)
	assert.Equal(t, u.ParameterIndex, got.ParameterIndex)
	assert.Equal(t, u.ScanPattern, got.ScanPattern)
	assert.Equal(t, u.AzimuthCenter, got.AzimuthCenter)
	assert.Equal(t, u.AzimuthSweep, got.AzimuthSweep)
	assert.Equal(t, u.ElevationCenter, got.ElevationCenter)
	assert.Equal(t, u.ElevationSweep, got.ElevationSweep)
}

func TestUABeamTrailer(t *testing.T) {
	u := emlayers.UABeam{Number: 1}
	buf := make([]byte, emlayers.UABeamLen+8)
	require.NoError(t, u.SerializeTo(buf))
	buf[0] = 8 // 32 octets declared

	var got emlayers.UABeam
	require.NoError(t, got.DecodeFromBytes(buf))
	assert.Equal(t, uint16(32), got.LengthRead())
}

func TestUABeamDecodeErrors(t *testing.T) {
	u := emlayers.UABeam{Number: 1}
	buf := make([]byte, emlayers.UABeamLen)
	require.NoError(t, u.SerializeTo(buf))

	testCases := map[string]struct {
		mutate func([]byte) []byte
		err    error
	}{
		"short buffer": {
			mutate: func(b []byte) []byte { return b[:10] },
			err:    emlayers.ErrEndOfStream,
		},
		"negative trailer": {
			mutate: func(b []byte) []byte { b[0] = 4; return b },
			err:    emlayers.ErrMalformedRecord,
		},
		"trailer past end of stream": {
			mutate: func(b []byte) []byte { b[0] = 20; return b },
			err:    emlayers.ErrEndOfStream,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			raw := tc.mutate(append([]byte{}, buf...))
			var got emlayers.UABeam
			err := got.DecodeFromBytes(raw)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestUABeamZeroDataLengthTolerated(t *testing.T) {
	buf := make([]byte, emlayers.UABeamLen)
	var got emlayers.UABeam
	require.NoError(t, got.DecodeFromBytes(buf))
	assert.Equal(t, uint16(emlayers.UABeamLen), got.LengthRead())
}
