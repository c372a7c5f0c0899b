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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
)

func newTestSystem() *emlayers.EmitterSystem {
	s := &emlayers.EmitterSystem{
		Name:     1357,
		Function: 2,
		Number:   1,
		Location: [3]float32{1.5, -2.5, 0.25},
	}
	b1 := newSearchBeam()
	b2 := newSearchBeam()
	b2.Number = 2
	b2.Function = emlayers.BeamFunctionTracking
	b2.AddTarget(tj(42))
	s.AddBeam(b1)
	s.AddBeam(b2)
	return s
}

func mustSerializeSystem(t *testing.T, s *emlayers.EmitterSystem) []byte {
	t.Helper()
	buf := make([]byte, s.OctetLength())
	require.NoError(t, s.SerializeTo(buf))
	return buf
}

func TestEmitterSystemRoundTrip(t *testing.T) {
	s := newTestSystem()
	// 20 + 52 + (52 + 8) = 132 octets.
	require.Equal(t, uint16(132), s.OctetLength())
	assert.Equal(t, uint8(33), s.DataLength())

	buf := mustSerializeSystem(t, s)
	assert.Equal(t, uint8(33), buf[0])
	assert.Equal(t, uint8(2), buf[1])
	assert.Equal(t, uint16(0), binary.BigEndian.Uint16(buf[2:4]), "padding")
	assert.Equal(t, uint16(1357), binary.BigEndian.Uint16(buf[4:6]))
	assert.Equal(t, uint8(2), buf[6])
	assert.Equal(t, uint8(1), buf[7])

	var got emlayers.EmitterSystem
	require.NoError(t, got.DecodeFromBytes(buf))
	assert.Equal(t, uint16(132), got.LengthRead())
	assert.Equal(t, s.Name, got.Name)
	assert.Equal(t, s.Location, got.Location)
	require.Len(t, got.Beams(), 2)
	assert.Equal(t, uint8(1), got.Beams()[0].Number)
	assert.Equal(t, uint8(2), got.Beams()[1].Number)
	assert.Equal(t, []emlayers.TrackJam{tj(42)}, got.Beams()[1].Targets())
	// Decoded beams are wired back to the enclosing system.
	assert.Same(t, &got, got.Beams()[0].ParentSystem())
}

func TestEmitterSystemEmpty(t *testing.T) {
	s := &emlayers.EmitterSystem{Name: 99, Number: 4}
	assert.Equal(t, uint16(emlayers.SystemBaseLen), s.OctetLength())

	var got emlayers.EmitterSystem
	require.NoError(t, got.DecodeFromBytes(mustSerializeSystem(t, s)))
	assert.Empty(t, got.Beams())
	assert.Equal(t, uint16(99), got.Name)
}

func TestEmitterSystemTrailer(t *testing.T) {
	s := newTestSystem()
	buf := mustSerializeSystem(t, s)
	extended := append(append([]byte{}, buf...), make([]byte, 8)...)
	extended[0] = uint8(len(extended) / 4)

	var got emlayers.EmitterSystem
	require.NoError(t, got.DecodeFromBytes(extended))
	assert.Equal(t, uint16(len(extended)), got.LengthRead())
	assert.Len(t, got.Beams(), 2)
}

func TestEmitterSystemLargeSentinel(t *testing.T) {
	restore := emlayers.Exercise()
	emlayers.SetExerciseParams(emlayers.ExerciseParams{
		HighDensityThreshold: 200,
		MaxPDUOctets:         emlayers.DefaultMaxPDUOctets,
	})
	defer emlayers.SetExerciseParams(restore)

	s := &emlayers.EmitterSystem{Name: 1, Number: 1}
	b := newSearchBeam()
	for i := 0; i < 125; i++ {
		b.AddTarget(tj(uint16(i)))
	}
	s.AddBeam(b)
	require.Greater(t, int(s.OctetLength()), emlayers.LargeBeamOctets)
	assert.Equal(t, uint8(0), s.DataLength())

	buf := mustSerializeSystem(t, s)
	assert.Equal(t, uint8(0), buf[0], "system data length saturates to zero")

	var got emlayers.EmitterSystem
	require.NoError(t, got.DecodeFromBytes(buf))
	require.Len(t, got.Beams(), 1)
	assert.Equal(t, 125, got.Beams()[0].NumTargets())
}

func TestEmitterSystemDecodeErrors(t *testing.T) {
	s := newTestSystem()
	buf := mustSerializeSystem(t, s)

	testCases := map[string]struct {
		mutate func([]byte) []byte
		err    error
	}{
		"short base": {
			mutate: func(b []byte) []byte { return b[:12] },
			err:    emlayers.ErrEndOfStream,
		},
		"truncated beam": {
			mutate: func(b []byte) []byte { return b[:40] },
			err:    emlayers.ErrEndOfStream,
		},
		"negative trailer": {
			// 10 words is less than the 132 octets actually read.
			mutate: func(b []byte) []byte { b[0] = 10; return b },
			err:    emlayers.ErrMalformedRecord,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			raw := tc.mutate(append([]byte{}, buf...))
			var got emlayers.EmitterSystem
			err := got.DecodeFromBytes(raw)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}
