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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
	"github.com/li-ning888/afsim-rade-sub001/pkg/private/xtest"
)

func TestTrackJamCodec(t *testing.T) {
	raw := xtest.MustParseHexString("0001 0002 0003 04 05")
	var tj emlayers.TrackJam
	require.NoError(t, tj.DecodeFromBytes(raw))
	assert.Equal(t, emlayers.TrackJam{
		Site:          1,
		Application:   2,
		Entity:        3,
		EmitterNumber: 4,
		BeamNumber:    5,
	}, tj)

	buf := make([]byte, emlayers.TrackJamLen)
	require.NoError(t, tj.SerializeTo(buf))
	assert.Equal(t, raw, buf)
}

func TestTrackJamShort(t *testing.T) {
	var tj emlayers.TrackJam
	err := tj.DecodeFromBytes(xtest.MustParseHexString("0001 0002 0003"))
	assert.True(t, errors.Is(err, emlayers.ErrEndOfStream))
}

func TestTrackJamLess(t *testing.T) {
	a := emlayers.TrackJam{Site: 1, Application: 2, Entity: 3, EmitterNumber: 4, BeamNumber: 5}
	testCases := map[string]struct {
		b    emlayers.TrackJam
		less bool
	}{
		"equal": {
			b:    a,
			less: false,
		},
		"site dominates": {
			b:    emlayers.TrackJam{Site: 2},
			less: true,
		},
		"application breaks site tie": {
			b:    emlayers.TrackJam{Site: 1, Application: 3},
			less: true,
		},
		"entity breaks application tie": {
			b:    emlayers.TrackJam{Site: 1, Application: 2, Entity: 4},
			less: true,
		},
		"emitter breaks entity tie": {
			b:    emlayers.TrackJam{Site: 1, Application: 2, Entity: 3, EmitterNumber: 5},
			less: true,
		},
		"beam breaks emitter tie": {
			b: emlayers.TrackJam{Site: 1, Application: 2, Entity: 3,
				EmitterNumber: 4, BeamNumber: 6},
			less: true,
		},
		"smaller": {
			b:    emlayers.TrackJam{Site: 0, Application: 9, Entity: 9},
			less: false,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.less, a.Less(tc.b))
			if tc.less {
				assert.False(t, tc.b.Less(a))
			}
		})
	}
}
