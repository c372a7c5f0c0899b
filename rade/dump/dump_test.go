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

package dump_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-ning888/afsim-rade-sub001/rade/dump"
	"github.com/li-ning888/afsim-rade-sub001/rade/gen"
)

func TestRun(t *testing.T) {
	raw, err := gen.Stream(gen.Config{PDUs: 3, ExerciseID: 7})
	require.NoError(t, err)

	res, err := dump.Run(context.Background(), raw, dump.Config{Validate: true})
	require.NoError(t, err)
	require.Len(t, res.PDUs, 3)
	assert.Equal(t, len(raw), res.Octets)
	assert.Equal(t, 6, res.NumBeams())

	p := res.PDUs[0]
	assert.Equal(t, "1:1:42", p.EmittingEntity)
	assert.Equal(t, "1:1:1", p.Event)
	require.Len(t, p.Systems, 1)
	require.Len(t, p.Systems[0].Beams, 2)
	track := p.Systems[0].Beams[0]
	assert.Equal(t, "Tracking", track.Function)
	assert.Equal(t, 1, track.Targets)
	require.NotNil(t, track.Valid)
	assert.True(t, *track.Valid)
	jam := p.Systems[0].Beams[1]
	assert.Equal(t, "Jamming", jam.Function)
	assert.Equal(t, "1.2.0.0", jam.Jamming)
}

func TestRunPartial(t *testing.T) {
	raw, err := gen.Stream(gen.Config{PDUs: 1})
	require.NoError(t, err)
	raw = append(raw, raw[:10]...)

	res, err := dump.Run(context.Background(), raw, dump.Config{})
	require.Error(t, err)
	assert.Len(t, res.PDUs, 1)
	assert.Nil(t, res.PDUs[0].Systems[0].Beams[0].Valid)
}

func TestHuman(t *testing.T) {
	raw, err := gen.Stream(gen.Config{PDUs: 1})
	require.NoError(t, err)
	res, err := dump.Run(context.Background(), raw, dump.Config{Validate: true})
	require.NoError(t, err)

	var sb strings.Builder
	res.Human(&sb, true)
	out := sb.String()
	assert.Contains(t, out, "Tracking")
	assert.Contains(t, out, "Jamming")
	assert.Contains(t, out, "1 PDUs, 2 beams")
}
