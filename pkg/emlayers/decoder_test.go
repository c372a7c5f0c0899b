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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/li-ning888/afsim-rade-sub001/pkg/emlayers"
	"github.com/li-ning888/afsim-rade-sub001/pkg/metrics"
)

func TestDecodeStream(t *testing.T) {
	e1 := newTestEmission()
	e2 := newTestEmission()
	e2.EmittingEntity.Entity = 9
	raw := append(mustSerializeEmission(t, e1), mustSerializeEmission(t, e2)...)

	d := &emlayers.Decoder{
		Metrics: emlayers.DecoderMetrics{
			PDUsDecoded:  metrics.NewTestCounter(),
			DecodeErrors: metrics.NewTestCounter(),
			BeamsDecoded: metrics.NewTestCounter(),
		},
	}
	pdus, err := d.DecodeStream(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, pdus, 2)
	assert.Equal(t, uint16(3), pdus[0].EmittingEntity.Entity)
	assert.Equal(t, uint16(9), pdus[1].EmittingEntity.Entity)
	assert.Equal(t, float64(2), metrics.CounterValue(d.Metrics.PDUsDecoded))
	assert.Equal(t, float64(0), metrics.CounterValue(d.Metrics.DecodeErrors))
	assert.Equal(t, float64(4), metrics.CounterValue(d.Metrics.BeamsDecoded))
}

func TestDecodeStreamEmpty(t *testing.T) {
	d := &emlayers.Decoder{}
	pdus, err := d.DecodeStream(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, pdus)
}

func TestDecodeStreamMalformed(t *testing.T) {
	e := newTestEmission()
	good := mustSerializeEmission(t, e)
	raw := append(append([]byte{}, good...), good[:20]...)

	d := &emlayers.Decoder{
		Metrics: emlayers.DecoderMetrics{
			PDUsDecoded:  metrics.NewTestCounter(),
			DecodeErrors: metrics.NewTestCounter(),
		},
	}
	pdus, err := d.DecodeStream(context.Background(), raw)
	require.Error(t, err)
	// The PDUs before the malformed one are returned.
	assert.Len(t, pdus, 1)
	assert.Equal(t, float64(1), metrics.CounterValue(d.Metrics.PDUsDecoded))
	assert.Equal(t, float64(1), metrics.CounterValue(d.Metrics.DecodeErrors))
}
