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

func TestOctetReader(t *testing.T) {
	raw := xtest.MustParseHexString("01 0203 04050607 40490fdb ff")
	r := emlayers.NewOctetReader(raw)

	v8, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v8)

	v16, err := r.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), v16)

	v32, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), v32)

	f, err := r.F32()
	require.NoError(t, err)
	assert.InDelta(t, 3.14159274, f, 1e-7)

	assert.Equal(t, 11, r.Offset())
	assert.Equal(t, 1, r.Remaining())

	require.NoError(t, r.Skip(1))
	assert.Equal(t, 0, r.Remaining())

	_, err = r.U8()
	assert.True(t, errors.Is(err, emlayers.ErrEndOfStream))
}

func TestOctetWriterRoundTrip(t *testing.T) {
	buf := make([]byte, 16)
	w := emlayers.NewOctetWriter(buf)
	require.NoError(t, w.U8(0xAB))
	require.NoError(t, w.U16(0x1234))
	require.NoError(t, w.U32(0xDEADBEEF))
	require.NoError(t, w.F32(2.5))
	require.NoError(t, w.Zero(5))
	assert.Equal(t, 16, w.Offset())

	assert.Error(t, w.U8(0))

	r := emlayers.NewOctetReader(buf)
	v8, _ := r.U8()
	v16, _ := r.U16()
	v32, _ := r.U32()
	f, _ := r.F32()
	assert.Equal(t, uint8(0xAB), v8)
	assert.Equal(t, uint16(0x1234), v16)
	assert.Equal(t, uint32(0xDEADBEEF), v32)
	assert.Equal(t, float32(2.5), f)
}

func TestOctetWriterBytesAliases(t *testing.T) {
	buf := make([]byte, 4)
	w := emlayers.NewOctetWriter(buf)
	chunk, err := w.Bytes(4)
	require.NoError(t, err)
	chunk[0] = 0x7F
	assert.Equal(t, byte(0x7F), buf[0])

	_, err = w.Bytes(1)
	assert.True(t, errors.Is(err, emlayers.ErrEndOfStream))
}
