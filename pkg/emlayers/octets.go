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
	"math"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// OctetReader is a cursor over a raw record. All multi-octet reads are in
// network byte order. A read past the end fails with ErrEndOfStream; there is
// no partial-read recovery at this layer.
type OctetReader struct {
	buf []byte
	off int
}

// NewOctetReader returns a reader over raw.
func NewOctetReader(raw []byte) *OctetReader {
	return &OctetReader{buf: raw}
}

// Offset returns the number of octets consumed so far.
func (r *OctetReader) Offset() int {
	return r.off
}

// Remaining returns the number of octets not yet consumed.
func (r *OctetReader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *OctetReader) need(n int) error {
	if r.off+n > len(r.buf) {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", n, "actual", len(r.buf)-r.off)
	}
	return nil
}

// Bytes consumes and returns the next n octets. The returned slice aliases
// the underlying buffer.
func (r *OctetReader) Bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Skip consumes and discards the next n octets.
func (r *OctetReader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// U8 consumes one octet.
func (r *OctetReader) U8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

// U16 consumes a big-endian 16-bit unsigned integer.
func (r *OctetReader) U16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// U32 consumes a big-endian 32-bit unsigned integer.
func (r *OctetReader) U32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// F32 consumes a big-endian IEEE-754 single precision float.
func (r *OctetReader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// F64 consumes a big-endian IEEE-754 double precision float.
func (r *OctetReader) F64() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return math.Float64frombits(v), nil
}

// OctetWriter is a cursor over an outgoing record buffer. All multi-octet
// writes are in network byte order. A write past the end fails with
// ErrEndOfStream.
type OctetWriter struct {
	buf []byte
	off int
}

// NewOctetWriter returns a writer over b.
func NewOctetWriter(b []byte) *OctetWriter {
	return &OctetWriter{buf: b}
}

// Offset returns the number of octets written so far.
func (w *OctetWriter) Offset() int {
	return w.off
}

func (w *OctetWriter) need(n int) error {
	if w.off+n > len(w.buf) {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", n, "actual", len(w.buf)-w.off)
	}
	return nil
}

// Bytes reserves and returns the next n octets for in-place writing.
func (w *OctetWriter) Bytes(n int) ([]byte, error) {
	if err := w.need(n); err != nil {
		return nil, err
	}
	b := w.buf[w.off : w.off+n]
	w.off += n
	return b, nil
}

// Zero writes n zero octets. Reserved regions must be zero-filled.
func (w *OctetWriter) Zero(n int) error {
	b, err := w.Bytes(n)
	if err != nil {
		return err
	}
	for i := range b {
		b[i] = 0
	}
	return nil
}

// U8 writes one octet.
func (w *OctetWriter) U8(v uint8) error {
	if err := w.need(1); err != nil {
		return err
	}
	w.buf[w.off] = v
	w.off++
	return nil
}

// U16 writes a big-endian 16-bit unsigned integer.
func (w *OctetWriter) U16(v uint16) error {
	if err := w.need(2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
	return nil
}

// U32 writes a big-endian 32-bit unsigned integer.
func (w *OctetWriter) U32(v uint32) error {
	if err := w.need(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
	return nil
}

// F32 writes a big-endian IEEE-754 single precision float.
func (w *OctetWriter) F32(v float32) error {
	return w.U32(math.Float32bits(v))
}

// F64 writes a big-endian IEEE-754 double precision float.
func (w *OctetWriter) F64(v float64) error {
	if err := w.need(8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(w.buf[w.off:], math.Float64bits(v))
	w.off += 8
	return nil
}
