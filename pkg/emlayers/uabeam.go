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

// UABeam is the simplified beam record used for underwater-acoustic (sonar)
// emissions. It carries no track/jam list.
//
// UABeam has the following format:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|  Data Length  |    Beam ID    |            Padding            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|        Parameter Index        |          Scan Pattern         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Azimuth Center (f32)                      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Azimuth Sweep (f32)                       |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Elevation Center (f32)                    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                     Elevation Sweep (f32)                     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type UABeam struct {
	// ReportedDataLength is the data length field from the most recent
	// decode, in 32-bit words. Encoding recomputes the field.
	ReportedDataLength uint8
	// Number is the acoustic beam id.
	Number uint8
	// ParameterIndex is a key into the external acoustic database.
	ParameterIndex uint16
	// ScanPattern is the active scan pattern code.
	ScanPattern uint16
	// AzimuthCenter is the azimuth scan center in radians.
	AzimuthCenter float32
	// AzimuthSweep is the azimuth sweep half-angle in radians.
	AzimuthSweep float32
	// ElevationCenter is the elevation scan center in radians.
	ElevationCenter float32
	// ElevationSweep is the elevation sweep half-angle in radians.
	ElevationSweep float32

	lengthRead uint16
}

// LengthRead returns the octets consumed by the most recent decode, trailer
// included.
func (u *UABeam) LengthRead() uint16 {
	return u.lengthRead
}

// OctetLength returns the encoded size, which is fixed.
func (u *UABeam) OctetLength() uint16 {
	return UABeamLen
}

// DataLength returns the on-wire data length field in 32-bit words.
func (u *UABeam) DataLength() uint8 {
	return UABeamLen / 4
}

// DecodeFromBytes populates the record from a raw buffer. Trailing octets
// beyond the fixed portion implied by the declared data length are consumed
// and ignored.
func (u *UABeam) DecodeFromBytes(raw []byte) error {
	r := NewOctetReader(raw)
	base, err := r.Bytes(UABeamLen)
	if err != nil {
		return serrors.Wrap("decoding UA beam", err)
	}
	u.ReportedDataLength = base[0]
	u.Number = base[1]
	// base[2:4] is padding.
	u.ParameterIndex = binary.BigEndian.Uint16(base[4:6])
	u.ScanPattern = binary.BigEndian.Uint16(base[6:8])
	u.AzimuthCenter = math.Float32frombits(binary.BigEndian.Uint32(base[8:12]))
	u.AzimuthSweep = math.Float32frombits(binary.BigEndian.Uint32(base[12:16]))
	u.ElevationCenter = math.Float32frombits(binary.BigEndian.Uint32(base[16:20]))
	u.ElevationSweep = math.Float32frombits(binary.BigEndian.Uint32(base[20:24]))

	u.lengthRead = uint16(r.Offset())
	declared := 4 * uint16(u.ReportedDataLength)
	switch {
	case u.ReportedDataLength == 0:
	case declared < u.lengthRead:
		return serrors.Join(ErrMalformedRecord, nil,
			"declared", declared, "read", u.lengthRead)
	case declared > u.lengthRead:
		if err := r.Skip(int(declared - u.lengthRead)); err != nil {
			return serrors.Wrap("consuming UA beam trailer", err)
		}
		u.lengthRead = declared
	}
	return nil
}

// SerializeTo writes the record into the provided buffer, which must hold at
// least UABeamLen octets. The data length field is recomputed.
func (u *UABeam) SerializeTo(b []byte) error {
	if len(b) < UABeamLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", UABeamLen, "actual", len(b))
	}
	b[0] = u.DataLength()
	b[1] = u.Number
	b[2], b[3] = 0, 0
	binary.BigEndian.PutUint16(b[4:6], u.ParameterIndex)
	binary.BigEndian.PutUint16(b[6:8], u.ScanPattern)
	binary.BigEndian.PutUint32(b[8:12], math.Float32bits(u.AzimuthCenter))
	binary.BigEndian.PutUint32(b[12:16], math.Float32bits(u.AzimuthSweep))
	binary.BigEndian.PutUint32(b[16:20], math.Float32bits(u.ElevationCenter))
	binary.BigEndian.PutUint32(b[20:24], math.Float32bits(u.ElevationSweep))
	return nil
}

func (u UABeam) String() string {
	return fmt.Sprintf("UABeam %d {Index: %d, ScanPattern: %d, Az: %g+/-%g, El: %g+/-%g}",
		u.Number, u.ParameterIndex, u.ScanPattern,
		u.AzimuthCenter, u.AzimuthSweep, u.ElevationCenter, u.ElevationSweep)
}
