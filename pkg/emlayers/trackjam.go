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

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// TrackJam references one entity being tracked or jammed by a beam, together
// with the emitter and beam doing so on the remote side.
//
// TrackJam has the following format:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|              Site             |          Application          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|             Entity            | Emitter Number|  Beam Number  |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type TrackJam struct {
	Site          uint16
	Application   uint16
	Entity        uint16
	EmitterNumber uint8
	BeamNumber    uint8
}

// DecodeFromBytes populates the fields from a raw buffer. The buffer must be
// of length >= TrackJamLen.
func (tj *TrackJam) DecodeFromBytes(raw []byte) error {
	if len(raw) < TrackJamLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", TrackJamLen, "actual", len(raw))
	}
	tj.Site = binary.BigEndian.Uint16(raw[0:2])
	tj.Application = binary.BigEndian.Uint16(raw[2:4])
	tj.Entity = binary.BigEndian.Uint16(raw[4:6])
	tj.EmitterNumber = raw[6]
	tj.BeamNumber = raw[7]
	return nil
}

// SerializeTo writes the fields into the provided buffer. The buffer must be
// of length >= TrackJamLen.
func (tj *TrackJam) SerializeTo(b []byte) error {
	if len(b) < TrackJamLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", TrackJamLen, "actual", len(b))
	}
	binary.BigEndian.PutUint16(b[0:2], tj.Site)
	binary.BigEndian.PutUint16(b[2:4], tj.Application)
	binary.BigEndian.PutUint16(b[4:6], tj.Entity)
	b[6] = tj.EmitterNumber
	b[7] = tj.BeamNumber
	return nil
}

// Less defines a total order over the full record value. The track/jam
// collection iterates in this order, so wire output is deterministic.
func (tj TrackJam) Less(o TrackJam) bool {
	switch {
	case tj.Site != o.Site:
		return tj.Site < o.Site
	case tj.Application != o.Application:
		return tj.Application < o.Application
	case tj.Entity != o.Entity:
		return tj.Entity < o.Entity
	case tj.EmitterNumber != o.EmitterNumber:
		return tj.EmitterNumber < o.EmitterNumber
	default:
		return tj.BeamNumber < o.BeamNumber
	}
}

func (tj TrackJam) String() string {
	return fmt.Sprintf("%d:%d:%d/%d.%d",
		tj.Site, tj.Application, tj.Entity, tj.EmitterNumber, tj.BeamNumber)
}
