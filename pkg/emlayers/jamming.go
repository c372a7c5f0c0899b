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
	"fmt"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

// JammingTechnique identifies the jamming method employed by a beam. The four
// octets are transmitted verbatim; there is no closed validity set at this
// layer, semantic validation is deferred to the emitter database.
type JammingTechnique struct {
	Kind        uint8
	Category    uint8
	Subcategory uint8
	Specific    uint8
}

// DecodeFromBytes populates the fields from a raw buffer. The buffer must be
// of length >= JammingTechniqueLen.
func (jt *JammingTechnique) DecodeFromBytes(raw []byte) error {
	if len(raw) < JammingTechniqueLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", JammingTechniqueLen, "actual", len(raw))
	}
	jt.Kind = raw[0]
	jt.Category = raw[1]
	jt.Subcategory = raw[2]
	jt.Specific = raw[3]
	return nil
}

// SerializeTo writes the fields into the provided buffer. The buffer must be
// of length >= JammingTechniqueLen.
func (jt *JammingTechnique) SerializeTo(b []byte) error {
	if len(b) < JammingTechniqueLen {
		return serrors.Join(ErrEndOfStream, nil,
			"expected", JammingTechniqueLen, "actual", len(b))
	}
	b[0] = jt.Kind
	b[1] = jt.Category
	b[2] = jt.Subcategory
	b[3] = jt.Specific
	return nil
}

func (jt JammingTechnique) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", jt.Kind, jt.Category, jt.Subcategory, jt.Specific)
}
