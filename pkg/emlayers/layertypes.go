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

// Package emlayers contains the wire records of the DIS electromagnetic
// emission PDU: the PDU itself, emitter systems, beams, beam data, jamming
// technique and track/jam records, and the underwater-acoustic beam variant.
// All multi-octet scalars are in network byte order.
package emlayers

import (
	"github.com/gopacket/gopacket"
)

var (
	// LayerTypeDISEmission is the layer type of the electromagnetic emission
	// PDU.
	LayerTypeDISEmission = gopacket.RegisterLayerType(
		1278,
		gopacket.LayerTypeMetadata{
			Name:    "DISEmission",
			Decoder: gopacket.DecodeFunc(decodeDISEmission),
		},
	)
	LayerClassDISEmission gopacket.LayerClass = LayerTypeDISEmission
)
