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

import "errors"

var (
	// ErrEndOfStream indicates that a decode ran out of octets before the
	// record was complete. The partially-built record must be discarded.
	ErrEndOfStream = errors.New("end of stream")
	// ErrMalformedRecord indicates that a declared data length is smaller
	// than the octets already consumed by the known fields.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrInvalidRecord indicates that a record fails its validity predicate.
	// Decode never returns it; it is raised by CheckValid on producers and in
	// test harnesses.
	ErrInvalidRecord = errors.New("invalid record")
)
