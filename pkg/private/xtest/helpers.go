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

// Package xtest contains helpers that simplify tests.
package xtest

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
)

// FailOnErr causes t to exit with a fatal error if err is non-nil.
func FailOnErr(t testing.TB, err error, desc ...string) {
	t.Helper()

	if err != nil {
		t.Fatal(strings.Join(desc, " "), err)
	}
}

// MustParseHexString parses s and returns the corresponding byte slice.
// Whitespace is ignored, so wire dumps can be laid out in readable groups.
// It panics if the decoding fails.
func MustParseHexString(s string) []byte {
	reg := regexp.MustCompile(`\s+`)
	s = reg.ReplaceAllString(s, "")

	decoded, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return decoded
}
