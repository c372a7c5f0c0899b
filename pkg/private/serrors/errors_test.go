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

package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/li-ning888/afsim-rade-sub001/pkg/private/serrors"
)

func TestNew(t *testing.T) {
	err := serrors.New("short read", "want", 8, "have", 3)
	assert.Equal(t, "short read {have=3; want=8}", err.Error())
	assert.True(t, errors.Is(err, err))
}

func TestWrapIsCause(t *testing.T) {
	cause := errors.New("sentinel")
	err := serrors.Wrap("decoding beam", cause, "beam", 2)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "sentinel")
	assert.Contains(t, err.Error(), "beam=2")
}

func TestJoinSentinel(t *testing.T) {
	sentinel := errors.New("end of stream")
	cause := errors.New("io failure")

	testCases := map[string]struct {
		err error
		is  []error
	}{
		"join with cause": {
			err: serrors.Join(sentinel, cause, "offset", 12),
			is:  []error{sentinel, cause},
		},
		"join without cause": {
			err: serrors.Join(sentinel, nil),
			is:  []error{sentinel},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			for _, target := range tc.is {
				assert.True(t, errors.Is(tc.err, target), fmt.Sprint(target))
			}
		})
	}
	assert.NoError(t, serrors.Join(nil, nil))
}

func TestList(t *testing.T) {
	var errs serrors.List
	assert.NoError(t, errs.ToError())
	errs = append(errs, serrors.New("one"), serrors.New("two"))
	assert.Equal(t, "[ one; two ]", errs.ToError().Error())
}
