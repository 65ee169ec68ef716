// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func returnsErr(fail bool) (int, error) {
	if fail {
		return 0, New("failed")
	}
	return 7, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("boom")
	assert.Equal(t, err, Log(err))

	assert.Equal(t, 7, Log1(returnsErr(false)))
	assert.Equal(t, 0, Log1(returnsErr(true)))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 7, Must1(returnsErr(false)))
	assert.Panics(t, func() { Must1(returnsErr(true)) })
}

type testError struct{}

func (*testError) Error() string { return "test" }

func TestWrapping(t *testing.T) {
	base := New("base")
	err := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(err, base))
	assert.False(t, Is(New("base"), base))
	var target *testError
	assert.True(t, As(fmt.Errorf("wrapped: %w", &testError{}), &target))
	assert.Nil(t, Join(nil, nil))
	assert.Error(t, Join(base, nil))
}

func TestCallerInfo(t *testing.T) {
	ci := func() string { return CallerInfo() }()
	assert.True(t, strings.Contains(ci, "log_test.go"), ci)
}
