// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

// without Initialise the messages go to stderr
func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("no error", nil)
	}, "nil error caused panic")

	assert.PanicsWithValue(t, "check failed with error: keys are not in ascending order", func() {
		fault.PanicIfError("check", fault.ErrOrderViolated)
	}, "incorrect panic value")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("tree height: %d", 99)
	}, "incorrect panic value")
}

func TestCriticalfUninitialised(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.Criticalf("count: %d", 3)
	}, "critical log caused panic")
}
