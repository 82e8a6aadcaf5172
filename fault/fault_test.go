// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/avltree/fault"
)

var (
	ErrExistsOne       = fault.ExistsError("exists one ")
	ErrExistsTwo       = fault.ExistsError("exists two")
	ErrInconsistentOne = fault.InconsistentError("inconsistent one")
	ErrInconsistentTwo = fault.InconsistentError("inconsistent two")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrNotFoundTwo     = fault.NotFoundError("not found two")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrProcessTwo      = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		exists       bool
		inconsistent bool
		invalid      bool
		notFound     bool
		process      bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInconsistentOne, false, true, false, false, false},
		{ErrInconsistentTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.GenericError("generic"), false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInconsistent(err) != e.inconsistent {
			t.Errorf("%d: expected 'inconsistent' == %v for err = %v", i, e.inconsistent, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// tree errors are single instances so can be compared directly
func TestTreeErrors(t *testing.T) {
	treeErrors := []error{
		fault.ErrBalanceViolated,
		fault.ErrCountInconsistent,
		fault.ErrHeightInconsistent,
		fault.ErrOrderViolated,
	}
	for i, err := range treeErrors {
		if !fault.IsErrInconsistent(err) {
			t.Errorf("%d: %q is not an inconsistency", i, err)
		}
		if fault.IsErrInvalid(err) {
			t.Errorf("%d: %q classed as invalid", i, err)
		}
	}
	if fault.ErrBalanceViolated == fault.ErrOrderViolated {
		t.Error("distinct errors compare equal")
	}
}
