// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InconsistentError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolated      = InconsistentError("sub-tree heights differ by more than one")
	ErrCountInconsistent    = InconsistentError("cached node count is inconsistent")
	ErrHeightInconsistent   = InconsistentError("cached height is inconsistent")
	ErrInvalidConfigResult  = InvalidError("configuration must return a table")
	ErrInvalidFraction      = InvalidError("fraction must be in the range [0, 1]")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidSize          = InvalidError("size must be greater than zero")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkers       = InvalidError("workers must be greater than zero")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrKeyNotRemoved        = ProcessError("key not removed")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOrderViolated        = InconsistentError("keys are not in ascending order")
	ErrTreeNotEmpty         = ProcessError("tree is not empty")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InconsistentError) Error() string { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInconsistent(e error) bool { _, ok := e.(InconsistentError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
