// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised              = ExistsError("already initialised")
	ErrBlockVersionMustNotDecrease     = RecordError("block version must not decrease")
	ErrInvalidAlgorithm                = InvalidError("invalid algorithm")
	ErrInvalidAlgorithmCharacter       = InvalidError("invalid algorithm character")
	ErrInvalidBlockHeaderDifficulty    = RecordError("invalid block header difficulty")
	ErrInvalidBlockHeaderTimestamp     = RecordError("invalid block header timestamp")
	ErrInvalidBlockHeaderVersion       = RecordError("invalid block header version")
	ErrInvalidCharacter                = InvalidError("invalid character")
	ErrInvalidConfiguration            = InvalidError("configuration must return a table")
	ErrInvalidDifficultyBits           = InvalidError("invalid difficulty bits")
	ErrInvalidDigestLength             = LengthError("invalid digest length")
	ErrInvalidHeaderLength             = LengthError("invalid block header length")
	ErrInvalidInputLength              = LengthError("input must be at least 80 bytes")
	ErrInvalidLoggerChannel            = InvalidError("invalid logger channel")
	ErrInvalidOrderLength              = LengthError("algorithm order must be 12 characters")
	ErrInvalidOutputBuffer             = LengthError("output buffer must be at least 32 bytes")
	ErrInvalidStructPointer            = InvalidError("invalid struct pointer")
	ErrInvalidTarget                   = InvalidError("invalid target")
	ErrInvalidThreadCount              = InvalidError("invalid thread count")
	ErrMissingPrimitive                = NotFoundError("missing hash primitive")
	ErrNoTransactions                  = InvalidError("no transactions")
	ErrNonceNotFound                   = NotFoundError("nonce not found")
	ErrPreviousBlockDigestDoesNotMatch = RecordError("previous block digest does not match")
	ErrTransactionIdsExceedMerkleSize  = InvalidError("transaction ids exceed merkle size")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
