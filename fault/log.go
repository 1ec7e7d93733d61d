// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time allowed for the log file to be written before panic unwinds
const panicFlushDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the log channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string prefixed with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
}

// Panicf - log a formatted string prefixed with the caller's location, then panic
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf(0, "%s", message)
	time.Sleep(panicFlushDelay)
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf(0, "%s", s)
	time.Sleep(panicFlushDelay)
	panic(s)
}

// depth 0 means no caller prefix
func internalCriticalf(depth int, format string, arguments ...interface{}) {
	if depth > 0 {
		if _, file, line, ok := runtime.Caller(depth); ok {
			a := make([]interface{}, 2, 2+len(arguments))
			a[0] = file
			a[1] = line
			arguments = append(a, arguments...)
			format = "(%q:%d) " + format
		}
	}

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
