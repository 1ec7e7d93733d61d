// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
	"time"
)

// Counter - hash count shared by search workers
//
// the zero value is ready to use, a Counter must not be copied once
// in use
type Counter struct {
	n atomic.Uint64
}

// Add - add n, returns the new total
func (c *Counter) Add(n uint64) uint64 {
	return c.n.Add(n)
}

// Increment - add one, returns the new total
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Uint64 - current total
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// IsZero - nothing counted yet
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}

// Rate - average count per second since start, zero for a start in the future
func (c *Counter) Rate(start time.Time) float64 {
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(c.Uint64()) / elapsed
}
