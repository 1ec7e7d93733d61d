// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"context"
	"math"
	"math/big"
	"sync"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/counter"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/soterg"
)

const (
	// nonces hashed between cancellation checks
	checkInterval = 256

	// minimum time between progress log lines
	progressInterval = 10 * time.Second

	// size of the 32 bit nonce space
	nonceSpace = uint64(math.MaxUint32) + 1
)

// Request - parameters of one search
type Request struct {
	Header     blockrecord.PackedHeader // nonce field is overwritten
	Target     *big.Int                 // digest must be <= this
	Threads    int                      // number of workers
	StartNonce uint32                   // first nonce tried
	Count      uint64                   // nonces to try, 0 => to the end of the nonce space
	Hasher     *soterg.Hasher           // nil => soterg.New()
	Log        *logger.L                // nil => no progress logging
}

// Result - a nonce whose digest meets the target
type Result struct {
	Nonce   uint32
	Digest  blockdigest.Digest
	Header  blockrecord.PackedHeader
	Hashes  uint64
	Elapsed time.Duration
}

type search struct {
	request  *Request
	hasher   *soterg.Hasher
	hashes   counter.Counter
	limiter  *rate.Limiter
	start    time.Time
	once     sync.Once
	result   *Result
	finished chan struct{}
}

// Search - try nonces until one meets the target
//
// returns ctx.Err() if the context ends first and
// fault.ErrNonceNotFound if the range is exhausted
func Search(ctx context.Context, request Request) (*Result, error) {

	if nil == request.Target || request.Target.Sign() <= 0 {
		return nil, fault.ErrInvalidTarget
	}
	if request.Threads < 1 {
		return nil, fault.ErrInvalidThreadCount
	}

	first := uint64(request.StartNonce)
	count := request.Count
	if 0 == count || count > nonceSpace-first {
		count = nonceSpace - first
	}

	threads, err := safecast.Conv[uint64](request.Threads)
	if nil != err {
		return nil, fault.ErrInvalidThreadCount
	}
	if threads > count {
		threads = count
	}

	s := &search{
		request:  &request,
		hasher:   request.Hasher,
		limiter:  rate.NewLimiter(rate.Every(progressInterval), 1),
		start:    time.Now(),
		finished: make(chan struct{}),
	}
	if nil == s.hasher {
		s.hasher = soterg.New()
	}

	if nil != request.Log {
		request.Log.Infof("search: threads: %d  nonces: 0x%08x+%d  target: %064x", threads, first, count, request.Target)
	}

	ranges, err := split(first, count, threads)
	if nil != err {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(ranges))

	for _, r := range ranges {
		low, high := r.low, r.high
		g.Go(func() error {
			return s.worker(gctx, low, high)
		})
	}

	err = g.Wait()

	// a found nonce takes priority over a late cancellation
	if nil != s.result {
		s.result.Hashes = s.hashes.Uint64()
		s.result.Elapsed = time.Since(s.start)
		if nil != request.Log {
			request.Log.Infof("found nonce: 0x%08x  digest: %s  hashes: %d  elapsed: %s", s.result.Nonce, s.result.Digest, s.result.Hashes, s.result.Elapsed)
		}
		return s.result, nil
	}
	if nil != err {
		return nil, err
	}
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	if nil != request.Log {
		request.Log.Warnf("nonce range exhausted after %d hashes", s.hashes.Uint64())
	}
	return nil, fault.ErrNonceNotFound
}

type nonceRange struct {
	low  uint32
	high uint32 // inclusive
}

// cut count nonces from first into at most threads contiguous ranges
func split(first uint64, count uint64, threads uint64) ([]nonceRange, error) {
	chunk := (count + threads - 1) / threads
	ranges := make([]nonceRange, 0, threads)
	for low := first; low < first+count; low += chunk {
		high := low + chunk
		if high > first+count {
			high = first + count
		}
		lo, err := safecast.Conv[uint32](low)
		if nil != err {
			return nil, err
		}
		hi, err := safecast.Conv[uint32](high - 1)
		if nil != err {
			return nil, err
		}
		ranges = append(ranges, nonceRange{low: lo, high: hi})
	}
	return ranges, nil
}

// hash the inclusive range [low, high] on a private header copy
func (s *search) worker(ctx context.Context, low uint32, high uint32) error {
	header := s.request.Header
	target := s.request.Target
	log := s.request.Log

	for nonce, n := low, 0; ; nonce, n = nonce+1, n+1 {

		if 0 == n%checkInterval {
			select {
			case <-ctx.Done():
				return nil
			case <-s.finished:
				return nil
			default:
			}
			if nil != log && n > 0 && s.limiter.Allow() {
				log.Infof("nonce: 0x%08x  rate: %.1f H/s", nonce, s.hashes.Rate(s.start))
			}
		}

		header.SetNonce(nonce)
		d, err := s.hasher.Sum(header[:])
		if nil != err {
			return err
		}
		s.hashes.Increment()

		digest := blockdigest.Digest(d)
		if digest.MeetsTarget(target) {
			s.found(nonce, digest, header)
			return nil
		}

		if nonce == high {
			return nil
		}
	}
}

// record the first result only
func (s *search) found(nonce uint32, digest blockdigest.Digest, header blockrecord.PackedHeader) {
	s.once.Do(func() {
		s.result = &Result{
			Nonce:  nonce,
			Digest: digest,
			Header: header,
		}
		close(s.finished)
	})
}
