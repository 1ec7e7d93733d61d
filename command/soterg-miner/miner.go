// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/soteria-network/soterg/blockrecord"
	"github.com/soteria-network/soterg/fault"
	"github.com/soteria-network/soterg/proof"
)

// search until a nonce is found or the context ends
//
// a clock driven template gets a fresh timestamp whenever the nonce
// space is exhausted, a fixed one stops with fault.ErrNonceNotFound
func mine(ctx context.Context, log *logger.L, configuration *Configuration) (*proof.Result, error) {

	var last uint32

	for round := 1; ; round += 1 {
		header, err := configuration.Header.header(time.Now())
		if nil != err {
			return nil, err
		}

		if round > 1 && header.Timestamp <= last {
			header.Timestamp = last + 1
		}
		last = header.Timestamp

		log.Infof("round: %d  timestamp: %d  bits: %s", round, header.Timestamp, header.Difficulty)

		result, err := proof.Search(ctx, proof.Request{
			Header:     header.Pack(),
			Target:     header.Difficulty.BigInt(),
			Threads:    configuration.Threads,
			StartNonce: configuration.StartNonce,
			Log:        log,
		})

		switch {
		case nil == err:
			// the found header must stand on its own
			if _, _, _, err := blockrecord.ExtractHeader(result.Header[:]); nil != err {
				log.Criticalf("found header rejected: %s", err)
				return nil, err
			}
			return result, nil

		case fault.ErrNonceNotFound == err && configuration.Header.followsClock():
			log.Warnf("nonce space exhausted, refreshing timestamp")

		default:
			return nil, err
		}
	}
}
