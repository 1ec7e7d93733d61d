// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"time"

	"fortio.org/safecast"

	"github.com/soteria-network/soterg/blockdigest"
	"github.com/soteria-network/soterg/fault"
)

// how far ahead of local time a header may be
const MaximumFutureSpacing = 2 * time.Hour

// ValidHeaderVersion - valid incoming block version
func ValidHeaderVersion(currentVersion uint32, incomingVersion uint32) error {
	if incomingVersion < MinimumVersion {
		return fault.ErrInvalidBlockHeaderVersion
	}

	// incoming block version must be the same or higher than previous version
	if currentVersion > incomingVersion {
		return fault.ErrBlockVersionMustNotDecrease
	}

	return nil
}

// ValidBlockLinkage - valid incoming block linkage
func ValidBlockLinkage(currentDigest blockdigest.Digest, incomingDigestOfPreviousBlock blockdigest.Digest) error {
	if currentDigest != incomingDigestOfPreviousBlock {
		return fault.ErrPreviousBlockDigestDoesNotMatch
	}

	return nil
}

// ValidTimestamp - header time must not be too far ahead of now
func ValidTimestamp(header *Header, now time.Time) error {
	limit, err := safecast.Conv[uint32](now.Add(MaximumFutureSpacing).Unix())
	if nil != err {
		// beyond the 32 bit time field, nothing can be ahead
		return nil
	}
	if header.Timestamp > limit {
		return fault.ErrInvalidBlockHeaderTimestamp
	}
	return nil
}
