// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// Handles - the pools the marketplace ledger needs
type Handles struct {
	Listings      *storage.PoolHandle
	ActiveListing *storage.PoolHandle
	Counters      *storage.PoolHandle
	FeePolicy     *storage.PoolHandle
}

// globals
var globalData struct {
	sync.RWMutex
	log         *logger.L
	admin       account.Address
	marketplace account.Address
	pools       Handles
	initialised bool
}

// Initialise - connect the marketplace ledger to its pools
//
// admin is the only address allowed to change the fee policy;
// marketplace is the operator identity sellers grant transfer rights
// to.  defaultPolicy is stored on first start, an existing stored
// policy always wins.
func Initialise(admin account.Address, marketplace account.Address, pools Handles, defaultPolicy FeePolicy) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}
	if admin.IsZero() || marketplace.IsZero() {
		return fault.InvalidAddress
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.admin = admin
	globalData.marketplace = marketplace
	globalData.pools = pools

	if nil == pools.FeePolicy.Get(feePolicyKey) {
		if defaultPolicy.Recipient.IsZero() {
			return fault.InvalidRecipient
		}
		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}
		trx.Begin()
		trx.Put(pools.FeePolicy, feePolicyKey, packFeePolicy(defaultPolicy))
		if err := trx.Commit(); nil != err {
			return err
		}
		globalData.log.Infof("stored initial fee policy: fee %s  recipient %s",
			defaultPolicy.ListingFee, defaultPolicy.Recipient)
	}

	if err := verifyActiveIndex(pools); nil != err {
		globalData.log.Criticalf("active listing index check failed: %s", err)
		return err
	}

	globalData.initialised = true
	return nil
}

// verify the active listing index before serving: every index entry
// must point to a stored, unsold listing
func verifyActiveIndex(pools Handles) error {
	return pools.ActiveListing.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if 8 != len(value) {
			return fault.WrongRecordLength
		}
		listingId := binary.BigEndian.Uint64(value)
		buffer := pools.Listings.Get(listingKey(listingId))
		if nil == buffer {
			return fault.ListingNotFound
		}
		listing, err := unpackListing(listingId, buffer)
		if nil != err {
			return err
		}
		if listing.Sold {
			return fault.AlreadySold
		}
		return nil
	})
}

// Finalise - shut down the marketplace ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.pools = Handles{}
	globalData.initialised = false
	return nil
}
