// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// Transfer - move ownership of an item
//
// from must be the current owner; the caller must be from itself or
// an operator approved by from.  Only the owner field changes, the
// content pointer stays fixed for the item's lifetime.
func Transfer(trx storage.Transaction, caller account.Address, itemId uint64, from account.Address, to account.Address) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if to.IsZero() {
		return fault.InvalidAddress
	}

	buffer := trx.Get(globalData.pools.Items, itemKey(itemId))
	if nil == buffer {
		return fault.ItemNotFound
	}
	item, err := unpackItem(itemId, buffer)
	if nil != err {
		return err
	}

	if item.Owner != from {
		return fault.NotOwner
	}
	if caller != from && !trx.Has(globalData.pools.Approvals, approvalKey(from, caller)) {
		return fault.NotAuthorized
	}

	item.Owner = to
	trx.Put(globalData.pools.Items, itemKey(itemId), packItem(item))

	globalData.log.Infof("transfer: item %d  %s → %s", itemId, from, to)
	return nil
}
