// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// Mint - register a new item
//
// The caller becomes owner and issuer of a freshly assigned id,
// which is returned directly.  The content pointer is opaque to the
// registry and immutable after this call.
func Mint(trx storage.Transaction, caller account.Address, contentPointer string) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	if caller.IsZero() {
		return 0, fault.InvalidAddress
	}
	if "" == contentPointer {
		return 0, fault.InvalidContent
	}

	// ids are strictly increasing, starting at one
	lastId, ok := trx.GetN(globalData.pools.Counters, nextItemCounter)
	if !ok {
		// counter record missing, recover from the highest stored
		// item so ids are never reused
		if element, found := globalData.pools.Items.LastElement(); found {
			lastId = binary.BigEndian.Uint64(element.Key)
		}
	}
	itemId := lastId + 1

	trx.PutN(globalData.pools.Counters, nextItemCounter, itemId)
	trx.Put(globalData.pools.Items, itemKey(itemId), packItem(Item{
		Id:             itemId,
		Owner:          caller,
		Issuer:         caller,
		ContentPointer: contentPointer,
	}))

	globalData.log.Infof("mint: item %d by %s", itemId, caller)
	return itemId, nil
}
