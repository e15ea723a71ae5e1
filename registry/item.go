// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
)

// counter record for the next item id
var nextItemCounter = []byte("item")

// Item - a registered item
type Item struct {
	Id             uint64          `json:"id,string"`
	Owner          account.Address `json:"owner"`
	Issuer         account.Address `json:"issuer"`
	ContentPointer string          `json:"contentPointer"`
}

// item record layout:
//   owner(32) ++ issuer(32) ++ content pointer(variable)
const minimumItemRecordLength = 2 * account.AddressLength

func itemKey(itemId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, itemId)
	return key
}

func packItem(item Item) []byte {
	buffer := make([]byte, 0, minimumItemRecordLength+len(item.ContentPointer))
	buffer = append(buffer, item.Owner.Bytes()...)
	buffer = append(buffer, item.Issuer.Bytes()...)
	buffer = append(buffer, item.ContentPointer...)
	return buffer
}

func unpackItem(itemId uint64, buffer []byte) (Item, error) {
	if len(buffer) < minimumItemRecordLength {
		return Item{}, fault.WrongRecordLength
	}

	owner, err := account.AddressFromBytes(buffer[:account.AddressLength])
	if nil != err {
		return Item{}, err
	}
	issuer, err := account.AddressFromBytes(buffer[account.AddressLength:minimumItemRecordLength])
	if nil != err {
		return Item{}, err
	}

	return Item{
		Id:             itemId,
		Owner:          owner,
		Issuer:         issuer,
		ContentPointer: string(buffer[minimumItemRecordLength:]),
	}, nil
}

// Get - read an item from committed state
func Get(itemId uint64) (Item, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Item{}, fault.NotInitialised
	}

	buffer := globalData.pools.Items.Get(itemKey(itemId))
	if nil == buffer {
		return Item{}, fault.ItemNotFound
	}
	return unpackItem(itemId, buffer)
}
