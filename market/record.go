// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
)

// counter record for the next listing id
var nextListingCounter = []byte("listing")

// Listing - an offer to sell one item at a fixed price
//
// Owner is the zero address while the listing is open and becomes
// the buyer when it is sold; the item itself stays with the seller
// until the purchase transfers it.
type Listing struct {
	ListingId uint64          `json:"listingId,string"`
	ItemId    uint64          `json:"itemId,string"`
	Seller    account.Address `json:"seller"`
	Owner     account.Address `json:"owner"`
	Price     currency.Amount `json:"price"`
	Sold      bool            `json:"sold"`
}

// listing record layout:
//   itemId(8) ++ seller(32) ++ owner(32) ++ price(16) ++ sold(1)
const listingRecordLength = 8 + 2*account.AddressLength + currency.PackedAmountLength + 1

func listingKey(listingId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, listingId)
	return key
}

func itemKey(itemId uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, itemId)
	return key
}

func packListing(listing Listing) []byte {
	buffer := make([]byte, 0, listingRecordLength)
	buffer = append(buffer, itemKey(listing.ItemId)...)
	buffer = append(buffer, listing.Seller.Bytes()...)
	buffer = append(buffer, listing.Owner.Bytes()...)
	buffer = append(buffer, listing.Price.Pack()...)
	if listing.Sold {
		buffer = append(buffer, 0x01)
	} else {
		buffer = append(buffer, 0x00)
	}
	return buffer
}

func unpackListing(listingId uint64, buffer []byte) (Listing, error) {
	if listingRecordLength != len(buffer) {
		return Listing{}, fault.WrongRecordLength
	}

	itemId := binary.BigEndian.Uint64(buffer[:8])

	offset := 8
	seller, err := account.AddressFromBytes(buffer[offset : offset+account.AddressLength])
	if nil != err {
		return Listing{}, err
	}
	offset += account.AddressLength

	owner, err := account.AddressFromBytes(buffer[offset : offset+account.AddressLength])
	if nil != err {
		return Listing{}, err
	}
	offset += account.AddressLength

	price, err := currency.UnpackAmount(buffer[offset : offset+currency.PackedAmountLength])
	if nil != err {
		return Listing{}, err
	}
	offset += currency.PackedAmountLength

	return Listing{
		ListingId: listingId,
		ItemId:    itemId,
		Seller:    seller,
		Owner:     owner,
		Price:     price,
		Sold:      0x01 == buffer[offset],
	}, nil
}

// Get - read a listing from committed state
func Get(listingId uint64) (Listing, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return Listing{}, fault.NotInitialised
	}

	buffer := globalData.pools.Listings.Get(listingKey(listingId))
	if nil == buffer {
		return Listing{}, fault.ListingNotFound
	}
	return unpackListing(listingId, buffer)
}
