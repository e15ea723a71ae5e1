// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/balance"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/rpc/ratelimit"
)

// Query - type for the RPC
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitQuery = 200
	rateBurstQuery = 100

	// limit for count
	maximumListings = 100
)

func New(log *logger.L) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
	}
}

// Record - one listing joined with its item's content pointer
type Record struct {
	ListingId      uint64          `json:"listingId,string"`
	ItemId         uint64          `json:"itemId,string"`
	Seller         account.Address `json:"seller"`
	Owner          account.Address `json:"owner"`
	Price          currency.Amount `json:"price"`
	Sold           bool            `json:"sold"`
	ContentPointer string          `json:"contentPointer"`
}

// join the item content pointer onto each listing; the pointer is
// returned verbatim, dereferencing it is a presentation concern
func assemble(listings []market.Listing) ([]Record, error) {
	records := make([]Record, len(listings))
	for i, listing := range listings {
		item, err := registry.Get(listing.ItemId)
		if nil != err {
			return nil, err
		}
		records[i] = Record{
			ListingId:      listing.ListingId,
			ItemId:         listing.ItemId,
			Seller:         listing.Seller,
			Owner:          listing.Owner,
			Price:          listing.Price,
			Sold:           listing.Sold,
			ContentPointer: item.ContentPointer,
		}
	}
	return records, nil
}

func next(records []Record) uint64 {
	if 0 == len(records) {
		return 0
	}
	return records[len(records)-1].ListingId + 1
}

// listing queries
// ---------------

// AvailableArguments - arguments for RPC
type AvailableArguments struct {
	Start uint64 `json:"start,string"` // first listing id to consider
	Count int    `json:"count"`        // number of records
}

// ListingsReply - result of the listing queries
type ListingsReply struct {
	Listings []Record `json:"listings"`
	Next     uint64   `json:"next,string"` // start value for the next call
}

// Available - list unsold listings
func (query *Query) Available(arguments *AvailableArguments, reply *ListingsReply) error {

	if err := ratelimit.LimitN(query.Limiter, arguments.Count, maximumListings); nil != err {
		return err
	}

	listings, err := market.FetchAvailable(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Listings, err = assemble(listings)
	if nil != err {
		return err
	}
	reply.Next = next(reply.Listings)
	return nil
}

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner account.Address `json:"owner"`
	Start uint64          `json:"start,string"`
	Count int             `json:"count"`
}

// Owned - list listings bought by an account
func (query *Query) Owned(arguments *OwnedArguments, reply *ListingsReply) error {

	if err := ratelimit.LimitN(query.Limiter, arguments.Count, maximumListings); nil != err {
		return err
	}

	listings, err := market.FetchOwned(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Listings, err = assemble(listings)
	if nil != err {
		return err
	}
	reply.Next = next(reply.Listings)
	return nil
}

// CreatedArguments - arguments for RPC
type CreatedArguments struct {
	Seller account.Address `json:"seller"`
	Start  uint64          `json:"start,string"`
	Count  int             `json:"count"`
}

// Created - list listings created by an account, sold or not
func (query *Query) Created(arguments *CreatedArguments, reply *ListingsReply) error {

	if err := ratelimit.LimitN(query.Limiter, arguments.Count, maximumListings); nil != err {
		return err
	}

	listings, err := market.FetchCreated(arguments.Seller, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Listings, err = assemble(listings)
	if nil != err {
		return err
	}
	reply.Next = next(reply.Listings)
	return nil
}

// settlement balance
// ------------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Address account.Address `json:"address"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Address account.Address `json:"address"`
	Amount  currency.Amount `json:"amount"`
}

// Balance - read an account's settlement balance
func (query *Query) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(query.Limiter); nil != err {
		return err
	}

	amount, err := balance.For(arguments.Address)
	if nil != err {
		return err
	}
	reply.Address = arguments.Address
	reply.Amount = amount
	return nil
}
