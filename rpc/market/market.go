// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/market"
	"github.com/openmarket/marketd/rpc/ratelimit"
	"github.com/openmarket/marketd/storage"
)

// Market - type for the RPC
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

func New(log *logger.L) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
	}
}

// listing creation
// ----------------

// CreateListingArguments - arguments for RPC
//
// Payment must equal the current listing fee exactly
type CreateListingArguments struct {
	Caller  account.Address `json:"caller"`
	ItemId  uint64          `json:"itemId,string"`
	Price   currency.Amount `json:"price"`
	Payment currency.Amount `json:"payment"`
}

// CreateListingReply - result of listing RPC
type CreateListingReply struct {
	ListingId uint64          `json:"listingId,string"`
	ItemId    uint64          `json:"itemId,string"`
	Seller    account.Address `json:"seller"`
}

// CreateListing - put an item up for sale
func (m *Market) CreateListing(arguments *CreateListingArguments, reply *CreateListingReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	log := m.Log
	log.Infof("Market.CreateListing: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Begin()
	listingId, err := market.CreateListing(trx, arguments.Caller, arguments.ItemId, arguments.Price, arguments.Payment)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	reply.ListingId = listingId
	reply.ItemId = arguments.ItemId
	reply.Seller = arguments.Caller
	return nil
}

// purchase
// --------

// PurchaseArguments - arguments for RPC
//
// Payment must equal the listing price exactly
type PurchaseArguments struct {
	Caller    account.Address `json:"caller"`
	ListingId uint64          `json:"listingId,string"`
	Payment   currency.Amount `json:"payment"`
}

// PurchaseReply - result of purchase RPC
type PurchaseReply struct {
	ListingId uint64          `json:"listingId,string"`
	ItemId    uint64          `json:"itemId,string"`
	Owner     account.Address `json:"owner"`
}

// Purchase - buy a listed item, settlement is atomic
func (m *Market) Purchase(arguments *PurchaseArguments, reply *PurchaseReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	log := m.Log
	log.Infof("Market.Purchase: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Begin()
	err = market.Purchase(trx, arguments.Caller, arguments.ListingId, arguments.Payment)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	listing, err := market.Get(arguments.ListingId)
	if nil != err {
		return err
	}

	reply.ListingId = arguments.ListingId
	reply.ItemId = listing.ItemId
	reply.Owner = listing.Owner
	return nil
}

// fee policy
// ----------

// ListingPriceArguments - empty arguments for fee query
type ListingPriceArguments struct{}

// ListingPriceReply - the current fee policy
type ListingPriceReply struct {
	ListingFee currency.Amount `json:"listingFee"`
	Recipient  account.Address `json:"recipient"`
}

// ListingPrice - read the fee a seller must pay to list
func (m *Market) ListingPrice(_ *ListingPriceArguments, reply *ListingPriceReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	policy, err := market.GetFeePolicy()
	if nil != err {
		return err
	}
	reply.ListingFee = policy.ListingFee
	reply.Recipient = policy.Recipient
	return nil
}

// SetFeePolicyArguments - arguments for RPC
type SetFeePolicyArguments struct {
	Caller     account.Address `json:"caller"`
	ListingFee currency.Amount `json:"listingFee"`
	Recipient  account.Address `json:"recipient"`
}

// SetFeePolicyReply - the stored fee policy
type SetFeePolicyReply struct {
	ListingFee currency.Amount `json:"listingFee"`
	Recipient  account.Address `json:"recipient"`
}

// SetFeePolicy - admin-only fee update, existing listings keep their terms
func (m *Market) SetFeePolicy(arguments *SetFeePolicyArguments, reply *SetFeePolicyReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	log := m.Log
	log.Infof("Market.SetFeePolicy: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	policy := market.FeePolicy{
		ListingFee: arguments.ListingFee,
		Recipient:  arguments.Recipient,
	}

	trx.Begin()
	err = market.SetFeePolicy(trx, arguments.Caller, policy)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	reply.ListingFee = policy.ListingFee
	reply.Recipient = policy.Recipient
	return nil
}
