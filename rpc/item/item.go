// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/registry"
	"github.com/openmarket/marketd/rpc/ratelimit"
	"github.com/openmarket/marketd/storage"
)

// Item - type for the RPC
//
// caller identity is a request field; signature verification is the
// transport operator's concern, handlers validate shape only
type Item struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitItem = 200
	rateBurstItem = 100
)

func New(log *logger.L) *Item {
	return &Item{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitItem, rateBurstItem),
	}
}

// Item mint
// ---------

// MintArguments - arguments for RPC
type MintArguments struct {
	Caller         account.Address `json:"caller"` // base58
	ContentPointer string          `json:"contentPointer"`
}

// MintReply - result of mint RPC
type MintReply struct {
	ItemId uint64          `json:"itemId,string"`
	Owner  account.Address `json:"owner"`
}

// Mint - register a new item owned by the caller
func (item *Item) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}

	log := item.Log
	log.Infof("Item.Mint: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Begin()
	itemId, err := registry.Mint(trx, arguments.Caller, arguments.ContentPointer)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	reply.ItemId = itemId
	reply.Owner = arguments.Caller
	return nil
}

// Item transfer
// -------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Caller account.Address `json:"caller"`
	ItemId uint64          `json:"itemId,string"`
	From   account.Address `json:"from"`
	To     account.Address `json:"to"`
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	ItemId uint64          `json:"itemId,string"`
	Owner  account.Address `json:"owner"`
}

// Transfer - move an item to a new owner
func (item *Item) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}

	log := item.Log
	log.Infof("Item.Transfer: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Begin()
	err = registry.Transfer(trx, arguments.Caller, arguments.ItemId, arguments.From, arguments.To)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	reply.ItemId = arguments.ItemId
	reply.Owner = arguments.To
	return nil
}

// operator approval
// -----------------

// SetApprovalArguments - arguments for RPC
type SetApprovalArguments struct {
	Caller   account.Address `json:"caller"`
	Operator account.Address `json:"operator"`
	Approved bool            `json:"approved"`
}

// SetApprovalReply - result of approval RPC
type SetApprovalReply struct {
	Owner    account.Address `json:"owner"`
	Operator account.Address `json:"operator"`
	Approved bool            `json:"approved"`
}

// SetApproval - grant or revoke an operator over all of the caller's items
func (item *Item) SetApproval(arguments *SetApprovalArguments, reply *SetApprovalReply) error {

	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}

	log := item.Log
	log.Infof("Item.SetApproval: %+v", arguments)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	trx.Begin()
	err = registry.SetOperatorApproval(trx, arguments.Caller, arguments.Operator, arguments.Approved)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}

	reply.Owner = arguments.Caller
	reply.Operator = arguments.Operator
	reply.Approved = arguments.Approved
	return nil
}

// ApprovedArguments - arguments for RPC
type ApprovedArguments struct {
	Owner    account.Address `json:"owner"`
	Operator account.Address `json:"operator"`
}

// ApprovedReply - result of approval query RPC
type ApprovedReply struct {
	Approved bool `json:"approved"`
}

// Approved - check an operator approval
func (item *Item) Approved(arguments *ApprovedArguments, reply *ApprovedReply) error {

	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}

	reply.Approved = registry.IsApprovedForAll(arguments.Owner, arguments.Operator)
	return nil
}

// item record
// -----------

// GetArguments - arguments for RPC
type GetArguments struct {
	ItemId uint64 `json:"itemId,string"`
}

// GetReply - result of item query RPC
type GetReply struct {
	Item registry.Item `json:"item"`
}

// Get - fetch one item record
func (item *Item) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(item.Limiter); nil != err {
		return err
	}

	record, err := registry.Get(arguments.ItemId)
	if nil != err {
		return err
	}
	reply.Item = record
	return nil
}
