// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmarket/marketd/rpc/market"
)

// CreateListing - put an item up for sale
func (client *Client) CreateListing(arguments *market.CreateListingArguments) (*market.CreateListingReply, error) {
	var reply market.CreateListingReply
	if err := client.client.Call("Market.CreateListing", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Purchase - buy a listed item
func (client *Client) Purchase(arguments *market.PurchaseArguments) (*market.PurchaseReply, error) {
	var reply market.PurchaseReply
	if err := client.client.Call("Market.Purchase", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListingPrice - read the current fee policy
func (client *Client) ListingPrice() (*market.ListingPriceReply, error) {
	var reply market.ListingPriceReply
	if err := client.client.Call("Market.ListingPrice", market.ListingPriceArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetFeePolicy - admin fee update
func (client *Client) SetFeePolicy(arguments *market.SetFeePolicyArguments) (*market.SetFeePolicyReply, error) {
	var reply market.SetFeePolicyReply
	if err := client.client.Call("Market.SetFeePolicy", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
