// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmarket/marketd/rpc/query"
)

// Available - unsold listings
func (client *Client) Available(arguments *query.AvailableArguments) (*query.ListingsReply, error) {
	var reply query.ListingsReply
	if err := client.client.Call("Query.Available", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Owned - listings bought by an account
func (client *Client) Owned(arguments *query.OwnedArguments) (*query.ListingsReply, error) {
	var reply query.ListingsReply
	if err := client.client.Call("Query.Owned", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Created - listings created by an account
func (client *Client) Created(arguments *query.CreatedArguments) (*query.ListingsReply, error) {
	var reply query.ListingsReply
	if err := client.client.Call("Query.Created", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Balance - an account's settlement balance
func (client *Client) Balance(arguments *query.BalanceArguments) (*query.BalanceReply, error) {
	var reply query.BalanceReply
	if err := client.client.Call("Query.Balance", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
