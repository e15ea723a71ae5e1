// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmarket/marketd/rpc/item"
)

// Mint - register a new item
func (client *Client) Mint(arguments *item.MintArguments) (*item.MintReply, error) {
	var reply item.MintReply
	if err := client.client.Call("Item.Mint", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Transfer - move an item to a new owner
func (client *Client) Transfer(arguments *item.TransferArguments) (*item.TransferReply, error) {
	var reply item.TransferReply
	if err := client.client.Call("Item.Transfer", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetApproval - grant or revoke an operator
func (client *Client) SetApproval(arguments *item.SetApprovalArguments) (*item.SetApprovalReply, error) {
	var reply item.SetApprovalReply
	if err := client.client.Call("Item.SetApproval", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Approved - check an operator approval
func (client *Client) Approved(arguments *item.ApprovedArguments) (*item.ApprovedReply, error) {
	var reply item.ApprovedReply
	if err := client.client.Call("Item.Approved", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetItem - fetch one item record
func (client *Client) GetItem(arguments *item.GetArguments) (*item.GetReply, error) {
	var reply item.GetReply
	if err := client.client.Call("Item.Get", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
