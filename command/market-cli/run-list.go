// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/openmarket/marketd/command/market-cli/rpccalls"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/rpc/market"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	itemId := c.Uint64("item")
	if 0 == itemId {
		return fmt.Errorf("missing --item")
	}

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}
	price, err := requiredAmount(c, "price")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	// the attached fee must match the node's policy exactly, so
	// fetch it when not supplied
	var fee currency.Amount
	if s := c.String("fee"); "" != s {
		fee, err = currency.AmountFromString(s)
		if nil != err {
			return err
		}
	} else {
		policy, err := client.ListingPrice()
		if nil != err {
			return err
		}
		fee = policy.ListingFee
	}

	if m.verbose {
		fmt.Fprintf(m.e, "item: %d\n", itemId)
		fmt.Fprintf(m.e, "price: %s\n", price)
		fmt.Fprintf(m.e, "fee: %s\n", fee)
	}

	response, err := client.CreateListing(&market.CreateListingArguments{
		Caller:  caller,
		ItemId:  itemId,
		Price:   price,
		Payment: fee,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
