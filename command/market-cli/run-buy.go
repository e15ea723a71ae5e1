// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/openmarket/marketd/command/market-cli/rpccalls"
	"github.com/openmarket/marketd/rpc/market"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	listingId := c.Uint64("listing")
	if 0 == listingId {
		return fmt.Errorf("missing --listing")
	}

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}
	payment, err := requiredAmount(c, "payment")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "listing: %d\n", listingId)
		fmt.Fprintf(m.e, "payment: %s\n", payment)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Purchase(&market.PurchaseArguments{
		Caller:    caller,
		ListingId: listingId,
		Payment:   payment,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
