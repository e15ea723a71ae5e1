// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/openmarket/marketd/command/market-cli/rpccalls"
	"github.com/openmarket/marketd/rpc/market"
)

func runPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListingPrice()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSetFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}
	fee, err := requiredAmount(c, "fee")
	if nil != err {
		return err
	}
	recipient, err := requiredAddress(c, "recipient")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetFeePolicy(&market.SetFeePolicyArguments{
		Caller:     caller,
		ListingFee: fee,
		Recipient:  recipient,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
