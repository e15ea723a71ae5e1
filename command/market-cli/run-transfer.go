// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/openmarket/marketd/command/market-cli/rpccalls"
	"github.com/openmarket/marketd/rpc/item"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	itemId := c.Uint64("item")
	if 0 == itemId {
		return fmt.Errorf("missing --item")
	}

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}
	from, err := addressOrCaller(c, m, "from")
	if nil != err {
		return err
	}
	to, err := requiredAddress(c, "to")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "item: %d\n", itemId)
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Transfer(&item.TransferArguments{
		Caller: caller,
		ItemId: itemId,
		From:   from,
		To:     to,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
