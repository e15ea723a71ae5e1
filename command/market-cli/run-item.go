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

func runItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	itemId := c.Uint64("item")
	if 0 == itemId {
		return fmt.Errorf("missing --item")
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetItem(&item.GetArguments{ItemId: itemId})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
