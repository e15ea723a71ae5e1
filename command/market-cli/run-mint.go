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

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	content := c.String("content")
	if "" == content {
		return fmt.Errorf("missing --content")
	}

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "content: %s\n", content)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Mint(&item.MintArguments{
		Caller:         caller,
		ContentPointer: content,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
