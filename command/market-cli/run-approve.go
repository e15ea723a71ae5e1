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

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := callerAddress(m)
	if nil != err {
		return err
	}
	operator, err := requiredAddress(c, "operator")
	if nil != err {
		return err
	}
	approved := !c.Bool("revoke")

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "operator: %s\n", operator)
		fmt.Fprintf(m.e, "approved: %t\n", approved)
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetApproval(&item.SetApprovalArguments{
		Caller:   caller,
		Operator: operator,
		Approved: approved,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runApproved(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := addressOrCaller(c, m, "owner")
	if nil != err {
		return err
	}
	operator, err := requiredAddress(c, "operator")
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Approved(&item.ApprovedArguments{
		Owner:    owner,
		Operator: operator,
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
