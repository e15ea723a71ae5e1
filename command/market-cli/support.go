// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/currency"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// caller address from the global flag
func callerAddress(m *metadata) (account.Address, error) {
	if "" == m.caller {
		return account.Address{}, fmt.Errorf("missing caller address, use --caller")
	}
	return account.AddressFromBase58(m.caller)
}

// address from a flag, falling back to the caller
func addressOrCaller(c *cli.Context, m *metadata, flag string) (account.Address, error) {
	s := c.String(flag)
	if "" == s {
		return callerAddress(m)
	}
	return account.AddressFromBase58(s)
}

// required address flag
func requiredAddress(c *cli.Context, flag string) (account.Address, error) {
	s := c.String(flag)
	if "" == s {
		return account.Address{}, fmt.Errorf("missing --%s", flag)
	}
	return account.AddressFromBase58(s)
}

// required amount flag
func requiredAmount(c *cli.Context, flag string) (currency.Amount, error) {
	s := c.String(flag)
	if "" == s {
		return currency.Amount{}, fmt.Errorf("missing --%s", flag)
	}
	return currency.AmountFromString(s)
}
