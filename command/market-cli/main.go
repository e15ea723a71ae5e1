// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	caller  string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "market-cli"
	app.Usage = "command line interface to a marketd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:4130",
			Usage: " marketd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "caller, i",
			Value: "",
			Usage: " caller address, base58 `ADDRESS`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "mint",
			Usage:     "register a new item owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, p",
					Value: "",
					Usage: "*content pointer `URI`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "move an item to a new owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "item, I",
					Usage: "*item id `N`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: " current owner `ADDRESS` [caller]",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*new owner `ADDRESS`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "approve",
			Usage:     "grant or revoke an operator over all of the caller's items",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
				cli.BoolFlag{
					Name:  "revoke, r",
					Usage: " revoke instead of grant",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "approved",
			Usage:     "check an operator approval",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, O",
					Value: "",
					Usage: " owner `ADDRESS` [caller]",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: "*operator `ADDRESS`",
				},
			},
			Action: runApproved,
		},
		{
			Name:      "item",
			Usage:     "display one item record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "item, I",
					Usage: "*item id `N`",
				},
			},
			Action: runItem,
		},
		{
			Name:      "list",
			Usage:     "put an item up for sale, pays the listing fee",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "item, I",
					Usage: "*item id `N`",
				},
				cli.StringFlag{
					Name:  "price, P",
					Value: "",
					Usage: "*asking price `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "fee, F",
					Value: "",
					Usage: " attached listing fee `AMOUNT` [query the node]",
				},
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed item at its exact price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "listing, L",
					Usage: "*listing id `N`",
				},
				cli.StringFlag{
					Name:  "payment, P",
					Value: "",
					Usage: "*attached payment `AMOUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:   "price",
			Usage:  "display the current listing fee policy",
			Action: runPrice,
		},
		{
			Name:      "set-fee",
			Usage:     "update the fee policy, admin only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fee, F",
					Value: "",
					Usage: "*new listing fee `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*fee recipient `ADDRESS`",
				},
			},
			Action: runSetFee,
		},
		{
			Name:      "available",
			Usage:     "display unsold listings",
			ArgsUsage: "\n   (* = required)",
			Flags:     pageFlags,
			Action:    runAvailable,
		},
		{
			Name:      "owned",
			Usage:     "display listings bought by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "owner, O",
					Value: "",
					Usage: " owner `ADDRESS` [caller]",
				},
			}, pageFlags...),
			Action: runOwned,
		},
		{
			Name:      "created",
			Usage:     "display listings created by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: " seller `ADDRESS` [caller]",
				},
			}, pageFlags...),
			Action: runCreated,
		},
		{
			Name:      "balance",
			Usage:     "display an account's settlement balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " account `ADDRESS` [caller]",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display marketd node information",
			Action: runInfo,
		},
		{
			Name:   "version",
			Usage:  "display version string",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				caller:  c.GlobalString("caller"),
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

var pageFlags = []cli.Flag{
	cli.Uint64Flag{
		Name:  "start, S",
		Usage: " first listing id to consider `N`",
	},
	cli.IntFlag{
		Name:  "count, n",
		Value: 10,
		Usage: " number of records `N`",
	},
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
