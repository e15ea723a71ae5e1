// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line interface to a marketd node
//
// e.g. to mint an item and put it up for sale:
//
//	market-cli -i ADDRESS mint -p https://example.org/meta/1.json
//	market-cli -i ADDRESS approve -o MARKETPLACE
//	market-cli -i ADDRESS list -I 1 -P 1000
package main
