// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the marketplace ledger
//
// Records fixed-price listings and executes the purchase that moves
// ownership and funds together.  A listing has exactly two states,
// created and sold, and the sold state is terminal; listings are
// never deleted, sold listings remain as historical record.
//
// Custody stays with the seller for the whole life of a listing: the
// marketplace only holds an operator approval and uses it to execute
// the registry transfer at purchase time.  Every mutation runs inside
// a storage transaction, so a rejected operation moves no funds and
// flips no flags.
package market
