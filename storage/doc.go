// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// A single LevelDB database is split into a series of pools, each
// defined by a one byte prefix obtained from the prefix tag in the
// struct defining the available pools.
//
// All mutation happens through a Transaction: writes accumulate in a
// LevelDB batch and become visible only when the batch is committed,
// so a rejected operation leaves no partial state.  Reads through a
// pool handle always see the most recently committed state; only the
// transaction itself sees its own pending writes.
//
// Notes:
// 1. each pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = big endian uint64 (8 bytes)
// 4. address      = participant identity (32 bytes)
// 5. amount       = big endian uint128 (16 bytes)
//
// Items:
//
//   I ++ itemId                - registered item
//                                data: owner ++ issuer ++ content pointer
//
// Approvals:
//
//   P ++ owner ++ operator     - operator approval grant
//                                data: 0x01
//
// Listings:
//
//   L ++ listingId             - marketplace listing (never deleted)
//                                data: itemId ++ seller ++ owner ++ price ++ sold byte
//   A ++ itemId                - active (unsold) listing for an item
//                                data: listingId
//
// Counters:
//
//   N ++ name                  - next id counters ("item", "listing")
//                                data: last assigned id
//
// Settlement:
//
//   B ++ address               - settlement balance
//                                data: amount
//
//   F ++ 0x00                  - fee policy
//                                data: listing fee amount ++ recipient address
package storage
