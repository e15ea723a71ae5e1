// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the item registry
//
// Issues globally unique item identifiers, records the current owner
// and the immutable content pointer for each item, and lets an owner
// delegate transfer rights over all of their items to an operator.
//
// Identifiers are assigned from a monotonic counter, starting at one,
// and are never reused.  The content pointer is an opaque reference
// resolved by an external content store; it is fixed at mint time.
package registry
