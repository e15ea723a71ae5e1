// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// approval record layout:
//   owner(32) ++ operator(32) → 0x01
func approvalKey(owner account.Address, operator account.Address) []byte {
	key := make([]byte, 0, 2*account.AddressLength)
	key = append(key, owner.Bytes()...)
	key = append(key, operator.Bytes()...)
	return key
}

// SetOperatorApproval - grant or revoke transfer rights over all of
// the caller's items
//
// idempotent: granting an existing approval or revoking an absent
// one changes nothing
func SetOperatorApproval(trx storage.Transaction, caller account.Address, operator account.Address, approved bool) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if operator.IsZero() {
		return fault.InvalidAddress
	}

	key := approvalKey(caller, operator)
	if approved {
		trx.Put(globalData.pools.Approvals, key, []byte{0x01})
	} else {
		trx.Delete(globalData.pools.Approvals, key)
	}

	globalData.log.Infof("approval: %s grants %s: %t", caller, operator, approved)
	return nil
}

// IsApprovedForAll - check an operator approval against committed state
func IsApprovedForAll(owner account.Address, operator account.Address) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return globalData.pools.Approvals.Has(approvalKey(owner, operator))
}
