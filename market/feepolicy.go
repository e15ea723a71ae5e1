// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
	"github.com/openmarket/marketd/storage"
)

// the single fee policy record
var feePolicyKey = []byte{0x00}

// FeePolicy - the listing fee and where it is paid
type FeePolicy struct {
	ListingFee currency.Amount `json:"listingFee"`
	Recipient  account.Address `json:"recipient"`
}

// fee policy record layout:
//   listing fee(16) ++ recipient(32)
const feePolicyRecordLength = currency.PackedAmountLength + account.AddressLength

func packFeePolicy(policy FeePolicy) []byte {
	buffer := make([]byte, 0, feePolicyRecordLength)
	buffer = append(buffer, policy.ListingFee.Pack()...)
	buffer = append(buffer, policy.Recipient.Bytes()...)
	return buffer
}

func unpackFeePolicy(buffer []byte) (FeePolicy, error) {
	if feePolicyRecordLength != len(buffer) {
		return FeePolicy{}, fault.WrongRecordLength
	}

	fee, err := currency.UnpackAmount(buffer[:currency.PackedAmountLength])
	if nil != err {
		return FeePolicy{}, err
	}
	recipient, err := account.AddressFromBytes(buffer[currency.PackedAmountLength:])
	if nil != err {
		return FeePolicy{}, err
	}

	return FeePolicy{
		ListingFee: fee,
		Recipient:  recipient,
	}, nil
}

// GetFeePolicy - read the current fee policy
func GetFeePolicy() (FeePolicy, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return FeePolicy{}, fault.NotInitialised
	}

	buffer := globalData.pools.FeePolicy.Get(feePolicyKey)
	if nil == buffer {
		return FeePolicy{}, fault.NotInitialised
	}
	return unpackFeePolicy(buffer)
}

// GetListingPrice - the fee a seller must attach to create a listing
func GetListingPrice() (currency.Amount, error) {
	policy, err := GetFeePolicy()
	if nil != err {
		return currency.Amount{}, err
	}
	return policy.ListingFee, nil
}

// SetFeePolicy - replace the fee policy, administrator only
func SetFeePolicy(trx storage.Transaction, caller account.Address, policy FeePolicy) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if caller != globalData.admin {
		return fault.NotAdmin
	}
	if policy.Recipient.IsZero() {
		return fault.InvalidRecipient
	}

	trx.Put(globalData.pools.FeePolicy, feePolicyKey, packFeePolicy(policy))

	globalData.log.Infof("fee policy: fee %s  recipient %s", policy.ListingFee, policy.Recipient)
	return nil
}
