// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - fixed-point monetary amounts
//
// All monetary values are unsigned 128 bit integers denominated in
// the smallest indivisible unit of the settlement currency.  Decimal
// string conversion is provided for configuration and the RPC
// surface; no floating point is ever involved.
package currency

import (
	"github.com/holiman/uint256"

	"github.com/openmarket/marketd/fault"
)

// PackedAmountLength - number of bytes in the packed big endian form
const PackedAmountLength = 16

// Amount - an unsigned 128 bit fixed-point value
type Amount struct {
	value uint256.Int
}

// MustAmountFromUint64 - for constants and tests
func MustAmountFromUint64(n uint64) Amount {
	var a Amount
	a.value.SetUint64(n)
	return a
}

// AmountFromString - parse a decimal string, enforcing the 128 bit range
func AmountFromString(s string) (Amount, error) {
	var a Amount
	if "" == s {
		return a, fault.InvalidAmount
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return a, fault.InvalidAmount
		}
	}
	value, err := uint256.FromDecimal(s)
	if nil != err {
		return a, fault.AmountOverflow
	}
	if value.BitLen() > 128 {
		return a, fault.AmountOverflow
	}
	a.value = *value
	return a, nil
}

// UnpackAmount - decode the 16 byte big endian form
func UnpackAmount(buffer []byte) (Amount, error) {
	var a Amount
	if PackedAmountLength != len(buffer) {
		return a, fault.WrongRecordLength
	}
	a.value.SetBytes(buffer)
	return a, nil
}

// Pack - encode as 16 bytes big endian
func (a Amount) Pack() []byte {
	full := a.value.Bytes32()
	buffer := make([]byte, PackedAmountLength)
	copy(buffer, full[32-PackedAmountLength:])
	return buffer
}

// IsZero - check for the zero amount
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal - exact equality, the only comparison the ledger needs
func (a Amount) Equal(b Amount) bool {
	return a.value.Eq(&b.value)
}

// Add - sum of two amounts, rejecting overflow past 128 bits
func (a Amount) Add(b Amount) (Amount, error) {
	var sum Amount
	_, carry := sum.value.AddOverflow(&a.value, &b.value)
	if carry || sum.value.BitLen() > 128 {
		return Amount{}, fault.AmountOverflow
	}
	return sum, nil
}

// String - decimal text form
func (a Amount) String() string {
	return a.value.Dec()
}

// MarshalText - decimal string for JSON
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - parse a decimal string in place
func (a *Amount) UnmarshalText(s []byte) error {
	parsed, err := AmountFromString(string(s))
	if nil != err {
		return err
	}
	*a = parsed
	return nil
}
