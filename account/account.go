// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - participant identity
//
// An address is the 32 byte public identity of a marketplace
// participant.  Key material and request signing belong to the
// external wallet; this package only handles the identity value and
// its Base58 text form.
//
// text form: Base58(address bytes ++ first 4 bytes of SHA3-256(address bytes))
package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/openmarket/marketd/fault"
)

// AddressLength - number of bytes in an address
const AddressLength = 32

// number of checksum bytes appended to the text form
const checksumLength = 4

// Address - the identity of a participant
type Address [AddressLength]byte

// all zero bytes, used to detect unset addresses
var zeroAddress Address

// AddressFromBytes - create an address from a raw byte slice
func AddressFromBytes(buffer []byte) (Address, error) {
	var address Address
	if AddressLength != len(buffer) {
		return address, fault.InvalidAddress
	}
	copy(address[:], buffer)
	return address, nil
}

// AddressFromBase58 - decode the checksummed Base58 text form
func AddressFromBase58(addressBase58Encoded string) (Address, error) {
	var address Address

	decoded, err := base58.Decode(addressBase58Encoded)
	if nil != err {
		return address, fault.InvalidAddress
	}
	if AddressLength+checksumLength != len(decoded) {
		return address, fault.InvalidAddress
	}

	checksum := sha3.Sum256(decoded[:AddressLength])
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != decoded[AddressLength+i] {
			return address, fault.InvalidAddress
		}
	}

	copy(address[:], decoded[:AddressLength])
	return address, nil
}

// Bytes - the raw address bytes
//
// this returns a copy so the caller cannot modify the address
func (address Address) Bytes() []byte {
	buffer := make([]byte, AddressLength)
	copy(buffer, address[:])
	return buffer
}

// IsZero - check for the unset address
func (address Address) IsZero() bool {
	return address == zeroAddress
}

// String - the checksummed Base58 text form
func (address Address) String() string {
	checksum := sha3.Sum256(address[:])
	buffer := make([]byte, 0, AddressLength+checksumLength)
	buffer = append(buffer, address[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - for JSON and configuration use
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - decode the checksummed Base58 text form in place
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
