// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/account"
	"github.com/openmarket/marketd/fault"
)

func makeAddress(fill byte) account.Address {
	buffer := make([]byte, account.AddressLength)
	for i := range buffer {
		buffer[i] = fill
	}
	address, _ := account.AddressFromBytes(buffer)
	return address
}

func TestAddressRoundTrip(t *testing.T) {
	address := makeAddress(0x37)

	encoded := address.String()
	decoded, err := account.AddressFromBase58(encoded)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, address, decoded, "address changed by round trip")
}

func TestAddressFromBytesWrongLength(t *testing.T) {
	_, err := account.AddressFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAddress, err, "wrong error")
}

func TestAddressBadChecksum(t *testing.T) {
	address := makeAddress(0x42)
	encoded := address.String()

	// corrupt the final character to break the checksum
	last := encoded[len(encoded)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	corrupt := encoded[:len(encoded)-1] + string(replacement)

	_, err := account.AddressFromBase58(corrupt)
	assert.Equal(t, fault.InvalidAddress, err, "wrong error")
}

func TestAddressIsZero(t *testing.T) {
	var unset account.Address
	assert.True(t, unset.IsZero(), "zero address not detected")
	assert.False(t, makeAddress(1).IsZero(), "set address reported zero")
}

func TestAddressJSON(t *testing.T) {
	address := makeAddress(0x11)

	buffer, err := json.Marshal(address)
	assert.Nil(t, err, "marshal error")

	var decoded account.Address
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, address, decoded, "address changed by JSON round trip")
}
