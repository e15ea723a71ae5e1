// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openmarket/marketd/currency"
	"github.com/openmarket/marketd/fault"
)

func TestAmountFromString(t *testing.T) {
	a, err := currency.AmountFromString("1000")
	assert.Nil(t, err, "parse error")
	assert.True(t, a.Equal(currency.MustAmountFromUint64(1000)), "wrong value")
}

func TestAmountFromStringRange(t *testing.T) {
	// one more than 2^128 - 1
	_, err := currency.AmountFromString("340282366920938463463374607431768211456")
	assert.Equal(t, fault.AmountOverflow, err, "wrong error")

	// largest valid value
	m, err := currency.AmountFromString("340282366920938463463374607431768211455")
	assert.Nil(t, err, "parse error")
	assert.Equal(t, "340282366920938463463374607431768211455", m.String(), "wrong value")
}

func TestAmountFromStringInvalid(t *testing.T) {
	_, err := currency.AmountFromString("12.5")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error for fractional value")

	_, err = currency.AmountFromString("-1")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error for negative value")

	_, err = currency.AmountFromString("abc")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error for non-numeric text")

	_, err = currency.AmountFromString("")
	assert.Equal(t, fault.InvalidAmount, err, "wrong error for empty string")
}

func TestAmountPackUnpack(t *testing.T) {
	a := currency.MustAmountFromUint64(123456789)

	packed := a.Pack()
	assert.Equal(t, currency.PackedAmountLength, len(packed), "wrong packed length")

	unpacked, err := currency.UnpackAmount(packed)
	assert.Nil(t, err, "unpack error")
	assert.True(t, a.Equal(unpacked), "amount changed by pack round trip")
}

func TestAmountUnpackWrongLength(t *testing.T) {
	_, err := currency.UnpackAmount([]byte{1, 2, 3})
	assert.Equal(t, fault.WrongRecordLength, err, "wrong error")
}

func TestAmountAdd(t *testing.T) {
	a := currency.MustAmountFromUint64(10)
	b := currency.MustAmountFromUint64(32)

	sum, err := a.Add(b)
	assert.Nil(t, err, "add error")
	assert.True(t, sum.Equal(currency.MustAmountFromUint64(42)), "wrong sum")
}

func TestAmountAddOverflow(t *testing.T) {
	m, _ := currency.AmountFromString("340282366920938463463374607431768211455")
	_, err := m.Add(currency.MustAmountFromUint64(1))
	assert.Equal(t, fault.AmountOverflow, err, "wrong error")
}

func TestAmountExactEquality(t *testing.T) {
	price := currency.MustAmountFromUint64(1000)
	assert.True(t, price.Equal(currency.MustAmountFromUint64(1000)), "equal amounts differ")
	assert.False(t, price.Equal(currency.MustAmountFromUint64(999)), "unequal amounts match")
	assert.False(t, price.Equal(currency.MustAmountFromUint64(1001)), "unequal amounts match")
}
