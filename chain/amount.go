// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentacar/ledgersdk/consts"
)

// Amount is a ledger quantity in stroops (10^-7 of a unit).
type Amount int64

const MaxAmount = Amount(consts.MaxInt64)

// amountPattern admits plain decimal notation only.
var amountPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// ParseAmount converts a decimal string such as "25.50" into stroops. The
// string must be representable exactly with [consts.Decimals] fractional
// digits. Scientific notation is rejected.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	shifted := d.Shift(consts.Decimals)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, consts.Decimals)
	}
	b := shifted.BigInt()
	if !b.IsInt64() {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
	}
	return Amount(b.Int64()), nil
}

// MustParseAmount panics if [s] cannot be parsed.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns a as a unit-denominated decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -consts.Decimals)
}

// String renders a with exactly [consts.Decimals] fractional digits, the
// way the network reports balances.
func (a Amount) String() string {
	return a.Decimal().StringFixed(consts.Decimals)
}
