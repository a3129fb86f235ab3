// Copyright (C) 2025, Sunscreen Technologies, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package web3

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Powers of ten scaling each unit suffix to wei.
var unitExponents = map[string]uint{
	"":       0,
	"wei":    0,
	"kwei":   3,
	"mwei":   6,
	"gwei":   9,
	"szabo":  12,
	"finney": 15,
	"ether":  18,
}

// ParseEtherValue parses an ether value from a string.
//
// The amount can be tagged with a unit, e.g. "1ether". An untagged amount
// (e.g. "100") is interpreted as wei. A "0x" prefix parses the whole string
// as a hexadecimal wei amount. Fractional amounts like "1.5gwei" are accepted
// as long as the scaled value is a whole number of wei.
//
// This function is suitable as a cobra flag value parser.
func ParseEtherValue(value string) (*uint256.Int, error) {
	s := strings.TrimSpace(value)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := uint256.FromHex("0x" + s[2:])
		if err != nil {
			return nil, otherError(err, "parse hex value")
		}
		return v, nil
	}

	body, unit := splitUnit(s)
	amount, ok := new(big.Rat).SetString(body)
	if !ok || strings.ContainsAny(body, "/eE") {
		return nil, otherError(nil, fmt.Sprintf("malformed amount %q", body))
	}
	exp, ok := unitExponents[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return nil, otherError(nil, fmt.Sprintf("unrecognized unit %q", unit))
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
	amount.Mul(amount, new(big.Rat).SetInt(scale))
	if !amount.IsInt() {
		return nil, otherError(nil, fmt.Sprintf("%s is not a whole number of wei", value))
	}
	if amount.Sign() < 0 {
		return nil, otherError(nil, fmt.Sprintf("%s is negative", value))
	}

	v, overflow := uint256.FromBig(amount.Num())
	if overflow {
		return nil, otherError(nil, fmt.Sprintf("%s overflows 256 bits", value))
	}
	return v, nil
}

// splitUnit separates the numeric body from a trailing alphabetic unit
// suffix.
func splitUnit(s string) (body, unit string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	return s[:i], s[i:]
}
