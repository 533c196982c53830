// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidHex = errors.New("Invalid hex string")

// Decodes a hexidecimal string in the formats: 0xFFFF, xFFFF, 0xFF, xFF
func DecodeHex(s string) (uint16, error) {
	if i := strings.IndexAny(s, "xX"); i == 0 {
		s = "0" + s
	} else if i == -1 || i != 1 {
		return 0, ErrInvalidHex
	}

	result, err := strconv.ParseUint(s, 0, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Decodes a hexidecimal word with an optional prefix: 0xFFFF, xFFFF, FFFF
func DecodeWord(s string) (uint16, error) {
	if len(s) > 1 && (s[0] == 'x' || s[0] == 'X') {
		s = s[1:]
	} else if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	result, err := strconv.ParseUint(s, 16, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Decodes a base-10 string in the formats: #123, 123
func DecodeInt(s string) (int16, error) {
	if i := strings.Index(s, "#"); i == 0 {
		s = s[1:]
	}

	result, err := strconv.ParseInt(s, 10, 16)

	if err != nil {
		return 0, err
	}

	return int16(result), nil
}

func checkRange(left, right uint) {
	if left < right || left > 15 {
		panic("Invalid bit range")
	}
}

// Bits returns the field value[left:right] (inclusive) shifted down to bit 0.
func Bits(value uint16, left, right uint) uint16 {
	checkRange(left, right)

	mask := ((uint32(1) << (left - right + 1)) - 1) << right

	return uint16((uint32(value) & mask) >> right)
}

// BitsSigned returns the field value[left:right] as a signed quantity.
//
// The sign is taken from bit left+1 of value, one position above the field.
// A single-bit field is never negative.
func BitsSigned(value uint16, left, right uint) int16 {
	checkRange(left, right)

	if left == right || (uint32(value)>>(left+1))&0x1 == 0 {
		return int16(Bits(value, left, right))
	}

	return -(int16(Bits(^value, left-1, right)) + 1)
}
