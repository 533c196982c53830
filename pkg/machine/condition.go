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

package machine

// ConditionCode is the sign of the last value written to a destination
// register. Its value is the NZP flag bit used by BR.
type ConditionCode uint16

//go:generate stringer -linecomment -type=ConditionCode
const (
	COND_POS  = ConditionCode(FLAG_POS)  // P
	COND_ZERO = ConditionCode(FLAG_ZERO) // Z
	COND_NEG  = ConditionCode(FLAG_NEG)  // N
)

func ConditionFrom(value Word) ConditionCode {
	if value < 0 {
		return COND_NEG
	} else if value == 0 {
		return COND_ZERO
	}

	return COND_POS
}

func (cc ConditionCode) Flag() uint16 {
	return uint16(cc)
}
