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

import (
	"fmt"
)

type Memory [MEMORY_SIZE]Word

type Registers [REGISTER_COUNT]Word

func (mem *Memory) Load(index int) (Word, error) {
	if index < 0 || index >= len(mem) {
		return 0, fmt.Errorf("%w: %#x", ErrAddressOutOfRange, index)
	}

	return mem[index], nil
}

func (mem *Memory) Store(index int, value Word) error {
	if index < 0 || index >= len(mem) {
		return fmt.Errorf("%w: %#x", ErrAddressOutOfRange, index)
	}

	mem[index] = value
	return nil
}

func (reg *Registers) Load(index int) (Word, error) {
	if index < 0 || index >= len(reg) {
		return 0, fmt.Errorf("%w: R%d", ErrInvalidRegister, index)
	}

	return reg[index], nil
}

func (reg *Registers) Store(index int, value Word) error {
	if index < 0 || index >= len(reg) {
		return fmt.Errorf("%w: R%d", ErrInvalidRegister, index)
	}

	reg[index] = value
	return nil
}
