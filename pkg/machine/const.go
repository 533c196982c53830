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

const (
	MEMORY_SIZE    = 1 << 16
	REGISTER_COUNT = 8

	// JSR/JSRR return address
	REG_RETURN = 7
)

const (
	FLAG_POS  uint16 = 1 << 0
	FLAG_ZERO uint16 = 1 << 1
	FLAG_NEG  uint16 = 1 << 2
)

const (
	TRAP_GETC uint8 = 0x20
	TRAP_OUT  uint8 = 0x21
	TRAP_PUTS uint8 = 0x22
	TRAP_IN   uint8 = 0x23
	TRAP_HALT uint8 = 0x25
)

const (
	PROMPT_IN   = "Enter a character: "
	NOTICE_HALT = "Trap halt reached, halting CPU\n"
)
