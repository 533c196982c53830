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
	"github.com/lassandro/lc3sim/pkg/encoding"
)

func (mc *Machine) field(left, right uint) uint16 {
	return encoding.Bits(uint16(mc.ir), left, right)
}

func (mc *Machine) offset(left, right uint) Address {
	return Address(encoding.BitsSigned(uint16(mc.ir), left, right))
}

// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execBranch() error {
	flags := mc.field(11, 9)

	if flags&mc.cond.Flag() != 0 {
		mc.program += mc.offset(8, 0)
	}

	return nil
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execAdd() error {
	dest := mc.field(11, 9)
	src1 := mc.field(8, 6)

	// Immediate value addition
	if mc.field(5, 5) == 1 {
		imm5 := Word(encoding.BitsSigned(uint16(mc.ir), 4, 0))

		mc.setDestination(dest, mc.registers[src1]+imm5)
	} else {
		src2 := mc.field(2, 0)

		mc.setDestination(dest, mc.registers[src1]+mc.registers[src2])
	}

	return nil
}

// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execAnd() error {
	dest := mc.field(11, 9)
	src1 := mc.field(8, 6)

	if mc.field(5, 5) == 1 {
		imm5 := Word(encoding.BitsSigned(uint16(mc.ir), 4, 0))

		mc.setDestination(dest, mc.registers[src1]&imm5)
	} else {
		src2 := mc.field(2, 0)

		mc.setDestination(dest, mc.registers[src1]&mc.registers[src2])
	}

	return nil
}

// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execNot() error {
	dest := mc.field(11, 9)
	src := mc.field(8, 6)

	mc.setDestination(dest, ^mc.registers[src])

	return nil
}

// LD   |0010    |DR   |PCoffset9         | Load
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execLoad() error {
	dest := mc.field(11, 9)
	addr := mc.program + mc.offset(8, 0)

	mc.setDestination(dest, mc.read(addr))

	return nil
}

// LDI  |1010    |DR   |PCoffset9         | Load indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execLoadIndirect() error {
	dest := mc.field(11, 9)
	addr := mc.program + mc.offset(8, 0)

	mc.setDestination(dest, mc.read(Address(mc.read(addr))))

	return nil
}

// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execLoadRegister() error {
	dest := mc.field(11, 9)
	base := mc.field(8, 6)
	addr := Address(mc.registers[base]) + mc.offset(5, 0)

	mc.setDestination(dest, mc.read(addr))

	return nil
}

// ST   |0011    |SR   |PCoffset9         | Store
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execStore() error {
	src := mc.field(11, 9)
	addr := mc.program + mc.offset(8, 0)

	mc.write(addr, mc.registers[src])

	return nil
}

// STI  |1011    |SR   |PCoffset9         | Store indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execStoreIndirect() error {
	src := mc.field(11, 9)
	addr := mc.program + mc.offset(8, 0)

	mc.write(Address(mc.read(addr)), mc.registers[src])

	return nil
}

// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execStoreRegister() error {
	src := mc.field(11, 9)
	base := mc.field(8, 6)

	// offset6 is zero-extended here, unlike LDR
	addr := Address(mc.registers[base]) + Address(mc.field(5, 0))

	mc.write(addr, mc.registers[src])

	return nil
}

// JSR  |0100    |1|PCoffset11            | Jump to subroutine
// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execJumpSubroutine() error {
	mc.registers[REG_RETURN] = Word(mc.program)

	if mc.field(11, 11) == 1 {
		mc.program += mc.offset(10, 0)
	} else {
		// JSRR R7 jumps to the return address just written
		mc.program = Address(mc.registers[mc.field(8, 6)])
	}

	return nil
}

// JMP  |1100    |000  |BaseR|000000      | Jump
// RET  |1100    |000  |111  |000000      | Return
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execJump() error {
	mc.program = Address(mc.registers[mc.field(8, 6)])

	return nil
}

// LEA  |1110    |DR   |PCoffset9         | Load effective address
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execLoadEffectiveAddress() error {
	dest := mc.field(11, 9)

	mc.setDestination(dest, Word(mc.program+mc.offset(8, 0)))

	return nil
}

// RTI  |1000    |000000000000            | Return from interrupt
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execReturnInterrupt() error {
	return ErrUnsupportedOperation
}

// RES  |1101    |                        | Reserved (illegal)
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execReserved() error {
	return ErrReservedOpcode
}

// TRAP |1111    |0000   |trapvect8       | System call
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) execTrap() error {
	return mc.trap(uint8(mc.field(7, 0)))
}
