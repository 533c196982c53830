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

// Operation is the kind selected by the top four bits of an instruction.
type Operation uint16

//go:generate stringer -linecomment -type=Operation
const (
	OP_BR   = Operation(0b0000) // BR
	OP_ADD  = Operation(0b0001) // ADD
	OP_LD   = Operation(0b0010) // LD
	OP_ST   = Operation(0b0011) // ST
	OP_JSR  = Operation(0b0100) // JSR
	OP_AND  = Operation(0b0101) // AND
	OP_LDR  = Operation(0b0110) // LDR
	OP_STR  = Operation(0b0111) // STR
	OP_RTI  = Operation(0b1000) // RTI
	OP_NOT  = Operation(0b1001) // NOT
	OP_LDI  = Operation(0b1010) // LDI
	OP_STI  = Operation(0b1011) // STI
	OP_JMP  = Operation(0b1100) // JMP
	OP_RES  = Operation(0b1101) // RES
	OP_LEA  = Operation(0b1110) // LEA
	OP_TRAP = Operation(0b1111) // TRAP
)

type handler func(mc *Machine) error

var operations = [...]handler{
	OP_BR:   (*Machine).execBranch,
	OP_ADD:  (*Machine).execAdd,
	OP_LD:   (*Machine).execLoad,
	OP_ST:   (*Machine).execStore,
	OP_JSR:  (*Machine).execJumpSubroutine,
	OP_AND:  (*Machine).execAnd,
	OP_LDR:  (*Machine).execLoadRegister,
	OP_STR:  (*Machine).execStoreRegister,
	OP_RTI:  (*Machine).execReturnInterrupt,
	OP_NOT:  (*Machine).execNot,
	OP_LDI:  (*Machine).execLoadIndirect,
	OP_STI:  (*Machine).execStoreIndirect,
	OP_JMP:  (*Machine).execJump,
	OP_RES:  (*Machine).execReserved,
	OP_LEA:  (*Machine).execLoadEffectiveAddress,
	OP_TRAP: (*Machine).execTrap,
}

// Decode resolves the low four bits of opcode. Every value has an operation;
// RES and RTI fail only when executed.
func Decode(opcode uint16) Operation {
	return Operation(opcode & 0xF)
}

func (op Operation) execute(mc *Machine) error {
	return operations[op](mc)
}
