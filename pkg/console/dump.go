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

package console

import (
	"fmt"

	"github.com/lassandro/lc3sim/pkg/machine"
)

// Dump prints the control unit, the registers and every non-zero memory cell.
func (con *Console) Dump() {
	mc := con.Machine

	fmt.Fprintln(con.Output, f("Control Unit:"))
	fmt.Fprintf(
		con.Output,
		"PC = %04X    IR = %04X    CC = %s    RUNNING: %t\n",
		uint16(mc.ProgramCounter()),
		uint16(mc.InstructionRegister()),
		mc.Condition(),
		mc.Running(),
	)

	fmt.Fprintln(con.Output, f("Registers:"))
	for i, reg := range mc.Registers() {
		fmt.Fprintf(con.Output, "R%d: %04X  %d\n", i, uint16(reg), reg)
	}

	fmt.Fprintln(
		con.Output,
		f("Memory (addresses x0000 - xFFFF, excluding NOP instructions)"),
	)
	for addr := 0; addr < machine.MEMORY_SIZE; addr++ {
		value := mc.Peek(machine.Address(addr))

		if value != 0 {
			fmt.Fprintf(con.Output, "%04X: %04X    %d\n", addr, uint16(value), value)
		}
	}
}

func (con *Console) printRegisters() {
	mc := con.Machine
	regs := mc.Registers()

	for i, reg := range regs {
		fmt.Fprintf(con.Output, "\033[1mR%d:\033[0m x%04X\t", i, uint16(reg))
		if i == (len(regs)-1)/2 {
			fmt.Fprintln(con.Output)
		}
	}

	fmt.Fprintln(con.Output)
	fmt.Fprintf(
		con.Output,
		"\033[1mPC:\033[0m x%04X\t\033[1mCC:\033[0m %s\n",
		uint16(mc.ProgramCounter()),
		mc.Condition(),
	)
}

func (con *Console) printMemory(addr machine.Address, count int) {
	for i := 0; i < count; i++ {
		cell := addr + machine.Address(i)

		if i == 0 {
			fmt.Fprintf(con.Output, "\033[1m[x%04X]\033[0m ", uint16(cell))
		} else if i%4 == 0 {
			fmt.Fprintln(con.Output)
			fmt.Fprintf(con.Output, "\033[1m[x%04X]\033[0m ", uint16(cell))
		}

		result := con.Machine.Peek(cell)

		if result == 0 {
			fmt.Fprintf(con.Output, "\033[1;30mx%04X\033[0m ", uint16(result))
		} else {
			fmt.Fprintf(con.Output, "x%04X ", uint16(result))
		}
	}

	fmt.Fprintln(con.Output)
}
