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
	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3sim/pkg/encoding"
)

// New returns a running machine with zeroed storage and PC at 0x0000.
func New() *Machine {
	mc := &Machine{
		Log: logrus.WithField("component", "machine"),
	}

	mc.Reset()

	return mc
}

func (mc *Machine) Reset() {
	for i := range mc.registers {
		mc.registers[i] = 0
	}

	for i := range mc.memory {
		mc.memory[i] = 0
	}

	mc.program = 0x0000
	mc.ir = 0x0000
	mc.cond = COND_ZERO
	mc.running = true
}

// Load copies words into memory from start, wrapping past 0xFFFF, and points
// the program counter at start.
func (mc *Machine) Load(start Address, words []Instruction) {
	addr := start

	for _, word := range words {
		mc.memory[addr] = Word(word)
		addr++
	}

	mc.program = start
}

func (mc *Machine) read(addr Address) Word {
	if mc.Watcher != nil {
		mc.Watcher.Read(addr)
	}

	return mc.memory[addr]
}

func (mc *Machine) write(addr Address, value Word) {
	mc.memory[addr] = value

	if mc.Watcher != nil {
		mc.Watcher.Write(addr)
	}
}

func (mc *Machine) setDestination(reg uint16, value Word) {
	mc.registers[reg] = value
	mc.cond = ConditionFrom(value)
}

func (mc *Machine) Step() error {
	if !mc.running {
		return ErrCpuNotRunning
	}

	mc.ir = Instruction(mc.memory[mc.program])
	mc.program++

	op := Decode(encoding.Bits(uint16(mc.ir), 15, 12))

	if mc.Log != nil {
		mc.Log.WithFields(logrus.Fields{
			"pc": mc.program - 1,
			"ir": mc.ir,
			"op": op,
		}).Debug("CPU Step")
	}

	return op.execute(mc)
}

// Run steps up to cycles times, stopping after a halt or at the first error.
func (mc *Machine) Run(cycles uint) error {
	for i := uint(0); i < cycles; i++ {
		if err := mc.Step(); err != nil {
			return err
		}

		if !mc.running {
			break
		}
	}

	return nil
}

func (mc *Machine) SetProgramCounter(addr Address) {
	mc.program = addr
	mc.running = true
}

func (mc *Machine) SetRegister(num int, value Word) error {
	return mc.registers.Store(num, value)
}

func (mc *Machine) SetMemory(addr int, value Word) error {
	return mc.memory.Store(addr, value)
}

func (mc *Machine) ProgramCounter() Address {
	return mc.program
}

func (mc *Machine) InstructionRegister() Instruction {
	return mc.ir
}

func (mc *Machine) Condition() ConditionCode {
	return mc.cond
}

func (mc *Machine) Running() bool {
	return mc.running
}

func (mc *Machine) Registers() Registers {
	return mc.registers
}

func (mc *Machine) Memory() Memory {
	return mc.memory
}

// Peek reads one cell without notifying the Watcher.
func (mc *Machine) Peek(addr Address) Word {
	return mc.memory[addr]
}
