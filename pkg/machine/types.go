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
	"bufio"

	"github.com/sirupsen/logrus"
)

// Word is the signed 16-bit value held by every register and memory cell.
type Word int16

// Address indexes memory. Arithmetic on it wraps at 1<<16.
type Address uint16

// Instruction is an encoded word as fetched into the instruction register.
type Instruction uint16

type DeviceHandler struct {
	Keyboard *bufio.Reader
	Display  *bufio.Writer
}

// Watcher observes data memory accesses made by executing instructions.
type Watcher interface {
	Read(addr Address)
	Write(addr Address)
}

type Machine struct {
	Devices *DeviceHandler
	Watcher Watcher
	Log     *logrus.Entry

	memory    Memory
	registers Registers
	program   Address
	ir        Instruction
	cond      ConditionCode
	running   bool
}
