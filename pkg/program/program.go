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

// Package program reads hex program images.
//
// An image is text: the first token is the hexadecimal load address, then one
// hexadecimal word per line, stored at consecutive addresses. Blank lines and
// anything after a ';' are ignored.
package program

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lassandro/lc3sim/pkg/encoding"
	"github.com/lassandro/lc3sim/pkg/machine"
)

type Program struct {
	Start machine.Address
	Words []machine.Instruction
}

func Parse(reader io.Reader) (*Program, error) {
	var prog *Program

	scanner := bufio.NewScanner(reader)
	lineno := 0

	for scanner.Scan() {
		lineno++

		line := scanner.Text()

		if i := strings.IndexByte(line, ';'); i != -1 {
			line = line[:i]
		}

		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		value, err := encoding.DecodeWord(fields[0])

		if prog == nil {
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
			}

			prog = &Program{Start: machine.Address(value)}
			continue
		}

		if err != nil {
			return nil, ErrBadInstruction{LineNo: lineno, Line: fields[0], Err: err}
		}

		prog.Words = append(prog.Words, machine.Instruction(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if prog == nil {
		return nil, ErrMissingHeader
	}

	return prog, nil
}

func Open(path string) (*Program, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer file.Close()

	prog, err := Parse(file)

	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return prog, nil
}

// LoadInto writes the image into mc and points its program counter at Start.
func (prog *Program) LoadInto(mc *machine.Machine) {
	mc.Load(prog.Start, prog.Words)
}
