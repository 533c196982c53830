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
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/lassandro/lc3sim/pkg/encoding"
	"github.com/lassandro/lc3sim/pkg/machine"
)

// splitWords splits on whitespace, keeping each $(...) group as one word.
func splitWords(line string) []string {
	var words []string
	var word strings.Builder

	depth := 0

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '(' && depth > 0:
			depth++
		case c == '(' && i > 0 && line[i-1] == '$':
			depth = 1
		case c == ')' && depth > 0:
			depth--
		case depth == 0 && strings.IndexByte(" \t\r\n", c) != -1:
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
			continue
		}

		word.WriteByte(c)
	}

	if word.Len() > 0 {
		words = append(words, word.String())
	}

	return words
}

func argument(args []string, n int) (string, error) {
	if n >= len(args) {
		return "", ErrMissingArgument
	}

	return args[n], nil
}

// evalExpr evaluates a starlark expression with PC and R0-R7 predeclared.
func (con *Console) evalExpr(expr string) (int, error) {
	thread := starlark.Thread{Name: "console"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"PC": starlark.MakeInt(int(con.Machine.ProgramCounter())),
	}

	for i, reg := range con.Machine.Registers() {
		pred[fmt.Sprintf("R%d", i)] = starlark.MakeInt(int(reg))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)

	if err != nil {
		return 0, err
	}

	rc, ok := dict["rc"].(starlark.Int)

	if !ok {
		return 0, ErrBadExpression
	}

	value, ok := rc.Int64()

	if !ok {
		return 0, ErrBadExpression
	}

	return int(value), nil
}

// Decodes a console number in the formats: x3000, 0x3000, #-5, 12, $(expr)
func (con *Console) number(arg string) (int, error) {
	var value int
	var err error

	switch {
	case strings.HasPrefix(arg, "$(") && strings.HasSuffix(arg, ")"):
		value, err = con.evalExpr(arg[2 : len(arg)-1])

	case strings.HasPrefix(arg, "#"):
		var result int16
		result, err = encoding.DecodeInt(arg)
		value = int(result)

	case strings.IndexAny(arg, "xX") != -1:
		var result uint16
		result, err = encoding.DecodeHex(arg)
		value = int(result)

	default:
		value, err = strconv.Atoi(arg)
	}

	if err != nil {
		return 0, fmt.Errorf("%w '%v': %w", ErrBadArgument, arg, err)
	}

	return value, nil
}

// word accepts both signed and unsigned 16-bit spellings of a value.
func (con *Console) word(arg string) (machine.Word, error) {
	value, err := con.number(arg)

	if err != nil {
		return 0, err
	}

	if value < -0x8000 || value > 0xFFFF {
		return 0, fmt.Errorf("%w '%v': out of range", ErrBadArgument, arg)
	}

	return machine.Word(uint16(value)), nil
}

func (con *Console) address(arg string) (machine.Address, error) {
	value, err := con.number(arg)

	if err != nil {
		return 0, err
	}

	if value < 0 || value >= machine.MEMORY_SIZE {
		return 0, fmt.Errorf(
			"%w '%v': %w", ErrBadArgument, arg, machine.ErrAddressOutOfRange,
		)
	}

	return machine.Address(value), nil
}
