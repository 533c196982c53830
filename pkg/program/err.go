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

package program

import (
	"errors"

	"github.com/lassandro/lc3sim/pkg/translate"
)

var f = translate.From

var (
	ErrMissingHeader = errors.New(f("program file missing header"))
	ErrBadHeader     = errors.New(f("file has an invalid header"))
)

// ErrBadInstruction reports a word that is not a 16-bit hex value.
type ErrBadInstruction struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrBadInstruction) Error() string {
	return f("line %v '%v' is not a valid instruction", err.LineNo, err.Line)
}

func (err ErrBadInstruction) Unwrap() error {
	return err.Err
}
