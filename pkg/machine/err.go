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
	"errors"

	"github.com/lassandro/lc3sim/pkg/translate"
)

var f = translate.From

var (
	ErrCpuNotRunning        = errors.New(f("cpu is not running"))
	ErrReservedOpcode       = errors.New(f("reserved opcode"))
	ErrUnsupportedOperation = errors.New(f("return from interrupt is not supported"))
	ErrInvalidRegister      = errors.New(f("invalid register; the choices are R0 - R7"))
	ErrAddressOutOfRange    = errors.New(f("address out of range"))
	ErrDeviceIO             = errors.New(f("device i/o"))
)

type ErrUnsupportedTrapCode uint8

func (et ErrUnsupportedTrapCode) Error() string {
	return f("unsupported trap code %#02x", uint8(et))
}

func (et ErrUnsupportedTrapCode) Is(err error) (ok bool) {
	_, ok = err.(ErrUnsupportedTrapCode)
	return
}
