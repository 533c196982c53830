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
	"fmt"
	"io"
)

func (mc *Machine) trap(code uint8) error {
	if mc.Log != nil {
		mc.Log.WithField("trap", fmt.Sprintf("%#02x", code)).Debug("CPU Trap")
	}

	switch code {
	case TRAP_GETC:
		return mc.trapGetc()
	case TRAP_OUT:
		return mc.trapOut()
	case TRAP_PUTS:
		return mc.trapPuts()
	case TRAP_IN:
		return mc.trapIn()
	case TRAP_HALT:
		return mc.trapHalt()
	default:
		return ErrUnsupportedTrapCode(code)
	}
}

func (mc *Machine) readByte() (byte, error) {
	if mc.Devices == nil || mc.Devices.Keyboard == nil {
		return 0, fmt.Errorf("%w: %w", ErrDeviceIO, io.EOF)
	}

	key, err := mc.Devices.Keyboard.ReadByte()

	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeviceIO, err)
	}

	return key, nil
}

func (mc *Machine) display(s string) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return nil
	}

	if _, err := mc.Devices.Display.WriteString(s); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceIO, err)
	}

	if err := mc.Devices.Display.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceIO, err)
	}

	return nil
}

func (mc *Machine) trapGetc() error {
	key, err := mc.readByte()

	if err != nil {
		return err
	}

	mc.registers[0] = Word(key)

	return nil
}

func (mc *Machine) trapOut() error {
	return mc.display(string([]byte{byte(mc.registers[0] & 0xFF)}))
}

func (mc *Machine) trapPuts() error {
	var out []rune

	// One full lap of memory without a terminator ends the string
	addr := Address(mc.registers[0])

	for i := 0; i < MEMORY_SIZE; i, addr = i+1, addr+1 {
		value := mc.read(addr)

		if value == 0 {
			break
		}

		out = append(out, rune(uint16(value)))
	}

	return mc.display(string(out))
}

func (mc *Machine) trapIn() error {
	if err := mc.display(f(PROMPT_IN)); err != nil {
		return err
	}

	return mc.trapGetc()
}

func (mc *Machine) trapHalt() error {
	if err := mc.display(f(NOTICE_HALT)); err != nil {
		return err
	}

	mc.running = false

	if mc.Log != nil {
		mc.Log.WithField("pc", mc.program).Info("CPU Halted")
	}

	return nil
}
