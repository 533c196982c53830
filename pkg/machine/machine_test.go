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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testMachineState struct {
	Registers [8]uint16
	Program   Address
	Condition ConditionCode
	Halted    bool
	Memory    map[Address]uint16
}

type testCase struct {
	Name     string
	Steps    uint
	Keyboard string
	Display  string
	Err      error
	Input    testMachineState
	Output   testMachineState
}

func testMachineSuccess(t *testing.T, test *testCase) {
	assert := assert.New(t)

	if test.Input.Memory == nil && test.Output.Memory == nil {
		panic("No memory maps provided")
	}

	var displayBuf bytes.Buffer

	mc := New()
	mc.Devices = &DeviceHandler{
		Display: bufio.NewWriter(&displayBuf),
	}

	if len(test.Keyboard) > 0 {
		mc.Devices.Keyboard = bufio.NewReader(
			bytes.NewReader([]byte(test.Keyboard)),
		)
	}

	for i, value := range test.Input.Registers {
		mc.registers[i] = Word(value)
	}

	for addr, value := range test.Input.Memory {
		mc.memory[addr] = Word(value)
	}

	mc.program = test.Input.Program
	mc.running = !test.Input.Halted

	if test.Input.Condition != 0 {
		mc.cond = test.Input.Condition
	}

	inputCondition := mc.cond

	if test.Steps == 0 {
		test.Steps = 1
	}

	var err error

	for i := uint(0); i < test.Steps; i++ {
		if err = mc.Step(); err != nil {
			break
		}
	}

	if test.Err != nil {
		assert.ErrorIs(err, test.Err)
	} else {
		assert.NoError(err)
	}

	for i := 0; i < 8; i++ {
		want := Word(test.Output.Registers[i])
		have := mc.registers[i]
		assert.Equal(
			want, have,
			"Register mismatch\nwant:%#04x (test.Output.Registers[%d])\nhave:%#04x",
			uint16(want), i, uint16(have),
		)
	}

	assert.Equal(
		test.Output.Program, mc.program,
		"Program register mismatch\nwant:%#04x (test.Output.Program)\nhave:%#04x",
		test.Output.Program, mc.program,
	)

	wantCondition := test.Output.Condition

	if wantCondition == 0 {
		wantCondition = inputCondition
	}

	assert.Equal(
		wantCondition, mc.cond,
		"Condition flag mismatch\nwant:%v (test.Output.Condition)\nhave:%v",
		wantCondition, mc.cond,
	)

	assert.Equal(!test.Output.Halted, mc.running, "Running state mismatch")

	for i, value := range mc.memory {
		input, expectingInput := test.Input.Memory[Address(i)]
		output, expectingOutput := test.Output.Memory[Address(i)]

		if expectingOutput {
			// Value was supposed to change
			if value != Word(output) {
				t.Fatalf(
					"Memory value mismatch"+
						"\nwant:%#04x (test.Output.Memory[%#04x])\nhave:%#04x",
					output,
					i,
					uint16(value),
				)
			}
		} else if expectingInput {
			// Value was supposed to remain
			if value != Word(input) {
				t.Fatalf(
					"Memory value mismatch"+
						"\nwant:%#04x (test.Input.Memory[%#04x])\nhave:%#04x",
					input,
					i,
					uint16(value),
				)
			}
		} else if value != 0 {
			// Value was expected to remain unitialized
			t.Fatalf(
				"Memory unexpectedly changed"+
					"\nwant:0x00 (test.Output.Memory[%#04x])\nhave:%#04x",
				i,
				uint16(value),
			)
		}
	}

	assert.Equal(test.Display, displayBuf.String(), "Display output mismatch")
}

func testSuccess(t *testing.T, tests []testCase) {
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			testMachineSuccess(t, &test)
		})
	}
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestAdd(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "ADD SR2 Positive",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 5, 2: 3},
				Memory: map[Address]uint16{
					0x3000: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 8, 1: 5, 2: 3},
			},
		},
		{
			Name: "ADD SR2 Negative",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0xCAFE, 1: 0x0001, 2: 0xFFFD},
				Memory: map[Address]uint16{
					0x3000: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{0: 0xFFFE, 1: 0x0001, 2: 0xFFFD},
			},
		},
		{
			Name: "ADD SR2 Overflow",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 0x7FFF, 2: 0x0001},
				Memory: map[Address]uint16{
					0x3000: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{0: 0x8000, 1: 0x7FFF, 2: 0x0001},
			},
		},
		{
			Name: "ADD imm5 Negative One",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 5},
				Memory: map[Address]uint16{
					0x3000: 0b0001_000_001_1_11111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 4, 1: 5},
			},
		},
		{
			Name: "ADD imm5 Zero",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_POS,
				Registers: [8]uint16{3: 3},
				Memory: map[Address]uint16{
					0x3000: 0b0001_011_011_1_11101,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_ZERO,
			},
		},
		{
			// The mode bit sits above imm5 and is read as its sign
			Name: "ADD imm5 Mode Bit Sign",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 20},
				Memory: map[Address]uint16{
					0x3000: 0b0001_001_001_1_00001,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{1: 5},
			},
		},
	})
}

// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestAnd(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "AND SR2 Positive",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 0x0F0F, 2: 0x00FF},
				Memory: map[Address]uint16{
					0x3000: 0b0101_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 0x000F, 1: 0x0F0F, 2: 0x00FF},
			},
		},
		{
			Name: "AND SR2 Zero",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_POS,
				Registers: [8]uint16{1: 0x0F00, 2: 0x00FF},
				Memory: map[Address]uint16{
					0x3000: 0b0101_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_ZERO,
				Registers: [8]uint16{1: 0x0F00, 2: 0x00FF},
			},
		},
		{
			Name: "AND imm5 Negative",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 0xFFF9},
				Memory: map[Address]uint16{
					0x3000: 0b0101_000_001_1_11111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{0: 0xFFF9, 1: 0xFFF9},
			},
		},
		{
			Name: "AND imm5 Mode Bit Sign",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x1234},
				Memory: map[Address]uint16{
					0x3000: 0b0101_000_000_1_00000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 0x1230},
			},
		},
	})
}

// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestNot(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "NOT Negative",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{5: 0x00FF},
				Memory: map[Address]uint16{
					0x3000: 0b1001_100_101_111111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{4: 0xFF00, 5: 0x00FF},
			},
		},
		{
			Name: "NOT Zero",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Registers: [8]uint16{5: 0xFFFF},
				Memory: map[Address]uint16{
					0x3000: 0b1001_100_101_111111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_ZERO,
				Registers: [8]uint16{5: 0xFFFF},
			},
		},
	})
}

// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestBranch(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "BRz Taken",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_ZERO,
				Memory: map[Address]uint16{
					0x3000: 0b0000_010_000000101,
				},
			},
			Output: testMachineState{
				Program: 0x3006,
			},
		},
		{
			Name: "BRn Not Taken",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_POS,
				Memory: map[Address]uint16{
					0x3000: 0b0000_100_000000101,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
			},
		},
		{
			Name: "BRnz Taken",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Memory: map[Address]uint16{
					0x3000: 0b0000_110_000000011,
				},
			},
			Output: testMachineState{
				Program: 0x3004,
			},
		},
		{
			Name: "BRp Backwards",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_POS,
				Memory: map[Address]uint16{
					0x3000: 0b0000_001_111111110,
				},
			},
			Output: testMachineState{
				Program: 0x2FFF,
			},
		},
		{
			Name: "BR Never",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_ZERO,
				Memory: map[Address]uint16{
					0x3000: 0b0000_000_000000101,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
			},
		},
	})
}

// LD   |0010    |DR   |PCoffset9         | Load
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestLoad(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "LD Negative",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b0010_010_000000010,
					0x3003: 0xFFFB,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{2: 0xFFFB},
			},
		},
		{
			// DR bit 9 sits above PCoffset9 and is read as its sign
			Name: "LD DR Bit Sign",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b0010_001_000000010,
					0x2F03: 0x0042,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{1: 0x0042},
			},
		},
		{
			Name: "LD Wraparound",
			Input: testMachineState{
				Program: 0xFFFF,
				Memory: map[Address]uint16{
					0xFFFF: 0b0010_010_000000010,
					0x0002: 0x0001,
				},
			},
			Output: testMachineState{
				Program:   0x0000,
				Condition: COND_POS,
				Registers: [8]uint16{2: 0x0001},
			},
		},
	})
}

// LDI  |1010    |DR   |PCoffset9         | Load indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestLoadIndirect(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "LDI Positive",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Memory: map[Address]uint16{
					0x3000: 0b1010_000_000000001,
					0x3002: 0x4000,
					0x4000: 0x0007,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 0x0007},
			},
		},
	})
}

// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestLoadRegister(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "LDR Negative Offset",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 0x4001},
				Memory: map[Address]uint16{
					0x3000: 0b0110_000_001_111111,
					0x4000: 0x1234,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 0x1234, 1: 0x4001},
			},
		},
		{
			Name: "LDR Positive Offset",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{2: 0x4000},
				Memory: map[Address]uint16{
					0x3000: 0b0110_000_010_000011,
					0x4003: 0x8000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_NEG,
				Registers: [8]uint16{0: 0x8000, 2: 0x4000},
			},
		},
	})
}

// ST   |0011    |SR   |PCoffset9         | Store
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestStore(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "ST",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Registers: [8]uint16{0: 0x0BAD},
				Memory: map[Address]uint16{
					0x3000: 0b0011_000_000000100,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x0BAD},
				Memory: map[Address]uint16{
					0x3005: 0x0BAD,
				},
			},
		},
	})
}

// STI  |1011    |SR   |PCoffset9         | Store indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestStoreIndirect(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "STI",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{2: 0xBEEF},
				Memory: map[Address]uint16{
					0x3000: 0b1011_010_000000001,
					0x3002: 0x5000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{2: 0xBEEF},
				Memory: map[Address]uint16{
					0x5000: 0xBEEF,
				},
			},
		},
	})
}

// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestStoreRegister(t *testing.T) {
	testSuccess(t, []testCase{
		{
			// Same offset bits as "LDR Negative Offset", zero-extended
			Name: "STR Unsigned Offset",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x00AA, 1: 0x4001},
				Memory: map[Address]uint16{
					0x3000: 0b0111_000_001_111111,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x00AA, 1: 0x4001},
				Memory: map[Address]uint16{
					0x4040: 0x00AA,
				},
			},
		},
		{
			Name: "STR Wraparound",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x0001, 1: 0xFFFF},
				Memory: map[Address]uint16{
					0x3000: 0b0111_000_001_000010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x0001, 1: 0xFFFF},
				Memory: map[Address]uint16{
					0x0001: 0x0001,
				},
			},
		},
	})
}

// JSR  |0100    |1|PCoffset11            | Jump to subroutine
// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestJumpSubroutine(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "JSR Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b0100_1_11111110000,
				},
			},
			Output: testMachineState{
				Program:   0x2FF1,
				Registers: [8]uint16{7: 0x3001},
			},
		},
		{
			// The mode bit sits above PCoffset11 and is read as its sign
			Name: "JSR Mode Bit Sign",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b0100_1_00000010000,
				},
			},
			Output: testMachineState{
				Program:   0x2C11,
				Registers: [8]uint16{7: 0x3001},
			},
		},
		{
			Name: "JSRR",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{3: 0x5000},
				Memory: map[Address]uint16{
					0x3000: 0b0100_0_00_011_000000,
				},
			},
			Output: testMachineState{
				Program:   0x5000,
				Registers: [8]uint16{3: 0x5000, 7: 0x3001},
			},
		},
		{
			Name: "JSRR R7",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{7: 0x5000},
				Memory: map[Address]uint16{
					0x3000: 0b0100_0_00_111_000000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{7: 0x3001},
			},
		},
	})
}

// JMP  |1100    |000  |BaseR|000000      | Jump
// RET  |1100    |000  |111  |000000      | Return
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestJump(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "JMP",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{2: 0x4000},
				Memory: map[Address]uint16{
					0x3000: 0b1100_000_010_000000,
				},
			},
			Output: testMachineState{
				Program:   0x4000,
				Registers: [8]uint16{2: 0x4000},
			},
		},
		{
			Name: "RET",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{7: 0x3100},
				Memory: map[Address]uint16{
					0x3000: 0b1100_000_111_000000,
				},
			},
			Output: testMachineState{
				Program:   0x3100,
				Registers: [8]uint16{7: 0x3100},
			},
		},
	})
}

// LEA  |1110    |DR   |PCoffset9         | Load effective address
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestLoadEffectiveAddress(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "LEA Forwards",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Memory: map[Address]uint16{
					0x3000: 0b1110_000_000000100,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{0: 0x3005},
			},
		},
		{
			Name: "LEA Backwards",
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b1110_001_111111101,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Condition: COND_POS,
				Registers: [8]uint16{1: 0x2FFE},
			},
		},
	})
}

// RTI  |1000    |000000000000            | Return from interrupt
// RES  |1101    |                        | Reserved (illegal)
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestUnsupported(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name: "RTI",
			Err:  ErrUnsupportedOperation,
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
				Memory: map[Address]uint16{
					0x3000: 0b1000_000000000000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
			},
		},
		{
			Name: "RES",
			Err:  ErrReservedOpcode,
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
				Memory: map[Address]uint16{
					0x3000: 0b1101_000000000000,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
			},
		},
	})
}

// TRAP |1111    |0000   |trapvect8       | System call
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func TestTrap(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:     "TRAP GETC",
			Keyboard: "x",
			Input: testMachineState{
				Program:   0x3000,
				Condition: COND_NEG,
				Memory: map[Address]uint16{
					0x3000: 0xF020,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 'x'},
			},
		},
		{
			Name: "TRAP GETC No Input",
			Err:  ErrDeviceIO,
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x1111},
				Memory: map[Address]uint16{
					0x3000: 0xF020,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x1111},
			},
		},
		{
			Name:    "TRAP OUT",
			Display: "A",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x4141},
				Memory: map[Address]uint16{
					0x3000: 0xF021,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x4141},
			},
		},
		{
			Name:    "TRAP PUTS",
			Display: "Hi",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x4000},
				Memory: map[Address]uint16{
					0x3000: 0xF022,
					0x4000: 'H',
					0x4001: 'i',
					0x4003: 'X',
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x4000},
			},
		},
		{
			Name:    "TRAP PUTS Wraparound",
			Display: "AB",
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0xFFFF},
				Memory: map[Address]uint16{
					0x3000: 0xF022,
					0xFFFF: 'A',
					0x0000: 'B',
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0xFFFF},
			},
		},
		{
			Name:     "TRAP IN",
			Keyboard: "q",
			Display:  PROMPT_IN,
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0xF023,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 'q'},
			},
		},
		{
			Name:    "TRAP HALT",
			Display: NOTICE_HALT,
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0xF025,
				},
			},
			Output: testMachineState{
				Program: 0x3001,
				Halted:  true,
			},
		},
		{
			Name:    "TRAP HALT Then Step",
			Steps:   2,
			Display: NOTICE_HALT,
			Err:     ErrCpuNotRunning,
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 5, 2: 3},
				Memory: map[Address]uint16{
					0x3000: 0xF025,
					0x3001: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Halted:    true,
				Registers: [8]uint16{1: 5, 2: 3},
			},
		},
		{
			Name: "TRAP Unsupported",
			Err:  ErrUnsupportedTrapCode(0x99),
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
				Memory: map[Address]uint16{
					0x3000: 0xF099,
				},
			},
			Output: testMachineState{
				Program:   0x3001,
				Registers: [8]uint16{0: 0x1111, 7: 0x7777},
			},
		},
	})
}

func TestPrograms(t *testing.T) {
	testSuccess(t, []testCase{
		{
			Name:    "Hello",
			Steps:   3,
			Display: "Hi" + NOTICE_HALT,
			Input: testMachineState{
				Program: 0x3000,
				Memory: map[Address]uint16{
					0x3000: 0b1110_000_000000010, // LEA R0, msg
					0x3001: 0xF022,               // PUTS
					0x3002: 0xF025,               // HALT
					0x3003: 'H',
					0x3004: 'i',
				},
			},
			Output: testMachineState{
				Program:   0x3003,
				Condition: COND_POS,
				Halted:    true,
				Registers: [8]uint16{0: 0x3003},
			},
		},
		{
			Name:    "Countdown",
			Steps:   7,
			Display: NOTICE_HALT,
			Input: testMachineState{
				Program:   0x3000,
				Registers: [8]uint16{1: 3},
				Memory: map[Address]uint16{
					0x3000: 0b0001_001_001_1_11111, // ADD R1, R1, #-1
					0x3001: 0b0000_001_111111110,   // BRp #-2
					0x3002: 0xF025,                 // HALT
				},
			},
			Output: testMachineState{
				Program:   0x3003,
				Condition: COND_ZERO,
				Halted:    true,
			},
		},
		{
			Name: "PC Wraparound",
			Input: testMachineState{
				Program:   0xFFFF,
				Registers: [8]uint16{1: 5, 2: 3},
				Memory: map[Address]uint16{
					0xFFFF: 0b0001_000_001_000_010,
				},
			},
			Output: testMachineState{
				Program:   0x0000,
				Condition: COND_POS,
				Registers: [8]uint16{0: 8, 1: 5, 2: 3},
			},
		},
	})
}

func TestUnsupportedTrapCodeExact(t *testing.T) {
	mc := New()
	mc.Load(0x3000, []Instruction{0xF099})

	err := mc.Step()

	assert.Equal(t, ErrUnsupportedTrapCode(0x99), err)
	assert.ErrorIs(t, err, ErrUnsupportedTrapCode(0x20))
	assert.NotErrorIs(t, err, ErrReservedOpcode)
}
