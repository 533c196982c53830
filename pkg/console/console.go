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

// Package console is the interactive front end of the simulator.
//
// A blank line executes one instruction cycle and an integer executes that
// many. Every other line is a command, listed by h. Command errors are printed
// and the console keeps reading.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3sim/pkg/debugger"
	"github.com/lassandro/lc3sim/pkg/machine"
	"github.com/lassandro/lc3sim/pkg/program"
)

const prompt = "\033[1;30m(lc3)\033[0m "

const help = `Simulator commands:
  h or ?                      print this message
  q                           quit
  d                           dump the cpu info
  r                           show the registers
  m [address] [count]         show memory (default: PC, 1)
  g [address]                 move the PC to address and resume the cpu
  sm [address] [value]        set the value of a memory address
  sr [register] [value]       set the value of a register
  b [add|list|rm|clear]       manage breakpoints
  w [add|list|rm|clear]       manage watchpoints
  c                           run until halt, breakpoint or watchpoint
  reset                       reload the program
  <return>                    execute a single instruction cycle
  <integer>                   execute that many instruction cycles
Numbers: x3000 or 0x3000 (hex), #-5 or 12 (decimal), $(expr) (starlark,
with PC and R0-R7 defined)`

type Console struct {
	Machine  *machine.Machine
	Debugger *debugger.Debugger
	Program  *program.Program
	Input    *bufio.Reader
	Output   io.Writer
	Log      *logrus.Entry

	done bool
}

// New returns a console over mc. Input may be shared with the machine's
// keyboard, so GETC consumes the characters following a command line.
func New(mc *machine.Machine, prog *program.Program, input *bufio.Reader, output io.Writer) *Console {
	return &Console{
		Machine:  mc,
		Debugger: &debugger.Debugger{},
		Program:  prog,
		Input:    input,
		Output:   output,
		Log:      logrus.WithField("component", "console"),
	}
}

// Run reads and executes lines until q or the end of input.
func (con *Console) Run() error {
	fmt.Fprintln(con.Output, f("Beginning execution; type h for help"))

	for !con.done {
		fmt.Fprint(con.Output, prompt)

		line, err := con.Input.ReadString('\n')

		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if err != nil && len(line) == 0 {
			fmt.Fprintln(con.Output)
			return nil
		}

		if execErr := con.Execute(line); execErr != nil {
			con.Log.WithError(execErr).Debug("Console command failed")
			fmt.Fprintln(con.Output, f("error: %v", execErr))
		}

		if err != nil {
			return nil
		}
	}

	return nil
}

func (con *Console) Done() bool {
	return con.done
}

// Execute runs a single console line.
func (con *Console) Execute(line string) error {
	words := splitWords(line)

	if len(words) == 0 {
		return con.run(1)
	}

	if len(words) == 1 {
		if cycles, err := strconv.ParseUint(words[0], 10, 0); err == nil {
			return con.run(uint(cycles))
		}
	}

	cmd := words[0]
	args := words[1:]

	switch cmd {
	case "h", "?", "help":
		fmt.Fprintln(con.Output, help)

	case "q", "quit", "exit":
		con.done = true

	case "d", "dump":
		con.Dump()

	case "r", "reg", "registers":
		con.printRegisters()

	case "m", "mem", "memory":
		return con.memory(args)

	case "g", "go", "goto":
		arg, err := argument(args, 0)

		if err != nil {
			return err
		}

		addr, err := con.address(arg)

		if err != nil {
			return err
		}

		con.Machine.SetProgramCounter(addr)

	case "sm":
		return con.setMemory(args)

	case "sr":
		return con.setRegister(args)

	case "b", "bp", "break":
		return con.breakpoints(args)

	case "w", "wp", "watch":
		return con.watchpoints(args)

	case "c", "continue":
		return con.run(math.MaxUint)

	case "reset":
		con.Machine.Reset()

		if con.Program != nil {
			con.Program.LoadInto(con.Machine)
		}

		fmt.Fprintln(con.Output, f("Program reset"))

	case "clear":
		fmt.Fprint(con.Output, "\033[H\033[2J")

	default:
		return ErrUnknownCommand(cmd)
	}

	return nil
}

func (con *Console) run(cycles uint) error {
	stop, err := con.Debugger.Run(con.Machine, cycles)

	con.Log.WithFields(logrus.Fields{
		"reason": stop.Reason,
		"addr":   stop.Addr,
		"cycles": stop.Cycles,
	}).Debug("Console run")

	if err != nil {
		return err
	}

	switch stop.Reason {
	case debugger.StopBreakpoint:
		fmt.Fprintf(con.Output, "Breakpoint [x%04X]\n", uint16(stop.Addr))

	case debugger.StopWatchpoint:
		fmt.Fprintf(con.Output, "Watchpoint [x%04X]\n", uint16(stop.Addr))
		con.printMemory(stop.Addr, 1)
	}

	return nil
}

func (con *Console) memory(args []string) error {
	addr := con.Machine.ProgramCounter()
	count := 1

	if len(args) > 2 {
		return fmt.Errorf("%w: m [address] [count]", ErrBadArgument)
	}

	if len(args) > 0 {
		var err error

		if addr, err = con.address(args[0]); err != nil {
			return err
		}
	}

	if len(args) > 1 {
		var err error

		if count, err = con.number(args[1]); err != nil {
			return err
		}
	}

	con.printMemory(addr, count)

	return nil
}

func (con *Console) setMemory(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: sm [address] [value]", ErrMissingArgument)
	}

	addr, err := con.number(args[0])

	if err != nil {
		return err
	}

	value, err := con.word(args[1])

	if err != nil {
		return err
	}

	if err := con.Machine.SetMemory(addr, value); err != nil {
		return err
	}

	con.printMemory(machine.Address(addr), 1)

	return nil
}

func (con *Console) setRegister(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: sr [register] [value]", ErrMissingArgument)
	}

	arg := args[0]

	if len(arg) > 1 && (arg[0] == 'r' || arg[0] == 'R') {
		arg = arg[1:]
	}

	num, err := con.number(arg)

	if err != nil {
		return err
	}

	value, err := con.word(args[1])

	if err != nil {
		return err
	}

	return con.Machine.SetRegister(num, value)
}

func (con *Console) breakpoints(args []string) error {
	dbg := con.Debugger

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		arg, err := argument(args, 0)

		if err != nil {
			return err
		}

		addr, err := con.address(arg)

		if err != nil {
			return err
		}

		if dbg.AddBreakpoint(addr) {
			fmt.Fprintf(con.Output, "Breakpoint added [x%04X]\n", uint16(addr))
		}

	case "l", "ls", "list":
		fmtstring := indexFormat(len(dbg.Breakpoints), "#%%0%dd: x%%04X\n")

		for i, breakpoint := range dbg.Breakpoints {
			fmt.Fprintf(con.Output, fmtstring, i, uint16(breakpoint.Addr))
		}

	case "r", "rm", "remove":
		arg, err := argument(args, 0)

		if err != nil {
			return err
		}

		i, err := strconv.Atoi(arg)

		if err != nil {
			return fmt.Errorf("%w '%v': %w", ErrBadArgument, arg, err)
		}

		if err := dbg.RemoveBreakpoint(i); err != nil {
			return err
		}

		fmt.Fprintf(con.Output, "Breakpoint removed [%d]\n", i)

	case "clear":
		dbg.ClearBreakpoints()
		fmt.Fprintln(con.Output, f("Breakpoints reset"))

	default:
		return fmt.Errorf("break: %w", ErrUnknownCommand(cmd))
	}

	return nil
}

func (con *Console) watchpoints(args []string) error {
	dbg := con.Debugger

	if len(args) == 0 {
		args = append(args, "l")
	}

	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "a", "add":
		if len(args) != 2 {
			return fmt.Errorf(
				"%w: w add [address] [read|write|readwrite]", ErrMissingArgument,
			)
		}

		addr, err := con.address(args[0])

		if err != nil {
			return err
		}

		var wtype debugger.WatchpointType

		switch args[1] {
		case "r", "read":
			wtype = debugger.ReadWatch
		case "w", "write":
			wtype = debugger.WriteWatch
		case "rw", "readwrite":
			wtype = debugger.ReadWriteWatch
		default:
			return fmt.Errorf("%w '%v'", ErrBadArgument, args[1])
		}

		if dbg.AddWatchpoint(addr, wtype) {
			fmt.Fprintf(
				con.Output, "Watchpoint added [x%04X] (%s)\n", uint16(addr), wtype,
			)
		}

	case "l", "ls", "list":
		fmtstring := indexFormat(len(dbg.Watchpoints), "#%%0%dd: x%%04X %%s\n")

		for i, watchpoint := range dbg.Watchpoints {
			fmt.Fprintf(
				con.Output, fmtstring, i, uint16(watchpoint.Addr), watchpoint.Type,
			)
		}

	case "r", "rm", "remove":
		arg, err := argument(args, 0)

		if err != nil {
			return err
		}

		i, err := strconv.Atoi(arg)

		if err != nil {
			return fmt.Errorf("%w '%v': %w", ErrBadArgument, arg, err)
		}

		if err := dbg.RemoveWatchpoint(i); err != nil {
			return err
		}

		fmt.Fprintf(con.Output, "Watchpoint removed [%d]\n", i)

	case "clear":
		dbg.ClearWatchpoints()
		fmt.Fprintln(con.Output, f("Watchpoints reset"))

	default:
		return fmt.Errorf("watch: %w", ErrUnknownCommand(cmd))
	}

	return nil
}

// indexFormat pads list indices to the width of the largest one.
func indexFormat(count int, format string) string {
	digits := math.Floor(math.Log10(float64(count + 1)))
	return fmt.Sprintf(format, int64(digits)+1)
}
