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

package debugger

import (
	"fmt"

	"github.com/lassandro/lc3sim/pkg/machine"
)

func (dbg *Debugger) AddBreakpoint(addr machine.Address) bool {
	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.Addr == addr {
			return false
		}
	}

	dbg.Breakpoints = append(dbg.Breakpoints, Breakpoint{addr})
	return true
}

func (dbg *Debugger) RemoveBreakpoint(i int) error {
	if i < 0 || i >= len(dbg.Breakpoints) {
		return fmt.Errorf("%w: #%d", ErrNoBreakpoint, i)
	}

	dbg.Breakpoints[i] = dbg.Breakpoints[len(dbg.Breakpoints)-1]
	dbg.Breakpoints = dbg.Breakpoints[:len(dbg.Breakpoints)-1]
	return nil
}

func (dbg *Debugger) ClearBreakpoints() {
	dbg.Breakpoints = nil
}

func (dbg *Debugger) AddWatchpoint(addr machine.Address, wtype WatchpointType) bool {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Addr == addr && watchpoint.Type == wtype {
			return false
		}
	}

	dbg.Watchpoints = append(dbg.Watchpoints, Watchpoint{addr, wtype})
	return true
}

func (dbg *Debugger) RemoveWatchpoint(i int) error {
	if i < 0 || i >= len(dbg.Watchpoints) {
		return fmt.Errorf("%w: #%d", ErrNoWatchpoint, i)
	}

	dbg.Watchpoints[i] = dbg.Watchpoints[len(dbg.Watchpoints)-1]
	dbg.Watchpoints = dbg.Watchpoints[:len(dbg.Watchpoints)-1]
	return nil
}

func (dbg *Debugger) ClearWatchpoints() {
	dbg.Watchpoints = nil
}

func (dbg *Debugger) Read(addr machine.Address) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.hit = &Stop{Reason: StopWatchpoint, Addr: addr}
			break
		}
	}
}

func (dbg *Debugger) Write(addr machine.Address) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.hit = &Stop{Reason: StopWatchpoint, Addr: addr}
			break
		}
	}
}

func (dbg *Debugger) breakpointAt(addr machine.Address) bool {
	for _, breakpoint := range dbg.Breakpoints {
		if breakpoint.Addr == addr {
			return true
		}
	}

	return false
}

// Run steps mc up to cycles times. It returns early when the machine halts,
// fails, touches a watched address, or reaches a breakpoint. The first step
// always executes, so a stopped program can be resumed from a breakpoint.
func (dbg *Debugger) Run(mc *machine.Machine, cycles uint) (Stop, error) {
	mc.Watcher = dbg
	dbg.hit = nil

	for i := uint(0); i < cycles; i++ {
		if err := mc.Step(); err != nil {
			return Stop{StopError, mc.ProgramCounter(), i}, err
		}

		if !mc.Running() {
			return Stop{StopHalted, mc.ProgramCounter(), i + 1}, nil
		}

		if dbg.hit != nil {
			stop := *dbg.hit
			stop.Cycles = i + 1
			dbg.hit = nil
			return stop, nil
		}

		if dbg.breakpointAt(mc.ProgramCounter()) {
			return Stop{StopBreakpoint, mc.ProgramCounter(), i + 1}, nil
		}
	}

	return Stop{StopCycles, mc.ProgramCounter(), cycles}, nil
}
