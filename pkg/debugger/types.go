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
	"github.com/lassandro/lc3sim/pkg/machine"
)

type WatchpointType uint

//go:generate stringer -linecomment -type=WatchpointType
const (
	ReadWatch      WatchpointType = iota // read
	WriteWatch                           // write
	ReadWriteWatch                       // readwrite
)

type Watchpoint struct {
	Addr machine.Address
	Type WatchpointType
}

type Breakpoint struct {
	Addr machine.Address
}

// StopReason tells why Run returned control.
type StopReason uint

//go:generate stringer -linecomment -type=StopReason
const (
	StopCycles     StopReason = iota // cycles
	StopHalted                       // halted
	StopBreakpoint                   // breakpoint
	StopWatchpoint                   // watchpoint
	StopError                        // error
)

// Stop describes where Run returned control.
type Stop struct {
	Reason StopReason
	Addr   machine.Address
	Cycles uint
}

type Debugger struct {
	Breakpoints []Breakpoint
	Watchpoints []Watchpoint

	hit *Stop
}
