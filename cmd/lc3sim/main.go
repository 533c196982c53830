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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/lc3sim/pkg/console"
	"github.com/lassandro/lc3sim/pkg/machine"
	"github.com/lassandro/lc3sim/pkg/program"
	"github.com/lassandro/lc3sim/pkg/translate"
)

var helpvar bool
var runvar bool
var rawvar bool
var verbosevar bool
var cyclesvar uint

const usage = "lc3sim [-help] [-run] [-cycles N] [-v] [-raw] filename"

var f = translate.From

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&runvar, "run", false, "Runs the program without the console")
	flag.UintVar(&cyclesvar, "cycles", 0, "Stops -run after N cycles (0 runs until halt)")
	flag.BoolVar(&rawvar, "raw", false, "Puts the terminal in raw mode during -run")
	flag.BoolVar(&verbosevar, "v", false, "Logs every instruction cycle")
	flag.Parse()
}

func lc3sim() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	if len(args) != 1 {
		log.Println(usage)
		return 1
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if verbosevar {
		logrus.SetLevel(logrus.DebugLevel)
	}

	prog, err := program.Open(args[0])

	if err != nil {
		log.Println(err)
		return 1
	}

	keyboard := bufio.NewReader(os.Stdin)

	mc := machine.New()
	mc.Devices = &machine.DeviceHandler{
		Keyboard: keyboard,
		Display:  bufio.NewWriter(os.Stdout),
	}

	prog.LoadInto(mc)

	logrus.WithFields(logrus.Fields{
		"file":  args[0],
		"start": fmt.Sprintf("%#04x", uint16(prog.Start)),
		"words": len(prog.Words),
	}).Debug("Program loaded")

	if !runvar {
		fmt.Println(f("LC3 Simulator"))

		if err := console.New(mc, prog, keyboard, os.Stdout).Run(); err != nil {
			log.Println(err)
			return 1
		}

		return 0
	}

	if rawvar {
		if err := enterRawTerm(); err != nil {
			log.Println(err)
			return 1
		}

		defer exitRawTerm()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)

		go func() {
			<-c
			exitRawTerm()
			fmt.Println()
			os.Exit(130)
		}()
	}

	cycles := cyclesvar

	if cycles == 0 {
		cycles = math.MaxUint
	}

	if err := mc.Run(cycles); err != nil {
		log.Println(f("failed to run program: %v", err))
		return 1
	}

	return 0
}

func main() {
	os.Exit(lc3sim())
}
