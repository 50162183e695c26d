// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mcp960x checks a MCP9600/MCP9601 thermocouple converter, configures its
// thermocouple type and prints one reading.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/GermanBionicSystems/thermodevices/mcp960x"
	"github.com/GermanBionicSystems/thermodevices/mcp960x/mcp960xtest"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.String("a", fmt.Sprintf("0x%02x", mcp960x.DefaultAddress), "I²C address (0x60-0x67)")
	tcType := flag.String("t", "", "thermocouple type to configure: K, J, T, N, S, E, B or R")
	noCheck := flag.Bool("n", false, "skip the self check")
	noColor := flag.Bool("c", false, "never print in color")
	sim := flag.Bool("sim", false, "use a simulated device instead of hardware")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	a, err := strconv.ParseUint(*addr, 0, 16)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", *addr, err)
	}
	var tc mcp960x.Thermocouple
	if *tcType != "" {
		r, size := utf8.DecodeRuneInString(*tcType)
		if size != len(*tcType) {
			return fmt.Errorf("thermocouple type must be a single letter, got %q", *tcType)
		}
		if tc, err = mcp960x.ParseThermocouple(r); err != nil {
			return err
		}
	}

	var b i2c.Bus
	if *sim {
		b = mcp960xtest.New(uint16(a))
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		bc, err := i2creg.Open(*busName)
		if err != nil {
			return err
		}
		defer bc.Close()
		b = bc
	}

	d, err := mcp960x.NewI2C(b, uint16(a))
	if err != nil {
		return err
	}
	defer d.Release()
	log.Printf("using %s", d)

	if !*noCheck {
		if err := d.SelfCheck(); err != nil {
			return err
		}
		log.Printf("self check passed")
	}
	if *tcType != "" {
		if err := d.SetThermocouple(tc); err != nil {
			return err
		}
		log.Printf("configured type %s", tc)
	}

	r, err := d.Read()
	if err != nil {
		return err
	}
	g := &gauge{
		w:       colorable.NewColorableStdout(),
		palette: *ansi256.Default,
		width:   20,
		min:     physic.ZeroCelsius - 40*physic.Kelvin,
		max:     physic.ZeroCelsius + 400*physic.Kelvin,
		color:   !*noColor && isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err := g.print("hot junction ", r.Remote); err != nil {
		return err
	}
	return g.print("cold junction", r.Local)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp960x: %s.\n", err)
		os.Exit(1)
	}
}
