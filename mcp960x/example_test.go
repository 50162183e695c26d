// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp960x_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/thermodevices/mcp960x"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	d, err := mcp960x.NewI2C(b, mcp960x.DefaultAddress)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.SelfCheck(); err != nil {
		log.Fatal(err)
	}
	if err := d.SetThermocouple(mcp960x.TypeK); err != nil {
		log.Fatal(err)
	}
	t, err := d.HotJunction()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Thermocouple: %s\n", t)
}
