// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp960xtest_test

import (
	"errors"
	"testing"

	"github.com/GermanBionicSystems/thermodevices/mcp960x"
	"github.com/GermanBionicSystems/thermodevices/mcp960x/mcp960xtest"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/physic"
)

func TestSimHealthy(t *testing.T) {
	sim := mcp960xtest.New(mcp960x.DefaultAddress)
	sim.HotJunction = physic.ZeroCelsius + 215*physic.Kelvin
	dev, err := mcp960x.NewI2C(sim, mcp960x.DefaultAddress)
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.SelfCheck(); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetThermocouple(mcp960x.TypeR); err != nil {
		t.Fatal(err)
	}
	if sim.Thermocouple != 0x70 || sim.DeviceConfig != 0 || sim.Writes != 2 {
		t.Errorf("unexpected configuration tc=0x%02x cfg=0x%02x writes=%d", sim.Thermocouple, sim.DeviceConfig, sim.Writes)
	}
	r, err := dev.Read()
	if err != nil {
		t.Fatal(err)
	}
	expected := mcp960x.Reading{Remote: sim.HotJunction, Local: sim.ColdJunction}
	if diff := cmp.Diff(expected, r); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestSimFaults(t *testing.T) {
	sim := mcp960xtest.New(mcp960x.DefaultAddress)
	dev, err := mcp960x.NewI2C(sim, mcp960x.DefaultAddress)
	if err != nil {
		t.Fatal(err)
	}

	sim.ColdJunction = physic.ZeroCelsius + 100*physic.Kelvin
	var cj *mcp960x.ColdJunctionFaultError
	if err := dev.SelfCheck(); !errors.As(err, &cj) {
		t.Errorf("expected a cold junction fault, got %v", err)
	}

	sim.Status = 0x10
	var wf *mcp960x.WiringFaultError
	if err := dev.SelfCheck(); !errors.As(err, &wf) {
		t.Errorf("expected a wiring fault, got %v", err)
	}

	sim.ID = 0x5a
	var ws *mcp960x.WrongSensorError
	if err := dev.SelfCheck(); !errors.As(err, &ws) || ws.ID != 0x5a {
		t.Errorf("expected a wrong sensor, got %v", err)
	}
}

func TestSimWrongAddress(t *testing.T) {
	sim := mcp960xtest.New(0x67)
	dev, err := mcp960x.NewI2C(sim, mcp960x.DefaultAddress)
	if err != nil {
		t.Fatal(err)
	}
	var be *mcp960x.BusError
	if err := dev.SelfCheck(); !errors.As(err, &be) {
		t.Fatalf("expected a bus error, got %v", err)
	}
	if err := dev.SetThermocouple(mcp960x.TypeK); !errors.As(err, &be) {
		t.Fatalf("expected a bus error, got %v", err)
	}
	if sim.Writes != 0 {
		t.Errorf("%d writes reached the device", sim.Writes)
	}
}

func TestSimReadOnly(t *testing.T) {
	sim := mcp960xtest.New(0x60)
	if err := sim.Tx(0x60, []byte{0x00, 0x12}, nil); err == nil {
		t.Error("expected the hot junction register to be read only")
	}
	if err := sim.Tx(0x60, []byte{0x04}, make([]byte, 2)); err == nil {
		t.Error("expected a read past the status register to fail")
	}
	if err := sim.Tx(0x60, []byte{0x42}, make([]byte, 1)); err == nil {
		t.Error("expected an unknown register to fail")
	}
	id := make([]byte, 2)
	if err := sim.Tx(0x60, []byte{0x20}, id); err != nil {
		t.Fatal(err)
	}
	if id[0] != 0x41 || id[1] != 0x10 {
		t.Errorf("unexpected device ID %#v", id)
	}
}
