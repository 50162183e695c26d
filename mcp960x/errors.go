// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp960x

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// ErrReleased is wrapped in a BusError when a Dev is used after Release.
var ErrReleased = errors.New("device released")

// BusError wraps an error returned by the I²C bus. Err is the bus error
// unmodified.
type BusError struct {
	Op  string
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("mcp960x: %s register 0x%02x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// WrongSensorError is returned when the device ID is not a MCP9600 or
// MCP9601. The device is absent, misaddressed or a different chip.
type WrongSensorError struct {
	ID Variant
}

func (e *WrongSensorError) Error() string {
	return fmt.Sprintf("mcp960x: unexpected device ID 0x%02x", byte(e.ID))
}

// WiringFaultError is returned when the thermocouple is open or shorted.
type WiringFaultError struct {
	Status Status
}

func (e *WiringFaultError) Error() string {
	return fmt.Sprintf("mcp960x: thermocouple open or shorted (status 0x%02x)", byte(e.Status))
}

// ColdJunctionFaultError is returned when the cold junction reads outside
// [MinColdJunction, MaxColdJunction].
type ColdJunctionFaultError struct {
	Temperature physic.Temperature
}

func (e *ColdJunctionFaultError) Error() string {
	return fmt.Sprintf("mcp960x: cold junction %s out of range [%s, %s]", e.Temperature, MinColdJunction, MaxColdJunction)
}

// ConfigFaultError is returned for an unknown thermocouple type. Nothing was
// written to the device.
type ConfigFaultError struct {
	// Type is set when SetThermocouple rejected the value.
	Type Thermocouple
	// Letter is set when ParseThermocouple rejected the letter.
	Letter rune
}

func (e *ConfigFaultError) Error() string {
	if e.Letter != 0 {
		return fmt.Sprintf("mcp960x: unknown thermocouple type %q", e.Letter)
	}
	return fmt.Sprintf("mcp960x: invalid thermocouple type 0x%02x", byte(e.Type))
}
