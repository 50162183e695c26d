// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp960x

import (
	"fmt"

	"github.com/GermanBionicSystems/thermodevices/common"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the address with ADDR tied for 0x61.
	//
	// TODO: confirm the ADDR resistor divider on the control board schematic.
	DefaultAddress uint16 = 0x61

	// The ADDR pin selects one of eight addresses.
	minAddress uint16 = 0x60
	maxAddress uint16 = 0x67
)

// Register pointers.
const (
	regHotJunction   byte = 0x00
	regDeltaJunction byte = 0x01 // not read by the driver
	regColdJunction  byte = 0x02
	regRawADC        byte = 0x03 // not read by the driver
	regStatus        byte = 0x04
	regThermocouple  byte = 0x05
	regDeviceConfig  byte = 0x06
	regDeviceID      byte = 0x20
)

const (
	// Resolution of the hot and cold junction registers.
	Resolution = common.Q4Resolution

	// Limits of a plausible cold junction reading, inclusive.
	MinColdJunction = physic.ZeroCelsius - 40*physic.Kelvin
	MaxColdJunction = physic.ZeroCelsius + 85*physic.Kelvin
)

// Variant is the first byte of the device ID register.
type Variant byte

const (
	MCP9600 Variant = 0x40
	MCP9601 Variant = 0x41
)

// Supported reports whether v is a chip handled by this package.
func (v Variant) Supported() bool {
	return v == MCP9600 || v == MCP9601
}

func (v Variant) String() string {
	switch v {
	case MCP9600:
		return "MCP9600"
	case MCP9601:
		return "MCP9601"
	}
	return fmt.Sprintf("Variant(0x%02x)", byte(v))
}

// Status is the content of the status register.
type Status byte

// StatusWiringFault is set when the thermocouple is open or shorted.
const StatusWiringFault Status = 0x30

// WiringFault reports whether the status register flags an open or short
// circuit on the thermocouple leads. Other bits are ignored.
func (s Status) WiringFault() bool {
	return s&StatusWiringFault != 0
}

// Thermocouple selects the thermocouple type. Its value is the thermocouple
// configuration register with a filter coefficient of 0.
type Thermocouple byte

const (
	TypeK Thermocouple = 0x00
	TypeJ Thermocouple = 0x10
	TypeT Thermocouple = 0x20
	TypeN Thermocouple = 0x30
	TypeS Thermocouple = 0x40
	TypeE Thermocouple = 0x50
	TypeB Thermocouple = 0x60
	TypeR Thermocouple = 0x70
)

const thermocoupleNames = "KJTNSEBR"

// Valid reports whether t is one of the Type constants.
func (t Thermocouple) Valid() bool {
	return t&0x0f == 0 && t <= TypeR
}

func (t Thermocouple) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Thermocouple(0x%02x)", byte(t))
	}
	return thermocoupleNames[t>>4 : t>>4+1]
}

// ParseThermocouple returns the type named by its letter, as printed on the
// thermocouple connector. Only upper case letters are accepted.
func ParseThermocouple(r rune) (Thermocouple, error) {
	for i, n := range thermocoupleNames {
		if n == r {
			return Thermocouple(i << 4), nil
		}
	}
	return 0, &ConfigFaultError{Letter: r}
}
