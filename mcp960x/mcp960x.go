// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp960x

import (
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/thermodevices/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Reading is one hot and cold junction measurement.
type Reading struct {
	// Remote is the thermocouple tip (hot junction).
	Remote physic.Temperature
	// Local is the chip itself (cold junction).
	Local physic.Temperature
}

func (r Reading) String() string {
	return fmt.Sprintf("remote=%s local=%s", r.Remote, r.Local)
}

// Dev is a handle to a MCP9600 or MCP9601.
type Dev struct {
	mu sync.Mutex
	d  *i2c.Dev
}

// NewI2C returns a Dev using the bus b at address addr, usually
// DefaultAddress. No transaction is done; call SelfCheck to verify the device.
func NewI2C(b i2c.Bus, addr uint16) (*Dev, error) {
	if addr < minAddress || addr > maxAddress {
		return nil, fmt.Errorf("mcp960x: invalid address 0x%02x, must be between 0x%02x and 0x%02x", addr, minAddress, maxAddress)
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// Release returns the bus passed to NewI2C. The Dev must not be used
// afterward; further calls return a BusError wrapping ErrReleased.
func (d *Dev) Release() i2c.Bus {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.d == nil {
		return nil
	}
	b := d.d.Bus
	d.d = nil
	return b
}

func (d *Dev) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.d == nil {
		return "mcp960x{released}"
	}
	return fmt.Sprintf("mcp960x{%s}", d.d)
}

// Halt implements conn.Resource. The driver starts nothing on the device so
// there is nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

// SelfCheck verifies the device ID, the thermocouple wiring and the cold
// junction temperature, in that order, and stops at the first failure.
//
// It returns a *WrongSensorError, *WiringFaultError, *ColdJunctionFaultError
// or *BusError.
func (d *Dev) SelfCheck() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b [2]byte
	if err := d.readReg(regDeviceID, b[:1]); err != nil {
		return err
	}
	if id := Variant(b[0]); !id.Supported() {
		return &WrongSensorError{ID: id}
	}

	if err := d.readReg(regStatus, b[:1]); err != nil {
		return err
	}
	if s := Status(b[0]); s.WiringFault() {
		return &WiringFaultError{Status: s}
	}

	if err := d.readReg(regColdJunction, b[:]); err != nil {
		return err
	}
	if t := common.Q4ToTemperature(b[:]); t > MaxColdJunction || t < MinColdJunction {
		return &ColdJunctionFaultError{Temperature: t}
	}
	return nil
}

// HotJunction returns the thermocouple temperature as reported by the device,
// without any plausibility check.
func (d *Dev) HotJunction() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTemperature(regHotJunction)
}

// ColdJunction returns the temperature of the chip itself, without any
// plausibility check.
func (d *Dev) ColdJunction() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTemperature(regColdJunction)
}

// Read returns both junction temperatures.
func (d *Dev) Read() (Reading, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var r Reading
	var err error
	if r.Remote, err = d.readTemperature(regHotJunction); err != nil {
		return Reading{}, err
	}
	if r.Local, err = d.readTemperature(regColdJunction); err != nil {
		return Reading{}, err
	}
	return r, nil
}

// Sense stores the hot junction temperature in e.Temperature. Pressure and
// humidity are left untouched.
func (d *Dev) Sense(e *physic.Env) error {
	t, err := d.HotJunction()
	if err != nil {
		return err
	}
	e.Temperature = t
	return nil
}

// Precision returns the register resolution. The thermocouple accuracy is
// far worse and depends on the type.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = Resolution
	e.Pressure = 0
	e.Humidity = 0
}

// DeviceID returns the device ID without validating it.
func (d *Dev) DeviceID() (Variant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b [1]byte
	if err := d.readReg(regDeviceID, b[:]); err != nil {
		return 0, err
	}
	return Variant(b[0]), nil
}

// Status returns the status register.
func (d *Dev) Status() (Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b [1]byte
	if err := d.readReg(regStatus, b[:]); err != nil {
		return 0, err
	}
	return Status(b[0]), nil
}

// SetThermocouple configures the thermocouple type with no filtering and
// resets the device configuration to its defaults. An invalid t returns a
// *ConfigFaultError before anything is written.
func (d *Dev) SetThermocouple(t Thermocouple) error {
	if !t.Valid() {
		return &ConfigFaultError{Type: t}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeReg(regThermocouple, byte(t)); err != nil {
		return err
	}
	return d.writeReg(regDeviceConfig, 0)
}

func (d *Dev) readTemperature(reg byte) (physic.Temperature, error) {
	var b [2]byte
	if err := d.readReg(reg, b[:]); err != nil {
		return 0, err
	}
	return common.Q4ToTemperature(b[:]), nil
}

// readReg sets the register pointer then reads len(r) bytes, as two
// transactions.
func (d *Dev) readReg(reg byte, r []byte) error {
	if d.d == nil {
		return &BusError{Op: "read", Reg: reg, Err: ErrReleased}
	}
	if err := d.d.Tx([]byte{reg}, nil); err != nil {
		return &BusError{Op: "select", Reg: reg, Err: err}
	}
	if err := d.d.Tx(nil, r); err != nil {
		return &BusError{Op: "read", Reg: reg, Err: err}
	}
	return nil
}

func (d *Dev) writeReg(reg, v byte) error {
	if d.d == nil {
		return &BusError{Op: "write", Reg: reg, Err: ErrReleased}
	}
	if err := d.d.Tx([]byte{reg, v}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

var _ conn.Resource = &Dev{}
