// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp960xtest implements a fake MCP960x register file, for testing
// code using package mcp960x without hardware.
package mcp960xtest

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/thermodevices/common"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Sim is an i2c.Bus with a single MCP960x on it.
//
// A one byte write sets the register pointer, a longer write sets the pointer
// and stores the following byte. Reads return the register selected by the
// last write. Only the thermocouple and device configuration registers are
// writable.
type Sim struct {
	sync.Mutex
	Addr uint16

	ID           byte
	Revision     byte
	Status       byte
	HotJunction  physic.Temperature
	ColdJunction physic.Temperature
	Thermocouple byte
	DeviceConfig byte

	// Writes counts the register writes, excluding pointer selection.
	Writes int

	ptr byte
}

// New returns a healthy MCP9601 at addr with both junctions at 25°C.
func New(addr uint16) *Sim {
	return &Sim{
		Addr:         addr,
		ID:           0x41,
		Revision:     0x10,
		HotJunction:  physic.ZeroCelsius + 25*physic.Kelvin,
		ColdJunction: physic.ZeroCelsius + 25*physic.Kelvin,
	}
}

func (s *Sim) String() string {
	return "mcp960xsim"
}

// SetSpeed implements i2c.Bus.
func (s *Sim) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus.
func (s *Sim) Tx(addr uint16, w, r []byte) error {
	s.Lock()
	defer s.Unlock()
	if addr != s.Addr {
		return fmt.Errorf("mcp960xtest: no ack from address 0x%02x", addr)
	}
	if len(w) != 0 {
		s.ptr = w[0]
		if len(w) > 2 {
			return errors.New("mcp960xtest: write longer than one register")
		}
		if len(w) == 2 {
			if err := s.write(w[1]); err != nil {
				return err
			}
		}
	}
	if len(r) != 0 {
		data, err := s.read()
		if err != nil {
			return err
		}
		if len(r) > len(data) {
			return fmt.Errorf("mcp960xtest: read of %d bytes past register 0x%02x", len(r), s.ptr)
		}
		copy(r, data)
	}
	return nil
}

func (s *Sim) read() ([]byte, error) {
	switch s.ptr {
	case 0x00:
		b := common.TemperatureToQ4(s.HotJunction)
		return b[:], nil
	case 0x01:
		b := common.TemperatureToQ4(s.HotJunction - s.ColdJunction + physic.ZeroCelsius)
		return b[:], nil
	case 0x02:
		b := common.TemperatureToQ4(s.ColdJunction)
		return b[:], nil
	case 0x03:
		return make([]byte, 3), nil
	case 0x04:
		return []byte{s.Status}, nil
	case 0x05:
		return []byte{s.Thermocouple}, nil
	case 0x06:
		return []byte{s.DeviceConfig}, nil
	case 0x20:
		return []byte{s.ID, s.Revision}, nil
	}
	return nil, fmt.Errorf("mcp960xtest: no register 0x%02x", s.ptr)
}

func (s *Sim) write(v byte) error {
	switch s.ptr {
	case 0x05:
		s.Thermocouple = v
	case 0x06:
		s.DeviceConfig = v
	default:
		return fmt.Errorf("mcp960xtest: register 0x%02x is read only", s.ptr)
	}
	s.Writes++
	return nil
}

var _ i2c.Bus = &Sim{}
