// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, decoding the signed fixed-point temperature registers found on
// Microchip and TI sensors.
package common

import "periph.io/x/conn/v3/physic"

// Q4Resolution is the value of one LSB of a register holding sixteenths of a
// degree Celsius.
const Q4Resolution physic.Temperature = 62_500 * physic.MicroKelvin

// Q4ToTemperature converts a big-endian two's complement 16 bit register
// holding sixteenths of a degree Celsius. Only the first two bytes are used.
//
// The conversion is exact: 0x0010 is 1°C and 0xfff0 is -1°C.
func Q4ToTemperature(b []byte) physic.Temperature {
	count := int16(uint16(b[0])<<8 | uint16(b[1]))
	return physic.ZeroCelsius + physic.Temperature(count)*Q4Resolution
}

// TemperatureToQ4 is the inverse of Q4ToTemperature. Values are truncated
// toward zero to the register resolution and clamped to the representable
// range.
func TemperatureToQ4(t physic.Temperature) [2]byte {
	c := (t - physic.ZeroCelsius) / Q4Resolution
	switch {
	case c > 32767:
		c = 32767
	case c < -32768:
		c = -32768
	}
	v := uint16(int16(c))
	return [2]byte{byte(v >> 8), byte(v)}
}
