// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp960x controls a Microchip MCP9600 or MCP9601 thermocouple EMF to
// temperature converter over I²C.
//
// The chip measures the thermocouple (hot junction) and its own die
// temperature (cold junction) and reports both as 16 bit registers with a
// resolution of 0.0625°C.
//
// Call SelfCheck before trusting readings. It verifies the device ID, checks
// the status register for an open or shorted thermocouple and verifies the
// cold junction is within -40°C to 85°C. HotJunction never validates its
// result.
//
// The driver does not poll, handle the ALERT pins or retry failed
// transactions.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/MCP960X-Data-Sheet-20005426.pdf
package mcp960x
