// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for thermocouple converter drivers.
//
// See package mcp960x for the Microchip MCP9600 and MCP9601.
package devices
