// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"periph.io/x/conn/v3/physic"
)

// gauge prints a bar of colored blocks in front of each reading, blue for
// cold and red for hot.
type gauge struct {
	w       io.Writer
	palette ansi256.Palette
	width   int
	min     physic.Temperature
	max     physic.Temperature
	color   bool

	buf bytes.Buffer
}

// tempColor maps t linearly from blue at g.min to red at g.max.
func (g *gauge) tempColor(t physic.Temperature) color.NRGBA {
	f := float64(t-g.min) / float64(g.max-g.min)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.NRGBA{R: uint8(255 * f), G: 0, B: uint8(255 * (1 - f)), A: 255}
}

// blocks returns how many of the width blocks t fills.
func (g *gauge) blocks(t physic.Temperature) int {
	n := int(int64(g.width) * int64(t-g.min) / int64(g.max-g.min))
	if n < 0 {
		return 0
	}
	if n > g.width {
		return g.width
	}
	return n
}

func (g *gauge) print(label string, t physic.Temperature) error {
	// This code is designed to minimize the amount of memory allocated per call.
	g.buf.Reset()
	if g.color {
		_, _ = g.buf.WriteString("\033[0m")
		b := g.palette.Block(g.tempColor(t))
		for i := 0; i < g.blocks(t); i++ {
			_, _ = io.WriteString(&g.buf, b)
		}
		_, _ = g.buf.WriteString("\033[0m ")
	}
	_, _ = g.buf.WriteString(label)
	_, _ = g.buf.WriteString(": ")
	_, _ = g.buf.WriteString(t.String())
	_ = g.buf.WriteByte('\n')
	_, err := g.buf.WriteTo(g.w)
	return err
}
