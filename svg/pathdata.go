// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"math"

	"github.com/gogpu/svgmesh/scene"
)

// argCount is the number of arguments per command.
var argCount = [256]int{
	'M': 2, 'm': 2,
	'L': 2, 'l': 2,
	'H': 1, 'h': 1,
	'V': 1, 'v': 1,
	'C': 6, 'c': 6,
	'S': 4, 's': 4,
	'Q': 4, 'q': 4,
	'T': 2, 't': 2,
	'A': 7, 'a': 7,
	'Z': 0, 'z': 0,
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

// parsePathData appends the outline described by d to p. Quadratic curves
// and arcs become cubics. A command after Z that is not a move starts a new
// sub-path at the closed sub-path's start.
func parsePathData(d []byte, p *scene.Path) error {
	s := scanner{b: d}
	s.skipSeparators()
	if s.done() {
		return nil
	}
	if c := s.peek(); c != 'M' && c != 'm' {
		return errorAt(s.i, "path data must start with a moveto, found %q", c)
	}

	var (
		args    [7]float64
		prevCmd byte
		cmd     byte
		// Reflection points for S and T.
		lastCubic, lastQuad scene.Point
		closed              bool
	)
	for {
		s.skipSeparators()
		if s.done() {
			return nil
		}

		cmdStart := s.i
		if isCommand(s.peek()) {
			cmd = s.peek()
			s.i++
			s.skipSeparators()
		} else if !s.atNumber() || prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return errorAt(s.i, "unexpected %q in path data", s.peek())
		}

		for j := range argCount[cmd] {
			if (cmd == 'A' || cmd == 'a') && (j == 3 || j == 4) {
				f, ok := s.flag()
				if !ok {
					return errorAt(s.i, "arc flag must be 0 or 1 in command %q", cmd)
				}
				args[j] = 0
				if f {
					args[j] = 1
				}
				continue
			}
			f, ok := s.number()
			if !ok {
				return errorAt(s.i, "command %q expects %d numbers", cmd, argCount[cmd])
			}
			args[j] = f
		}

		cur := p.Current()
		if closed && cmd != 'M' && cmd != 'm' {
			p.MoveTo(cur.X, cur.Y)
		}
		closed = false

		rel := cmd >= 'a'
		abs := func(x, y float64) scene.Point {
			if rel {
				return scene.Pt(cur.X+x, cur.Y+y)
			}
			return scene.Pt(x, y)
		}

		switch cmd {
		case 'M', 'm':
			pt := abs(args[0], args[1])
			p.MoveTo(pt.X, pt.Y)
		case 'L', 'l':
			pt := abs(args[0], args[1])
			p.LineTo(pt.X, pt.Y)
		case 'H', 'h':
			x := args[0]
			if rel {
				x += cur.X
			}
			p.LineTo(x, cur.Y)
		case 'V', 'v':
			y := args[0]
			if rel {
				y += cur.Y
			}
			p.LineTo(cur.X, y)
		case 'C', 'c':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			pt := abs(args[4], args[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			lastCubic = c2
		case 'S', 's':
			c1 := cur
			if isAny(prevCmd, 'C', 'c', 'S', 's') {
				c1 = scene.Pt(2*cur.X-lastCubic.X, 2*cur.Y-lastCubic.Y)
			}
			c2 := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
			lastCubic = c2
		case 'Q', 'q':
			c := abs(args[0], args[1])
			pt := abs(args[2], args[3])
			p.QuadTo(c.X, c.Y, pt.X, pt.Y)
			lastQuad = c
		case 'T', 't':
			c := cur
			if isAny(prevCmd, 'Q', 'q', 'T', 't') {
				c = scene.Pt(2*cur.X-lastQuad.X, 2*cur.Y-lastQuad.Y)
			}
			pt := abs(args[0], args[1])
			p.QuadTo(c.X, c.Y, pt.X, pt.Y)
			lastQuad = c
		case 'A', 'a':
			pt := abs(args[5], args[6])
			p.ArcTo(args[0], args[1], args[2]*math.Pi/180, args[3] == 1, args[4] == 1, pt.X, pt.Y)
		case 'Z', 'z':
			p.Close()
			closed = true
		default:
			return errorAt(cmdStart, "unknown command %q", cmd)
		}

		prevCmd = cmd
		// Coordinates after a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func isAny(c byte, set ...byte) bool {
	for _, s := range set {
		if c == s {
			return true
		}
	}
	return false
}
