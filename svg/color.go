package svg

import (
	"bytes"
	"math"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"

	"github.com/gogpu/svgmesh/scene"
)

// parseColor parses a CSS color. alpha is the color's own opacity, 1 for
// colors without an alpha channel.
func parseColor(b []byte) (c scene.Color, alpha float64, ok bool) {
	b = parse.TrimWhitespace(b)
	if len(b) == 0 {
		return c, 0, false
	}
	if b[0] == '#' {
		return parseHexColor(b[1:])
	}
	lower := parse.ToLower(parse.Copy(b))
	if bytes.HasPrefix(lower, []byte("rgb")) {
		return parseRGBFunc(lower)
	}
	if string(lower) == "transparent" {
		return scene.Color{}, 0, true
	}
	if rgba, found := colornames.Map[string(lower)]; found {
		return scene.Color{R: rgba.R, G: rgba.G, B: rgba.B}, 1, true
	}
	return c, 0, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseHexColor(h []byte) (scene.Color, float64, bool) {
	digits := make([]uint8, len(h))
	for i, c := range h {
		d, ok := hexDigit(c)
		if !ok {
			return scene.Color{}, 0, false
		}
		digits[i] = d
	}
	var ch [4]uint8
	ch[3] = 255
	switch len(digits) {
	case 3, 4:
		for i, d := range digits {
			ch[i] = d<<4 | d
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			ch[i/2] = digits[i]<<4 | digits[i+1]
		}
	default:
		return scene.Color{}, 0, false
	}
	return scene.Color{R: ch[0], G: ch[1], B: ch[2]}, float64(ch[3]) / 255, true
}

// parseRGBFunc parses rgb(r, g, b) and rgba(r, g, b, a) with numbers or
// percentages. b is lower case.
func parseRGBFunc(b []byte) (scene.Color, float64, bool) {
	open := bytes.IndexByte(b, '(')
	if open < 0 || b[len(b)-1] != ')' {
		return scene.Color{}, 0, false
	}
	name := string(parse.TrimWhitespace(b[:open]))
	if name != "rgb" && name != "rgba" {
		return scene.Color{}, 0, false
	}
	args := b[open+1 : len(b)-1]

	var vals []float64
	var pct []bool
	s := scanner{b: args}
	s.skipSeparators()
	for !s.done() {
		if s.peek() == '/' {
			s.i++
			s.skipSeparators()
			continue
		}
		f, n := strconv.ParseFloat(args[s.i:])
		if n == 0 {
			return scene.Color{}, 0, false
		}
		s.i += n
		isPct := s.peek() == '%'
		if isPct {
			s.i++
		}
		vals = append(vals, f)
		pct = append(pct, isPct)
		s.skipSeparators()
	}
	if len(vals) != 3 && len(vals) != 4 {
		return scene.Color{}, 0, false
	}

	var ch [3]uint8
	for i := range 3 {
		v := vals[i]
		if pct[i] {
			v = v * 255 / 100
		}
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	alpha := 1.0
	if len(vals) == 4 {
		alpha = vals[3]
		if pct[3] {
			alpha /= 100
		}
		alpha = math.Max(0, math.Min(1, alpha))
	}
	return scene.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, true
}

type paintKind uint8

const (
	paintNone paintKind = iota
	paintColor
	paintCurrentColor
	paintServer
)

// paintSpec is a fill or stroke value before paint servers are resolved.
type paintSpec struct {
	kind     paintKind
	color    scene.Color
	alpha    float64
	id       string
	fallback *paintSpec
}

// parsePaint parses the value of fill or stroke.
func parsePaint(b []byte) (paintSpec, bool) {
	b = parse.TrimWhitespace(b)
	lower := parse.ToLower(parse.Copy(b))
	switch string(lower) {
	case "none":
		return paintSpec{kind: paintNone}, true
	case "currentcolor":
		return paintSpec{kind: paintCurrentColor, alpha: 1}, true
	}

	if bytes.HasPrefix(lower, []byte("url(")) {
		end := bytes.IndexByte(b, ')')
		if end < 0 {
			return paintSpec{}, false
		}
		ref := parse.TrimWhitespace(b[4:end])
		ref = bytes.Trim(ref, `"'`)
		if len(ref) < 2 || ref[0] != '#' {
			return paintSpec{}, false
		}
		spec := paintSpec{kind: paintServer, id: string(ref[1:])}
		if rest := parse.TrimWhitespace(b[end+1:]); len(rest) > 0 {
			fb, ok := parsePaint(rest)
			if !ok || fb.kind == paintServer {
				return paintSpec{}, false
			}
			spec.fallback = &fb
		}
		return spec, true
	}

	c, alpha, ok := parseColor(b)
	if !ok {
		return paintSpec{}, false
	}
	return paintSpec{kind: paintColor, color: c, alpha: alpha}, true
}
