package svg

import (
	"math"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// Absolute units in CSS pixels. em and ex assume the 16px default font size.
var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 4.0 / 3.0,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
	"q":  96 / 25.4 / 4,
	"em": 16,
	"ex": 8,
}

// viewport is the reference box for percentages.
type viewport struct {
	w, h float64
}

// diagonal is the reference for percentages that are neither horizontal nor
// vertical, such as radii and stroke widths.
func (v viewport) diagonal() float64 {
	return math.Sqrt((v.w*v.w + v.h*v.h) / 2)
}

// parseLength parses a length with an optional unit; ref is the size that
// 100% stands for.
func parseLength(b []byte, ref float64) (float64, error) {
	b = parse.TrimWhitespace(b)
	num, unit := parse.Dimension(b)
	if num == 0 {
		return 0, errorAt(0, "invalid length %q", b)
	}
	if num+unit != len(b) {
		return 0, errorAt(num+unit, "invalid length %q", b)
	}
	f, _ := strconv.ParseFloat(b[:num])
	u := string(parse.ToLower(parse.Copy(b[num:])))
	if u == "%" {
		return f / 100 * ref, nil
	}
	scale, ok := unitScale[u]
	if !ok {
		return 0, errorAt(num, "unknown unit %q", u)
	}
	return f * scale, nil
}

// parseNumberOrPercent parses a plain number or a percentage of 1, as used
// by opacity properties.
func parseNumberOrPercent(b []byte) (float64, error) {
	b = parse.TrimWhitespace(b)
	num, unit := parse.Dimension(b)
	if num == 0 || num+unit != len(b) {
		return 0, errorAt(0, "invalid number %q", b)
	}
	f, _ := strconv.ParseFloat(b[:num])
	switch {
	case unit == 0:
		return f, nil
	case b[num] == '%':
		return f / 100, nil
	}
	return 0, errorAt(num, "unexpected unit in %q", b)
}
