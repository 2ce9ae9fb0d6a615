package svg

import (
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// scanner reads numbers and flags separated by whitespace and commas, the
// grammar shared by path data, point lists, view boxes and transforms.
type scanner struct {
	b []byte
	i int
}

func (s *scanner) skipSeparators() {
	for s.i < len(s.b) && (parse.IsWhitespace(s.b[s.i]) || s.b[s.i] == ',') {
		s.i++
	}
}

func (s *scanner) skipWhitespace() {
	for s.i < len(s.b) && parse.IsWhitespace(s.b[s.i]) {
		s.i++
	}
}

func (s *scanner) done() bool {
	return s.i >= len(s.b)
}

func (s *scanner) peek() byte {
	if s.i < len(s.b) {
		return s.b[s.i]
	}
	return 0
}

// atNumber reports whether a number starts at the current position.
func (s *scanner) atNumber() bool {
	c := s.peek()
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// number reads one number and the separators after it.
func (s *scanner) number() (float64, bool) {
	f, n := strconv.ParseFloat(s.b[s.i:])
	if n == 0 {
		return 0, false
	}
	s.i += n
	s.skipSeparators()
	return f, true
}

// flag reads an arc flag, a single 0 or 1 that need not be separated from
// what follows.
func (s *scanner) flag() (bool, bool) {
	switch s.peek() {
	case '0':
		s.i++
		s.skipSeparators()
		return false, true
	case '1':
		s.i++
		s.skipSeparators()
		return true, true
	}
	return false, false
}

// numbers parses a whole separated list.
func numbers(b []byte) ([]float64, error) {
	s := scanner{b: b}
	s.skipSeparators()
	var out []float64
	for !s.done() {
		f, ok := s.number()
		if !ok {
			return nil, errorAt(s.i, "expected number, found %q", s.peek())
		}
		out = append(out, f)
	}
	return out, nil
}
