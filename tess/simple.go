package tess

// signedArea returns the signed polygon area; positive for counter-clockwise
// winding in a y-up frame.
func signedArea(pts []vec) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a * 0.5
}

// isSimplePolygon reports whether no two non-adjacent edges of the closed
// polygon touch or cross.
func isSimplePolygon(pts []vec) bool {
	n := len(pts)
	for i := range n {
		a0, a1 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b0, b1 := pts[j], pts[(j+1)%n]
			if segmentsTouch(a0, a1, b0, b1) {
				return false
			}
		}
	}
	return true
}

// polygonsTouch reports whether any edge of a touches any edge of b.
func polygonsTouch(a, b []vec) bool {
	for i := range a {
		a0, a1 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if segmentsTouch(a0, a1, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return false
}

// insidePolygon is the even-odd crossing test of p against the closed
// polygon pts. Points on the border may go either way.
func insidePolygon(p vec, pts []vec) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func orient(a, b, c vec) float64 {
	return b.sub(a).cross(c.sub(a))
}

func onSegment(a, b, p vec) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// segmentsTouch reports whether segments ab and cd share any point.
func segmentsTouch(a, b, c, d vec) bool {
	o1 := orient(a, b, c)
	o2 := orient(a, b, d)
	o3 := orient(c, d, a)
	o4 := orient(c, d, b)

	if ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) &&
		((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0)) {
		return true
	}
	switch {
	case o1 == 0 && onSegment(a, b, c):
		return true
	case o2 == 0 && onSegment(a, b, d):
		return true
	case o3 == 0 && onSegment(c, d, a):
		return true
	case o4 == 0 && onSegment(c, d, b):
		return true
	}
	return false
}
