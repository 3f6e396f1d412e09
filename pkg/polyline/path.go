// pkg/polyline/path.go
package polyline

import "math"

// Point — точка в логических координатах холста
type Point struct {
	X, Y float64
}

// Path is an ordered polyline walked by enemies from entry to host.
type Path []Point

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Length returns the total arc length of the path.
func (p Path) Length() float64 {
	length := 0.0
	for i := 1; i < len(p); i++ {
		length += Distance(p[i-1], p[i])
	}
	return length
}

// PointAt walks the segments until the one containing progress is found and
// interpolates inside it. Progress beyond the end yields the last anchor.
func (p Path) PointAt(progress float64) Point {
	if len(p) == 0 {
		return Point{}
	}
	if progress <= 0 {
		return p[0]
	}
	// Конец пути возвращается точно, без погрешности интерполяции
	if progress >= p.Length() {
		return p[len(p)-1]
	}

	distance := 0.0
	for i := 1; i < len(p); i++ {
		prev, curr := p[i-1], p[i]
		segment := Distance(prev, curr)
		if segment == 0 {
			continue
		}
		if distance+segment >= progress {
			t := (progress - distance) / segment
			return Point{
				X: prev.X + (curr.X-prev.X)*t,
				Y: prev.Y + (curr.Y-prev.Y)*t,
			}
		}
		distance += segment
	}

	return p[len(p)-1]
}

// First returns the entry anchor.
func (p Path) First() Point {
	return p[0]
}

// Last returns the destination anchor.
func (p Path) Last() Point {
	return p[len(p)-1]
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}
