// pkg/polyline/generate.go
package polyline

// Source supplies uniform random numbers in [0.0, 1.0).
type Source interface {
	Float64() float64
}

// Bounds is the rectangle interior anchors are clamped into.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Clamp moves p inside the bounds.
func (b Bounds) Clamp(p Point) Point {
	return Point{X: clamp(p.X, b.MinX, b.MaxX), Y: clamp(p.Y, b.MinY, b.MaxY)}
}

// Generator jitters the interior anchors of a base path.
type Generator struct {
	Jitter float64 // максимальное отклонение по каждой оси в обе стороны
	Bounds Bounds
	Source Source
}

// NewGenerator creates a generator with the given jitter half-width and clamp bounds.
func NewGenerator(jitter float64, bounds Bounds, src Source) *Generator {
	return &Generator{Jitter: jitter, Bounds: bounds, Source: src}
}

// Generate keeps the first and last anchors of base and perturbs every interior
// anchor by independent uniform noise in [-Jitter, +Jitter] before clamping it.
// The base path is never modified.
func (g *Generator) Generate(base Path) Path {
	out := make(Path, 0, len(base))
	if len(base) == 0 {
		return out
	}
	out = append(out, base[0])
	for i := 1; i < len(base)-1; i++ {
		p := Point{
			X: base[i].X + g.noise(),
			Y: base[i].Y + g.noise(),
		}
		out = append(out, g.Bounds.Clamp(p))
	}
	if len(base) > 1 {
		out = append(out, base[len(base)-1])
	}
	return out
}

func (g *Generator) noise() float64 {
	return (g.Source.Float64()*2 - 1) * g.Jitter
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
