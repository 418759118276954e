package geom

import "math"

// Canvas receives the cells a hit box covers when drawn as a wireframe.
type Canvas interface {
	Plot(x, y int)
}

// Draw renders the hit box outline onto c. A nil canvas is a no-op.
func (h *HitBox) Draw(c Canvas) {
	if c == nil || h == nil {
		return
	}

	switch h.shape.kind {
	case KindPoint:
		plot(c, h.shape.point)
	case KindSegment:
		drawSegment(c, h.shape.seg)
	case KindCircle:
		drawCircle(c, h.shape.circle)
	case KindPolygon:
		for _, e := range h.shape.poly.Edges() {
			drawSegment(c, e)
		}
	}
}

func plot(c Canvas, p Point) {
	c.Plot(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// drawSegment walks the segment one cell at a time along its longer axis.
func drawSegment(c Canvas, s Segment) {
	d := s.B.Sub(s.A)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))))
	if steps == 0 {
		plot(c, s.A)
		return
	}
	for i := 0; i <= steps; i++ {
		plot(c, s.A.Add(d.Scale(float64(i)/float64(steps))))
	}
}

func drawCircle(c Canvas, circle Circle) {
	steps := int(math.Max(8, math.Ceil(2*math.Pi*circle.Radius)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		plot(c, circle.Center.Add(Vector{X: circle.Radius, Y: 0}.Rotate(a)))
	}
}
