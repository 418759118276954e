package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

// Reflect returns direction reflected off surface's segment hit box.
// A nil or deleted surface, or one whose hit box is inactive, leaves
// direction unchanged.
func Reflect(surface *Object, direction geom.Vector) (geom.Vector, error) {
	if !reflective(surface) {
		return direction, nil
	}
	return surface.HitBox.Reflect(direction)
}

// ReflectFrom reflects mover's direction off the edge of surface it touches.
// Polygon surfaces resolve the contact edge first. Edges that are not
// axis-aligned are mirrored only when the world allows oblique reflection.
func (w *World) ReflectFrom(surface, mover *Object) (geom.Vector, error) {
	d := mover.Direction
	if !reflective(surface) {
		return d, nil
	}

	edge, ok := surface.HitBox.ContactEdge(mover.HitBox)
	if !ok {
		return d, nil
	}
	return w.reflectOff(edge, d)
}

func (w *World) reflectOff(edge geom.Segment, d geom.Vector) (geom.Vector, error) {
	out, err := geom.Reflect(edge, d)
	if errors.Is(err, geom.ErrUnsupportedReflection) && w.oblique {
		return geom.Mirror(edge, d)
	}
	return out, err
}

// Bounce redirects mover away from surface. Movers already heading away from
// the contact edge keep their direction, so an overlap that lasts several
// frames does not flip them back and forth.
func (w *World) Bounce(surface, mover *Object) error {
	if !reflective(surface) {
		return nil
	}

	edge, ok := surface.HitBox.ContactEdge(mover.HitBox)
	if !ok {
		return nil
	}

	normal := edge.B.Sub(edge.A).Perp()
	if normal.Dot(mover.Center().Sub(edge.ClosestPoint(mover.Center()))) < 0 {
		normal = normal.Neg()
	}
	if mover.Direction.Dot(normal) >= 0 {
		return nil
	}

	d, err := w.reflectOff(edge, mover.Direction)
	if err != nil {
		w.logger.Error("bounce failed", "surface", surface.Name, "mover", mover.Name, "err", err)
		return fmt.Errorf("bounce %s off %s: %w", mover.Name, surface.Name, err)
	}
	mover.Direction = d
	return nil
}

func reflective(o *Object) bool {
	return o != nil && !o.Deleted && o.HitBox != nil && o.HitBox.Active()
}
