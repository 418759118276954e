// Package world is the frame-stepped game loop shared by every game: it owns
// objects with hit boxes, moves them, resolves collisions through geom, and
// dispatches callbacks that may redirect, bounce or delete objects.
package world

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

// Ability is per-frame behavior attached to an object, such as steering from
// input or firing. Abilities run before the move phase.
type Ability interface {
	Apply(o *Object, w *World, in core.InputFrame)
}

// AbilityFunc adapts a function to Ability.
type AbilityFunc func(o *Object, w *World, in core.InputFrame)

// Apply calls f.
func (f AbilityFunc) Apply(o *Object, w *World, in core.InputFrame) {
	f(o, w, in)
}

// Object is a game entity. It exclusively owns its hit box.
type Object struct {
	ID   string
	Name string
	Tag  string // groups objects for Find, e.g. "brick", "wall"

	HitBox    *geom.HitBox
	Direction geom.Vector // movement per tick is Direction * Speed
	Speed     float64
	Static    bool // static objects never move and never test against each other
	Deleted   bool

	Glyph rune
	Color core.Color

	// Sprite draws the object. When nil the hit box wireframe is drawn with Glyph.
	Sprite func(dst *core.Screen, o *Object)

	Abilities []Ability

	// OnCollide is called once per frame for every object o touches.
	OnCollide func(self, other *Object)
}

// NewObject creates a live object with a fresh ID.
func NewObject(name, tag string, hb *geom.HitBox) *Object {
	return &Object{
		ID:     uuid.NewString(),
		Name:   name,
		Tag:    tag,
		HitBox: hb,
		Glyph:  '#',
	}
}

// Delete marks the object for removal at the end of the frame and disables its hit box.
func (o *Object) Delete() {
	o.Deleted = true
	if o.HitBox != nil {
		o.HitBox.SetActive(false)
	}
}

// Velocity returns the per-tick displacement.
func (o *Object) Velocity() geom.Vector {
	return o.Direction.Scale(o.Speed)
}

// Center returns the hit box center.
func (o *Object) Center() geom.Point {
	return o.HitBox.Center()
}

// Collides reports whether two live objects overlap.
func (o *Object) Collides(other *Object) bool {
	if o.Deleted || other.Deleted {
		return false
	}
	return o.HitBox.CollidesWith(other.HitBox)
}
