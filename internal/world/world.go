package world

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
)

// Contact records one colliding pair found during a frame.
type Contact struct {
	A, B *Object
}

// World owns the objects of a running game. It is not safe for concurrent use:
// the platform steps it from a single goroutine, one frame at a time.
type World struct {
	objects []*Object
	oblique bool
	logger  *log.Logger
	tick    uint64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for collision and reflection diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithObliqueReflection lets Bounce mirror off edges that are not axis-aligned.
func WithObliqueReflection(enabled bool) Option {
	return func(w *World) {
		w.oblique = enabled
	}
}

// New creates an empty world.
func New(opts ...Option) *World {
	w := &World{
		logger: log.Default().WithPrefix("world"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add inserts an object and returns it. Every object in a world has a hit
// box; adding one without panics.
func (w *World) Add(o *Object) *Object {
	if o.HitBox == nil {
		panic(fmt.Sprintf("world: object %q (%s) has no hit box", o.Name, o.Tag))
	}
	w.objects = append(w.objects, o)
	return o
}

// Objects returns the live objects in insertion order.
func (w *World) Objects() []*Object {
	live := make([]*Object, 0, len(w.objects))
	for _, o := range w.objects {
		if !o.Deleted {
			live = append(live, o)
		}
	}
	return live
}

// Find returns the live objects carrying tag.
func (w *World) Find(tag string) []*Object {
	var found []*Object
	for _, o := range w.objects {
		if !o.Deleted && o.Tag == tag {
			found = append(found, o)
		}
	}
	return found
}

// First returns the first live object carrying tag, or nil.
func (w *World) First(tag string) *Object {
	for _, o := range w.objects {
		if !o.Deleted && o.Tag == tag {
			return o
		}
	}
	return nil
}

// Count returns the number of live objects carrying tag.
func (w *World) Count(tag string) int {
	n := 0
	for _, o := range w.objects {
		if !o.Deleted && o.Tag == tag {
			n++
		}
	}
	return n
}

// Tick returns the number of completed frames.
func (w *World) Tick() uint64 {
	return w.tick
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// Step advances one frame: abilities, then movement, then pairwise collision
// tests with callbacks, then removal of deleted objects. It returns the
// contacts found this frame.
func (w *World) Step(in core.InputFrame) []Contact {
	w.tick++

	// Abilities may append objects; only those present at frame start run.
	n := len(w.objects)
	for i := 0; i < n; i++ {
		o := w.objects[i]
		if o.Deleted {
			continue
		}
		for _, a := range o.Abilities {
			a.Apply(o, w, in)
		}
	}

	for _, o := range w.objects {
		if o.Deleted || o.Static || o.Speed == 0 || o.Direction.IsZero() {
			continue
		}
		v := o.Velocity()
		o.HitBox.Move(v.X, v.Y)
	}

	var contacts []Contact
	for i := 0; i < len(w.objects); i++ {
		a := w.objects[i]
		for j := i + 1; j < len(w.objects); j++ {
			b := w.objects[j]
			if a.Static && b.Static {
				continue
			}
			if !a.Collides(b) {
				continue
			}
			contacts = append(contacts, Contact{A: a, B: b})
			w.logger.Debug("contact", "tick", w.tick, "a", a.Name, "b", b.Name)

			if a.OnCollide != nil {
				a.OnCollide(a, b)
			}
			if b.OnCollide != nil && !b.Deleted {
				b.OnCollide(b, a)
			}
		}
	}

	w.purge()
	return contacts
}

func (w *World) purge() {
	live := w.objects[:0]
	for _, o := range w.objects {
		if !o.Deleted {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(w.objects); i++ {
		w.objects[i] = nil
	}
	w.objects = live
}

// Draw renders live objects back to front by the y of their hit box center.
// With wireframes set, every hit box outline is drawn on top.
func (w *World) Draw(dst *core.Screen, wireframes bool) {
	ordered := w.Objects()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Center().Y < ordered[j].Center().Y
	})

	for _, o := range ordered {
		if o.Sprite != nil {
			o.Sprite(dst, o)
			continue
		}
		o.HitBox.Draw(dst.Plotter(o.Glyph, o.Color))
	}

	if wireframes {
		for _, o := range ordered {
			o.HitBox.Draw(dst.Plotter('·', core.ColorGray))
		}
	}
}
