package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

// SceneConfig describes a level as a list of hit-box objects laid out on a
// Width x Height grid. Enemies are shape templates centered on the origin.
type SceneConfig struct {
	Name    string         `yaml:"name"`
	Width   float64        `yaml:"width"`
	Height  float64        `yaml:"height"`
	Spawn   *[2]float64    `yaml:"spawn"` // player start; defaults to bottom center
	Objects []ObjectConfig `yaml:"objects"`
	Enemies []ObjectConfig `yaml:"enemies"`
}

// SpawnPoint returns the player start scaled onto a width x height area.
func (sc SceneConfig) SpawnPoint(width, height float64) geom.Point {
	if sc.Spawn == nil || sc.Width <= 0 || sc.Height <= 0 {
		return geom.Pt(width/2, height-2.5)
	}
	return geom.Pt(sc.Spawn[0]*width/sc.Width, sc.Spawn[1]*height/sc.Height)
}

// ObjectConfig describes one object. Exactly one of Vertices or Circle is set.
type ObjectConfig struct {
	Name     string        `yaml:"name"`
	Tag      string        `yaml:"tag"`
	Static   bool          `yaml:"static"`
	Glyph    string        `yaml:"glyph"`
	Vertices [][2]float64  `yaml:"vertices"`
	Circle   *CircleConfig `yaml:"circle"`
}

// CircleConfig describes a circular hit box.
type CircleConfig struct {
	Center [2]float64 `yaml:"center"`
	Radius float64    `yaml:"radius"`
}

// SceneObject is an object whose hit box has been built and validated.
type SceneObject struct {
	Config ObjectConfig
	HitBox *geom.HitBox
}

// ErrEmptyScene is returned when a scene declares no objects.
var ErrEmptyScene = errors.New("scene has no objects")

// LoadScene reads a scene file. An empty path loads the built-in arena.
func LoadScene(path string) (SceneConfig, error) {
	data := defaultArenaYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return SceneConfig{}, fmt.Errorf("failed to read scene %s: %w", path, err)
		}
	}
	return ParseScene(data)
}

// ParseScene decodes scene YAML.
func ParseScene(data []byte) (SceneConfig, error) {
	var sc SceneConfig
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("failed to parse scene: %w", err)
	}
	if len(sc.Objects) == 0 {
		return sc, ErrEmptyScene
	}
	return sc, nil
}

// Build constructs every hit box, scaling coordinates so the scene grid
// maps onto a width x height area. Objects that fail are skipped and their
// errors joined, so one bad polygon reports alongside all the others.
func (sc SceneConfig) Build(width, height float64) ([]SceneObject, error) {
	sx, sy := 1.0, 1.0
	if sc.Width > 0 && width > 0 {
		sx = width / sc.Width
	}
	if sc.Height > 0 && height > 0 {
		sy = height / sc.Height
	}

	objects := make([]SceneObject, 0, len(sc.Objects))
	var errs []error
	for i, oc := range sc.Objects {
		hb, err := oc.HitBox(sx, sy)
		if err != nil {
			errs = append(errs, fmt.Errorf("object %d (%s): %w", i, oc.label(), err))
			continue
		}
		objects = append(objects, SceneObject{Config: oc, HitBox: hb})
	}
	return objects, errors.Join(errs...)
}

// Templates validates every enemy template at the given scale. Templates that
// fail are dropped and reported like Build does for objects.
func (sc SceneConfig) Templates(scale float64) ([]SceneObject, error) {
	templates := make([]SceneObject, 0, len(sc.Enemies))
	var errs []error
	for i, ec := range sc.Enemies {
		hb, err := ec.HitBox(scale, scale)
		if err != nil {
			errs = append(errs, fmt.Errorf("enemy %d (%s): %w", i, ec.label(), err))
			continue
		}
		templates = append(templates, SceneObject{Config: ec, HitBox: hb})
	}
	return templates, errors.Join(errs...)
}

// HitBox builds the object's hit box with coordinates scaled by sx, sy.
// Circles scale their radius by the smaller factor.
func (oc ObjectConfig) HitBox(sx, sy float64) (*geom.HitBox, error) {
	switch {
	case oc.Circle != nil && len(oc.Vertices) > 0:
		return nil, errors.New("object sets both vertices and circle")
	case oc.Circle != nil:
		c := geom.Pt(oc.Circle.Center[0]*sx, oc.Circle.Center[1]*sy)
		return geom.NewCircleHitBox(c, oc.Circle.Radius*min(sx, sy))
	default:
		pts := make([]geom.Point, len(oc.Vertices))
		for i, v := range oc.Vertices {
			pts[i] = geom.Pt(v[0]*sx, v[1]*sy)
		}
		return geom.NewHitBox(pts)
	}
}

// GlyphRune returns the first rune of Glyph, or '#' when unset.
func (oc ObjectConfig) GlyphRune() rune {
	for _, r := range oc.Glyph {
		return r
	}
	return '#'
}

func (oc ObjectConfig) label() string {
	if oc.Name != "" {
		return oc.Name
	}
	return "unnamed"
}
