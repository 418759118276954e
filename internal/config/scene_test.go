package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/hitbox-arcade/internal/geom"
)

func TestBuiltInArenaBuilds(t *testing.T) {
	sc, err := LoadScene("")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	objs, err := sc.Build(0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(objs) != len(sc.Objects) {
		t.Fatalf("built %d objects, want %d", len(objs), len(sc.Objects))
	}

	kinds := map[string]geom.Kind{}
	for _, o := range objs {
		kinds[o.Config.Name] = o.HitBox.Kind()
	}
	want := map[string]geom.Kind{
		"pillar-west": geom.KindPolygon,
		"wedge-north": geom.KindPolygon,
		"rail":        geom.KindSegment,
		"beacon":      geom.KindCircle,
		"mine-west":   geom.KindPoint,
	}
	for name, k := range want {
		if kinds[name] != k {
			t.Errorf("%s kind = %v, want %v", name, kinds[name], k)
		}
	}
}

func TestBuildScalesCoordinates(t *testing.T) {
	sc := SceneConfig{
		Width:  10,
		Height: 10,
		Objects: []ObjectConfig{
			{Name: "box", Vertices: [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}}},
			{Name: "orb", Circle: &CircleConfig{Center: [2]float64{5, 5}, Radius: 1}},
		},
	}
	objs, err := sc.Build(20, 30)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b := objs[0].HitBox.Bounds()
	if b.Max.X != 4 || b.Max.Y != 6 {
		t.Errorf("scaled box max = %v, want (4,6)", b.Max)
	}
	if c := objs[1].HitBox.Center(); !c.Equal(geom.Pt(10, 15)) {
		t.Errorf("scaled orb center = %v, want (10,15)", c)
	}
	// Radius follows the smaller factor.
	if b := objs[1].HitBox.Bounds(); b.Width() != 4 {
		t.Errorf("scaled orb diameter = %v, want 4", b.Width())
	}
}

func TestBuildReportsEveryBadObject(t *testing.T) {
	data := []byte(`
name: broken
objects:
  - name: concave
    vertices: [[0, 0], [4, 0], [4, 4], [0, 4], [2, 2]]
  - name: good
    vertices: [[10, 10], [12, 10], [11, 12]]
  - name: flat-orb
    circle:
      center: [5, 5]
      radius: 0
  - name: both
    vertices: [[0, 0], [1, 1]]
    circle:
      center: [0, 0]
      radius: 1
`)
	sc, err := ParseScene(data)
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}

	objs, err := sc.Build(0, 0)
	if len(objs) != 1 || objs[0].Config.Name != "good" {
		t.Fatalf("built %v, want only the good object", objs)
	}
	if !errors.Is(err, geom.ErrInvalidVertexSet) {
		t.Errorf("err = %v, want ErrInvalidVertexSet", err)
	}
	if !errors.Is(err, geom.ErrInvalidRadius) {
		t.Errorf("err = %v, want ErrInvalidRadius", err)
	}
	for _, name := range []string{"concave", "flat-orb", "both"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not mention %q: %v", name, err)
		}
	}
}

func TestParseSceneRejectsEmpty(t *testing.T) {
	if _, err := ParseScene([]byte("name: void\n")); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("err = %v, want ErrEmptyScene", err)
	}
}

func TestGlyphRune(t *testing.T) {
	if r := (ObjectConfig{Glyph: "█x"}).GlyphRune(); r != '█' {
		t.Errorf("GlyphRune = %q", r)
	}
	if r := (ObjectConfig{}).GlyphRune(); r != '#' {
		t.Errorf("default GlyphRune = %q", r)
	}
}

func TestEnemyTemplates(t *testing.T) {
	sc, err := LoadScene("")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	templates, err := sc.Templates(2)
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("templates = %d, want 3", len(templates))
	}
	for _, tpl := range templates {
		if tpl.HitBox.Kind() != geom.KindPolygon {
			t.Errorf("%s kind = %v, want polygon", tpl.Config.Name, tpl.HitBox.Kind())
		}
	}
	if w := templates[1].HitBox.Bounds().Width(); w != 6 {
		t.Errorf("scaled block width = %v, want 6", w)
	}

	bad := SceneConfig{Enemies: []ObjectConfig{{Name: "dent", Vertices: [][2]float64{{0, 0}, {2, 0}, {1, 0.5}, {2, 2}, {0, 2}}}}}
	if _, err := bad.Templates(1); !errors.Is(err, geom.ErrInvalidVertexSet) {
		t.Errorf("err = %v, want ErrInvalidVertexSet", err)
	}
}

func TestSpawnPoint(t *testing.T) {
	sc := SceneConfig{Width: 80, Height: 24, Spawn: &[2]float64{40, 12}}
	if p := sc.SpawnPoint(160, 48); !p.Equal(geom.Pt(80, 24)) {
		t.Errorf("scaled spawn = %v, want (80,24)", p)
	}
	if p := (SceneConfig{}).SpawnPoint(80, 24); !p.Equal(geom.Pt(40, 21.5)) {
		t.Errorf("default spawn = %v, want (40,21.5)", p)
	}
}
