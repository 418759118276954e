// Package shooter implements a top-down arena shooter. The arena comes from a
// scene file, so walls and enemies can be any mix of convex polygons, segments,
// circles and points, and every interaction goes through hit-box collisions.
package shooter

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox-arcade/internal/config"
	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
	"github.com/vovakirdan/hitbox-arcade/internal/registry"
	"github.com/vovakirdan/hitbox-arcade/internal/world"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Object tags. Scene objects use the first three.
const (
	tagWall   = "wall"
	tagHazard = "hazard"
	tagPickup = "pickup"
	tagPlayer = "player"
	tagEnemy  = "enemy"
	tagBullet = "bullet"
)

const (
	PlayerChar = '@'
	BulletChar = '•'

	hudRows       = 1
	spawnClear    = 10.0 // min distance between a new enemy and the player
	spawnInterval = 30   // ticks before the first enemy
)

// fallbackEnemy is used when the scene defines no valid enemy templates.
var fallbackEnemy = config.ObjectConfig{
	Name:     "drone",
	Glyph:    "◆",
	Vertices: [][2]float64{{0, -1}, {1.5, 0}, {0, 1}, {-1.5, 0}},
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the shooter.
type Game struct {
	world     *world.World
	player    *world.Object
	facing    geom.Vector
	templates []config.ObjectConfig
	rng       *rand.Rand

	state        string
	score        int
	lives        int
	tickCount    int
	cooldown     int
	invulnerable int
	spawnTimer   int
	blockedTick  uint64
	wireframes   bool

	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new shooter instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "shooter" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Hitbox Shooter" }

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = log.Default().WithPrefix(g.ID())

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	cfg.Difficulty.Apply(difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.state = StatePlaying
	g.score = 0
	g.lives = cfg.Player.Lives
	g.tickCount = 0
	g.cooldown = 0
	g.invulnerable = 0
	g.spawnTimer = max(0, cfg.Gameplay.SpawnEvery-spawnInterval)
	g.blockedTick = 0
	g.facing = geom.Vec(0, -1)
	seed := uint64(runtime.Seed) //#nosec G115 -- intentional conversion for RNG seeding
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.world = world.New(
		world.WithLogger(g.logger),
		world.WithObliqueReflection(cfg.Physics.ObliqueReflection),
	)
	g.addBorder()

	scene, err := config.LoadScene(cfg.Scene)
	if err != nil {
		g.logger.Error("scene unavailable, using built-in arena", "scene", cfg.Scene, "err", err)
		scene, _ = config.LoadScene("")
	}
	g.addScene(scene)
	g.addPlayer(scene.SpawnPoint(float64(runtime.ScreenW), float64(runtime.ScreenH)))
}

// addBorder walls the arena in with four segments inside the outermost cells.
func (g *Game) addBorder() {
	w, h := float64(g.runtime.ScreenW-1), float64(g.runtime.ScreenH-1)
	top := float64(hudRows + 1)
	sides := []struct {
		name string
		a, b geom.Point
	}{
		{"border-top", geom.Pt(1, top), geom.Pt(w, top)},
		{"border-bottom", geom.Pt(1, h), geom.Pt(w, h)},
		{"border-left", geom.Pt(1, top), geom.Pt(1, h)},
		{"border-right", geom.Pt(w, top), geom.Pt(w, h)},
	}
	for _, s := range sides {
		hb, err := geom.NewSegmentHitBox(s.a, s.b)
		if err != nil {
			panic(fmt.Sprintf("shooter: %s: %v", s.name, err))
		}
		o := world.NewObject(s.name, tagWall, hb)
		o.Static = true
		o.Sprite = drawBorder
		g.world.Add(o)
	}
}

// addScene adds the scene's objects and enemy templates. Objects that fail
// validation are logged and left out.
func (g *Game) addScene(scene config.SceneConfig) {
	objs, err := scene.Build(float64(g.runtime.ScreenW), float64(g.runtime.ScreenH))
	for _, e := range unjoin(err) {
		g.logger.Warn("scene object skipped", "scene", scene.Name, "err", e)
	}
	for _, so := range objs {
		o := world.NewObject(so.Config.Name, so.Config.Tag, so.HitBox)
		o.Static = so.Config.Static
		o.Glyph = so.Config.GlyphRune()
		o.Color = sceneColor(o.Tag)
		o.Sprite = fillShape
		g.world.Add(o)
	}

	templates, err := scene.Templates(g.cfg.Gameplay.EnemyScale)
	for _, e := range unjoin(err) {
		g.logger.Warn("enemy template skipped", "scene", scene.Name, "err", e)
	}
	g.templates = g.templates[:0]
	for _, t := range templates {
		g.templates = append(g.templates, t.Config)
	}
	if len(g.templates) == 0 {
		g.templates = append(g.templates, fallbackEnemy)
	}
}

func (g *Game) addPlayer(at geom.Point) {
	hb, err := geom.NewCircleHitBox(at, g.cfg.Player.Radius)
	if err != nil {
		g.logger.Error("player radius", "err", err)
		hb = geom.MustCircleHitBox(at, 0.5)
	}
	p := world.NewObject("player", tagPlayer, hb)
	p.Glyph = PlayerChar
	p.Color = core.ColorBrightGreen
	p.Sprite = g.drawPlayer
	p.Abilities = []world.Ability{
		world.AbilityFunc(g.steer),
		world.AbilityFunc(g.fire),
	}
	p.OnCollide = g.onPlayerCollide
	g.player = g.world.Add(p)
}

// steer sets the player's heading from the direction keys.
func (g *Game) steer(p *world.Object, _ *world.World, in core.InputFrame) {
	var v geom.Vector
	if in.Has(core.ActionUp) {
		v.Y--
	}
	if in.Has(core.ActionDown) {
		v.Y++
	}
	if in.Has(core.ActionLeft) {
		v.X--
	}
	if in.Has(core.ActionRight) {
		v.X++
	}

	u, err := v.Unit()
	if err != nil {
		p.Direction = geom.Vector{}
		return
	}
	p.Direction = u
	p.Speed = g.cfg.Physics.PlayerSpeed
	g.facing = u
}

// fire shoots along the facing direction when the weapon has cooled down.
func (g *Game) fire(p *world.Object, _ *world.World, in core.InputFrame) {
	if g.cooldown > 0 {
		g.cooldown--
	}
	if !in.Has(core.ActionFire) || g.cooldown > 0 {
		return
	}
	g.cooldown = g.cfg.Player.FireCooldown
	muzzle := p.Center().Add(g.facing.Scale(g.cfg.Player.Radius + 0.1))
	g.spawnBullet(muzzle, g.facing)
}

// onPlayerCollide stops the player at walls and resolves contact with
// hazards, pickups and enemies.
func (g *Game) onPlayerCollide(p, other *world.Object) {
	switch other.Tag {
	case tagWall:
		if g.blockedTick != g.world.Tick() {
			g.blockedTick = g.world.Tick()
			v := p.Velocity()
			p.HitBox.Move(-v.X, -v.Y)
		}
	case tagPickup:
		other.Delete()
		g.score += g.cfg.Gameplay.PickupPoints
	case tagHazard, tagEnemy:
		other.Delete()
		g.hurt()
	}
}

// hurt costs a life unless the player is still protected from the last hit.
func (g *Game) hurt() {
	if g.invulnerable > 0 {
		return
	}
	g.lives--
	g.invulnerable = g.cfg.Player.Invulnerable
	if g.lives <= 0 {
		g.state = StateGameOver
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDebug) {
		g.wireframes = !g.wireframes
	}

	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.invulnerable > 0 {
		g.invulnerable--
	}

	g.spawnTimer++
	interval := g.difficulty.SpawnInterval(g.cfg.Gameplay.SpawnEvery, g.cfg.Gameplay.MinSpawn, g.score, g.tickCount)
	if g.spawnTimer >= interval && g.world.Count(tagEnemy) < g.cfg.Gameplay.MaxEnemies {
		if g.spawnEnemy() {
			g.spawnTimer = 0
		}
	}

	g.world.Step(in)

	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	hud := fmt.Sprintf("Score: %d  Lives: %d  Enemies: %d", g.score, g.lives, g.world.Count(tagEnemy))
	if g.wireframes {
		hud += "  [hitboxes]"
	}
	dst.DrawText(1, 0, hud)

	g.world.Draw(dst, g.wireframes)

	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPlayer blinks the player while invulnerable.
func (g *Game) drawPlayer(dst *core.Screen, o *world.Object) {
	if g.invulnerable > 0 && (g.invulnerable/5)%2 == 1 {
		return
	}
	drawAtCenter(dst, o)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Fingerprint hashes the world for determinism checks.
func (g *Game) Fingerprint() uint64 {
	return g.world.Fingerprint()
}

// fillShape draws every cell whose center lies inside the object's hit box.
// Segments and points have no area and are traced instead.
func fillShape(dst *core.Screen, o *world.Object) {
	shape := o.HitBox.Shape()
	if shape.Kind() == geom.KindSegment || shape.Kind() == geom.KindPoint {
		o.HitBox.Draw(dst.Plotter(o.Glyph, o.Color))
		return
	}

	b := shape.Bounds()
	for y := int(math.Floor(b.Min.Y)); y <= int(math.Ceil(b.Max.Y)); y++ {
		for x := int(math.Floor(b.Min.X)); x <= int(math.Ceil(b.Max.X)); x++ {
			if geom.Collide(shape, geom.PointShape(geom.Pt(float64(x)+0.5, float64(y)+0.5))) {
				dst.SetColor(x, y, o.Glyph, o.Color)
			}
		}
	}
}

// drawAtCenter draws an object's glyph in the cell holding its center.
func drawAtCenter(dst *core.Screen, o *world.Object) {
	c := o.Center()
	dst.SetColor(int(math.Floor(c.X)), int(math.Floor(c.Y)), o.Glyph, o.Color)
}

// drawBorder draws the frame a border segment stands for.
func drawBorder(dst *core.Screen, o *world.Object) {
	w, h := dst.Width(), dst.Height()
	switch o.Name {
	case "border-top":
		dst.DrawHLine(0, hudRows, w, '─')
	case "border-bottom":
		dst.DrawHLine(0, h-1, w, '─')
	case "border-left", "border-right":
		x := 0
		if o.Name == "border-right" {
			x = w - 1
		}
		for y := hudRows + 1; y < h-1; y++ {
			dst.Set(x, y, '│')
		}
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func sceneColor(tag string) core.Color {
	switch tag {
	case tagWall:
		return core.ColorBlue
	case tagHazard:
		return core.ColorBrightRed
	case tagPickup:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
