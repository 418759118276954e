package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox-arcade/internal/config"
	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
	"github.com/vovakirdan/hitbox-arcade/internal/registry"
	"github.com/vovakirdan/hitbox-arcade/internal/world"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	BorderVert  = '│'
	BorderHoriz = '─'
	BorderTL    = '┌'
	BorderTR    = '┐'
)

// BrickGlyphs cycle by row.
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+'}

const (
	HardBrickGlyph  = '▓'
	SolidBrickGlyph = '█'
)

// Game states
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"
)

// Object tags
const (
	tagWall   = "wall"
	tagBrick  = "brick"
	tagPaddle = "paddle"
	tagBall   = "ball"
	tagPickup = "pickup"
)

// Playfield layout in cells. Rows 0-1 hold the HUD and row 2 the top border.
const (
	hudRows      = 2
	fieldTop     = 3
	brickAreaTop = 4
	launchSpread = 20.0 // max degrees off vertical for a serve
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels until game over
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the zero-based level a campaign starts on.
func SetStartLevel(index int) {
	startLevel = max(0, min(index, LevelCount()-1))
}

// Game implements Breakout on a world of hit boxes.
type Game struct {
	mode GameMode

	world       *world.World
	paddle      *world.Object
	level       *Level
	powerups    *PowerUpManager
	pickupKinds map[string]PickupType

	state        string
	score        int
	lives        int
	levelIndex   int
	tickCount    int
	serveDelay   int
	endlessCycle int
	destroyed    int     // bricks destroyed this game, drives speed-ups
	speedBonus   float64 // ball speed added by speed-ups and endless cycles
	paddleWidth  int
	wireframes   bool

	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	paddleY        int
	brickWidth     int
	brickLeft      int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Breakout game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.logger = log.Default().WithPrefix(g.ID())

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	cfg.Difficulty.Apply(difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 42
	g.minScreenH = 20
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.levelIndex = 0
	if g.mode == ModeCampaign {
		g.levelIndex = startLevel
	}
	g.tickCount = 0
	g.serveDelay = 0
	g.endlessCycle = 0
	g.destroyed = 0
	g.speedBonus = 0
	g.paddleWidth = cfg.Paddle.Width
	g.powerups = NewPowerUpManager(runtime.Seed, DefaultPowerUpConfig())

	g.loadLevel(g.levelIndex)
}

// loadLevel rebuilds the world for a level: walls, bricks, paddle and one
// ball waiting on the paddle.
func (g *Game) loadLevel(index int) {
	g.level = GetLevel(index)
	g.pickupKinds = make(map[string]PickupType)
	g.world = world.New(
		world.WithLogger(g.logger),
		world.WithObliqueReflection(false),
	)

	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	g.paddleY = h - 3
	g.brickWidth = max(2, (w-2)/max(1, g.level.Width))
	g.brickLeft = 1 + max(0, (w-2-g.brickWidth*g.level.Width)/2)

	g.addWalls()
	g.addBricks()
	g.addPaddle()
	g.placeBallOnPaddle()
	g.state = StateServe
}

// addWalls adds the left, right and top walls as segments. The side walls run
// past the bottom of the screen so a falling ball stays inside them.
func (g *Game) addWalls() {
	left, right := 1.0, float64(g.runtime.ScreenW-1)
	bottom := float64(g.runtime.ScreenH + 2)
	walls := []struct {
		name string
		a, b geom.Point
	}{
		{"wall-left", geom.Pt(left, fieldTop), geom.Pt(left, bottom)},
		{"wall-right", geom.Pt(right, fieldTop), geom.Pt(right, bottom)},
		{"wall-top", geom.Pt(left, fieldTop), geom.Pt(right, fieldTop)},
	}
	for _, wall := range walls {
		hb, err := geom.NewSegmentHitBox(wall.a, wall.b)
		if err != nil {
			panic(fmt.Sprintf("breakout: %s: %v", wall.name, err))
		}
		o := world.NewObject(wall.name, tagWall, hb)
		o.Static = true
		o.Sprite = g.drawWall
		g.world.Add(o)
	}
}

// addBricks turns every brick of the level into a static rectangle. The
// brick bounces the ball itself before taking damage so the bounce sees a
// live surface.
func (g *Game) addBricks() {
	g.level.Each(func(b *Brick) {
		x := float64(g.brickLeft + b.Col*g.brickWidth)
		y := float64(brickAreaTop + b.Row)
		hb, err := geom.NewRectHitBox(x, y, float64(g.brickWidth), 1)
		if err != nil {
			panic(fmt.Sprintf("breakout: brick %d,%d: %v", b.Row, b.Col, err))
		}

		o := world.NewObject(fmt.Sprintf("brick-%d-%d", b.Row, b.Col), tagBrick, hb)
		o.Static = true
		o.Sprite = func(dst *core.Screen, self *world.Object) {
			r := self.HitBox.Bounds()
			for x := int(r.Min.X); x < int(r.Max.X); x++ {
				dst.SetColor(x, int(r.Min.Y), b.Glyph(), b.Color())
			}
		}
		o.OnCollide = func(self, other *world.Object) {
			if other.Tag != tagBall {
				return
			}
			g.bounce(self, other)
			g.hitBrick(b, self)
		}
		g.world.Add(o)
	})
}

func (g *Game) addPaddle() {
	x := float64((g.runtime.ScreenW - g.paddleWidth) / 2)
	hb, err := geom.NewRectHitBox(x, float64(g.paddleY), float64(g.paddleWidth), 1)
	if err != nil {
		panic(fmt.Sprintf("breakout: paddle: %v", err))
	}

	p := world.NewObject("paddle", tagPaddle, hb)
	p.Static = true
	p.Glyph = PaddleChar
	p.Color = core.ColorBrightCyan
	p.Sprite = func(dst *core.Screen, self *world.Object) {
		r := self.HitBox.Bounds()
		for x := int(r.Min.X); x < int(r.Max.X); x++ {
			dst.SetColor(x, int(r.Min.Y), self.Glyph, self.Color)
		}
	}
	p.Abilities = []world.Ability{world.AbilityFunc(g.steerPaddle)}
	g.paddle = g.world.Add(p)
}

// steerPaddle moves the paddle from input, clamped between the side walls.
func (g *Game) steerPaddle(p *world.Object, _ *world.World, in core.InputFrame) {
	if g.state != StatePlaying && g.state != StateServe {
		return
	}
	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= g.cfg.Physics.PaddleSpeed
	}
	if in.Has(core.ActionRight) {
		dx += g.cfg.Physics.PaddleSpeed
	}

	r := p.HitBox.Bounds()
	minX, maxX := 1.0, float64(g.runtime.ScreenW-1)
	dx = max(minX-r.Min.X, min(dx, maxX-r.Max.X))
	if dx != 0 {
		p.HitBox.Move(dx, 0)
	}
}

// resizePaddle replaces the paddle rectangle, keeping it centered and inside the walls.
func (g *Game) resizePaddle(width int) {
	if width == g.paddleWidth {
		return
	}
	g.paddleWidth = width

	c := g.paddle.Center()
	x := c.X - float64(width)/2
	x = max(1, min(x, float64(g.runtime.ScreenW-1-width)))
	hb, err := geom.NewRectHitBox(x, float64(g.paddleY), float64(width), 1)
	if err != nil {
		g.logger.Error("resize paddle", "width", width, "err", err)
		return
	}
	g.paddle.HitBox = hb
}

// newBall adds a ball centered at c.
func (g *Game) newBall(c geom.Point) *world.Object {
	b := world.NewObject("ball", tagBall, geom.MustCircleHitBox(c, g.cfg.Physics.BallRadius))
	b.Glyph = BallChar
	b.Color = core.ColorBrightWhite
	b.Sprite = drawAtCenter
	b.OnCollide = g.onBallCollide
	return g.world.Add(b)
}

// placeBallOnPaddle adds a ball resting on top of the paddle.
func (g *Game) placeBallOnPaddle() {
	g.newBall(g.restingSpot())
}

func (g *Game) restingSpot() geom.Point {
	return geom.Pt(g.paddle.Center().X, float64(g.paddleY)-g.cfg.Physics.BallRadius-0.01)
}

// launchBalls sends the resting ball up at a seeded angle.
func (g *Game) launchBalls() {
	angle := (g.powerups.RNG.Float64()*2 - 1) * launchSpread * math.Pi / 180
	for _, b := range g.world.Find(tagBall) {
		b.Direction = geom.Vec(0, -1).Rotate(angle)
		b.Speed = g.ballSpeed()
	}
	g.state = StatePlaying
}

// ballSpeed is the current ball speed in cells per tick.
func (g *Game) ballSpeed() float64 {
	p := g.cfg.Physics
	speed := g.difficulty.Speed(p.BallSpeed, g.score, g.tickCount) + g.speedBonus
	if g.powerups.HasEffect(EffectSlowDown) {
		speed *= g.powerups.Config.SlowFactor
	}
	if p.MaxBallSpeed > 0 {
		speed = min(speed, p.MaxBallSpeed)
	}
	return speed
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionDebug) {
		g.wireframes = !g.wireframes
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
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

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	if g.powerups.ExpireEffects(g.tickCount) {
		g.applyPaddleWidth()
	}

	if g.state == StateServe && in.Has(core.ActionFire) {
		g.launchBalls()
	}

	if g.state == StatePlaying {
		speed := g.ballSpeed()
		for _, b := range g.world.Find(tagBall) {
			b.Speed = speed
		}
	}

	w := g.world
	w.Step(in)
	if g.world != w || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateServe {
		for _, b := range g.world.Find(tagBall) {
			b.HitBox.MoveTo(g.restingSpot())
		}
	} else {
		g.dropLostObjects()
	}

	return core.StepResult{State: g.State()}
}

// onBallCollide handles ball contacts with walls and the paddle. Bricks
// handle their own contacts.
func (g *Game) onBallCollide(ball, other *world.Object) {
	switch other.Tag {
	case tagWall:
		g.bounce(other, ball)
	case tagPaddle:
		g.bouncePaddle(ball, other)
	}
}

// bounce reflects ball off surface. Every surface in Breakout is axis-aligned,
// so an error here is logged by the world and otherwise ignored.
func (g *Game) bounce(surface, ball *world.Object) {
	_ = g.world.Bounce(surface, ball)
}

// bouncePaddle reflects the ball off the paddle and, for hits on the top
// edge, steers it by where it landed: the center sends it straight up and
// the ends send it out at the configured maximum angle.
func (g *Game) bouncePaddle(ball, paddle *world.Object) {
	if g.state != StatePlaying || ball.Direction.Y <= 0 {
		return
	}

	d, err := g.world.ReflectFrom(paddle, ball)
	if err != nil {
		return
	}
	ball.Direction = d
	if d.Y >= 0 {
		return
	}

	r := paddle.HitBox.Bounds()
	half := r.Width() / 2
	offset := (ball.Center().X - (r.Min.X + half)) / half
	ball.Direction = Deflect(offset, g.cfg.Physics.MaxBounceAngle)
}

// Deflect returns the upward unit direction for a paddle hit at offset,
// -1 at the left end and 1 at the right end.
func Deflect(offset, maxAngleDeg float64) geom.Vector {
	offset = max(-1, min(offset, 1))
	return geom.Vec(0, -1).Rotate(offset * maxAngleDeg * math.Pi / 180)
}

// hitBrick damages a brick hit by the ball.
func (g *Game) hitBrick(b *Brick, o *world.Object) {
	if !b.Destructible() || !b.Alive {
		return
	}

	b.HP--
	if b.HP > 0 {
		return
	}

	b.Alive = false
	o.Delete()
	g.score += b.Points
	g.destroyed++

	gp := g.cfg.Gameplay
	if gp.SpeedUpEveryN > 0 && g.destroyed%gp.SpeedUpEveryN == 0 {
		g.speedBonus += gp.SpeedUpAmount
	}

	if kind, ok := g.powerups.Roll(); ok {
		g.spawnPickup(kind, o.Center())
	}

	if g.level.Remaining() == 0 {
		g.handleLevelClear()
	}
}

// dropLostObjects removes balls and pickups that fell past the bottom and
// handles a miss when the last ball is gone.
func (g *Game) dropLostObjects() {
	bottom := float64(g.runtime.ScreenH)
	for _, o := range g.world.Objects() {
		if (o.Tag == tagBall || o.Tag == tagPickup) && o.HitBox.Bounds().Min.Y > bottom {
			o.Delete()
		}
	}
	if g.world.Count(tagBall) == 0 {
		g.handleMiss()
	}
}

// handleMiss costs a life and serves a new ball.
func (g *Game) handleMiss() {
	g.lives--
	if g.lives <= 0 {
		g.state = StateGameOver
		return
	}

	for _, p := range g.world.Find(tagPickup) {
		p.Delete()
	}
	g.powerups.Effects = g.powerups.Effects[:0]
	g.resizePaddle(g.cfg.Paddle.Width)

	g.placeBallOnPaddle()
	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// handleLevelClear advances to the next level. It runs inside a collision
// callback, so the new world only takes over after the current frame.
func (g *Game) handleLevelClear() {
	g.levelIndex++

	if g.levelIndex >= LevelCount() {
		if g.mode == ModeCampaign {
			g.state = StateWin
			return
		}
		g.levelIndex = 0
		g.endlessCycle++
		g.speedBonus += 0.02
	}

	g.powerups.Effects = g.powerups.Effects[:0]
	g.paddleWidth = g.cfg.Paddle.Width
	g.loadLevel(g.levelIndex)
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.world.Draw(dst, g.wireframes)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, level and active effects.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.endlessCycle*LevelCount()+g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, LevelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	effects := make([]string, 0, len(g.powerups.Effects))
	for _, e := range g.powerups.Effects {
		effects = append(effects, fmt.Sprintf("%s(%d)", e.Type, e.TicksRemaining(g.tickCount)/60))
	}
	if g.wireframes {
		effects = append(effects, "[hitboxes]")
	}
	dst.DrawTextColor(1, 1, strings.Join(effects, " "), core.ColorYellow)
}

// drawWall draws the border a wall segment stands for.
func (g *Game) drawWall(dst *core.Screen, o *world.Object) {
	w, h := dst.Width(), dst.Height()
	switch o.Name {
	case "wall-top":
		dst.DrawHLine(1, hudRows, w-2, BorderHoriz)
		dst.Set(0, hudRows, BorderTL)
		dst.Set(w-1, hudRows, BorderTR)
	case "wall-left":
		for y := hudRows + 1; y < h; y++ {
			dst.Set(0, y, BorderVert)
		}
	case "wall-right":
		for y := hudRows + 1; y < h; y++ {
			dst.Set(w-1, y, BorderVert)
		}
	}
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay > 0 {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case StateWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
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

// drawAtCenter draws an object's glyph in the cell holding its center.
func drawAtCenter(dst *core.Screen, o *world.Object) {
	c := o.Center()
	dst.SetColor(int(math.Floor(c.X)), int(math.Floor(c.Y)), o.Glyph, o.Color)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}
