package breakout

import (
	"math"

	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
	"github.com/vovakirdan/hitbox-arcade/internal/world"
)

// PickupType represents different types of power-up pickups.
type PickupType int

const (
	PickupWiden     PickupType = iota // Widen paddle
	PickupShrink                      // Shrink paddle
	PickupMultiball                   // Spawn extra balls
	PickupSlowDown                    // Slow down ball
	PickupExtraLife                   // Extra life
)

// Glyph returns the display character for a pickup type.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupWiden:
		return 'W'
	case PickupShrink:
		return 'S'
	case PickupMultiball:
		return 'M'
	case PickupSlowDown:
		return '-'
	case PickupExtraLife:
		return '♥'
	default:
		return '?'
	}
}

// EffectType represents timed effects on the game.
type EffectType int

const (
	EffectWiden EffectType = iota
	EffectShrink
	EffectSlowDown
)

// String returns the short name for effect display.
func (e EffectType) String() string {
	switch e {
	case EffectWiden:
		return "Wide"
	case EffectShrink:
		return "Narrow"
	case EffectSlowDown:
		return "Slow"
	default:
		return "?"
	}
}

// Effect is an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int
}

// TicksRemaining returns how many ticks until the effect expires.
func (e Effect) TicksRemaining(currentTick int) int {
	return max(0, e.UntilTick-currentTick)
}

// PowerUpConfig holds configuration for power-up spawning and effects.
type PowerUpConfig struct {
	SpawnChance int // Percent chance to spawn on brick destroy (0-100)

	// Relative spawn weights, indexed by PickupType
	Weights [5]int

	Duration       int     // Effect duration in ticks
	FallSpeed      float64 // Cells per tick
	Radius         float64 // Pickup hit box radius
	WidenAmount    int
	ShrinkAmount   int
	MinPaddleWidth int
	MaxPaddleWidth int
	SlowFactor     float64
	MultiballCount int
	MultiballSplit float64 // Degrees between spawned balls
}

// DefaultPowerUpConfig returns default power-up configuration.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		SpawnChance:    18,
		Weights:        [5]int{25, 10, 20, 15, 5},
		Duration:       720, // 12 seconds at 60 FPS
		FallSpeed:      0.2,
		Radius:         0.4,
		WidenAmount:    4,
		ShrinkAmount:   3,
		MinPaddleWidth: 4,
		MaxPaddleWidth: 16,
		SlowFactor:     0.67,
		MultiballCount: 2,
		MultiballSplit: 25,
	}
}

// PowerUpManager rolls pickups and tracks timed effects.
type PowerUpManager struct {
	Config  PowerUpConfig
	Effects []Effect
	RNG     *SimpleRNG
}

// NewPowerUpManager creates a power-up manager with the given seed.
func NewPowerUpManager(seed int64, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config: cfg,
		RNG:    NewSimpleRNG(seed),
	}
}

// Roll decides whether a destroyed brick drops a pickup, and which.
func (pm *PowerUpManager) Roll() (PickupType, bool) {
	if pm.RNG.Intn(100) >= pm.Config.SpawnChance {
		return 0, false
	}

	total := 0
	for _, w := range pm.Config.Weights {
		total += w
	}
	if total <= 0 {
		return PickupWiden, true
	}

	roll := pm.RNG.Intn(total)
	for i, w := range pm.Config.Weights {
		if roll < w {
			return PickupType(i), true
		}
		roll -= w
	}
	return PickupWiden, true
}

// AddEffect adds or extends an effect.
func (pm *PowerUpManager) AddEffect(t EffectType, currentTick int) {
	until := currentTick + pm.Config.Duration
	for i := range pm.Effects {
		if pm.Effects[i].Type == t {
			pm.Effects[i].UntilTick = until
			return
		}
	}
	pm.Effects = append(pm.Effects, Effect{Type: t, UntilTick: until})
}

// RemoveEffect removes an effect by type.
func (pm *PowerUpManager) RemoveEffect(t EffectType) {
	for i, e := range pm.Effects {
		if e.Type == t {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return
		}
	}
}

// ExpireEffects drops expired effects and reports whether any expired.
func (pm *PowerUpManager) ExpireEffects(currentTick int) bool {
	active := pm.Effects[:0]
	expired := false
	for _, e := range pm.Effects {
		if e.UntilTick <= currentTick {
			expired = true
			continue
		}
		active = append(active, e)
	}
	pm.Effects = active
	return expired
}

// HasEffect returns true if the given effect is active.
func (pm *PowerUpManager) HasEffect(t EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// spawnPickup drops a falling pickup from p. It is collected when its circle
// touches the paddle.
func (g *Game) spawnPickup(kind PickupType, p geom.Point) {
	cfg := g.powerups.Config
	hb, err := geom.NewCircleHitBox(p, cfg.Radius)
	if err != nil {
		g.logger.Error("pickup hit box", "err", err)
		return
	}

	o := world.NewObject("pickup", tagPickup, hb)
	o.Direction = geom.Vec(0, 1)
	o.Speed = cfg.FallSpeed
	o.Glyph = kind.Glyph()
	o.Color = core.ColorBrightMagenta
	o.Sprite = drawAtCenter
	o.OnCollide = func(self, other *world.Object) {
		if other.Tag != tagPaddle {
			return
		}
		self.Delete()
		g.activatePickup(kind)
	}
	g.pickupKinds[o.ID] = kind
	g.world.Add(o)
}

// activatePickup applies a collected pickup.
func (g *Game) activatePickup(kind PickupType) {
	switch kind {
	case PickupWiden:
		g.powerups.RemoveEffect(EffectShrink)
		g.powerups.AddEffect(EffectWiden, g.tickCount)
		g.applyPaddleWidth()
	case PickupShrink:
		g.powerups.RemoveEffect(EffectWiden)
		g.powerups.AddEffect(EffectShrink, g.tickCount)
		g.applyPaddleWidth()
	case PickupMultiball:
		g.spawnMultiballs()
	case PickupSlowDown:
		g.powerups.AddEffect(EffectSlowDown, g.tickCount)
	case PickupExtraLife:
		g.lives++
	}
}

// applyPaddleWidth resizes the paddle for the active width effects.
func (g *Game) applyPaddleWidth() {
	cfg := g.powerups.Config
	width := g.cfg.Paddle.Width
	switch {
	case g.powerups.HasEffect(EffectWiden):
		width += cfg.WidenAmount
	case g.powerups.HasEffect(EffectShrink):
		width -= cfg.ShrinkAmount
	}
	g.resizePaddle(max(cfg.MinPaddleWidth, min(width, cfg.MaxPaddleWidth)))
}

// spawnMultiballs splits the first ball in play into extra balls fanned out
// around its heading.
func (g *Game) spawnMultiballs() {
	var src *world.Object
	for _, b := range g.world.Find(tagBall) {
		if !b.Direction.IsZero() {
			src = b
			break
		}
	}
	if src == nil {
		return
	}

	split := g.powerups.Config.MultiballSplit * math.Pi / 180
	for i := range g.powerups.Config.MultiballCount {
		angle := split * float64(i/2+1)
		if i%2 == 1 {
			angle = -angle
		}
		b := g.newBall(src.Center())
		b.Direction = src.Direction.Rotate(angle)
		b.Speed = src.Speed
	}
}

// SimpleRNG is a deterministic pseudo-random number generator (LCG).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
