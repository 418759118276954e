package breakout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is the complete game state quantized to integers, so two runs fed
// the same inputs can be compared exactly.
type Snapshot struct {
	Tick         uint64
	Score        int
	Lives        int
	LevelIndex   int
	State        string
	ServeDelay   int
	Mode         int
	EndlessCycle int
	BallSpeed    int // milli-cells per tick
	PaddleX      int // milli-cells
	PaddleWidth  int

	// Four values per ball: X, Y (milli-cells), DX, DY (thousandths)
	BallData []int

	// Three values per pickup: Type, X, Y
	PickupData []int

	// Two values per effect: Type, UntilTick
	EffectData []int

	// HP per brick in row-major order, 0 once destroyed
	BrickData []int

	RNGState uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:        g.score,
		Lives:        g.lives,
		LevelIndex:   g.levelIndex,
		State:        g.state,
		ServeDelay:   g.serveDelay,
		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,
		BallSpeed:    milli(g.ballSpeed()),
		PaddleX:      milli(g.paddle.HitBox.Bounds().Min.X),
		PaddleWidth:  g.paddleWidth,
		RNGState:     g.powerups.RNG.state,
	}

	for _, b := range g.world.Find(tagBall) {
		c := b.Center()
		snap.BallData = append(snap.BallData, milli(c.X), milli(c.Y), milli(b.Direction.X), milli(b.Direction.Y))
	}
	for _, p := range g.world.Find(tagPickup) {
		c := p.Center()
		snap.PickupData = append(snap.PickupData, int(g.pickupKinds[p.ID]), milli(c.X), milli(c.Y))
	}
	for _, e := range g.powerups.Effects {
		snap.EffectData = append(snap.EffectData, int(e.Type), e.UntilTick)
	}
	g.level.Each(func(b *Brick) {
		hp := 0
		if b.Alive {
			hp = b.HP
		}
		snap.BrickData = append(snap.BrickData, hp)
	})

	return snap
}

// Hash returns an xxhash digest of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putInts := func(vs ...int) {
		put(uint64(len(vs))) //#nosec G115 -- hash computation
		for _, v := range vs {
			put(uint64(v)) //#nosec G115 -- hash computation
		}
	}

	put(snap.Tick)
	putInts(snap.Score, snap.Lives, snap.LevelIndex, snap.ServeDelay, snap.Mode,
		snap.EndlessCycle, snap.BallSpeed, snap.PaddleX, snap.PaddleWidth)
	_, _ = d.WriteString(snap.State)
	putInts(snap.BallData...)
	putInts(snap.PickupData...)
	putInts(snap.EffectData...)
	putInts(snap.BrickData...)
	put(snap.RNGState)

	return d.Sum64()
}

// Fingerprint hashes the current snapshot.
func (g *Game) Fingerprint() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
