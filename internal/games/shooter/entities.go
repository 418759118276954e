package shooter

import (
	"github.com/vovakirdan/hitbox-arcade/internal/config"
	"github.com/vovakirdan/hitbox-arcade/internal/core"
	"github.com/vovakirdan/hitbox-arcade/internal/geom"
	"github.com/vovakirdan/hitbox-arcade/internal/world"
)

// tracer returns a segment ending at head and trailing back along d by length.
func tracer(head geom.Point, d geom.Vector, length float64) (*geom.HitBox, error) {
	return geom.NewSegmentHitBox(head.Add(d.Scale(-length)), head)
}

// bulletHead returns the leading end of a bullet's tracer.
func bulletHead(b *world.Object) geom.Point {
	if seg, ok := b.HitBox.Shape().AsSegment(); ok {
		return seg.B
	}
	return b.Center()
}

// spawnBullet fires a bullet from muzzle along d.
//
// A bullet's hit box is a tracer segment as long as one tick of travel,
// starting one tick behind the muzzle. Each move slides it forward in place,
// so it always covers exactly the path flown this tick and thin walls cannot
// be skipped over. Only a ricochet replaces it.
func (g *Game) spawnBullet(muzzle geom.Point, d geom.Vector) *world.Object {
	speed := g.cfg.Physics.BulletSpeed
	hb, err := tracer(muzzle, d, speed)
	if err != nil {
		g.logger.Error("bullet tracer", "err", err)
		return nil
	}

	life := g.cfg.Gameplay.BulletLife
	bounces := g.cfg.Gameplay.Ricochets

	b := world.NewObject("bullet", tagBullet, hb)
	b.Direction = d
	b.Speed = speed
	b.Glyph = BulletChar
	b.Color = core.ColorBrightYellow
	b.Sprite = func(dst *core.Screen, self *world.Object) {
		head := bulletHead(self)
		dst.SetColor(int(head.X), int(head.Y), self.Glyph, self.Color)
	}
	b.Abilities = []world.Ability{world.AbilityFunc(func(self *world.Object, _ *world.World, _ core.InputFrame) {
		life--
		if life <= 0 {
			self.Delete()
		}
	})}
	b.OnCollide = func(self, other *world.Object) {
		switch other.Tag {
		case tagEnemy:
			other.Delete()
			self.Delete()
			g.score += g.cfg.Gameplay.EnemyPoints
		case tagWall:
			if bounces <= 0 || !g.ricochet(self, other) {
				self.Delete()
				return
			}
			bounces--
		}
	}
	return g.world.Add(b)
}

// ricochet reflects a bullet off wall and restarts its tracer from where it
// entered this tick. Axis-aligned edges always reflect; slanted ones only
// when oblique reflection is enabled.
func (g *Game) ricochet(b, wall *world.Object) bool {
	d, err := g.world.ReflectFrom(wall, b)
	if err != nil {
		g.logger.Debug("bullet absorbed", "wall", wall.Name, "err", err)
		return false
	}

	seg, ok := b.HitBox.Shape().AsSegment()
	if !ok {
		return false
	}
	next, err := tracer(seg.A, d, b.Speed)
	if err != nil {
		return false
	}
	b.Direction = d
	b.HitBox = next
	return true
}

// spawnEnemy places a random enemy template at a free spawn point away from
// the player. It reports false when no spawn point is free.
func (g *Game) spawnEnemy() bool {
	tpl := g.templates[g.rng.IntN(len(g.templates))]
	scale := g.cfg.Gameplay.EnemyScale

	w, h := float64(g.runtime.ScreenW), float64(g.runtime.ScreenH)
	spots := []geom.Point{
		geom.Pt(5, hudRows+4), geom.Pt(w-5, hudRows+4),
		geom.Pt(5, h-4), geom.Pt(w-5, h-4),
	}
	start := g.rng.IntN(len(spots))
	for i := range spots {
		at := spots[(start+i)%len(spots)]
		if at.Distance(g.player.Center()) < spawnClear {
			continue
		}

		hb, err := tpl.HitBox(scale, scale)
		if err != nil {
			g.logger.Error("enemy template", "name", tpl.Name, "err", err)
			return false
		}
		hb.MoveTo(at)
		if g.blocked(hb) {
			continue
		}

		g.addEnemy(tpl, hb)
		return true
	}
	return false
}

// blocked reports whether hb overlaps any static scene object.
func (g *Game) blocked(hb *geom.HitBox) bool {
	for _, o := range g.world.Objects() {
		if o.Static && o.HitBox.CollidesWith(hb) {
			return true
		}
	}
	return false
}

// addEnemy adds an enemy that heads for the player, bounces off walls and
// corrects its course every few ticks.
func (g *Game) addEnemy(tpl config.ObjectConfig, hb *geom.HitBox) *world.Object {
	e := world.NewObject(tpl.Name, tagEnemy, hb)
	e.Glyph = tpl.GlyphRune()
	e.Color = core.ColorBrightRed
	e.Sprite = fillShape
	e.Speed = g.difficulty.Speed(g.cfg.Physics.EnemySpeed, g.score, g.tickCount)
	g.aim(e)

	retarget := g.cfg.Gameplay.Retarget
	e.Abilities = []world.Ability{world.AbilityFunc(func(self *world.Object, _ *world.World, _ core.InputFrame) {
		retarget--
		if retarget <= 0 {
			retarget = g.cfg.Gameplay.Retarget
			g.aim(self)
		}
	})}
	e.OnCollide = func(self, other *world.Object) {
		if other.Tag != tagWall {
			return
		}
		if err := g.world.Bounce(other, self); err != nil {
			self.Direction = self.Direction.Neg()
		}
	}
	return g.world.Add(e)
}

// aim points e at the player.
func (g *Game) aim(e *world.Object) {
	if d, err := g.player.Center().Sub(e.Center()).Unit(); err == nil {
		e.Direction = d
	}
}
