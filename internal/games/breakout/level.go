// Package breakout implements a Breakout/Arkanoid-style brick breaker on top of
// the world loop: walls are segments, bricks and the paddle are rectangles and
// the ball is a circle.
package breakout

import "github.com/vovakirdan/hitbox-arcade/internal/core"

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick is the mutable state of one cell of a level.
type Brick struct {
	Type   BrickType
	Points int
	HP     int
	Alive  bool
	Row    int
	Col    int
}

// Destructible reports whether the brick counts toward clearing the level.
func (b *Brick) Destructible() bool {
	return b.Type == BrickNormal || b.Type == BrickHard
}

// Glyph returns the rune a brick is drawn with.
func (b *Brick) Glyph() rune {
	switch {
	case b.Type == BrickSolid:
		return SolidBrickGlyph
	case b.Type == BrickHard && b.HP > 1:
		return HardBrickGlyph
	default:
		return BrickGlyphs[b.Row%len(BrickGlyphs)]
	}
}

// Color returns the brick color, cycling by row.
func (b *Brick) Color() core.Color {
	if b.Type == BrickSolid {
		return core.ColorGray
	}
	return brickColors[b.Row%len(brickColors)]
}

var brickColors = []core.Color{
	core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan, core.ColorBlue, core.ColorMagenta,
}

// Level is a brick layout.
type Level struct {
	ID     string
	Name   string
	Width  int        // Number of brick columns
	Height int        // Number of brick rows
	Bricks [][]*Brick // [row][col]; nil for empty cells
}

// Remaining returns the number of alive destructible bricks.
func (l *Level) Remaining() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b != nil && b.Alive && b.Destructible() {
				count++
			}
		}
	}
	return count
}

// Each calls fn for every non-empty brick in row-major order.
func (l *Level) Each(fn func(b *Brick)) {
	for _, row := range l.Bricks {
		for _, b := range row {
			if b != nil {
				fn(b)
			}
		}
	}
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (10 points)
//	'.' = empty
//	'1'-'9' = brick with custom points (10 * digit)
//	'H' = hard brick (2 HP, 20 points)
//	'X' = solid/indestructible brick
func ParseLevel(id, name string, lines []string) *Level {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  width,
		Height: len(lines),
		Bricks: make([][]*Brick, len(lines)),
	}

	for row, line := range lines {
		level.Bricks[row] = make([]*Brick, width)
		for col := 0; col < len(line); col++ {
			b := &Brick{Row: row, Col: col, Alive: true, HP: 1, Points: 10}
			switch ch := line[col]; {
			case ch == '#':
				b.Type = BrickNormal
			case ch >= '1' && ch <= '9':
				b.Type = BrickNormal
				b.Points = int(ch-'0') * 10
			case ch == 'H' || ch == 'h':
				b.Type = BrickHard
				b.HP = 2
				b.Points = 20
			case ch == 'X' || ch == 'x':
				b.Type = BrickSolid
				b.Points = 0
			default:
				continue
			}
			level.Bricks[row][col] = b
		}
	}
	return level
}

var builtinLevels = [][]string{
	{
		"####################",
		"####################",
		"44444444444444444444",
		"####################",
	},
	{
		"........####........",
		"......##2222##......",
		"....############....",
		"..######HHHH######..",
		"####################",
	},
	{
		".........##.........",
		".......##33##.......",
		".....###HHHH###.....",
		".......######.......",
		".........##.........",
	},
	{
		"HHHHHHHHHHHHHHHHHHHH",
		"H..................H",
		"H.######XXXX######.H",
		"H.################.H",
		"HHHHHHHHHHHHHHHHHHHH",
	},
	{
		"X..X....X..X....X..X",
		"XXXX....XXXX....XXXX",
		"....................",
		"55555555555555555555",
		"####################",
		"HHHHHHHHHHHHHHHHHHHH",
	},
}

var levelNames = []struct{ id, name string }{
	{"wall", "The Wall"},
	{"pyramid", "Pyramid"},
	{"diamond", "Diamond"},
	{"fortress", "Fortress"},
	{"castle", "Castle"},
}

// GetLevel returns a fresh copy of a built-in level (wraps around).
func GetLevel(index int) *Level {
	i := index % len(builtinLevels)
	return ParseLevel(levelNames[i].id, levelNames[i].name, builtinLevels[i])
}

// LevelCount returns the total number of built-in levels.
func LevelCount() int {
	return len(builtinLevels)
}
