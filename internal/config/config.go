// Package config provides YAML-based game configuration loading, scene
// definitions and difficulty management for the arcade.
package config

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines ball and paddle motion. Speeds are cells per tick.
type BreakoutPhysics struct {
	BallSpeed      float64 `yaml:"ball_speed"`
	MaxBallSpeed   float64 `yaml:"max_ball_speed"`
	BallRadius     float64 `yaml:"ball_radius"`
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // degrees from vertical at the paddle edge
}

// BreakoutPaddle defines paddle dimensions.
type BreakoutPaddle struct {
	Width int `yaml:"width"`
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives         int     `yaml:"lives"`
	BrickPoints   int     `yaml:"brick_points"`
	SpeedUpEveryN int     `yaml:"speed_up_every_n"` // bricks destroyed between speed-ups
	SpeedUpAmount float64 `yaml:"speed_up_amount"`
	ServeDelay    int     `yaml:"serve_delay"` // ticks after a miss before serving is allowed
}

// ShooterConfig contains all configuration for the top-down shooter.
type ShooterConfig struct {
	Physics    ShooterPhysics   `yaml:"physics"`
	Player     ShooterPlayer    `yaml:"player"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Scene      string           `yaml:"scene"` // path to a scene file; empty uses the built-in arena
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPhysics defines movement speeds in cells per tick.
type ShooterPhysics struct {
	PlayerSpeed       float64 `yaml:"player_speed"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	EnemySpeed        float64 `yaml:"enemy_speed"`
	ObliqueReflection bool    `yaml:"oblique_reflection"` // mirror off slanted walls instead of failing
}

// ShooterPlayer defines the player's body and weapon.
type ShooterPlayer struct {
	Radius       float64 `yaml:"radius"`
	Lives        int     `yaml:"lives"`
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
	Invulnerable int     `yaml:"invulnerable"`  // ticks of protection after a hit
}

// ShooterGameplay defines enemies and scoring.
type ShooterGameplay struct {
	EnemyPoints  int     `yaml:"enemy_points"`
	PickupPoints int     `yaml:"pickup_points"`
	SpawnEvery   int     `yaml:"spawn_every"` // ticks between enemy spawns
	MinSpawn     int     `yaml:"min_spawn"`   // floor for spawn_every as difficulty rises
	MaxEnemies   int     `yaml:"max_enemies"`
	Ricochets    int     `yaml:"ricochets"`   // wall bounces before a bullet disappears
	BulletLife   int     `yaml:"bullet_life"` // ticks before a bullet expires
	Retarget     int     `yaml:"retarget"`    // ticks between enemy course corrections
	EnemyScale   float64 `yaml:"enemy_scale"` // multiplier applied to enemy templates
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply modifies the difficulty block for a preset.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
