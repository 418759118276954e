package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:      0.3,
			MaxBallSpeed:   0.8,
			BallRadius:     0.5,
			PaddleSpeed:    1.0,
			MaxBounceAngle: 60,
		},
		Paddle: BreakoutPaddle{
			Width: 8,
		},
		Gameplay: BreakoutGameplay{
			Lives:         3,
			BrickPoints:   10,
			SpeedUpEveryN: 10,
			SpeedUpAmount: 0.02,
			ServeDelay:    30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Physics: ShooterPhysics{
			PlayerSpeed:       0.5,
			BulletSpeed:       1.2,
			EnemySpeed:        0.15,
			ObliqueReflection: true,
		},
		Player: ShooterPlayer{
			Radius:       0.6,
			Lives:        3,
			FireCooldown: 8,
			Invulnerable: 90,
		},
		Gameplay: ShooterGameplay{
			EnemyPoints:  25,
			PickupPoints: 50,
			SpawnEvery:   120,
			MinSpawn:     30,
			MaxEnemies:   6,
			Ricochets:    1,
			BulletLife:   90,
			Retarget:     45,
			EnemyScale:   1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
