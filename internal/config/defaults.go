package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  750,
			Height: 750,
		},
		Timing: TimingConfig{
			FPS:              60,
			Cooldown:         30,
			LossDwellSeconds: 3,
		},
		Player: PlayerConfig{
			StartX:          300,
			StartY:          650,
			Health:          100,
			Velocity:        5,
			Lives:           5,
			HealthbarMargin: 15,
		},
		Enemy: EnemyConfig{
			Health:           100,
			Velocity:         1,
			ShotOffset:       15,
			FireOneIn:        120,
			SpawnMinX:        50,
			SpawnRightMargin: 100,
			SpawnMinY:        -1500,
			SpawnMaxY:        -100,
		},
		Wave: WaveConfig{
			InitialLength: 5,
			Increment:     5,
		},
		Projectile: ProjectileConfig{
			Velocity: 5,
			Damage:   10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}

// Marshal encodes cfg as YAML.
func Marshal(cfg ShooterConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
