// Package config provides YAML-based configuration loading for the shooter.
// Every tunable constant of the simulation lives here; the formulas that use
// them are fixed in the game package.
package config

// ShooterConfig contains all configuration for the space shooter.
type ShooterConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Timing     TimingConfig     `yaml:"timing"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Wave       WaveConfig       `yaml:"wave"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// FieldConfig defines the play area in pixels.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame pacing and frame-counted timers.
type TimingConfig struct {
	FPS              int `yaml:"fps"`
	Cooldown         int `yaml:"cooldown"`           // frames between shots
	LossDwellSeconds int `yaml:"loss_dwell_seconds"` // "You Lost!" screen time
}

// PlayerConfig defines the player ship and session resources.
type PlayerConfig struct {
	StartX          int `yaml:"start_x"`
	StartY          int `yaml:"start_y"`
	Health          int `yaml:"health"`
	Velocity        int `yaml:"velocity"`
	Lives           int `yaml:"lives"`
	HealthbarMargin int `yaml:"healthbar_margin"` // reserved below the ship
}

// EnemyConfig defines enemy ships and their spawn area.
type EnemyConfig struct {
	Health           int `yaml:"health"`
	Velocity         int `yaml:"velocity"`
	ShotOffset       int `yaml:"shot_offset"` // shots spawn this far left of the hull
	FireOneIn        int `yaml:"fire_one_in"` // per-frame chance to fire is 1/FireOneIn
	SpawnMinX        int `yaml:"spawn_min_x"`
	SpawnRightMargin int `yaml:"spawn_right_margin"` // spawn x stays below Width - margin
	SpawnMinY        int `yaml:"spawn_min_y"`
	SpawnMaxY        int `yaml:"spawn_max_y"` // exclusive
}

// WaveConfig defines wave size escalation.
type WaveConfig struct {
	InitialLength int `yaml:"initial_length"`
	Increment     int `yaml:"increment"`
}

// ProjectileConfig defines laser speed and damage.
type ProjectileConfig struct {
	Velocity int `yaml:"velocity"`
	Damage   int `yaml:"damage"`
}

// SpawnMaxX returns the exclusive upper bound of enemy spawn x.
func (c ShooterConfig) SpawnMaxX() int {
	return c.Field.Width - c.Enemy.SpawnRightMargin
}

// LossDwellFrames returns how many frames the loss screen stays up.
func (c ShooterConfig) LossDwellFrames() int {
	return c.Timing.LossDwellSeconds * c.Timing.FPS
}
