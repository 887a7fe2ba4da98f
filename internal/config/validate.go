package config

import "fmt"

// ValidationError reports a config value the simulation cannot run with.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the values the game loop divides by, counts with, or
// draws random numbers from. It returns the first problem found.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"timing.fps", c.Timing.FPS},
		{"timing.cooldown", c.Timing.Cooldown},
		{"player.health", c.Player.Health},
		{"player.lives", c.Player.Lives},
		{"enemy.health", c.Enemy.Health},
		{"enemy.fire_one_in", c.Enemy.FireOneIn},
		{"projectile.velocity", c.Projectile.Velocity},
		{"projectile.damage", c.Projectile.Damage},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %d", p.value)}
		}
	}

	nonNegative := []struct {
		field string
		value int
	}{
		{"timing.loss_dwell_seconds", c.Timing.LossDwellSeconds},
		{"player.velocity", c.Player.Velocity},
		{"player.healthbar_margin", c.Player.HealthbarMargin},
		{"enemy.velocity", c.Enemy.Velocity},
		{"wave.initial_length", c.Wave.InitialLength},
		{"wave.increment", c.Wave.Increment},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must not be negative, got %d", p.value)}
		}
	}

	if c.Wave.InitialLength+c.Wave.Increment == 0 {
		return ValidationError{Field: "wave.increment", Message: "waves would never contain enemies"}
	}
	if c.SpawnMaxX() <= c.Enemy.SpawnMinX {
		return ValidationError{
			Field:   "enemy.spawn_min_x",
			Message: fmt.Sprintf("spawn x range [%d, %d) is empty", c.Enemy.SpawnMinX, c.SpawnMaxX()),
		}
	}
	if c.Enemy.SpawnMaxY <= c.Enemy.SpawnMinY {
		return ValidationError{
			Field:   "enemy.spawn_min_y",
			Message: fmt.Sprintf("spawn y range [%d, %d) is empty", c.Enemy.SpawnMinY, c.Enemy.SpawnMaxY),
		}
	}
	return nil
}
