package controller

import "encoding/json"

// Config is the root run configuration. Every field is optional; a zero
// value JSON document is valid and every Get* accessor below falls back to
// the documented default, matching the pointer-optional pattern used
// throughout this project's tuning configuration.
type Config struct {
	RoomType     *string `json:"room_type,omitempty"`
	CleaningMode *string `json:"cleaning_mode,omitempty"`
	MaxSteps     *int    `json:"max_steps,omitempty"`
	EnableSLAM   *bool   `json:"enable_slam,omitempty"`
	RandomSeed   *int64  `json:"random_seed,omitempty"`

	BatteryCapacity *float64 `json:"battery_capacity,omitempty"`
	CleaningWidth   *float64 `json:"cleaning_width,omitempty"`
	Speed           *float64 `json:"speed,omitempty"`
	SensorRange     *float64 `json:"sensor_range,omitempty"`
	ChargeRate      *float64 `json:"charge_rate,omitempty"`
	TickRate        *float64 `json:"tick_rate,omitempty"`

	SLAMResolution   *float64 `json:"slam_resolution,omitempty"`
	SLAMNumParticles *int     `json:"slam_num_particles,omitempty"`

	MaxStuckAttempts *int `json:"max_stuck_attempts,omitempty"`
}

// EmptyConfig returns a Config with every field unset; every Get* accessor
// then reports its default.
func EmptyConfig() *Config {
	return &Config{}
}

// ParseConfig decodes a JSON document into a Config. Fields absent from the
// document keep their zero (nil) value and fall back to defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := EmptyConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetRoomType returns the configured room type or "furnished".
func (c *Config) GetRoomType() string {
	if c.RoomType == nil {
		return "furnished"
	}
	return *c.RoomType
}

// GetCleaningMode returns the configured cleaning mode or "auto".
func (c *Config) GetCleaningMode() string {
	if c.CleaningMode == nil {
		return "auto"
	}
	return *c.CleaningMode
}

// GetMaxSteps returns the configured step budget or 10000.
func (c *Config) GetMaxSteps() int {
	if c.MaxSteps == nil {
		return 10000
	}
	return *c.MaxSteps
}

// GetEnableSLAM returns whether SLAM is enabled, defaulting to true.
func (c *Config) GetEnableSLAM() bool {
	if c.EnableSLAM == nil {
		return true
	}
	return *c.EnableSLAM
}

// GetRandomSeed returns the configured seed and whether one was set. A
// caller that needs a deterministic run when none was configured should
// still seed explicitly — this accessor does not invent one.
func (c *Config) GetRandomSeed() (int64, bool) {
	if c.RandomSeed == nil {
		return 0, false
	}
	return *c.RandomSeed, true
}

// GetBatteryCapacity returns the configured battery capacity or 100.0.
func (c *Config) GetBatteryCapacity() float64 {
	if c.BatteryCapacity == nil {
		return 100.0
	}
	return *c.BatteryCapacity
}

// GetCleaningWidth returns the configured cleaning width or 0.3.
func (c *Config) GetCleaningWidth() float64 {
	if c.CleaningWidth == nil {
		return 0.3
	}
	return *c.CleaningWidth
}

// GetSpeed returns the configured speed or 0.2.
func (c *Config) GetSpeed() float64 {
	if c.Speed == nil {
		return 0.2
	}
	return *c.Speed
}

// GetSensorRange returns the configured sensor range or 2.0.
func (c *Config) GetSensorRange() float64 {
	if c.SensorRange == nil {
		return 2.0
	}
	return *c.SensorRange
}

// GetChargeRate returns the configured per-tick charge rate or 10.0.
func (c *Config) GetChargeRate() float64 {
	if c.ChargeRate == nil {
		return 10.0
	}
	return *c.ChargeRate
}

// GetTickRate returns the configured simulated seconds per tick or 0.1.
func (c *Config) GetTickRate() float64 {
	if c.TickRate == nil {
		return 0.1
	}
	return *c.TickRate
}

// GetSLAMResolution returns the configured SLAM cell resolution or 0.05.
func (c *Config) GetSLAMResolution() float64 {
	if c.SLAMResolution == nil {
		return 0.05
	}
	return *c.SLAMResolution
}

// GetSLAMNumParticles returns the configured particle count or 100.
func (c *Config) GetSLAMNumParticles() int {
	if c.SLAMNumParticles == nil {
		return 100
	}
	return *c.SLAMNumParticles
}

// GetMaxStuckAttempts returns the configured stuck-retry budget or 10.
func (c *Config) GetMaxStuckAttempts() int {
	if c.MaxStuckAttempts == nil {
		return 10
	}
	return *c.MaxStuckAttempts
}
