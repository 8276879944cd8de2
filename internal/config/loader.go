package config

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Default is the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func Load(path string) (*Config, error) {
	var c Config
	if err := loadYAML(path, &c); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Stats.Defaults.HitPoints == 0 {
		c.Stats.Defaults.HitPoints = DefaultHitPoints
	}
	if c.Stats.Defaults.AttackPower == 0 {
		c.Stats.Defaults.AttackPower = DefaultAttackPower
	}
	if c.Search.StartPower == 0 {
		c.Search.StartPower = DefaultStartPower
	}
	if c.Search.MaxPower == 0 {
		c.Search.MaxPower = DefaultMaxPower
	}
	if c.Search.Workers == 0 {
		c.Search.Workers = DefaultWorkers
	}
	if c.Display.Speed == 0 {
		c.Display.Speed = DefaultSpeed
	}
	if c.Display.UI == "" {
		c.Display.UI = UIs[0]
	}
}

func (c *Config) Validate() error {
	if c.Stats.Defaults.HitPoints < 0 || c.Stats.Defaults.AttackPower < 0 {
		return errors.New("default stats must not be negative")
	}
	for name, st := range c.Stats.Species {
		if st.HitPoints < 0 || st.AttackPower < 0 {
			return errors.Errorf("stats for %q must not be negative", name)
		}
	}
	if c.Search.StartPower < 1 {
		return errors.Errorf("search start power %d must be positive", c.Search.StartPower)
	}
	if c.Search.MaxPower < c.Search.StartPower {
		return errors.Errorf("search max power %d is below start power %d", c.Search.MaxPower, c.Search.StartPower)
	}
	if c.Search.Workers < 1 {
		return errors.Errorf("search workers %d must be positive", c.Search.Workers)
	}
	if c.Display.Speed < 1 || c.Display.Speed > MaxSpeed {
		return errors.Errorf("display speed %d out of range 1..%d", c.Display.Speed, MaxSpeed)
	}
	if !slices.Contains(UIs, c.Display.UI) {
		return errors.Errorf("unknown display ui %q", c.Display.UI)
	}
	return nil
}
