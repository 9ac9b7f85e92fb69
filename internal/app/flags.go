package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cell     int
	Interval time.Duration
	TPS      int
	Seed     int64
	Running  bool
	File     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Cell: 16, Interval: life.Interval, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels, border included")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids (0 uses the clock)")
	fs.BoolVar(&c.Running, "running", c.Running, "start the simulation immediately")
	fs.StringVar(&c.File, "config", c.File, "JSON file with default settings")
}

// Load parses args into fs, applies the JSON file named by -config if any and
// parses args again so explicit flags win over file values.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Load] failed to parse flags")
	}
	if c.File != "" {
		if err := c.LoadFile(c.File); err != nil {
			return err
		}
		if err := fs.Parse(args); err != nil {
			return errors.Wrap(err, "[Config.Load] failed to parse flags")
		}
	}
	return c.Validate()
}

type fileConfig struct {
	Cell     *int   `json:"cell"`
	Interval string `json:"interval"`
	TPS      *int   `json:"tps"`
	Seed     *int64 `json:"seed"`
	Running  *bool  `json:"running"`
}

// LoadFile overlays the settings present in a JSON file.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	var fc fileConfig
	if err = json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	if fc.Cell != nil {
		c.Cell = *fc.Cell
	}
	if fc.Interval != "" {
		if c.Interval, err = time.ParseDuration(fc.Interval); err != nil {
			return errors.Wrapf(err, "[LoadFile] bad interval in %+v", filename)
		}
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Running != nil {
		c.Running = *fc.Running
	}
	return nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Cell < 2:
		return errors.Errorf("[Validate] cell size %d is below 2", c.Cell)
	case c.Interval <= 0:
		return errors.Errorf("[Validate] interval %v must be positive", c.Interval)
	case c.TPS <= 0:
		return errors.Errorf("[Validate] tps %d must be positive", c.TPS)
	}
	return nil
}
