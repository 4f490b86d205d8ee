package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/setanarut/pixelkernel"
	"github.com/setanarut/pixelkernel/logging"
	"gopkg.in/yaml.v3"
)

// Config holds default parameters for every pipeline entry point.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Workers  int      `yaml:"workers"`
	Equalize Equalize `yaml:"equalize"`
	Rank     Rank     `yaml:"rank"`
	Opening  Opening  `yaml:"opening"`
	Fill     Fill     `yaml:"fill"`
}

type Equalize struct {
	StdDeviation float64 `yaml:"std_deviation"`
	Classes      int     `yaml:"classes"`
}

type Rank struct {
	MaskSize int `yaml:"mask_size"`
	Order    int `yaml:"order"`
}

type Opening struct {
	Angle  int `yaml:"angle"`
	Length int `yaml:"length"`
}

type Fill struct {
	Threshold int `yaml:"threshold"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Workers:  4,
		Equalize: Equalize{StdDeviation: 0.15, Classes: 8},
		Rank:     Rank{MaskSize: 3, Order: 5},
		Opening:  Opening{Angle: 45, Length: 9},
		Fill:     Fill{Threshold: 128},
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing file
// returns the defaults unchanged. The result is not validated, so callers can
// apply overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the kernel would refuse.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers %d must be positive", c.Workers)
	}
	ops := []pixelkernel.Operation{
		c.EqualizeOp(), c.RankOp(), c.OpeningOp(), c.FillOp(),
	}
	for _, op := range ops {
		if err := op.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) EqualizeOp() pixelkernel.EqualizeTowardGaussian {
	return pixelkernel.EqualizeTowardGaussian{StdDeviation: c.Equalize.StdDeviation, Classes: c.Equalize.Classes}
}

func (c *Config) RankOp() pixelkernel.RankFilter {
	return pixelkernel.RankFilter{MaskSize: c.Rank.MaskSize, Order: c.Rank.Order}
}

func (c *Config) OpeningOp() pixelkernel.LineOpening {
	return pixelkernel.LineOpening{Angle: c.Opening.Angle, Length: c.Opening.Length}
}

func (c *Config) FillOp() pixelkernel.FillHoles {
	return pixelkernel.FillHoles{Threshold: c.Fill.Threshold}
}
