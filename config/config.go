package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/beat-judge/combo"
	"github.com/lixenwraith/beat-judge/core"
	"github.com/lixenwraith/beat-judge/judge"
	"github.com/lixenwraith/beat-judge/parameter"
)

// Config is the load-once judge configuration
// Immutable after Build; the judge never re-reads it
type Config struct {
	Tolerance          ToleranceConfig `yaml:"tolerance"`
	BarLength          int             `yaml:"bar_length"`
	ComboMax           int             `yaml:"combo_max" validate:"gte=0,lte=1000"`
	DamagePerComboStep float64         `yaml:"damage_per_combo_step" validate:"gte=0"`
	Audio              AudioConfig     `yaml:"audio"`
	Combos             []ComboConfig   `yaml:"combos" validate:"dive"`
}

// ToleranceConfig holds the tier upper bounds in seconds
type ToleranceConfig struct {
	Perfect float64 `yaml:"perfect" validate:"gte=0"`
	Regular float64 `yaml:"regular" validate:"gte=0"`
	Goofy   float64 `yaml:"goofy" validate:"gte=0"`
}

// AudioConfig controls the metronome beat source
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	BPM     int     `yaml:"bpm" validate:"gte=40,lte=240"`
	Volume  float64 `yaml:"volume" validate:"gte=0,lte=1"`
}

// ComboConfig is the declarative form of combo.Definition
type ComboConfig struct {
	ID         string            `yaml:"id" validate:"required"`
	Keys       []string          `yaml:"keys"`
	Action     string            `yaml:"action" validate:"required"`
	Weapon     int               `yaml:"weapon,omitempty" validate:"gte=0"`
	Gain       int               `yaml:"gain" validate:"gte=0"`
	Bonus      float64           `yaml:"bonus,omitempty" validate:"gte=0"`
	Projectile *ProjectileConfig `yaml:"projectile,omitempty"`
}

// ProjectileConfig names the prefab a combo spawns
type ProjectileConfig struct {
	Prefab string  `yaml:"prefab" validate:"required"`
	Speed  float64 `yaml:"speed,omitempty" validate:"gte=0"`
}

// Rules is the immutable runtime form produced by Build
type Rules struct {
	Thresholds judge.Thresholds
	Table      *combo.Table
	BarLength  int
	ComboMax   int
	Step       float64
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Tolerance: ToleranceConfig{
			Perfect: parameter.DefaultTolerancePerfect.Seconds(),
			Regular: parameter.DefaultToleranceRegular.Seconds(),
			Goofy:   parameter.DefaultToleranceGoofy.Seconds(),
		},
		BarLength:          parameter.BarLength,
		ComboMax:           parameter.DefaultComboMax,
		DamagePerComboStep: parameter.DefaultDamagePerComboStep,
		Audio: AudioConfig{
			Enabled: true,
			BPM:     parameter.DefaultBPM,
			Volume:  parameter.DefaultClickLevel,
		},
		Combos: FromDefinitions(combo.DefaultDefinitions()),
	}
}

// LoadFile decodes a YAML file over the defaults
// A combos list in the file replaces the built-in table in file order
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Thresholds converts the second-based tolerances
func (c *Config) Thresholds() judge.Thresholds {
	return judge.Thresholds{
		Perfect: seconds(c.Tolerance.Perfect),
		Regular: seconds(c.Tolerance.Regular),
		Goofy:   seconds(c.Tolerance.Goofy),
	}
}

// Definitions converts the declarative combos in order
func (c *Config) Definitions() ([]combo.Definition, error) {
	defs := make([]combo.Definition, 0, len(c.Combos))
	for i, cc := range c.Combos {
		def, err := cc.definition()
		if err != nil {
			return nil, fmt.Errorf("combo #%d %q: %w", i, cc.ID, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Build validates and produces the runtime rules
func (c *Config) Build() (*Rules, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	defs, err := c.Definitions()
	if err != nil {
		return nil, err
	}
	table, err := combo.NewTable(defs)
	if err != nil {
		return nil, err
	}

	return &Rules{
		Thresholds: c.Thresholds(),
		Table:      table,
		BarLength:  c.BarLength,
		ComboMax:   c.ComboMax,
		Step:       c.DamagePerComboStep,
	}, nil
}

func (cc ComboConfig) definition() (combo.Definition, error) {
	def := combo.Definition{
		ID:              cc.ID,
		ComboGain:       cc.Gain,
		BonusMultiplier: cc.Bonus,
	}

	if len(cc.Keys) != parameter.SequenceLength {
		return def, combo.ErrSequenceLength
	}
	for i, name := range cc.Keys {
		k, ok := core.ParseKey(name)
		if !ok {
			return def, fmt.Errorf("%w: %q", combo.ErrUnknownKey, name)
		}
		def.Keys[i] = k
	}

	kind, ok := combo.ParseActionKind(cc.Action)
	if !ok {
		return def, fmt.Errorf("%w: %q", combo.ErrUnknownAction, cc.Action)
	}
	def.Action = combo.Action{Kind: kind, Weapon: cc.Weapon}

	if cc.Projectile != nil {
		def.Projectile = &combo.ProjectileSpec{Prefab: cc.Projectile.Prefab, Speed: cc.Projectile.Speed}
	}
	return def, nil
}

// FromDefinitions converts definitions to their declarative form
func FromDefinitions(defs []combo.Definition) []ComboConfig {
	out := make([]ComboConfig, 0, len(defs))
	for _, d := range defs {
		cc := ComboConfig{
			ID:     d.ID,
			Keys:   make([]string, 0, len(d.Keys)),
			Action: d.Action.Kind.String(),
			Weapon: d.Action.Weapon,
			Gain:   d.ComboGain,
			Bonus:  d.BonusMultiplier,
		}
		for _, k := range d.Keys {
			cc.Keys = append(cc.Keys, k.String())
		}
		if d.Projectile != nil {
			cc.Projectile = &ProjectileConfig{Prefab: d.Projectile.Prefab, Speed: d.Projectile.Speed}
		}
		out = append(out, cc)
	}
	return out
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
