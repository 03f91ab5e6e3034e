package config

import (
	"os"
	"strconv"
)

// Environment overrides
const (
	EnvBPM          = "BEAT_JUDGE_BPM"
	EnvTolPerfectMS = "BEAT_JUDGE_TOL_PERFECT_MS"
	EnvTolRegularMS = "BEAT_JUDGE_TOL_REGULAR_MS"
	EnvTolGoofyMS   = "BEAT_JUDGE_TOL_GOOFY_MS"
	EnvComboMax     = "BEAT_JUDGE_COMBO_MAX"
	EnvDamageStep   = "BEAT_JUDGE_DAMAGE_STEP"
	EnvVolume       = "BEAT_JUDGE_VOLUME" // 0-100
	EnvAudioEnabled = "BEAT_JUDGE_AUDIO_ENABLED"
)

// ApplyEnv overrides fields from environment variables
// Malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBPM); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.Audio.BPM = i
		}
	}

	if ms, ok := envMillis(EnvTolPerfectMS); ok {
		c.Tolerance.Perfect = ms
	}
	if ms, ok := envMillis(EnvTolRegularMS); ok {
		c.Tolerance.Regular = ms
	}
	if ms, ok := envMillis(EnvTolGoofyMS); ok {
		c.Tolerance.Goofy = ms
	}

	if v := os.Getenv(EnvComboMax); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.ComboMax = i
		}
	}

	if v := os.Getenv(EnvDamageStep); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.DamagePerComboStep = f
		}
	}

	// Volume (0-100 converted to 0.0-1.0)
	if v := os.Getenv(EnvVolume); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			vol := float64(i) / 100.0
			if vol < 0 {
				vol = 0
			}
			if vol > 1 {
				vol = 1
			}
			c.Audio.Volume = vol
		}
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
}

// envMillis reads an integer millisecond value and returns seconds
func envMillis(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return float64(ms) / 1000.0, true
}
