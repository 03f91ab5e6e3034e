package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/beat-judge/config"
)

func TestLoadConfigFlagsOverride(t *testing.T) {
	t.Setenv(config.EnvBPM, "90")

	cfg, err := loadConfig(&options{bpm: 150, mute: true})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Audio.BPM != 150 {
		t.Errorf("Expected flag BPM 150 over env, got %d", cfg.Audio.BPM)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected --mute to disable audio")
	}
}

func TestLoadConfigEnvWithoutFlag(t *testing.T) {
	t.Setenv(config.EnvBPM, "90")

	cfg, err := loadConfig(&options{})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Audio.BPM != 90 {
		t.Errorf("Expected env BPM 90, got %d", cfg.Audio.BPM)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := loadConfig(&options{bpm: 900}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for out of range BPM, got %v", err)
	}

	if _, err := loadConfig(&options{configPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judge.yaml")
	body := "combo_max: 5\naudio:\n  enabled: true\n  bpm: 100\n  volume: 0.2\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(&options{configPath: path})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ComboMax != 5 || cfg.Audio.BPM != 100 {
		t.Errorf("Expected file values, got combo_max %d bpm %d", cfg.ComboMax, cfg.Audio.BPM)
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "bpm", "debug", "metrics-addr", "mute", "trace", "no-record"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag --%s", name)
		}
	}
}
