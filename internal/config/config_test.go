package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func noEnv(t *testing.T) Sources {
	return Sources{EnvFile: filepath.Join(t.TempDir(), "missing.env")}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(viper.New(), noEnv(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.FPS != 30 {
		t.Fatalf("medium preset not applied: %+v", cfg)
	}
	if cfg.OutputDir != "media" || cfg.Format != "png" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sacredgeo.yaml")
	if err := os.WriteFile(file, []byte("quality: high\nfps: 24\noutput: out\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SACREDGEO_OUTPUT", "from-env")
	t.Setenv("SACREDGEO_LOG_LEVEL", "debug")

	v := viper.New()
	v.Set(KeyFPS, 12)
	src := noEnv(t)
	src.ConfigFile = file
	cfg, err := Load(v, src)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Fatalf("high preset not applied: %+v", cfg)
	}
	if cfg.FPS != 12 {
		t.Fatalf("explicit fps lost: %d", cfg.FPS)
	}
	if cfg.OutputDir != "from-env" || cfg.LogLevel != "debug" {
		t.Fatalf("env overrides lost: %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	env := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(env, []byte("SACREDGEO_QUALITY=low\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SACREDGEO_QUALITY") })
	cfg, err := Load(viper.New(), Sources{EnvFile: env})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Quality != "low" || cfg.Width != 854 || cfg.FPS != 15 {
		t.Fatalf("dotenv not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"quality", KeyQuality, "ultra"},
		{"fps", KeyFPS, -5},
		{"format", KeyFormat, "gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			if _, err := Load(v, noEnv(t)); err == nil {
				t.Fatalf("%s=%v should fail", tt.key, tt.val)
			}
		})
	}
}

func TestQualityNames(t *testing.T) {
	got := QualityNames()
	if len(got) != 3 || got[0] != "high" || got[2] != "medium" {
		t.Fatalf("QualityNames() = %v", got)
	}
}
