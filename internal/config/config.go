package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Preview window.
const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Voiceover level meter
	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 20

	// Progress bar
	ProgressBarHeight = 8
	ProgressBarMargin = 20
	ProgressHitSlop   = 10

	// SeekStep is how far the arrow keys jump, in seconds.
	SeekStep = 2.0
)

// EnvPrefix prefixes every environment override, e.g. SACREDGEO_FPS.
const EnvPrefix = "SACREDGEO"

// Keys shared by flags, env and the config file.
const (
	KeyQuality   = "quality"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyFPS       = "fps"
	KeyOutput    = "output"
	KeyFormat    = "format"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyVoiceover = "voiceover"
	KeyQuiet     = "quiet"
)

// Quality is a render preset.
type Quality struct {
	Width, Height, FPS int
}

// Qualities are the named presets.
var Qualities = map[string]Quality{
	"low":    {Width: 854, Height: 480, FPS: 15},
	"medium": {Width: 1280, Height: 720, FPS: 30},
	"high":   {Width: 1920, Height: 1080, FPS: 60},
}

// QualityNames lists the presets alphabetically.
func QualityNames() []string {
	names := make([]string, 0, len(Qualities))
	for n := range Qualities {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Config is the resolved configuration of one run.
type Config struct {
	Quality   string
	Width     int
	Height    int
	FPS       int
	OutputDir string
	Format    string
	LogLevel  string
	LogFormat string
	Voiceover string
	Quiet     bool
}

// Sources locates optional config and dotenv files. Empty fields fall back
// to ./sacredgeo.yaml and ./.env, both of which may be absent.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyQuality, "medium")
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyHeight, 0)
	v.SetDefault(KeyFPS, 0)
	v.SetDefault(KeyOutput, "media")
	v.SetDefault(KeyFormat, "png")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyVoiceover, "")
	v.SetDefault(KeyQuiet, false)
}

// Load resolves flags already bound to v, then SACREDGEO_* variables (a
// .env file may provide them), then the config file, then defaults.
// Width, height and fps left at zero come from the quality preset.
func Load(v *viper.Viper, src Sources) (Config, error) {
	envFile := src.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if src.ConfigFile != "" {
		v.SetConfigFile(src.ConfigFile)
	} else {
		v.SetConfigName("sacredgeo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if src.ConfigFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read config: %w", err)
		}
	}

	cfg := Config{
		Quality:   strings.ToLower(v.GetString(KeyQuality)),
		Width:     v.GetInt(KeyWidth),
		Height:    v.GetInt(KeyHeight),
		FPS:       v.GetInt(KeyFPS),
		OutputDir: v.GetString(KeyOutput),
		Format:    strings.ToLower(v.GetString(KeyFormat)),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Voiceover: v.GetString(KeyVoiceover),
		Quiet:     v.GetBool(KeyQuiet),
	}
	if err := cfg.applyQuality(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyQuality() error {
	q, ok := Qualities[c.Quality]
	if !ok {
		return fmt.Errorf("config: unknown quality %q (have %s)", c.Quality, strings.Join(QualityNames(), ", "))
	}
	if c.Width == 0 {
		c.Width = q.Width
	}
	if c.Height == 0 {
		c.Height = q.Height
	}
	if c.FPS == 0 {
		c.FPS = q.FPS
	}
	return nil
}

// Validate rejects sizes and rates that cannot be rendered.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid fps %d", c.FPS))
	}
	if c.Format != "png" && c.Format != "svg" {
		errs = append(errs, fmt.Errorf("config: unknown still format %q", c.Format))
	}
	return errors.Join(errs...)
}
