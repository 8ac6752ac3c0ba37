package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every bootstrap environment variable,
// e.g. FLASHFORGE_ADVANCE_DELAY=1s
const EnvPrefix = "FLASHFORGE"

// ConfigFileEnv names an explicit bootstrap file
const ConfigFileEnv = EnvPrefix + "_CONFIG"

// Bootstrap defaults
const (
	DefaultAvatarMorph   = 800 * time.Millisecond
	DefaultWaveformPulse = 1500 * time.Millisecond
	DefaultWindowWidth   = 1000
	DefaultWindowHeight  = 720
)

// Config holds values read once at startup from the environment, a .env file
// and an optional flashforge.yaml
type Config struct {
	SeedPath      string        `mapstructure:"seed_path"`
	Language      string        `mapstructure:"language" validate:"required,oneof=system en ru pt"`
	AdvanceDelay  time.Duration `mapstructure:"advance_delay" validate:"gte=200ms,lte=5s"`
	AvatarMorph   time.Duration `mapstructure:"avatar_morph" validate:"gt=0"`
	WaveformPulse time.Duration `mapstructure:"waveform_pulse" validate:"gt=0"`
	WindowWidth   int           `mapstructure:"window_width" validate:"gte=320,lte=7680"`
	WindowHeight  int           `mapstructure:"window_height" validate:"gte=240,lte=4320"`
}

var bootstrapKeys = []string{
	"seed_path",
	"language",
	"advance_delay",
	"avatar_morph",
	"waveform_pulse",
	"window_width",
	"window_height",
}

// Load reads the bootstrap configuration. A .env file in the working
// directory is loaded first when present; environment variables take
// precedence over flashforge.yaml.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}
	return LoadFile(os.Getenv(ConfigFileEnv))
}

// LoadFile is Load with an explicit config file. An empty path searches the
// working directory for flashforge.yaml.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("seed_path", "")
	v.SetDefault("language", DefaultLanguage)
	v.SetDefault("advance_delay", time.Duration(DefaultAdvanceDelayMs)*time.Millisecond)
	v.SetDefault("avatar_morph", DefaultAvatarMorph)
	v.SetDefault("waveform_pulse", DefaultWaveformPulse)
	v.SetDefault("window_width", DefaultWindowWidth)
	v.SetDefault("window_height", DefaultWindowHeight)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("flashforge")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Printf("using config file %s", v.ConfigFileUsed())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range bootstrapKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log.Printf("config: language=%s advance_delay=%s window=%dx%d seed=%q",
		cfg.Language, cfg.AdvanceDelay, cfg.WindowWidth, cfg.WindowHeight, cfg.SeedPath)
	return &cfg, nil
}
