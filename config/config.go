package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the optional settings file looked up in the config directory.
const FileName = "autobahx.cfg.json"

// EnvPrefix is prepended to environment overrides, e.g. AUTOBAHX_SEED.
const EnvPrefix = "AUTOBAHX"

// Settings holds the runtime options of the desktop shell. The simulation
// constants are not runtime configurable.
type Settings struct {
	LogLevel string              `mapstructure:"logLevel"`
	Window   WindowConfig        `mapstructure:"window"`
	TPS      int                 `mapstructure:"tps"`
	Seed     uint64              `mapstructure:"seed"`
	Metrics  MetricsConfig       `mapstructure:"metrics"`
	Keys     map[string][]string `mapstructure:"keys"` // action name -> key names
}

// WindowConfig holds desktop window settings
type WindowConfig struct {
	Title string  `mapstructure:"title"`
	Scale float64 `mapstructure:"scale"`
}

// MetricsConfig toggles the OpenTelemetry instruments
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("window.scale", 1.0)
	v.SetDefault("tps", DefaultTPS)
	v.SetDefault("seed", 0)
	v.SetDefault("metrics.enabled", true)
}

// Flags registers the command line flags understood by Load.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", ".", "directory containing "+FileName)
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Uint64("seed", 0, "traffic seed, 0 picks one from the clock")
}

// Load reads settings from defaults, the optional JSON file in configDir,
// AUTOBAHX_* environment variables and the given flags, in increasing order
// of precedence. A missing file is not an error. fs may be nil.
func Load(configDir string, fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if f := fs.Lookup("log-level"); f != nil && f.Changed {
			if err := v.BindPFlag("logLevel", f); err != nil {
				return Settings{}, fmt.Errorf("error binding flag %s: %w", f.Name, err)
			}
		}
		if f := fs.Lookup("seed"); f != nil && f.Changed {
			if err := v.BindPFlag("seed", f); err != nil {
				return Settings{}, fmt.Errorf("error binding flag %s: %w", f.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.TPS <= 0 {
		return Settings{}, fmt.Errorf("invalid tps %d: must be positive", s.TPS)
	}
	if s.Window.Scale <= 0 {
		return Settings{}, fmt.Errorf("invalid window.scale %v: must be positive", s.Window.Scale)
	}
	return s, nil
}
