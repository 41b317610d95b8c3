package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minefield/internal/mines"
)

const envPrefix = "MINEFIELD"

type Config struct {
	Difficulty  string `mapstructure:"difficulty"`
	Debug       bool   `mapstructure:"debug"`
	Development bool   `mapstructure:"development"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	LogStderr   bool   `mapstructure:"log_stderr"`
}

func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "minefield.log")
}

// Load merges defaults, an optional JSON config file, MINEFIELD_* environment
// variables and command-line flags, later sources taking precedence.
func Load(name string, args []string) (*Config, error) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file path")
	flags.StringP("difficulty", "d", "", "easy, medium or hard (asked interactively when empty)")
	flags.Bool("debug", false, "use the fixed debug seed for a reproducible board")
	flags.Bool("development", false, "development mode (debug logging)")
	flags.String("log-file", DefaultLogFile(), "log file path, empty to disable")
	flags.String("log-level", "", "log level (default info, debug in development)")
	flags.Bool("log-stderr", false, "also write logs to stderr")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"difficulty":  "difficulty",
		"debug":       "debug",
		"development": "development",
		"log_file":    "log-file",
		"log_level":   "log-level",
		"log_stderr":  "log-stderr",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("unable to bind flag %s: %w", flag, err)
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	return &cfg, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"difficulty":  c.Difficulty,
		"debug":       c.Debug,
		"development": c.Development,
		"log_file":    c.LogFile,
		"log_level":   c.LogLevel,
		"log_stderr":  c.LogStderr,
	}
}

func (c Config) Seed() mines.SeedPolicy {
	if c.Debug {
		return mines.FixedSeed
	}
	return mines.RandomSeed
}

// ParseDifficulty reports ok == false when no difficulty was configured and
// the player should be asked.
func (c Config) ParseDifficulty() (d mines.Difficulty, ok bool, err error) {
	if strings.TrimSpace(c.Difficulty) == "" {
		return 0, false, nil
	}
	d, err = mines.ParseDifficulty(c.Difficulty)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}

func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel != "" {
		return logrus.ParseLevel(c.LogLevel)
	}
	if c.Development {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}
