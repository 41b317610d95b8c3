package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// SetupLogging applies the configured level and sinks to every logger.
// Stdout belongs to the game, so logs go to the rotating file and, when
// asked, to stderr.
func SetupLogging(c *Config, loggers ...*logrus.Logger) error {
	level, err := c.Level()
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	var hook logrus.Hook
	if c.LogFile != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", c.LogFile, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		if hook != nil {
			log.AddHook(hook)
		}
		if c.LogStderr {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development})
		} else {
			log.SetOutput(io.Discard)
		}
	}
	return nil
}
