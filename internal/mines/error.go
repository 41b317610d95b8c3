package mines

import "errors"

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrGameOver    = errors.New("game is over")
)

// ConfigError means a board could not be built from the requested settings.
type ConfigError struct {
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return "invalid board configuration: " + e.Reason
}
