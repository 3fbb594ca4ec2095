package directives

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every ConfigError via errors.Is.
var ErrConfig = errors.New("invalid world configuration")

// ConfigError reports a value in the game state that the compiler cannot map
// to guidance text. Compilation never falls back to a default in this case.
type ConfigError struct {
	Field  string // e.g. "world_config.difficulty"
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
