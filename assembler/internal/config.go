package internal

import "tlog.app/go/errors"

const (
	defaultMaxLineLength = 1024
	// defaultVariableBase is the first RAM address past R0..R15.
	defaultVariableBase = 16
)

type Config struct {
	// MaxLineLength bounds a single source line in bytes, terminator excluded.
	MaxLineLength int
	// VariableBase is the RAM address given to the first user variable.
	VariableBase uint16
}

func DefaultConfig() Config {
	return Config{
		MaxLineLength: defaultMaxLineLength,
		VariableBase:  defaultVariableBase,
	}
}

// Validate rejects a variable base an A instruction cannot address.
func (cfg Config) Validate() error {
	if cfg.VariableBase > maxConstant {
		return errors.New("variable base %d out of range 0..%d", cfg.VariableBase, maxConstant)
	}
	return nil
}

func (cfg Config) withDefaults() Config {
	if cfg.MaxLineLength <= 0 {
		cfg.MaxLineLength = defaultMaxLineLength
	}
	if cfg.VariableBase == 0 {
		cfg.VariableBase = defaultVariableBase
	}
	return cfg
}
