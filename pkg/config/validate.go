package config

import (
	"fmt"
	"regexp"
	"time"
)

// ValidatableConfig is anything that can report its own configuration errors.
type ValidatableConfig interface {
	Validate() []error
}

// Validate runs Validate on every cfg and returns all errors found.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}

// Bounds for check_interval.
const (
	MinCheckInterval = time.Second
	MaxCheckInterval = 24 * time.Hour
)

const maxSessionIDLen = 128

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Validate reports every problem with c. An empty session id is allowed.
func (c *Config) Validate() []error {
	var errors []error

	if err := validatePort(c.Port); err != nil {
		errors = append(errors, fmt.Errorf("'%s': %s", KeyPort, err))
	}

	if err := validateSessionID(c.SessionID); err != nil {
		errors = append(errors, fmt.Errorf("'%s': %s", KeySessionID, err))
	}

	if c.CheckInterval < MinCheckInterval || c.CheckInterval > MaxCheckInterval {
		errors = append(errors, fmt.Errorf("'%s': %s not in [%s, %s]", KeyCheckInterval, c.CheckInterval, MinCheckInterval, MaxCheckInterval))
	}

	return errors
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%d not in [1, 65535]", port)
	}

	return nil
}

func validateSessionID(id string) error {
	if id == "" {
		return nil
	}

	if len(id) > maxSessionIDLen {
		return fmt.Errorf("longer than %d characters", maxSessionIDLen)
	}

	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("%q may only contain letters, digits, '.', '_' and '-'", id)
	}

	return nil
}
