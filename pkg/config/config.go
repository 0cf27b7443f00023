// Package config holds the smolclaw configuration model: the supported keys,
// their defaults, string conversion, validation and file/env loading.
package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Config is the effective smolclaw configuration.
type Config struct {
	Port           int
	SessionID      string
	CheckInterval  time.Duration
	AutonomousMode bool
}

// Default values applied before any file or environment overrides.
const (
	DefaultPort          = 8080
	DefaultCheckInterval = 30 * time.Second
)

// Default returns a configuration populated with default values.
// The session id is left empty; see EnsureSessionID.
func Default() *Config {
	return &Config{
		Port:           DefaultPort,
		SessionID:      "",
		CheckInterval:  DefaultCheckInterval,
		AutonomousMode: false,
	}
}

// Get returns the canonical string form of the value stored under key.
func (c *Config) Get(key Key) (string, error) {
	switch key {
	case KeyPort:
		return strconv.Itoa(c.Port), nil
	case KeySessionID:
		return c.SessionID, nil
	case KeyCheckInterval:
		return c.CheckInterval.String(), nil
	case KeyAutonomousMode:
		return strconv.FormatBool(c.AutonomousMode), nil
	default:
		return "", fmt.Errorf("unknown key %q", key)
	}
}

// Set parses value and stores it under key. On error c is unchanged.
func (c *Config) Set(key Key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyPort:
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", key, value)
		}
		c.Port = port
	case KeySessionID:
		c.SessionID = value
	case KeyCheckInterval:
		d, err := parseInterval(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.CheckInterval = d
	case KeyAutonomousMode:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.AutonomousMode = b
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	return nil
}

const maxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// parseInterval accepts Go duration syntax ("45s", "2m30s") or a bare
// integer number of seconds.
func parseInterval(s string) (time.Duration, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs > maxIntervalSeconds || secs < -maxIntervalSeconds {
			return 0, fmt.Errorf("%q is not a duration (out of range)", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a duration (examples: 30s, 5m, 90)", s)
	}
	return d, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}
