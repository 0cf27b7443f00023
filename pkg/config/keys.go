package config

import (
	"fmt"
	"strings"
)

// Key names a single configuration setting as it appears in config files,
// on the command line and (upper-cased) in environment variables.
type Key string

const (
	KeyPort           Key = "port"
	KeySessionID      Key = "session_id"
	KeyCheckInterval  Key = "check_interval"
	KeyAutonomousMode Key = "autonomous_mode"
)

// EnvPrefix is prepended to the upper-cased key to form its environment variable.
const EnvPrefix = "SMOLCLAW_"

// Keys returns every supported key in canonical order.
func Keys() []Key {
	return []Key{KeyPort, KeySessionID, KeyCheckInterval, KeyAutonomousMode}
}

func (k Key) String() string {
	return string(k)
}

// EnvVar returns the environment variable that overrides k.
func (k Key) EnvVar() string {
	return EnvPrefix + strings.ToUpper(string(k))
}

// ParseKey resolves user input to a Key. Matching ignores case and
// surrounding whitespace, and accepts '-' in place of '_'.
func ParseKey(s string) (Key, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")

	for _, k := range Keys() {
		if string(k) == norm {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown key %q (known keys: %s)", s, knownKeys())
}

func knownKeys() string {
	names := make([]string, 0, len(Keys()))
	for _, k := range Keys() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
