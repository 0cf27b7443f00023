package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the on-disk layout. Every scalar is decoded as its raw
// text and parsed by Set, so file values follow the same rules as env and
// CLI values. Nil means the key is absent.
type fileConfig struct {
	Port           *string `yaml:"port"`
	SessionID      *string `yaml:"session_id"`
	CheckInterval  *string `yaml:"check_interval"`
	AutonomousMode *string `yaml:"autonomous_mode"`
}

// fileOutput is what Marshal writes: every key, in canonical order.
type fileOutput struct {
	Port           int    `yaml:"port"`
	SessionID      string `yaml:"session_id"`
	CheckInterval  string `yaml:"check_interval"`
	AutonomousMode bool   `yaml:"autonomous_mode"`
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then SMOLCLAW_* environment variables.
func Load(path string, deps *Dependencies) (*Config, error) {
	cfg, err := LoadFile(path, deps)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(GetGetenvFunc(deps)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile is Load without the environment overrides. Use it when the
// result is going to be written back to path.
func LoadFile(path string, deps *Dependencies) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := GetReadFileFunc(deps)(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := cfg.applyFile(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyFile(data []byte) error {
	var fc fileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file
		}
		return err
	}

	values := map[Key]*string{
		KeyPort:           fc.Port,
		KeySessionID:      fc.SessionID,
		KeyCheckInterval:  fc.CheckInterval,
		KeyAutonomousMode: fc.AutonomousMode,
	}

	for _, k := range Keys() {
		if v := values[k]; v != nil {
			if err := c.Set(k, *v); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Config) applyEnv(getenv GetenvFunc) error {
	for _, k := range Keys() {
		v := getenv(k.EnvVar())
		if v == "" {
			continue
		}

		if err := c.Set(k, v); err != nil {
			return fmt.Errorf("environment variable %s: %w", k.EnvVar(), err)
		}
	}

	return nil
}

// Marshal encodes c as YAML with all keys in canonical order.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(fileOutput{
		Port:           c.Port,
		SessionID:      c.SessionID,
		CheckInterval:  c.CheckInterval.String(),
		AutonomousMode: c.AutonomousMode,
	})
}

// Save writes c to path as YAML.
func (c *Config) Save(path string, deps *Dependencies) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := GetWriteFileFunc(deps)(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// EnsureSessionID assigns a freshly generated session id if none is set
// and reports whether it did so.
func (c *Config) EnsureSessionID(deps *Dependencies) bool {
	if c.SessionID != "" {
		return false
	}

	c.SessionID = GetSessionIDFunc(deps)()
	return true
}
