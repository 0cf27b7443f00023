// Package shared provides common CLI flag definitions and utility functions
// used across smolclaw's command-line interface.
package shared

import (
	"strings"

	"smolclaw/pkg/config"
	"smolclaw/pkg/log"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// ConfigFlag is the name of the flag to specify the config file.
const ConfigFlag = "config"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// ConfigEnvVar names the config file when --config is not given.
const ConfigEnvVar = config.EnvPrefix + "CONFIG"

// DefaultConfigFile is used when neither --config nor SMOLCLAW_CONFIG is set.
const DefaultConfigFile = "smolclaw.yaml"

// GetBaseDescription returns the description shown by the root command.
func GetBaseDescription() string {
	return strings.Join([]string{
		"Settings are resolved in this order, later sources winning:",
		"defaults, the config file, then " + config.EnvPrefix + "<KEY> environment variables.",
		"The config file is taken from --config, else $" + ConfigEnvVar + ", else ./" + DefaultConfigFile + " if present.",
	}, "\n")
}

// GetCommonFlags returns the flags accepted by every command.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     ConfigFlag,
			Aliases:  []string{"c"},
			Usage:    "Path to the YAML config file",
			Category: categoryCommon,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// ConfigPath returns the config file to read from. An empty result means
// no file was named and the default file does not exist.
func ConfigPath(cmd *cli.Command, deps *config.Dependencies) string {
	if p := explicitConfigPath(cmd, deps); p != "" {
		return p
	}

	if _, err := config.GetStatFunc(deps)(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}

	return ""
}

// TargetConfigPath returns the config file to write to. Unlike ConfigPath
// it falls back to DefaultConfigFile whether or not it exists.
func TargetConfigPath(cmd *cli.Command, deps *config.Dependencies) string {
	if p := explicitConfigPath(cmd, deps); p != "" {
		return p
	}

	return DefaultConfigFile
}

func explicitConfigPath(cmd *cli.Command, deps *config.Dependencies) string {
	if p := cmd.String(ConfigFlag); p != "" {
		return p
	}

	return config.GetGetenvFunc(deps)(ConfigEnvVar)
}

// SetupLogging turns on verbose logging when --verbose was given.
func SetupLogging(cmd *cli.Command) {
	if cmd.Bool(VerboseFlag) {
		log.Verbose = true
	}
}
