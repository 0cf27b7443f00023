// Package configcmd implements the "smolclaw config" command tree for
// inspecting, editing and validating the configuration file.
package configcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"smolclaw/cmd/shared"
	"smolclaw/pkg/config"
	"smolclaw/pkg/log"

	"github.com/urfave/cli/v3"
)

const forceFlag = "force"

// GetCommand returns the "config" command. deps may be nil.
func GetCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Inspect and edit the smolclaw configuration",
		Commands: []*cli.Command{
			keysCommand(deps),
			showCommand(deps),
			getCommand(deps),
			setCommand(deps),
			initCommand(deps),
			validateCommand(deps),
		},
	}
}

func keysCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "keys",
		Usage: "List the supported keys and their environment variables",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := config.GetStdoutFunc(deps)()
			for _, k := range config.Keys() {
				fmt.Fprintf(out, "%-16s %s\n", k, k.EnvVar())
			}
			return nil
		},
	}
}

func showCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the effective configuration as YAML",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := load(cmd, deps)
			if err != nil {
				return err
			}

			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			_, err = config.GetStdoutFunc(deps)().Write(data)
			return err
		},
	}
}

func getCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the effective value of one key",
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one key, got %d arguments", cmd.Args().Len())
			}

			key, err := config.ParseKey(cmd.Args().First())
			if err != nil {
				return err
			}

			cfg, err := load(cmd, deps)
			if err != nil {
				return err
			}

			v, err := cfg.Get(key)
			if err != nil {
				return err
			}

			fmt.Fprintln(config.GetStdoutFunc(deps)(), v)
			return nil
		},
	}
}

func setCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Store one or more values in the config file",
		ArgsUsage: "<key> <value> | <key>=<value>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			assignments, err := parseAssignments(cmd.Args().Slice())
			if err != nil {
				return err
			}

			shared.SetupLogging(cmd)
			path := shared.TargetConfigPath(cmd, deps)

			cfg, err := config.LoadFile(path, deps)
			if errors.Is(err, os.ErrNotExist) {
				log.DebugMsg("%s does not exist yet, starting from defaults\n", path)
				cfg, err = config.Default(), nil
			}
			if err != nil {
				return err
			}

			for _, a := range assignments {
				if err := cfg.Set(a.key, a.value); err != nil {
					return err
				}
			}

			if err := reportErrors(config.Validate(cfg)); err != nil {
				return err
			}

			if err := cfg.Save(path, deps); err != nil {
				return err
			}

			for _, a := range assignments {
				v, _ := cfg.Get(a.key)
				log.InfoMsg("%s = %s (%s)\n", a.key, v, path)
			}
			return nil
		},
	}
}

func initCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a config file with default values and a new session id",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     forceFlag,
				Aliases:  []string{"f"},
				Usage:    "Overwrite an existing config file",
				Value:    false,
				Required: false,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shared.SetupLogging(cmd)
			path := shared.TargetConfigPath(cmd, deps)

			_, err := config.GetStatFunc(deps)(path)
			switch {
			case err == nil:
				if !cmd.Bool(forceFlag) {
					return fmt.Errorf("%s already exists, use --%s to overwrite", path, forceFlag)
				}
				log.WarnMsg("Overwriting %s\n", path)
			case !errors.Is(err, os.ErrNotExist):
				return fmt.Errorf("checking %s: %w", path, err)
			}

			cfg := config.Default()
			cfg.EnsureSessionID(deps)

			if err := cfg.Save(path, deps); err != nil {
				return err
			}

			log.InfoMsg("Wrote %s (session_id %s)\n", path, cfg.SessionID)
			return nil
		},
	}
}

func validateCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check the effective configuration for errors",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := load(cmd, deps)
			if err != nil {
				return err
			}

			if err := reportErrors(config.Validate(cfg)); err != nil {
				return err
			}

			log.InfoMsg("Configuration is valid\n")
			return nil
		},
	}
}

func load(cmd *cli.Command, deps *config.Dependencies) (*config.Config, error) {
	shared.SetupLogging(cmd)

	path := shared.ConfigPath(cmd, deps)
	if path == "" {
		log.DebugMsg("No config file, using defaults and environment\n")
	} else {
		log.DebugMsg("Loading %s\n", path)
	}

	return config.Load(path, deps)
}

func reportErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	log.ErrorMsg("Configuration errors:\n")
	for _, err := range errs {
		log.ErrorMsg(" - %s\n", err)
	}
	return fmt.Errorf("exiting")
}

type assignment struct {
	key   config.Key
	value string
}

// parseAssignments accepts either a single "<key> <value>" pair or any
// number of "<key>=<value>" arguments.
func parseAssignments(args []string) ([]assignment, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("nothing to set")
	}

	if len(args) == 2 && !strings.Contains(args[0], "=") {
		key, err := config.ParseKey(args[0])
		if err != nil {
			return nil, err
		}
		return []assignment{{key: key, value: args[1]}}, nil
	}

	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		key, value, err := shared.ParseAssignment(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{key: key, value: value})
	}
	return out, nil
}
