package version

import (
	"context"
	"fmt"

	"smolclaw/pkg/config"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X smolclaw/cmd/version.Version=...".
var Version = "unknown"

// GetCommand returns the "version" command, which prints Version.
func GetCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(config.GetStdoutFunc(deps)(), Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
