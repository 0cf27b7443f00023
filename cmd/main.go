package main

import (
	"context"
	"os"

	"smolclaw/cmd/configcmd"
	"smolclaw/cmd/shared"
	"smolclaw/cmd/version"
	"smolclaw/pkg/config"
	"smolclaw/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shared.SetupSignalHandling(cancel)

	if err := newApp(nil).Run(ctx, os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}

func newApp(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "smolclaw",
		Usage:       "manage smolclaw configuration",
		Description: shared.GetBaseDescription(),
		Flags:       shared.GetCommonFlags(),
		Commands: []*cli.Command{
			configcmd.GetCommand(deps),
			version.GetCommand(deps),
		},
	}
}
