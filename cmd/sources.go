package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"newswatch/config"
)

func sourcesCmd() *cli.Command {
	return &cli.Command{
		Name:        "sources",
		Usage:       "List the configured sources",
		Description: `Prints every configured source with its type and label. A quick sanity check for the config file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Path to the TOML configuration file",
				EnvVars: []string{"NEWSWATCH_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return err
			}

			if len(cfg.Sources) == 0 {
				fmt.Println("No sources configured")
				return nil
			}

			for _, source := range cfg.Sources {
				fmt.Printf("%-5s %-30s %s\n", source.Type, source.Name(), source.URL)
			}
			return nil
		},
	}
}
