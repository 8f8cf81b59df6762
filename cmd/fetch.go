package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"newswatch/aggregator"
	"newswatch/config"
)

func fetchCmd() *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch all sources and replace the news snapshot",
		Description: `Runs one batch: downloads every configured source, keeps the
entries matching the configured keywords, merges and deduplicates them and
writes the snapshot newest first.

Individual source failures are logged and skipped; the run still succeeds
and exits zero. Only an unreadable config or an unwritable snapshot fail
the command.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Path to the TOML configuration file",
				EnvVars: []string{"NEWSWATCH_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Snapshot path, overrides the config file",
				EnvVars: []string{"NEWSWATCH_OUTPUT"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Per-source fetch timeout, overrides the config file",
				EnvVars: []string{"NEWSWATCH_TIMEOUT"},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.LoadConfig(ctx.String("config"))
			if err != nil {
				return err
			}
			if output := ctx.String("output"); output != "" {
				cfg.Output = output
			}
			if timeout := ctx.Duration("timeout"); timeout > 0 {
				cfg.FetchTimeout = config.Duration{Duration: timeout}
			}

			stats, err := aggregator.Run(ctx.Context, cfg)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"sources": stats.Sources,
				"failed":  stats.Failed,
				"fetched": stats.Fetched,
				"matched": stats.Matched,
				"written": stats.Written,
			}).Info("Run complete")
			return nil
		},
	}
}
