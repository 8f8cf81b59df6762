package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "newswatch",
		Usage: "Keyword-filtered news snapshots from RSS feeds",
		Description: `Watches a configured list of RSS/Atom feeds for entries
		matching a set of keywords.

		Each fetch run downloads every configured source, keeps the entries
		whose title or summary contains one of the keywords, and replaces the
		news snapshot (a flat JSON file) wholesale. Schedule it with cron or a
		systemd timer; a failed run simply leaves the previous snapshot in
		place until the next one.

		Flags can generally be set via environment variables, e.g.:

		--config => NEWSWATCH_CONFIG=config.toml
		--port => NEWSWATCH_PORT=3000
		`,
		Commands: []*cli.Command{
			fetchCmd(),
			serveCmd(),
			initCmd(),
			sourcesCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
