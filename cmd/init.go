package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cqroot/prompt"
	"github.com/urfave/cli/v2"

	"newswatch/config"
	"newswatch/models"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter configuration file",
		Description: `Interactively scaffolds a TOML configuration with one feed
and a keyword list. Refuses to overwrite an existing file.

Keywords are comma separated; wrap a keyword in double quotes to match it
as a whole phrase, e.g. "industrial strategy".`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "Path of the config file to create",
				EnvVars: []string{"NEWSWATCH_CONFIG"},
			},
		},
		Action: func(ctx *cli.Context) error {
			path := ctx.String("config")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %s already exists", path)
			}

			keywords, err := prompt.New().Ask("Keywords (comma separated):").Input("tariff, supply chain")
			if err != nil {
				return err
			}

			feedURL, err := prompt.New().Ask("Feed URL:").Input("https://example.org/feed.xml")
			if err != nil {
				return err
			}

			label, err := prompt.New().Ask("Feed label:").Input("")
			if err != nil {
				return err
			}

			output, err := prompt.New().Ask("Snapshot path:").Input("data/news.json")
			if err != nil {
				return err
			}

			cfg := &config.Config{
				Output:   output,
				Keywords: splitKeywords(keywords),
				Sources: []models.Source{{
					URL:   strings.TrimSpace(feedURL),
					Label: strings.TrimSpace(label),
					Type:  models.SourceTypeRSS,
				}},
			}
			if err := config.WriteConfig(path, cfg); err != nil {
				return err
			}

			fmt.Println("Wrote config...", path)
			return nil
		},
	}
}

func splitKeywords(s string) []string {
	var keywords []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			keywords = append(keywords, part)
		}
	}
	return keywords
}
