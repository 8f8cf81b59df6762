package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"newswatch/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the search page and the news snapshot",
		Description: `Starts the HTTP server for the browser frontend.

Serves the embedded search page at / and the snapshot at /data/news.json.
There is no server-side search: the page loads the snapshot once and
filters it in the browser on every keystroke.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   3000,
				Usage:   "Port to listen on",
				EnvVars: []string{"NEWSWATCH_PORT"},
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Value:   "data/news.json",
				Usage:   "Snapshot file to serve",
				EnvVars: []string{"NEWSWATCH_DATA"},
			},
		},
		Action: func(ctx *cli.Context) error {
			app := server.Server(&server.ServerConfig{
				SnapshotPath: ctx.String("data"),
			})

			// Graceful shutdown
			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-c
				log.Info("Gracefully shutting down...")
				if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
					log.Error("Error shutting down server: ", err)
				}
			}()

			log.WithFields(log.Fields{
				"port": ctx.Int("port"),
				"data": ctx.String("data"),
			}).Info("Starting server")

			return app.Listen(fmt.Sprintf(":%d", ctx.Int("port")))
		},
	}
}
