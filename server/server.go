package server

import (
	"embed"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:embed dist/*
var dist embed.FS

type ServerConfig struct {

	// Path of the snapshot file to serve at /data/news.json
	SnapshotPath string
}

// Returns a fiber.App serving the embedded search page and the current news
// snapshot. There is no server-side search: the page loads the snapshot once
// and filters it in the browser.
func Server(config *ServerConfig) *fiber.App {

	app := fiber.New()

	// Middleware to track the latency of each request
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		stop := time.Now()

		log.WithFields(log.Fields{
			"method":  c.Method(),
			"route":   c.Route().Path,
			"latency": stop.Sub(start),
		}).Info("Request")
		return err
	})

	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Cache-Control",
	}))

	// Cache the snapshot briefly so a burst of page loads between cron runs
	// does not hit the disk every time
	app.Use(cache.New(cache.Config{
		Expiration: 30 * time.Second,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet || c.Path() != "/data/news.json"
		},
	}))

	app.Get("/data/news.json", func(c *fiber.Ctx) error {
		if _, err := os.Stat(config.SnapshotPath); err != nil {
			log.WithFields(log.Fields{
				"path": config.SnapshotPath,
			}).Warn("Snapshot not found")
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no snapshot yet, run `newswatch fetch` first",
			})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendFile(config.SnapshotPath)
	})

	// Serve the search page
	app.Use("/", filesystem.New(filesystem.Config{
		Root:       http.FS(dist),
		PathPrefix: "/dist",
		Index:      "index.html",
	}))

	return app
}
