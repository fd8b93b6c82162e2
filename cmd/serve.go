package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/loader"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/logger"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/middleware/auth"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/middleware/rayid"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the check API server",
	Long:  `Starts the HTTP server and initializes all enabled features under /api.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration, logger and backends
		env, err := setup(true)
		if err != nil {
			return err
		}
		logg := env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             env.cfg.Server.BodyLimit(),
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(checks.NewFeature(env.locator, logg, env.cfg.Check, env.cfg.Storage.ReportPrefix))

		// 4. Middleware: RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey, Skip: []string{"/health"}}))

		// 5. Load Features
		if err := mgr.LoadAll(app.Group("/api")); err != nil {
			return err
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", env.cfg.Server.Address()))
			if err := app.Listen(env.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
