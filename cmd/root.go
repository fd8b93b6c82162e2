package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/config"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/database"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/logger"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "reqcheck",
	Short: "Requirements import/export checker",
	Long: `reqcheck reconciles customer requirement exports against supplier exports
and reports rule violations per project (PPE, SSP, SDV01).
Datasets are read from YAML/JSON documents, database tables or the object storage bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI users
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding the .env file")
}

// environment is what every command needs: configuration, logger and the dataset locator.
type environment struct {
	cfg     *config.Config
	logger  *zap.Logger
	locator *source.Locator
}

// setup loads the configuration and connects the optional backends. The database is only
// connected when withDB is set. A failing connection only disables the locations that need it.
func setup(withDB bool) (*environment, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	locator := &source.Locator{Bucket: cfg.Storage.Bucket, IDAttribute: source.DefaultIDAttribute, Logger: logg}

	if withDB {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			locator.DB = db
			logg.Debug("Connected to requirements database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
	} else {
		locator.Storage = client
	}

	return &environment{cfg: cfg, logger: logg, locator: locator}, nil
}

// needsDB reports whether any location names a database table.
func needsDB(locations ...string) bool {
	for _, l := range locations {
		if strings.HasPrefix(strings.TrimSpace(l), source.SchemeTable) {
			return true
		}
	}
	return false
}
