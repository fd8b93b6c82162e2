// Package config provides configuration management for the requirements checker.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/SQLite connection for staged requirement tables
//   - Storage: S3/MinIO credentials, bucket and prefixes
//   - Log: Logging level and format
//   - Check: default project, direction, worker count and match overrides
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Check.Project)
package config
