package logger

// Config holds the logger settings.
type Config struct {
	// Level is one of debug, info, warn, error. Debug selects the development preset.
	Level string `mapstructure:"level" default:"info"`
	// Format is json or console.
	Format string `mapstructure:"format" default:"json"`
}
