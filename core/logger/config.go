package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Format is the console encoding (console, json).
	Format string `mapstructure:"format"`
	// Dir receives the dated log file. Empty disables file output.
	Dir string `mapstructure:"dir"`
}
