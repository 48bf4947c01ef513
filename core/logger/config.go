package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"warn"`
	// Format is console or json.
	Format string `mapstructure:"format" default:"console"`
	// File, when set, receives a copy of every log entry.
	File string `mapstructure:"file" default:""`
}
