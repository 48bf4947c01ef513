package history

// Config holds configuration for the run history.
type Config struct {
	// Path is the bbolt file; empty disables recording.
	Path string `mapstructure:"path" default:""`
}
