// Package config provides configuration management for csvdiff.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section and are registered by reflection, which also makes every key
// reachable through AutomaticEnv.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: logging level, format and optional file
//   - Diff: defaults for key spec, encodings, dialects and report style
//   - Database: connection for sql: and table: inputs
//   - Storage: S3/MinIO credentials for s3:// inputs
//   - History: location of the run history file
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Diff.MatchingKeys)
package config
