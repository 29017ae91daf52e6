// Package config loads application configuration from environment variables
// and an optional YAML file, and owns the single source of truth for all
// file system paths used by the cleaner.
package config
