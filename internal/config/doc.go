// Package config handles configuration loading, parsing, and validation
// from environment variables and optional config files. It provides
// type-safe access to the settings the coachkit tools need — above all the
// CDN base URL used to build media links — while keeping configuration
// details out of the model layer.
package config
