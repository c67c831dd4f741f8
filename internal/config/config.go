package config

// Config holds all runtime settings for the coachkit tools.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	CDN CDNConfig `mapstructure:"cdn" validate:"required"`
	API APIConfig `mapstructure:"api"`
	Log LogConfig `mapstructure:"log" validate:"required"`
}

// CDNConfig locates the media CDN. The base URL is combined with stored
// media keys to build exercise video and thumbnail links; it must never be
// hardcoded next to the entities.
type CDNConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// APIConfig locates the coaching backend for tools that fetch live payloads.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}
