// Package config provides configuration loading and validation for the task
// console. Configuration is layered: built-in defaults -> base file ->
// {profile} file -> APP_* environment variables. Files are optional, so the
// binary runs with defaults alone.
package config

// Config holds all configuration for the application.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Display   DisplayConfig   `koanf:"display"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DisplayConfig holds task table settings. Widths are the number of
// characters shown before a field is cut and suffixed with "...".
type DisplayConfig struct {
	TitleWidth       int `koanf:"title_width"`
	DescriptionWidth int `koanf:"description_width"`
}
