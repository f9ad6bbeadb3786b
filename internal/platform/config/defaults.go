package config

const (
	defaultTitleWidth       = 19
	defaultDescriptionWidth = 27
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by the base file, the profile
// file, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "warn",
		"log.format": "text",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskconsole",

		"display.title_width":       defaultTitleWidth,
		"display.description_width": defaultDescriptionWidth,
	}
}
