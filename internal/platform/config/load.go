package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseName         = "base"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration using a 4-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml, .yml or .toml)
//  3. Profile config ({configDir}/{profile}.yaml, .yml or .toml)
//  4. Environment variables (APP_ prefix)
//
// Missing files are skipped. Environment variable mapping uses key matching
// against loaded config keys to resolve ambiguity between nesting separators
// and field-internal underscores:
//
//	APP_LOG_LEVEL                 -> log.level
//	APP_TELEMETRY_SERVICE_NAME    -> telemetry.service_name
//	APP_DISPLAY_TITLE_WIDTH       -> display.title_width
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layers 2 and 3: Base then profile file.
	for _, name := range []string{baseName, profile} {
		if err := loadFile(k, o.configDir, name); err != nil {
			return nil, err
		}
	}

	// Layer 4: Environment variables with APP_ prefix.
	// Build a reverse lookup from known koanf keys so that env vars like
	// APP_DISPLAY_TITLE_WIDTH correctly resolve to "display.title_width"
	// instead of being ambiguously split as "display.title.width".
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.TrimPrefix(key, envPrefix)
			key = strings.ToLower(key)

			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// loadFile loads the first of {name}.yaml, {name}.yml and {name}.toml found
// in dir. It is not an error for none of them to exist.
func loadFile(k *koanf.Koanf, dir, name string) error {
	candidates := []struct {
		ext    string
		parser koanf.Parser
	}{
		{".yaml", yaml.Parser()},
		{".yml", yaml.Parser()},
		{".toml", toml.Parser()},
	}

	for _, c := range candidates {
		path := filepath.Join(dir, name+c.ext)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("checking config %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), c.parser); err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
// For each koanf key like "display.title_width", the env form "display_title_width"
// is computed by replacing dots with underscores. This allows unambiguous matching
// when an env var arrives (e.g. APP_DISPLAY_TITLE_WIDTH -> "display.title_width").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
