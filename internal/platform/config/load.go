package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envFileSuffix    = "_FILE"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs".
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load merges, lowest precedence first, the built-in defaults,
// {configDir}/base.yaml, {configDir}/{profile}.yaml, APP_-prefixed
// environment variables and APP_-prefixed *_FILE variables, then validates
// the result.
//
// Environment keys are matched against the keys already loaded, so
// underscores inside a field name survive:
//
//	APP_SERVER_REQUEST_TIMEOUT      -> server.request_timeout
//	APP_STORAGE_DRIVER              -> storage.driver
//	APP_STORAGE_RETRY_MAX_ATTEMPTS  -> storage.retry.max_attempts
//
// A variable ending in _FILE names a file whose trimmed contents become the
// value of the key without the suffix, which keeps a Postgres DSN carrying a
// password out of the process environment:
//
//	APP_STORAGE_DSN_FILE=/run/secrets/catalog-dsn -> storage.dsn
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	lookup := buildEnvLookup(k.Keys())
	if err := loadEnv(k, lookup); err != nil {
		return nil, err
	}
	if err := loadSecretFiles(k, lookup, os.Environ()); err != nil {
		return nil, err
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

func loadEnv(k *koanf.Koanf, lookup map[string]string) error {
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if strings.HasSuffix(key, envFileSuffix) {
				if _, ok := lookup[strings.TrimSuffix(name, strings.ToLower(envFileSuffix))]; ok {
					// Resolved by loadSecretFiles.
					return "", nil
				}
			}
			if koanfKey, ok := lookup[name]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
	if err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return nil
}

// loadSecretFiles applies APP_<KEY>_FILE variables from environ for keys
// present in lookup.
func loadSecretFiles(k *koanf.Koanf, lookup map[string]string, environ []string) error {
	secrets := make(map[string]any)
	for _, kv := range environ {
		name, path, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, envPrefix) || !strings.HasSuffix(name, envFileSuffix) {
			continue
		}
		envKey := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(name, envPrefix), envFileSuffix))
		koanfKey, known := lookup[envKey]
		if !known {
			continue
		}
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
		secrets[koanfKey] = strings.TrimSpace(string(data))
	}
	if len(secrets) == 0 {
		return nil
	}
	if err := k.Load(confmap.Provider(secrets, "."), nil); err != nil {
		return fmt.Errorf("loading secret files: %w", err)
	}
	return nil
}

// validateProfile rejects empty profile names and names that would escape
// the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the underscore form of each koanf key back to the key,
// e.g. "storage_retry_max_attempts" to "storage.retry.max_attempts".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
