// Package config provides configuration management for git-wip.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/wiptools/git-wip/internal/names"
)

// Default configuration values.
const (
	DefaultConfigDir  = ".config/git-wip"
	DefaultConfigFile = "config.yaml"
	DefaultRemote     = "origin"
)

// Sentinel errors for configuration operations.
var (
	ErrInvalidKey   = errors.New("invalid configuration key")
	ErrInvalidValue = errors.New("invalid configuration value")
	ErrNoEditor     = errors.New("$EDITOR environment variable not set")
)

// validKeys is built once from Config struct reflection.
var validKeys = buildValidKeys()

// validate is the shared validator instance.
var validate = newValidator()

// newValidator registers the ref-name rule used for the username field.
func newValidator() *validator.Validate {
	v := validator.New()
	//nolint:errcheck // registration only fails for an empty tag name
	v.RegisterValidation("refname", func(fl validator.FieldLevel) bool {
		return names.CheckIdentifier(fl.Field().String()) == nil
	})
	return v
}

// Config represents the full git-wip configuration.
type Config struct {
	// Username overrides git's user.name as the snapshot owner. It has to be
	// usable as a branch name component.
	Username string        `mapstructure:"username" validate:"omitempty,refname"`
	Remote   string        `mapstructure:"remote" validate:"required"`
	Save     SaveConfig    `mapstructure:"save"`
	Restore  RestoreConfig `mapstructure:"restore"`
}

// SaveConfig holds defaults for the save command.
type SaveConfig struct {
	Local bool `mapstructure:"local"`
}

// RestoreConfig holds defaults for the restore command.
type RestoreConfig struct {
	Autostash bool `mapstructure:"autostash"`
}

// Validate checks the configuration for errors using struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Loader provides configuration loading and saving.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a new configuration loader.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home directory: %w", err)
	}

	configPath := filepath.Join(home, DefaultConfigDir, DefaultConfigFile)

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Environment variable binding
	v.SetEnvPrefix("GIT_WIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind specific env vars to config keys.
	// We intentionally ignore errors here as BindEnv only fails if called with zero arguments.
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("username", "GIT_WIP_USERNAME")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("remote", "GIT_WIP_REMOTE")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("save.local", "GIT_WIP_SAVE_LOCAL")
	//nolint:errcheck // BindEnv only fails with zero arguments
	v.BindEnv("restore.autostash", "GIT_WIP_RESTORE_AUTOSTASH")

	l := &Loader{
		v:    v,
		path: configPath,
	}

	// Set defaults before any config reading
	l.setDefaults()

	return l, nil
}

// setDefaults sets all default configuration values using Viper.
func (l *Loader) setDefaults() {
	l.v.SetDefault("username", "")
	l.v.SetDefault("remote", DefaultRemote)
	l.v.SetDefault("save.local", false)
	l.v.SetDefault("restore.autostash", false)
}

// Load reads the configuration file, creating defaults if it doesn't exist.
func (l *Loader) Load() (*Config, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		if err := l.createDefault(); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// Get returns a configuration value by dot-notation key.
func (l *Loader) Get(key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return l.v.Get(key), nil
}

// Set sets a configuration value by dot-notation key.
func (l *Loader) Set(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	switch key {
	case "username":
		if value != "" {
			if err := names.CheckIdentifier(value); err != nil {
				return fmt.Errorf("%w: username %q cannot appear in a branch name", ErrInvalidValue, value)
			}
		}
	case "remote":
		if value == "" {
			return fmt.Errorf("%w: remote cannot be empty", ErrInvalidValue)
		}
	case "save.local", "restore.autostash":
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", ErrInvalidValue, key, value)
		}
	}

	l.v.Set(key, value)
	return l.v.WriteConfig()
}

// createDefault writes the default configuration file using Viper.
func (l *Loader) createDefault() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return l.v.SafeWriteConfigAs(l.path)
}

// ValidateKey checks if a key is a valid configuration key.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if validKeys[key] {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidKey, key)
}

// Keys returns the valid settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(validKeys))
	for k := range validKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildValidKeys builds the set of valid keys from Config struct using reflection.
func buildValidKeys() map[string]bool {
	keys := make(map[string]bool)
	addKeysFromType(reflect.TypeOf(Config{}), "", keys)
	return keys
}

// addKeysFromType recursively adds keys from a struct type.
func addKeysFromType(t reflect.Type, prefix string, keys map[string]bool) {
	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		keys[key] = true

		// Recurse into nested structs (but not maps)
		if field.Type.Kind() == reflect.Struct {
			addKeysFromType(field.Type, key, keys)
		}
	}
}
