package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/monoref/monoref/internal/branding"
	"github.com/monoref/monoref/internal/logging"
)

const fileType = "yaml"

// Recognized keys.
const (
	KeyTsconfigFileName = "tsconfig.filename"
	KeyLinkCheck        = "link.check"
	KeyLogLevel         = "log.level"
)

var defaults = map[string]interface{}{
	KeyTsconfigFileName: branding.TsconfigFile(),
	KeyLinkCheck:        false,
	KeyLogLevel:         "info",
}

// Config holds the effective settings for one monorepo.
type Config struct {
	v    *viper.Viper
	path string
}

// FilePath returns the config file path for the monorepo at root.
func FilePath(root string) string {
	return filepath.Join(root, branding.ConfigFile())
}

// Keys returns the recognized keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads the config file under root, if any, layered over defaults and
// under environment variables (tsconfig.filename is read from
// MONOREF_TSCONFIG_FILENAME).
func Load(root string) (*Config, error) {
	v := newViper()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := FilePath(root)
	if err := readIfExists(v, path); err != nil {
		return nil, err
	}
	return &Config{v: v, path: path}, nil
}

// Path returns the config file path, whether or not it exists.
func (c *Config) Path() string {
	return c.path
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// TsconfigFileName is the name of the TypeScript configuration file to link.
func (c *Config) TsconfigFileName() string {
	return c.v.GetString(KeyTsconfigFileName)
}

// Check reports whether link runs in check mode by default.
func (c *Config) Check() bool {
	return c.v.GetBool(KeyLinkCheck)
}

// LogLevel is the zap level name.
func (c *Config) LogLevel() string {
	return c.v.GetString(KeyLogLevel)
}

// Set validates value for key and saves it to the config file. Only keys
// already in the file and the new key are written; defaults and environment
// overrides are not persisted.
func (c *Config) Set(key, value string) error {
	parsed, err := parseValue(key, value)
	if err != nil {
		return err
	}

	file := newViper()
	if err := readIfExists(file, c.path); err != nil {
		return err
	}
	file.Set(key, parsed)

	if err := file.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	c.v.Set(key, parsed)
	return nil
}

func parseValue(key, value string) (interface{}, error) {
	switch key {
	case KeyTsconfigFileName:
		if value == "" || strings.ContainsAny(value, `/\`) {
			return nil, fmt.Errorf("%s must be a plain file name, got %q", key, value)
		}
		return value, nil
	case KeyLinkCheck:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return b, nil
	case KeyLogLevel:
		if _, err := logging.ParseLevel(value); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(fileType)
	return v
}

func readIfExists(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}
