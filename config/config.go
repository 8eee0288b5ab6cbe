// Package config loads launcher settings from TOML or YAML files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/host"
	"github.com/wippyai/clrhost/probe"
)

// Environment overrides applied by ApplyEnv.
const (
	EnvLogLevel       = "CLRHOST_LOG_LEVEL"
	EnvRuntimeRoot    = "CLRHOST_RUNTIME_ROOT"
	EnvRuntimeVersion = "CLRHOST_RUNTIME_VERSION"
)

// Config is the launcher configuration.
type Config struct {
	Runtime RuntimeConfig `toml:"runtime" yaml:"runtime"`
	App     AppConfig     `toml:"app" yaml:"app"`
	Entry   EntryConfig   `toml:"entry" yaml:"entry"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// RuntimeConfig selects the runtime install. Empty fields fall back to probe defaults.
type RuntimeConfig struct {
	Root    string `toml:"root" yaml:"root"`
	Name    string `toml:"name" yaml:"name"`
	Version string `toml:"version" yaml:"version"`
}

// AppConfig lists the application search paths. Empty lists default to Dir,
// and an empty Dir defaults to the launcher's own directory.
type AppConfig struct {
	Dir              string   `toml:"dir" yaml:"dir"`
	FriendlyName     string   `toml:"friendly_name" yaml:"friendly_name"`
	Paths            []string `toml:"paths" yaml:"paths"`
	NIPaths          []string `toml:"ni_paths" yaml:"ni_paths"`
	NativeSearchDirs []string `toml:"native_search_dirs" yaml:"native_search_dirs"`
}

// EntryConfig names the managed method invoked as a delegate.
type EntryConfig struct {
	Assembly string `toml:"assembly" yaml:"assembly"`
	Type     string `toml:"type" yaml:"type"`
	Method   string `toml:"method" yaml:"method"`
}

// LogConfig configures the zap logger built by Logger.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Encoding    string `toml:"encoding" yaml:"encoding"`
	Development bool   `toml:"development" yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			Name:    probe.DefaultRuntimeName,
			Version: probe.DefaultVersion,
		},
		App: AppConfig{
			FriendlyName: host.DefaultFriendlyName,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path on top of Default. The format follows the extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.IO(errors.PhaseConfig, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, errors.ParseFailed(path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.PhaseConfig, errors.KindParse).
				Path(path).
				Detail("unknown key %s", undecoded[0]).
				Build()
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.ParseFailed(path, err)
		}
	default:
		return Config{}, errors.New(errors.PhaseConfig, errors.KindParse).
			Path(path).
			Detail("unsupported config format %q", filepath.Ext(path)).
			Build()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvRuntimeRoot)); v != "" {
		c.Runtime.Root = v
	}
	if v := strings.TrimSpace(getenv(EnvRuntimeVersion)); v != "" {
		c.Runtime.Version = v
	}
}

// Validate checks values that Load cannot check structurally.
func (c Config) Validate() error {
	if c.Runtime.Name == "" {
		return errors.InvalidInput(errors.PhaseConfig, "runtime.name must not be empty")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log.level")
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return errors.InvalidInput(errors.PhaseConfig, "log.encoding must be console or json, got "+c.Log.Encoding)
	}
	return nil
}

// Resolver returns the install location resolver for these settings.
func (r RuntimeConfig) Resolver() probe.Resolver {
	return probe.Resolver{
		Root:    r.Root,
		Name:    r.Name,
		Version: r.Version,
	}
}

// SearchPaths resolves the application search paths. exeDir replaces an empty Dir.
func (a AppConfig) SearchPaths(exeDir string) host.Paths {
	dir := a.Dir
	if dir == "" {
		dir = exeDir
	}
	join := func(list []string) string {
		if len(list) == 0 {
			return dir
		}
		return strings.Join(list, string(os.PathListSeparator))
	}
	return host.Paths{
		App:          join(a.Paths),
		AppNI:        join(a.NIPaths),
		NativeSearch: join(a.NativeSearchDirs),
	}
}
