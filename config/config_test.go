package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/host"
	"github.com/wippyai/clrhost/probe"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, probe.DefaultRuntimeName, cfg.Runtime.Name)
	assert.Equal(t, probe.DefaultVersion, cfg.Runtime.Version)
	assert.Equal(t, host.DefaultFriendlyName, cfg.App.FriendlyName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "clrhost.toml", `
[runtime]
root = "/usr/share/dotnet"
version = "latest"

[app]
dir = "/srv/app"
native_search_dirs = ["/srv/app/native", "/usr/lib"]

[entry]
assembly = "ironcore-example"
type = "IronCore.Example.Scripts"
method = "Main"

[log]
level = "debug"
encoding = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/dotnet", cfg.Runtime.Root)
	assert.Equal(t, probe.VersionLatest, cfg.Runtime.Version)
	assert.Equal(t, probe.DefaultRuntimeName, cfg.Runtime.Name)
	assert.Equal(t, "/srv/app", cfg.App.Dir)
	assert.Equal(t, []string{"/srv/app/native", "/usr/lib"}, cfg.App.NativeSearchDirs)
	assert.Equal(t, EntryConfig{"ironcore-example", "IronCore.Example.Scripts", "Main"}, cfg.Entry)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "clrhost.yaml", `
runtime:
  version: "8.0.11"
app:
  paths: [/a, /b]
log:
  development: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8.0.11", cfg.Runtime.Version)
	assert.Equal(t, []string{"/a", "/b"}, cfg.App.Paths)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		kind errors.Kind
	}{
		{"unknown toml key", "c.toml", "[runtime]\nflavour = \"x\"\n", errors.KindParse},
		{"bad toml", "c.toml", "[runtime\n", errors.KindParse},
		{"unknown yaml key", "c.yaml", "runtime:\n  flavour: x\n", errors.KindParse},
		{"unsupported format", "c.json", "{}", errors.KindParse},
		{"bad level", "c.toml", "[log]\nlevel = \"loud\"\n", errors.KindInvalidInput},
		{"bad encoding", "c.toml", "[log]\nencoding = \"xml\"\n", errors.KindInvalidInput},
		{"empty runtime name", "c.toml", "[runtime]\nname = \"\"\n", errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.body))
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, tt.kind), "err = %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, &errors.Error{Phase: errors.PhaseConfig, Kind: errors.KindIO}), "err = %v", err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(k string) string {
		return map[string]string{
			EnvLogLevel:       "warn",
			EnvRuntimeRoot:    " /opt/dotnet ",
			EnvRuntimeVersion: "latest",
		}[k]
	})

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/opt/dotnet", cfg.Runtime.Root)
	assert.Equal(t, "latest", cfg.Runtime.Version)
}

func TestAppPaths(t *testing.T) {
	sep := string(os.PathListSeparator)

	paths := AppConfig{}.SearchPaths("/exe/dir")
	assert.Equal(t, host.Paths{App: "/exe/dir", AppNI: "/exe/dir", NativeSearch: "/exe/dir"}, paths)

	paths = AppConfig{Dir: "/app", NativeSearchDirs: []string{"/n1", "/n2"}}.SearchPaths("/exe/dir")
	assert.Equal(t, host.Paths{App: "/app", AppNI: "/app", NativeSearch: "/n1" + sep + "/n2"}, paths)
}

func TestRuntimeResolver(t *testing.T) {
	r := RuntimeConfig{Root: "/dn", Name: "X", Version: "1.0.0"}.Resolver()
	dir, err := r.RuntimeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/dn", "shared", "X", "1.0.0"), dir)
}

func TestLogConfigLogger(t *testing.T) {
	for _, lc := range []LogConfig{
		{Level: "debug", Encoding: "console"},
		{Level: "error", Encoding: "json"},
		{Level: "info", Development: true},
	} {
		l, err := lc.Logger()
		require.NoError(t, err)
		assert.NotNil(t, l)
	}

	_, err := LogConfig{Level: "nope"}.Logger()
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}
