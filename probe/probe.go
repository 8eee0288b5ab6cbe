// Package probe locates a CoreCLR installation on disk.
//
// The layout follows the shared framework convention:
//
//	<root>/shared/<runtime name>/<version>/<library file>
//
// The root comes from an explicit setting or from one platform environment
// variable. The version is fixed unless set to VersionLatest, in which case the
// highest installed semantic version is chosen.
package probe

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/coreos/go-semver/semver"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/native"
)

const (
	// DefaultRuntimeName is the shared framework that ships CoreCLR.
	DefaultRuntimeName = "Microsoft.NETCore.App"

	// DefaultVersion is looked up when no version is configured. A fixed
	// version is a known limitation; use VersionLatest to scan instead.
	DefaultVersion = "2.0.6"

	// VersionLatest selects the highest installed version.
	VersionLatest = "latest"
)

// Resolver turns configuration into concrete paths. The zero value uses the
// platform environment variable, DefaultRuntimeName and DefaultVersion.
type Resolver struct {
	// Getenv reads the environment; os.Getenv when nil.
	Getenv func(string) string

	// Root overrides the environment-derived install root.
	Root    string
	Name    string
	Version string
}

// RootEnv is the environment variable that seeds the install root.
func RootEnv() string {
	if runtime.GOOS == "windows" {
		return "PROGRAMFILES"
	}
	return "DOTNET_ROOT"
}

// LibraryName is the CoreCLR shared library file name for the current OS.
func LibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "coreclr.dll"
	case "darwin":
		return "libcoreclr.dylib"
	default:
		return "libcoreclr.so"
	}
}

// RootDir returns the install root.
func (r Resolver) RootDir() (string, error) {
	if r.Root != "" {
		return r.Root, nil
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	name := RootEnv()
	v := getenv(name)
	if v == "" {
		return "", errors.Environment(name)
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(v, "dotnet"), nil
	}
	return v, nil
}

// RuntimeDir returns the versioned directory holding the runtime library and
// its platform assemblies.
func (r Resolver) RuntimeDir() (string, error) {
	root, err := r.RootDir()
	if err != nil {
		return "", err
	}

	name := r.Name
	if name == "" {
		name = DefaultRuntimeName
	}
	base := filepath.Join(root, "shared", name)

	version := r.Version
	switch version {
	case "":
		version = DefaultVersion
	case VersionLatest:
		version, err = Latest(base)
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(base, version), nil
}

// LibraryPath returns the full path of the runtime shared library.
func (r Resolver) LibraryPath() (string, error) {
	dir, err := r.RuntimeDir()
	if err != nil {
		return "", err
	}
	return LibraryPathIn(dir), nil
}

// LibraryPathIn returns the runtime library path inside runtimeDir.
func LibraryPathIn(runtimeDir string) string {
	return filepath.Join(runtimeDir, LibraryName())
}

// Latest returns the name of the highest semantic version directory in dir.
// Entries that are not directories or not valid versions are ignored.
func Latest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.IO(errors.PhaseProbe, dir, err)
	}

	var (
		best     *semver.Version
		bestName string
	)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := semver.NewVersion(e.Name())
		if err != nil {
			continue
		}
		if best == nil || best.LessThan(*v) {
			best = v
			bestName = e.Name()
		}
	}

	if best == nil {
		return "", errors.NotFound(errors.PhaseProbe, "runtime version in", dir)
	}
	return bestName, nil
}

// Load resolves the library path and opens it.
func Load(r Resolver) (*native.Library, error) {
	path, err := r.LibraryPath()
	if err != nil {
		return nil, err
	}
	return native.Open(path)
}
