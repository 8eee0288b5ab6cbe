// Package tpa builds the trusted platform assemblies list: every managed
// binary in the runtime directory, by absolute path.
package tpa

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wippyai/clrhost/errors"
)

const (
	// Extension marks a managed binary. The comparison is case-sensitive.
	Extension = ".dll"

	// Separator joins entries of the list, matching the runtime's
	// expectation for path lists on this platform.
	Separator = string(os.PathListSeparator)
)

// List returns the absolute paths of the managed binaries in dir in
// directory-iteration order. The order is whatever the filesystem yields and
// is not sorted. The first entry that cannot be read aborts the scan.
func List(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.IO(errors.PhaseEnumerate, dir, err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.IO(errors.PhaseEnumerate, abs, err)
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, errors.IO(errors.PhaseEnumerate, abs, err)
	}

	var paths []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != Extension {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, errors.IO(errors.PhaseEnumerate, filepath.Join(abs, e.Name()), err)
		}
		if info.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(abs, e.Name()))
	}
	return paths, nil
}

// Enumerate returns List(dir) joined with Separator. An empty directory
// yields the empty string.
func Enumerate(dir string) (string, error) {
	paths, err := List(dir)
	if err != nil {
		return "", err
	}
	return strings.Join(paths, Separator), nil
}
