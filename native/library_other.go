//go:build !(darwin || freebsd || linux || windows)

package native

import (
	"fmt"
	"runtime"
)

func openLibrary(string) (func(string) (uintptr, error), func() error, error) {
	return nil, nil, fmt.Errorf("dynamic loading is not supported on %s", runtime.GOOS)
}
