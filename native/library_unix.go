//go:build darwin || freebsd || linux

package native

import "github.com/ebitengine/purego"

func openLibrary(path string) (func(string) (uintptr, error), func() error, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, nil, err
	}

	lookup := func(name string) (uintptr, error) {
		return purego.Dlsym(handle, name)
	}
	unload := func() error {
		return purego.Dlclose(handle)
	}
	return lookup, unload, nil
}
