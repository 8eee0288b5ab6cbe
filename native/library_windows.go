//go:build windows

package native

import "golang.org/x/sys/windows"

func openLibrary(path string) (func(string) (uintptr, error), func() error, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, nil, err
	}

	lookup := func(name string) (uintptr, error) {
		proc, err := dll.FindProc(name)
		if err != nil {
			return 0, err
		}
		return proc.Addr(), nil
	}
	return lookup, dll.Release, nil
}
