package native

import (
	"os"
	"reflect"

	"github.com/ebitengine/purego"

	"github.com/wippyai/clrhost/errors"
)

type lifecycle string

func (l lifecycle) String() string { return string(l) }

const (
	libraryOpen   lifecycle = "open"
	libraryLeased lifecycle = "leased"
	libraryClosed lifecycle = "closed"
)

// Library is an opened native shared library.
type Library struct {
	lookup func(name string) (uintptr, error)
	unload func() error
	path   string
	leases int
	closed bool
}

// Open loads the shared library at path. A missing file and a module the OS
// loader rejects (missing dependency, architecture mismatch) are both io errors.
func Open(path string) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.IO(errors.PhaseLoad, path, err)
	}

	lookup, unload, err := openLibrary(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindIO).
			Path(path).
			Detail("load shared library").
			Cause(err).
			Build()
	}

	return &Library{
		path:   path,
		lookup: lookup,
		unload: unload,
	}, nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Bind resolves the exported symbol name and stores a callable for it in
// fptr, which must be a non-nil pointer to a func variable. The func type
// must match the native signature exactly; a mismatch is not detectable here.
func (l *Library) Bind(fptr any, name string) error {
	if l.closed {
		return errors.InvalidState(errors.PhaseBind, libraryClosed)
	}

	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Func {
		return errors.New(errors.PhaseBind, errors.KindInvalidInput).
			Symbol(name).
			Detail("binding target must be a pointer to a func, got %T", fptr).
			Build()
	}

	addr, err := l.lookup(name)
	if err != nil || addr == 0 {
		return errors.New(errors.PhaseBind, errors.KindSymbolNotFound).
			Symbol(name).
			Path(l.path).
			Cause(err).
			Build()
	}

	purego.RegisterFunc(fptr, addr)
	return nil
}

// Acquire records a user of the library's bindings.
func (l *Library) Acquire() error {
	if l.closed {
		return errors.InvalidState(errors.PhaseLoad, libraryClosed)
	}
	l.leases++
	return nil
}

// Release drops a lease taken with Acquire.
func (l *Library) Release() {
	if l.leases > 0 {
		l.leases--
	}
}

// Leases returns the number of outstanding leases.
func (l *Library) Leases() int { return l.leases }

// Close unloads the library. It fails while leases are outstanding, since
// every binding taken from the library becomes invalid once it is unloaded.
// Closing an already closed library is a no-op.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	if l.leases > 0 {
		return errors.InvalidState(errors.PhaseLoad, libraryLeased)
	}
	l.closed = true
	if l.unload == nil {
		return nil
	}
	if err := l.unload(); err != nil {
		return errors.IO(errors.PhaseLoad, l.path, err)
	}
	return nil
}
