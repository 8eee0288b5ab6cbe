package host

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"

	"github.com/wippyai/clrhost/errors"
)

// Delegate is a native-callable address of a managed static method.
type Delegate struct {
	addr uintptr
}

// Addr returns the native entry address of the delegate.
func (d Delegate) Addr() uintptr { return d.addr }

// IsZero reports whether the delegate has no address.
func (d Delegate) IsZero() bool { return d.addr == 0 }

// String formats the delegate address for logs.
func (d Delegate) String() string { return fmt.Sprintf("delegate@0x%x", d.addr) }

// BindUnsafe stores a Go func that calls the delegate in fptr, a pointer to a
// func variable.
//
// The func type must match the managed method's native signature exactly.
// This cannot be checked; a mismatch is undefined behavior.
func (d Delegate) BindUnsafe(fptr any) error {
	if d.IsZero() {
		return errors.InvalidInput(errors.PhaseDelegate, "zero delegate")
	}
	v := reflect.ValueOf(fptr)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Func {
		return errors.InvalidInput(errors.PhaseDelegate, fmt.Sprintf("binding target must be a pointer to a func, got %T", fptr))
	}
	purego.RegisterFunc(fptr, d.addr)
	return nil
}

// CallUnsafe calls the delegate with word-sized arguments and returns the
// first return register.
//
// The caller guarantees the managed method takes exactly these arguments;
// a mismatch is undefined behavior.
func (d Delegate) CallUnsafe(args ...uintptr) (uintptr, error) {
	if d.IsZero() {
		return 0, errors.InvalidInput(errors.PhaseDelegate, "zero delegate")
	}
	r1, _, _ := purego.SyscallN(d.addr, args...)
	return r1, nil
}
