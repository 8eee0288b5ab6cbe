package host

import "fmt"

// HostHandle is the opaque token the runtime issues on initialization.
// It is never dereferenced, only passed back to the runtime.
type HostHandle struct {
	v uintptr
}

// IsZero reports whether the handle was never set by the runtime.
func (h HostHandle) IsZero() bool { return h.v == 0 }

// String formats the handle as a hex address.
func (h HostHandle) String() string { return fmt.Sprintf("0x%x", h.v) }

// DomainID identifies the isolation domain paired with a HostHandle.
type DomainID uint32
