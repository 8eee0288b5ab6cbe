package native

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/wippyai/clrhost/errors"
)

// Arena owns NUL-terminated copies of Go strings for the duration of a
// native call. The zero value is ready to use.
type Arena struct {
	pinner runtime.Pinner
}

// CString returns a pinned NUL-terminated copy of s. An embedded NUL is an
// encoding error attributed to phase, naming the value as what.
func (a *Arena) CString(phase errors.Phase, what, s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, errors.Encoding(phase, what, s)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	a.pinner.Pin(&buf[0])
	return &buf[0], nil
}

// Strings returns a pinned array of NUL-terminated copies of ss and its
// length. An empty ss yields a nil array.
func (a *Arena) Strings(phase errors.Phase, what string, ss []string) (**byte, int32, error) {
	if len(ss) == 0 {
		return nil, 0, nil
	}

	ptrs := make([]*byte, len(ss))
	for i, s := range ss {
		p, err := a.CString(phase, fmt.Sprintf("%s[%d]", what, i), s)
		if err != nil {
			return nil, 0, err
		}
		ptrs[i] = p
	}
	a.pinner.Pin(&ptrs[0])
	return &ptrs[0], int32(len(ptrs)), nil
}

// Free unpins everything the arena handed out. Pointers obtained from the
// arena must not be used by native code afterwards.
func (a *Arena) Free() {
	a.pinner.Unpin()
}

// GoString copies a NUL-terminated native string into a Go string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// GoStrings copies an array of n native strings.
func GoStrings(pp **byte, n int) []string {
	if pp == nil || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i, p := range unsafe.Slice(pp, n) {
		out[i] = GoString(p)
	}
	return out
}
