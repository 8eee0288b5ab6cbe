//go:build linux

package native

import (
	"path/filepath"
	"testing"

	"github.com/wippyai/clrhost/errors"
)

func findLibc(t *testing.T) string {
	t.Helper()
	for _, pattern := range []string{
		"/lib/*-linux-gnu/libc.so.6",
		"/usr/lib/*-linux-gnu/libc.so.6",
		"/lib64/libc.so.6",
		"/usr/lib64/libc.so.6",
		"/usr/lib/libc.so.6",
		"/lib/libc.musl-*.so.1",
	} {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	t.Skip("libc not found")
	return ""
}

func TestBindResolvesRealSymbol(t *testing.T) {
	lib, err := Open(findLibc(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var strlen func(s *byte) uintptr
	if err := lib.Bind(&strlen, "strlen"); err != nil {
		t.Fatalf("Bind(strlen): %v", err)
	}

	var arena Arena
	defer arena.Free()
	s, err := arena.CString(errors.PhaseExecute, "arg", "coreclr")
	if err != nil {
		t.Fatalf("CString: %v", err)
	}
	if n := strlen(s); n != 7 {
		t.Errorf("strlen = %d, want 7", n)
	}

	var missing func()
	err = lib.Bind(&missing, "coreclr_initialize_not_here")
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindSymbolNotFound}) {
		t.Errorf("err = %v, want [bind] symbol_not_found", err)
	}

	if err := lib.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := lib.Bind(&strlen, "strlen"); !errors.IsKind(err, errors.KindInvalidState) {
		t.Errorf("Bind after Close err = %v, want invalid_state", err)
	}
}
