// Package native opens shared libraries and moves strings across the
// native boundary.
//
// A Library is opened once and bound into typed Go function values:
//
//	lib, err := native.Open(path)
//	var strlen func(*byte) uintptr
//	if err := lib.Bind(&strlen, "strlen"); err != nil {
//	    return err
//	}
//
// After Bind no untyped address escapes the package. Bound functions are valid
// only while the library stays open; Acquire and Release track the users that
// depend on it, and Close refuses to unload while any lease is outstanding.
//
// Strings handed to native code are copied into NUL-terminated buffers owned
// by an Arena. The arena pins every buffer so that pointer arrays may cross
// the boundary, and must be freed once the native call returns:
//
//	var arena native.Arena
//	defer arena.Free()
//	argv, argc, err := arena.Strings(errors.PhaseExecute, "argv", args)
//
// Library is not safe for concurrent use.
package native
