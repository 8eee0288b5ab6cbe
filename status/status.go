// Package status translates the 32-bit result codes returned by every
// CoreCLR hosting call into symbolic categories.
package status

import (
	stderrors "errors"
	"fmt"

	"github.com/wippyai/clrhost/errors"
)

// Code is the raw 32-bit status returned by a hosting entry point.
type Code uint32

// Known codes.
const (
	CodeOK                 Code = 0x00000000
	CodeFileNotFound       Code = 0x80070002 // HRESULT_FROM_WIN32(ERROR_FILE_NOT_FOUND)
	CodeTypeLoad           Code = 0x80131522 // COR_E_TYPELOAD
	CodeEntryPointNotFound Code = 0x80131523 // COR_E_ENTRYPOINTNOTFOUND
	CodeDllNotFound        Code = 0x80131524 // COR_E_DLLNOTFOUND
)

// Category is the symbolic meaning of a Code.
type Category int

const (
	Success Category = iota
	FileNotFound
	TypeLoadFailure
	EntryPointNotFound
	DllNotFound
	UnknownFailure
)

var categoryNames = [...]string{
	Success:            "Success",
	FileNotFound:       "FileNotFound",
	TypeLoadFailure:    "TypeLoadFailure",
	EntryPointNotFound: "EntryPointNotFound",
	DllNotFound:        "DllNotFound",
	UnknownFailure:     "UnknownFailure",
}

// String returns the category name.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

var table = map[Code]Category{
	CodeOK:                 Success,
	CodeFileNotFound:       FileNotFound,
	CodeTypeLoad:           TypeLoadFailure,
	CodeEntryPointNotFound: EntryPointNotFound,
	CodeDllNotFound:        DllNotFound,
}

// Result is a translated status code.
type Result struct {
	Code     Code
	Category Category
}

// Translate maps a raw code through the fixed table. Unmatched codes become
// UnknownFailure and keep the raw value.
func Translate(code uint32) Result {
	c := Code(code)
	if cat, ok := table[c]; ok {
		return Result{Code: c, Category: cat}
	}
	return Result{Code: c, Category: UnknownFailure}
}

// Succeeded reports whether the call succeeded. An unknown code counts as
// success when its sign bit is clear, as for any HRESULT.
func (r Result) Succeeded() bool {
	switch r.Category {
	case Success:
		return true
	case UnknownFailure:
		return int32(r.Code) >= 0
	default:
		return false
	}
}

// Failed is the complement of Succeeded.
func (r Result) Failed() bool {
	return !r.Succeeded()
}

// Check returns nil for a successful result, or a status error attributed to phase.
func (r Result) Check(phase errors.Phase) error {
	if r.Succeeded() {
		return nil
	}
	return &errors.Error{
		Phase:  phase,
		Kind:   errors.KindStatus,
		Detail: r.String(),
		Value:  r,
	}
}

// String formats the result as "Name (0xCODE)".
func (r Result) String() string {
	return fmt.Sprintf("%s (0x%08X)", r.Category, uint32(r.Code))
}

// FromError extracts the translated Result carried by a status error in err's chain.
func FromError(err error) (Result, bool) {
	var e *errors.Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return Result{}, false
		}
		if r, ok := e.Value.(Result); ok && e.Kind == errors.KindStatus {
			return r, true
		}
		err = e.Cause
	}
	return Result{}, false
}
