package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates which hosting step produced the error
type Phase string

const (
	PhaseProbe      Phase = "probe"      // install location resolution
	PhaseLoad       Phase = "load"       // shared library loading
	PhaseBind       Phase = "bind"       // entry point resolution
	PhaseEnumerate  Phase = "enumerate"  // trusted assembly scan
	PhaseProperties Phase = "properties" // property bag construction
	PhaseInitialize Phase = "initialize" // runtime initialization
	PhaseExecute    Phase = "execute"    // assembly execution
	PhaseDelegate   Phase = "delegate"   // delegate creation
	PhaseShutdown   Phase = "shutdown"   // runtime shutdown
	PhaseConfig     Phase = "config"     // host configuration
)

// Kind categorizes the error
type Kind string

const (
	KindIO              Kind = "io"
	KindEncoding        Kind = "encoding"
	KindEnvironment     Kind = "environment"
	KindStatus          Kind = "status"
	KindInvalidHostPath Kind = "invalid_host_path"
	KindSymbolNotFound  Kind = "symbol_not_found"
	KindInvalidState    Kind = "invalid_state"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
	KindParse           Kind = "parse"
)

// Error is the structured error type used throughout clrhost
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Path   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" symbol ")
		b.WriteString(e.Symbol)
	}

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// An empty Phase on the target matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the native entry point name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Path sets the filesystem path
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IO creates a filesystem or library loading error
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Path:  path,
		Cause: cause,
	}
}

// Encoding creates an error for a string that cannot cross the native boundary
// because it contains an embedded NUL byte.
func Encoding(phase Phase, what, value string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEncoding,
		Detail: fmt.Sprintf("%s contains an embedded NUL byte at offset %d", what, strings.IndexByte(value, 0)),
		Value:  value,
	}
}

// Environment creates a missing environment variable error
func Environment(name string) *Error {
	return &Error{
		Phase:  PhaseProbe,
		Kind:   KindEnvironment,
		Detail: fmt.Sprintf("environment variable %s is not set", name),
		Value:  name,
	}
}

// SymbolNotFound creates a missing entry point error
func SymbolNotFound(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseBind,
		Kind:   KindSymbolNotFound,
		Symbol: name,
		Cause:  cause,
	}
}

// InvalidHostPath creates an error for an executable path the runtime cannot be given
func InvalidHostPath(path, detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseInitialize,
		Kind:   KindInvalidHostPath,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidState creates an error for an operation invoked in the wrong lifecycle state
func InvalidState(phase Phase, state fmt.Stringer) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidState,
		Detail: fmt.Sprintf("not permitted in state %s", state),
		Value:  state,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// ParseFailed creates a parsing error
func ParseFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindParse,
		Path:   path,
		Detail: "parse config",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
