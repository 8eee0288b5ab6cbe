// Package errors provides structured error types for the clrhost library.
//
// Errors are categorized by Phase (which hosting step failed) and Kind (error category).
// The Error type carries context: the entry point symbol, the filesystem path,
// the offending value and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBind, errors.KindSymbolNotFound).
//		Symbol("coreclr_initialize").
//		Path("/usr/share/dotnet/shared/Microsoft.NETCore.App/8.0.0/libcoreclr.so").
//		Cause(dlerr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Encoding(errors.PhaseExecute, "argv[1]", arg)
//	err := errors.Environment("DOTNET_ROOT")
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Kind, and Phase when the target sets one:
//
//	errors.Is(err, &errors.Error{Kind: errors.KindEncoding})
package errors
