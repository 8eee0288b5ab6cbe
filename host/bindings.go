package host

import (
	"github.com/wippyai/clrhost/errors"
)

// Hosting entry points exported by the runtime library.
const (
	SymInitialize      = "coreclr_initialize"
	SymExecuteAssembly = "coreclr_execute_assembly"
	SymCreateDelegate  = "coreclr_create_delegate"
	SymShutdown        = "coreclr_shutdown"
)

// Signatures from coreclrhost.h. Parameter order and widths must match exactly.
type (
	initializeFunc func(
		exePath *byte,
		appDomainFriendlyName *byte,
		propertyCount int32,
		propertyKeys **byte,
		propertyValues **byte,
		hostHandle *uintptr,
		domainID *uint32,
	) uint32

	executeAssemblyFunc func(
		hostHandle uintptr,
		domainID uint32,
		argc int32,
		argv **byte,
		managedAssemblyPath *byte,
		exitCode *uint32,
	) uint32

	createDelegateFunc func(
		hostHandle uintptr,
		domainID uint32,
		entryPointAssemblyName *byte,
		entryPointTypeName *byte,
		entryPointMethodName *byte,
		delegate *uintptr,
	) uint32

	shutdownFunc func(
		hostHandle uintptr,
		domainID uint32,
	) uint32
)

// SymbolSource resolves named entry points into typed Go funcs.
type SymbolSource interface {
	// Bind stores a callable for symbol name in fptr, a pointer to a func
	// variable of the exact native signature.
	Bind(fptr any, name string) error
}

// Library is a SymbolSource whose lifetime can be leased. A lease is held
// from successful initialization until shutdown.
type Library interface {
	SymbolSource
	Acquire() error
	Release()
}

type entryPoints struct {
	initialize      initializeFunc
	executeAssembly executeAssemblyFunc
	createDelegate  createDelegateFunc
	shutdown        shutdownFunc
}

// bind resolves all four entry points. The table is returned only when every
// symbol resolved.
func bind(src SymbolSource) (*entryPoints, error) {
	var ep entryPoints
	targets := []struct {
		fptr any
		name string
	}{
		{&ep.initialize, SymInitialize},
		{&ep.executeAssembly, SymExecuteAssembly},
		{&ep.createDelegate, SymCreateDelegate},
		{&ep.shutdown, SymShutdown},
	}

	for _, t := range targets {
		if err := src.Bind(t.fptr, t.name); err != nil {
			if errors.IsKind(err, errors.KindSymbolNotFound) {
				return nil, err
			}
			return nil, errors.SymbolNotFound(t.name, err)
		}
	}

	if ep.initialize == nil || ep.executeAssembly == nil || ep.createDelegate == nil || ep.shutdown == nil {
		return nil, errors.New(errors.PhaseBind, errors.KindSymbolNotFound).
			Detail("symbol source reported success without binding").
			Build()
	}
	return &ep, nil
}
