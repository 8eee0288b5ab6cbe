package host

import (
	"reflect"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/native"
)

// fakeLibrary binds plain Go funcs in place of native entry points.
type fakeLibrary struct {
	symbols map[string]any
	bound   []string
	leases  int
}

func (f *fakeLibrary) Bind(fptr any, name string) error {
	fn, ok := f.symbols[name]
	if !ok {
		return errors.SymbolNotFound(name, nil)
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(fn))
	f.bound = append(f.bound, name)
	return nil
}

func (f *fakeLibrary) Acquire() error {
	f.leases++
	return nil
}

func (f *fakeLibrary) Release() {
	f.leases--
}

// fakeRuntime records every call made through the bound entry points.
type fakeRuntime struct {
	initCode     uint32
	initHandle   uintptr
	initDomain   uint32
	execCode     uint32
	execExit     uint32
	delegateCode uint32
	delegateAddr uintptr
	shutdownCode uint32

	initCalls     int
	execCalls     int
	delegateCalls int
	shutdownCalls int

	exePath       string
	friendlyName  string
	keys          []string
	values        []string
	slotsZeroed   bool
	assemblyPath  string
	argv          []string
	delegateNames [3]string
	shutdownArgs  [2]uint64
}

func (r *fakeRuntime) library() *fakeLibrary {
	return &fakeLibrary{symbols: map[string]any{
		SymInitialize:      r.initialize,
		SymExecuteAssembly: r.executeAssembly,
		SymCreateDelegate:  r.createDelegate,
		SymShutdown:        r.shutdown,
	}}
}

func (r *fakeRuntime) initialize(exePath, name *byte, count int32, keys, values **byte, handle *uintptr, domain *uint32) uint32 {
	r.initCalls++
	r.exePath = native.GoString(exePath)
	r.friendlyName = native.GoString(name)
	r.keys = native.GoStrings(keys, int(count))
	r.values = native.GoStrings(values, int(count))
	r.slotsZeroed = *handle == 0 && *domain == 0
	if r.initCode == 0 {
		*handle = r.initHandle
		*domain = r.initDomain
	}
	return r.initCode
}

func (r *fakeRuntime) executeAssembly(handle uintptr, domain uint32, argc int32, argv **byte, path *byte, exit *uint32) uint32 {
	r.execCalls++
	r.assemblyPath = native.GoString(path)
	r.argv = native.GoStrings(argv, int(argc))
	if r.execCode == 0 {
		*exit = r.execExit
	}
	return r.execCode
}

func (r *fakeRuntime) createDelegate(handle uintptr, domain uint32, asm, typ, method *byte, out *uintptr) uint32 {
	r.delegateCalls++
	r.delegateNames = [3]string{native.GoString(asm), native.GoString(typ), native.GoString(method)}
	if r.delegateCode == 0 {
		*out = r.delegateAddr
	}
	return r.delegateCode
}

func (r *fakeRuntime) shutdown(handle uintptr, domain uint32) uint32 {
	r.shutdownCalls++
	r.shutdownArgs = [2]uint64{uint64(handle), uint64(domain)}
	return r.shutdownCode
}
