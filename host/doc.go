// Package host runs a single CoreCLR domain inside the current process.
//
// # Quick Start
//
//	r := probe.Resolver{Version: probe.VersionLatest}
//	lib, err := probe.Load(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// lib is deliberately never closed; see Library Lifetime below.
//
//	rtDir, _ := r.RuntimeDir()
//	session, err := host.NewSession(lib, host.Paths{
//	    App:          appDir,
//	    AppNI:        appDir,
//	    NativeSearch: appDir,
//	}, host.WithRuntimeDir(rtDir))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Close()
//
//	code, err := session.ExecuteAssembly(filepath.Join(appDir, "App.dll"), os.Args[1:])
//
// # Lifecycle
//
// A Session moves through three states:
//
//	Uninitialized -> Initialized -> ShutDown
//
// NewSession binds the four hosting entry points, builds the property bag and
// calls coreclr_initialize; a session is only returned once initialization
// succeeded. ExecuteAssembly and CreateDelegate are valid while Initialized
// and may be called any number of times. Close calls coreclr_shutdown exactly
// once and never fails: a failing shutdown status is logged and kept for
// ShutdownErr.
//
// # Library Lifetime
//
// Bindings are only valid while the library stays loaded. A session holds a
// lease on its library from initialization until Close, and native.Library
// refuses to unload while leased. Launchers keep the library loaded even after
// Close and let process exit unload it, because the runtime's own background
// threads may still be running when the session is torn down.
//
// # Delegates
//
// CreateDelegate returns an opaque Delegate. Calling it through BindUnsafe or
// CallUnsafe requires the caller to know the managed method's exact native
// signature; nothing here can check it.
//
// # Concurrency
//
// A Session is not safe for concurrent use. The runtime does not document
// thread-safety for concurrent domain operations, so callers that share a
// session across goroutines must serialize every call.
package host
