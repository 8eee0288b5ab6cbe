// Package clrhost embeds the CoreCLR runtime in a Go process.
//
// The library locates and loads the runtime's shared library, initializes
// exactly one domain inside it, runs assemblies or hands out native-callable
// delegates into managed code, and shuts the runtime down deterministically.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	clrhost/          Root package with Start, the one-call bootstrap
//	├── host/         Entry point binding and the Session state machine
//	├── probe/        Install root, runtime version and library path resolution
//	├── native/       Shared library loading and native string marshalling
//	├── tpa/          Trusted platform assemblies enumeration
//	├── properties/   Runtime initialization property bag
//	├── status/       Hosting status code translation
//	├── config/       Launcher configuration (TOML, YAML, environment)
//	├── errors/       Structured error types for debugging
//	└── cmd/clrhost/  Command-line launcher
//
// # Quick Start
//
//	session, lib, err := clrhost.Start(probe.Resolver{Version: probe.VersionLatest}, host.Paths{
//	    App:          appDir,
//	    AppNI:        appDir,
//	    NativeSearch: appDir,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = lib // keep loaded until process exit
//	defer session.Close()
//
//	code, err := session.ExecuteAssembly(filepath.Join(appDir, "App.dll"), os.Args[1:])
//
// # Ordering
//
// Every step happens on the calling goroutine and blocks until the runtime
// returns. The required order is: load, bind, initialize, any number of
// execute or create-delegate calls, shutdown, and only then (if ever) unload.
package clrhost
