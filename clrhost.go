package clrhost

import (
	"github.com/wippyai/clrhost/host"
	"github.com/wippyai/clrhost/native"
	"github.com/wippyai/clrhost/probe"
)

// Start loads the runtime library found by r and initializes a session over
// it, trusting the platform assemblies of the resolved runtime directory.
// Options in opts are applied after the defaults and may override them.
//
// The returned library must stay loaded until the session is closed.
// Callers normally never close it and let process exit unload it.
func Start(r probe.Resolver, paths host.Paths, opts ...host.Option) (*host.Session, *native.Library, error) {
	runtimeDir, err := r.RuntimeDir()
	if err != nil {
		return nil, nil, err
	}

	lib, err := native.Open(probe.LibraryPathIn(runtimeDir))
	if err != nil {
		return nil, nil, err
	}

	opts = append([]host.Option{host.WithRuntimeDir(runtimeDir)}, opts...)
	session, err := host.NewSession(lib, paths, opts...)
	if err != nil {
		return nil, lib, err
	}
	return session, lib, nil
}
