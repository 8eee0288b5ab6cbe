package host

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wippyai/clrhost/errors"
	"github.com/wippyai/clrhost/native"
	"github.com/wippyai/clrhost/properties"
	"github.com/wippyai/clrhost/status"
	"github.com/wippyai/clrhost/tpa"
)

// State is the lifecycle position of a Session.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateShutDown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateInitialized:
		return "Initialized"
	case StateShutDown:
		return "ShutDown"
	default:
		return "Unknown"
	}
}

// Paths are the application search paths handed to the runtime.
type Paths struct {
	App          string
	AppNI        string
	NativeSearch string
}

// Session owns one initialized runtime domain.
type Session struct {
	lib         Library
	ep          *entryPoints
	log         *zap.Logger
	shutdownErr error
	id          string
	handle      HostHandle
	domain      DomainID
	state       State
}

// NewSession binds the hosting entry points in lib and initializes a runtime
// domain. Initialization is never attempted when any entry point is missing.
func NewSession(lib Library, paths Paths, opts ...Option) (*Session, error) {
	cfg := sessionConfig{friendlyName: DefaultFriendlyName}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.NewString()
	log := cfg.logger
	if log == nil {
		log = Logger()
	}
	log = log.With(zap.String("session", id))

	ep, err := bind(lib)
	if err != nil {
		return nil, err
	}
	log.Debug("hosting entry points bound")

	exe, err := executablePath(cfg.executablePath)
	if err != nil {
		return nil, err
	}

	trusted, err := trustedAssemblies(cfg)
	if err != nil {
		return nil, err
	}

	bag, err := properties.Build(trusted, paths.App, paths.AppNI, paths.NativeSearch)
	if err != nil {
		return nil, err
	}

	var arena native.Arena
	defer arena.Free()

	exeC, err := arena.CString(errors.PhaseInitialize, "executable path", exe)
	if err != nil {
		return nil, err
	}
	nameC, err := arena.CString(errors.PhaseInitialize, "friendly name", cfg.friendlyName)
	if err != nil {
		return nil, err
	}
	keys, values, count, err := bag.Marshal(&arena)
	if err != nil {
		return nil, err
	}

	if err := lib.Acquire(); err != nil {
		return nil, err
	}

	var (
		handle uintptr
		domain uint32
	)
	code := ep.initialize(exeC, nameC, count, keys, values, &handle, &domain)
	if err := status.Translate(code).Check(errors.PhaseInitialize); err != nil {
		lib.Release()
		log.Error("runtime initialization failed", zap.Error(err))
		return nil, err
	}

	s := &Session{
		lib:    lib,
		ep:     ep,
		log:    log,
		id:     id,
		handle: HostHandle{v: handle},
		domain: DomainID(domain),
		state:  StateInitialized,
	}
	log.Info("runtime initialized",
		zap.String("exe", exe),
		zap.Stringer("handle", s.handle),
		zap.Uint32("domain", domain),
		zap.Int("properties", bag.Len()))
	return s, nil
}

func executablePath(path string) (string, error) {
	if path == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", errors.InvalidHostPath("", "resolve executable", err)
		}
		path = exe
	}

	switch {
	case path == "":
		return "", errors.InvalidHostPath(path, "empty executable path", nil)
	case !utf8.ValidString(path):
		return "", errors.InvalidHostPath(path, "executable path is not valid UTF-8", nil)
	case strings.IndexByte(path, 0) >= 0:
		return "", errors.InvalidHostPath(path, "executable path contains a NUL byte", nil)
	}
	return path, nil
}

func trustedAssemblies(cfg sessionConfig) (string, error) {
	if cfg.haveTrusted {
		return cfg.trustedAssemblies, nil
	}
	if cfg.runtimeDir == "" {
		return "", errors.InvalidInput(errors.PhaseInitialize, "no runtime directory or trusted assemblies list")
	}
	return tpa.Enumerate(cfg.runtimeDir)
}

// ID returns the session identifier used in log fields.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Handle returns the runtime-issued handle. It is meaningful only while the
// session is Initialized.
func (s *Session) Handle() HostHandle { return s.handle }

// Domain returns the domain id reported by initialization.
func (s *Session) Domain() DomainID { return s.domain }

// ExecuteAssembly runs the entry point of the assembly at path with args and
// returns the exit code reported by the runtime.
func (s *Session) ExecuteAssembly(path string, args []string) (int, error) {
	if s.state != StateInitialized {
		return 0, errors.InvalidState(errors.PhaseExecute, s.state)
	}

	var arena native.Arena
	defer arena.Free()

	pathC, err := arena.CString(errors.PhaseExecute, "assembly path", path)
	if err != nil {
		return 0, err
	}
	argv, argc, err := arena.Strings(errors.PhaseExecute, "argv", args)
	if err != nil {
		return 0, err
	}

	s.log.Debug("executing assembly", zap.String("assembly", path), zap.Strings("args", args))

	var exitCode uint32
	code := s.ep.executeAssembly(s.handle.v, uint32(s.domain), argc, argv, pathC, &exitCode)
	if err := status.Translate(code).Check(errors.PhaseExecute); err != nil {
		s.log.Error("assembly execution failed", zap.String("assembly", path), zap.Error(err))
		return 0, err
	}

	return int(int32(exitCode)), nil
}

// CreateDelegate resolves the static method typeName.method in assembly to a
// native-callable Delegate.
func (s *Session) CreateDelegate(assembly, typeName, method string) (Delegate, error) {
	if s.state != StateInitialized {
		return Delegate{}, errors.InvalidState(errors.PhaseDelegate, s.state)
	}

	var arena native.Arena
	defer arena.Free()

	asmC, err := arena.CString(errors.PhaseDelegate, "assembly name", assembly)
	if err != nil {
		return Delegate{}, err
	}
	typeC, err := arena.CString(errors.PhaseDelegate, "type name", typeName)
	if err != nil {
		return Delegate{}, err
	}
	methodC, err := arena.CString(errors.PhaseDelegate, "method name", method)
	if err != nil {
		return Delegate{}, err
	}

	var addr uintptr
	code := s.ep.createDelegate(s.handle.v, uint32(s.domain), asmC, typeC, methodC, &addr)
	if err := status.Translate(code).Check(errors.PhaseDelegate); err != nil {
		s.log.Error("delegate creation failed",
			zap.String("assembly", assembly),
			zap.String("type", typeName),
			zap.String("method", method),
			zap.Error(err))
		return Delegate{}, err
	}
	if addr == 0 {
		return Delegate{}, errors.New(errors.PhaseDelegate, errors.KindNotFound).
			Symbol(typeName + "." + method).
			Detail("runtime returned a null delegate").
			Build()
	}

	s.log.Debug("delegate created",
		zap.String("assembly", assembly),
		zap.String("type", typeName),
		zap.String("method", method))
	return Delegate{addr: addr}, nil
}

// Close shuts the runtime down. Only the first call on an Initialized
// session reaches the runtime; later calls are no-ops. Close always returns
// nil; a failing shutdown status is logged and available from ShutdownErr.
func (s *Session) Close() error {
	if s.state != StateInitialized {
		return nil
	}

	code := s.ep.shutdown(s.handle.v, uint32(s.domain))
	s.state = StateShutDown
	s.ep = nil
	s.lib.Release()

	if err := status.Translate(code).Check(errors.PhaseShutdown); err != nil {
		s.shutdownErr = err
		s.log.Warn("runtime shutdown reported failure", zap.Error(err))
		return nil
	}
	s.log.Info("runtime shut down")
	return nil
}

// ShutdownErr returns the status error reported by shutdown, if any.
func (s *Session) ShutdownErr() error { return s.shutdownErr }
