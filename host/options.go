package host

import "go.uber.org/zap"

// DefaultFriendlyName is the domain name passed to initialization.
const DefaultFriendlyName = "clrhost"

type sessionConfig struct {
	logger            *zap.Logger
	executablePath    string
	friendlyName      string
	trustedAssemblies string
	runtimeDir        string
	haveTrusted       bool
}

// Option configures NewSession.
type Option func(*sessionConfig)

// WithExecutablePath sets the host identity reported to the runtime.
// Default: the current process executable.
func WithExecutablePath(path string) Option {
	return func(c *sessionConfig) {
		c.executablePath = path
	}
}

// WithFriendlyName sets the domain's friendly name.
// Default: DefaultFriendlyName.
func WithFriendlyName(name string) Option {
	return func(c *sessionConfig) {
		c.friendlyName = name
	}
}

// WithTrustedAssemblies supplies a prebuilt trusted platform assemblies list
// and skips the runtime directory scan.
func WithTrustedAssemblies(list string) Option {
	return func(c *sessionConfig) {
		c.trustedAssemblies = list
		c.haveTrusted = true
	}
}

// WithRuntimeDir sets the directory scanned for trusted platform assemblies.
func WithRuntimeDir(dir string) Option {
	return func(c *sessionConfig) {
		c.runtimeDir = dir
	}
}

// WithLogger sets the session logger. Default: Logger().
func WithLogger(l *zap.Logger) Option {
	return func(c *sessionConfig) {
		c.logger = l
	}
}
