package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/clrhost"
	"github.com/wippyai/clrhost/config"
	"github.com/wippyai/clrhost/host"
	"github.com/wippyai/clrhost/probe"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	configPath     string
	runtimeRoot    string
	runtimeVersion string
	appDir         string
	logLevel       string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "clrhost",
		Short:         "Run managed code inside an embedded CoreCLR",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.toml, .yaml)")
	cmd.PersistentFlags().StringVar(&opts.runtimeRoot, "runtime-root", "", "runtime install root (default from "+probe.RootEnv()+")")
	cmd.PersistentFlags().StringVar(&opts.runtimeVersion, "runtime-version", "", "runtime version, or \"latest\"")
	cmd.PersistentFlags().StringVar(&opts.appDir, "app-dir", "", "application directory (default: launcher directory)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newInvokeCommand(opts))
	cmd.AddCommand(newProbeCommand(opts))
	cmd.AddCommand(newInteractiveCommand(opts))

	return cmd
}

// load merges defaults, the config file, environment and flags, in that order.
func (o *rootOptions) load() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg.ApplyEnv(os.Getenv)

	if o.runtimeRoot != "" {
		cfg.Runtime.Root = o.runtimeRoot
	}
	if o.runtimeVersion != "" {
		cfg.Runtime.Version = o.runtimeVersion
	}
	if o.appDir != "" {
		cfg.App.Dir = o.appDir
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// launcher owns the resources of one command invocation.
type launcher struct {
	cfg     config.Config
	log     *zap.Logger
	session *host.Session
	appDir  string
}

func (o *rootOptions) start() (*launcher, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}

	log, err := cfg.Log.Logger()
	if err != nil {
		return nil, err
	}
	host.SetLogger(log)

	appDir, err := launcherDir()
	if err != nil {
		return nil, err
	}
	if cfg.App.Dir != "" {
		appDir = cfg.App.Dir
	}

	// The library is never closed. The runtime's background threads can
	// outlive shutdown, so it stays mapped until process exit.
	session, lib, err := clrhost.Start(cfg.Runtime.Resolver(), cfg.App.SearchPaths(appDir),
		host.WithFriendlyName(cfg.App.FriendlyName),
		host.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("runtime library loaded", zap.String("path", lib.Path()))

	return &launcher{
		cfg:     cfg,
		log:     log,
		session: session,
		appDir:  appDir,
	}, nil
}

// close shuts the session down. The library stays loaded.
func (l *launcher) close() {
	_ = l.session.Close()
	_ = l.log.Sync()
}

func launcherDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
