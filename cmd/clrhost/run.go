package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <assembly> [args...]",
		Short: "Execute an assembly's entry point",
		Long: `Execute the entry point of a managed assembly and exit with its exit code.
Relative assembly paths are resolved against the working directory first,
then against the application directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.start()
			if err != nil {
				return err
			}
			defer l.close()

			code, err := l.session.ExecuteAssembly(resolveAssembly(l.appDir, args[0]), args[1:])
			if err != nil {
				return err
			}
			if code != 0 {
				return exitError{code: code}
			}
			return nil
		},
	}

	// Everything after the assembly belongs to the managed program.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func resolveAssembly(appDir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if abs, err := filepath.Abs(name); err == nil {
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return filepath.Join(appDir, name)
}
