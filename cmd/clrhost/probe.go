package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/clrhost/tpa"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(20)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func newProbeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Show where the runtime would be loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			r := cfg.Runtime.Resolver()
			out := cmd.OutOrStdout()

			root, err := r.RootDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, labelStyle.Render("Install root")+root)

			dir, err := r.RuntimeDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, labelStyle.Render("Runtime directory")+dir)

			lib, err := r.LibraryPath()
			if err != nil {
				return err
			}
			state := okStyle.Render("found")
			if _, err := os.Stat(lib); err != nil {
				state = missStyle.Render("missing")
			}
			fmt.Fprintln(out, labelStyle.Render("Runtime library")+lib+" "+state)

			assemblies, err := tpa.List(dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, labelStyle.Render("Trusted assemblies")+fmt.Sprint(len(assemblies)))
			return nil
		},
	}
}
