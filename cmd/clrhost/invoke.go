package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type invokeOptions struct {
	assembly string
	typeName string
	method   string
}

func newInvokeCommand(opts *rootOptions) *cobra.Command {
	inv := &invokeOptions{}

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Call a static managed method through a delegate",
		Long: `Create a delegate for a public static method and call it.
The method must take no arguments and return void. Unset flags fall back
to the [entry] section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := opts.start()
			if err != nil {
				return err
			}
			defer l.close()

			entry := l.cfg.Entry
			if inv.assembly != "" {
				entry.Assembly = inv.assembly
			}
			if inv.typeName != "" {
				entry.Type = inv.typeName
			}
			if inv.method != "" {
				entry.Method = inv.method
			}
			if entry.Assembly == "" || entry.Type == "" || entry.Method == "" {
				return fmt.Errorf("assembly, type and method are required")
			}

			d, err := l.session.CreateDelegate(entry.Assembly, entry.Type, entry.Method)
			if err != nil {
				return err
			}
			l.log.Debug("invoking delegate", zap.Stringer("delegate", d))

			var call func()
			if err := d.BindUnsafe(&call); err != nil {
				return err
			}
			call()
			return nil
		},
	}

	cmd.Flags().StringVar(&inv.assembly, "assembly", "", "assembly name")
	cmd.Flags().StringVar(&inv.typeName, "type", "", "fully qualified type name")
	cmd.Flags().StringVar(&inv.method, "method", "", "static method name")
	return cmd
}
