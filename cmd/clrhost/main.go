// Command clrhost embeds CoreCLR and runs managed code in a single domain.
//
//	clrhost run App.dll --flag
//	clrhost invoke --assembly ironcore-example --type IronCore.Example.Scripts --method Main
//	clrhost probe
//	clrhost interactive
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		var exit exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries the managed program's exit code out of a command.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
