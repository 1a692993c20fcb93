// Package commands implements the phlx CLI for inspecting and checking contracts.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phylax/contracts/schema"
)

func Execute() error {
	return execute(NewRoot())
}

// reportedError marks an error that a command already printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func execute(root *cobra.Command) error {
	err := root.Execute()
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "phlx",
		Short:         "Inspect and validate Phylax contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(contractsCmd(), describeCmd(), validateCmd(), eventsCmd(), eventCmd(), tokenCmd())
	return root
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, args []string, at int) ([]byte, error) {
	if len(args) <= at || args[at] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[at])
}

// reportInvalid prints a contract error in a stable, grep-friendly form.
func reportInvalid(cmd *cobra.Command, err error) error {
	if cve, ok := schema.AsValidationError(err); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid %s: field=%s reason=%q\n", cve.Entity, cve.Field, cve.Reason)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return reportedError{err}
}
