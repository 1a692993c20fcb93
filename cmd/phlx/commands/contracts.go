package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phylax/contracts/models"
	"github.com/phylax/contracts/schema"
)

func contractsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contracts",
		Short: "List the contracts that can be validated by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range models.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <contract>",
		Short: "Show the fields of a contract with both spellings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := models.Describe(args[0])
			if err != nil {
				return reportInvalid(cmd, err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tWIRE\tTYPE\tREQUIRED\tDEFAULT\tNOTES")
			for _, f := range d.Summary() {
				notes := ""
				if f.Excluded {
					notes = "never serialized"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\t%s\n", f.Name, f.Wire, f.Type, f.Required, f.Default, notes)
			}
			return tw.Flush()
		},
	}
}

func validateCmd() *cobra.Command {
	var naming string
	cmd := &cobra.Command{
		Use:   "validate <contract> [file|-]",
		Short: "Construct a contract from JSON and print it in canonical form",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := schema.ParseNaming(naming)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args, 1)
			if err != nil {
				return err
			}
			v, err := models.Parse(args[0], data)
			if err != nil {
				return reportInvalid(cmd, err)
			}
			out, err := schema.EncodeAs(v, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&naming, "naming", "wire", "output naming: wire or internal")
	return cmd
}
