// Command gpathcli is a small command-line wrapper around gpath.Get/Valid.
// It is external tooling, not part of the gpath library surface.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhawalhost/gpath"
	"github.com/spf13/cobra"
)

var prettyFlag bool

func main() {
	root := &cobra.Command{
		Use:   "gpathcli",
		Short: "Extract or validate JSON from the command line using gpath paths",
	}

	getCmd := &cobra.Command{
		Use:   "get <path> [file]",
		Short: "Print the value addressed by path",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runGet,
	}
	getCmd.Flags().BoolVar(&prettyFlag, "pretty", false, "pretty-print array/object results")
	root.AddCommand(getCmd)

	validCmd := &cobra.Command{
		Use:   "valid [file]",
		Short: "Exit 0 if the input is well-formed JSON, 1 otherwise",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValid,
	}
	root.AddCommand(validCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func readInput(args []string, fileIdx int) ([]byte, error) {
	if len(args) > fileIdx {
		return os.ReadFile(args[fileIdx])
	}
	return io.ReadAll(os.Stdin)
}

func runGet(cmd *cobra.Command, args []string) error {
	data, err := readInput(args, 1)
	if err != nil {
		return err
	}
	path := args[0]
	res := gpath.Get(data, path)
	if !res.Exists() {
		return fmt.Errorf("path %q did not resolve", path)
	}
	if prettyFlag {
		pretty := gpath.Get(data, path+"|@pretty")
		fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return nil
}

func runValid(cmd *cobra.Command, args []string) error {
	data, err := readInput(args, 0)
	if err != nil {
		return err
	}
	if !gpath.Valid(data) {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		os.Exit(1)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
