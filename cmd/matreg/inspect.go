package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matreg/codec"
	"github.com/katalvlaran/matreg/matrix"
)

func newInspectCmd() *cobra.Command {
	var maxElements uint64

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Decode a matrix file and print it",
		Long:  `Decode a matrix file in either the v1 or the legacy layout and print its name, shape and contents.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxElements == 0 {
				return fmt.Errorf("--max-elements must be >= 1")
			}
			m, err := codec.ReadFile(args[0], codec.WithMaxElements(maxElements))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), m)
			return err
		},
	}
	cmd.Flags().Uint64Var(&maxElements, "max-elements", matrix.DefaultMaxElements,
		"refuse files declaring more elements than this")

	return cmd
}
