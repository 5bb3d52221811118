package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate an expression",
	Long: `Parses EXPR, assigns the given variable values and prints the result.

Example:
  crest eval "sin(x)*y + cos(y)" --var x=2 --var y=3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, _, err := compile(args[0], evalVars)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", expr.Value())
		return nil
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable assignment name=value (repeatable)")
	rootCmd.AddCommand(evalCmd)
}
