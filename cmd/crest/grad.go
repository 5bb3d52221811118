package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	gradVars  []string
	gradOrder int
)

var gradCmd = &cobra.Command{
	Use:   "grad EXPR",
	Short: "Print exact derivatives of an expression",
	Long: `Parses EXPR, assigns the given variable values and prints the value,
the gradient and, depending on --order, the Hessian and the third-order
derivative tensor over every variable the expression mentions.

Example:
  crest grad "sin(x)*y + cos(y)" --var x=2 --var y=3 --order 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if gradOrder < 1 || gradOrder > 3 {
			return errors.Errorf("--order %d: supported orders are 1, 2 and 3", gradOrder)
		}
		expr, vars, err := compile(args[0], gradVars)
		if err != nil {
			return err
		}
		order := orderedVars(expr, vars)

		fmt.Printf("value: %g\n", expr.Value())
		for _, v := range order {
			fmt.Printf("d/d%s: %g\n", v.Name(), expr.Derivative(v.ID()))
		}
		if gradOrder >= 2 {
			for _, a := range order {
				for _, b := range order {
					fmt.Printf("d2/d%s d%s: %g\n", a.Name(), b.Name(),
						expr.Derivative2(a.ID(), b.ID()))
				}
			}
		}
		if gradOrder >= 3 {
			for _, a := range order {
				for _, b := range order {
					for _, c := range order {
						fmt.Printf("d3/d%s d%s d%s: %g\n", a.Name(), b.Name(), c.Name(),
							expr.Derivative3(a.ID(), b.ID(), c.ID()))
					}
				}
			}
		}
		return nil
	},
}

func init() {
	gradCmd.Flags().StringArrayVar(&gradVars, "var", nil, "variable assignment name=value (repeatable)")
	gradCmd.Flags().IntVar(&gradOrder, "order", 1, "highest derivative order to print (1-3)")
	rootCmd.AddCommand(gradCmd)
}
