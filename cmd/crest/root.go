package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crest-ml/crest/internal/ad"
	"github.com/crest-ml/crest/internal/parse"
)

const version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "crest",
	Short: "Crest evaluates arithmetic expressions and their exact derivatives",
	Long: `Crest builds an automatic-differentiation tree from an infix expression
and reports its value and exact first, second and third-order partial
derivatives with respect to the variables it mentions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crest %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// compile parses src and applies the --var assignments. Every assigned name
// must appear in the expression; unassigned variables keep value 0.
func compile(src string, assignments []string) (ad.Expression, map[string]*ad.Variable, error) {
	vars := make(map[string]*ad.Variable)
	expr, err := parse.Expression(src, vars)
	if err != nil {
		return nil, nil, err
	}
	for _, a := range assignments {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, nil, errors.Errorf("bad --var %q: want name=value", a)
		}
		v, ok := vars[name]
		if !ok {
			return nil, nil, errors.Errorf("--var %q: expression does not mention %q", a, name)
		}
		x, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bad --var %q", a)
		}
		v.SetValue(x)
	}
	return expr, vars, nil
}

// orderedVars returns the expression's variables in depth-first encounter
// order, resolved back to their names.
func orderedVars(expr ad.Expression, vars map[string]*ad.Variable) []*ad.Variable {
	byID := make(map[uint32]*ad.Variable, len(vars))
	for _, v := range vars {
		byID[v.ID()] = v
	}
	var out []*ad.Variable
	for _, id := range ad.CollectIDs(expr, true).IDs() {
		if v, ok := byID[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
