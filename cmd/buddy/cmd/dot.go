// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package cmd

import (
	"github.com/spf13/cobra"
)

var dotOut string

var dotCmd = &cobra.Command{
	Use:   "dot FILE",
	Short: "Convert a saved BDD to Graphviz DOT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bdd, err := newEngine(1)
		if err != nil {
			return err
		}
		defer bdd.Done()
		root, err := bdd.FnLoad(args[0])
		if err != nil {
			return err
		}
		return bdd.PrintDot(dotOut, root)
	},
}

func init() {
	dotCmd.Flags().StringVarP(&dotOut, "output", "o", "-", "output file (- for stdout)")
	rootCmd.AddCommand(dotCmd)
}
