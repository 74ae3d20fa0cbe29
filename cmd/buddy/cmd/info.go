// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Inspect a saved BDD",
	Long: `info loads a BDD saved in the engine's textual format and reports
its variable count, node count, support and number of satisfying
assignments.`,
	Args: cobra.ExactArgs(1),
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
		fmt.Printf("variables:  %d\n", bdd.Varnum())
		fmt.Printf("nodes:      %d\n", bdd.NodeCount(root))
		fmt.Printf("paths:      %.0f\n", bdd.Pathcount(root))
		fmt.Printf("satcount:   %.6g\n", bdd.Satcount(root))
		fmt.Printf("support:    %v\n", bdd.Scanset(bdd.Support(root)))
		if bdd.Errored() {
			return fmt.Errorf("%s", bdd.Error())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
