// Copyright (c) 2026 The buddy-go authors
//
// MIT License

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/buddy-go/buddy"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "buddy",
	Short: "A binary decision diagram toolbox",
	Long: `buddy is a small toolbox around the buddy BDD engine.

It can solve the classic n-queens placement problem, inspect and convert
BDDs saved in the engine's textual format, and print engine statistics.

Engine sizing can be given with flags, through BUDDY_* environment
variables, or in a configuration file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int("nodesize", 10000, "initial size of the node table")
	rootCmd.PersistentFlags().Int("cachesize", 10000, "initial size of the operation caches")
	rootCmd.PersistentFlags().Int("cacheratio", 0, "cache entries per 100 table slots (0 keeps caches fixed)")
	viper.BindPFlag("nodesize", rootCmd.PersistentFlags().Lookup("nodesize"))
	viper.BindPFlag("cachesize", rootCmd.PersistentFlags().Lookup("cachesize"))
	viper.BindPFlag("cacheratio", rootCmd.PersistentFlags().Lookup("cacheratio"))
	viper.SetEnvPrefix("BUDDY")
	viper.AutomaticEnv()
}

func initConfig() error {
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	return viper.ReadInConfig()
}

// newEngine builds an engine with the configured sizing.
func newEngine(varnum int) (*buddy.BDD, error) {
	return buddy.New(varnum,
		buddy.Nodesize(viper.GetInt("nodesize")),
		buddy.Cachesize(viper.GetInt("cachesize")),
		buddy.Cacheratio(viper.GetInt("cacheratio")))
}
