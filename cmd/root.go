package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chiplab/chipletc/log"
)

var rootCmd = &cobra.Command{
	Use:   "chipletc",
	Short: "The chiplet platform compiler (chipletc)",
	Long: `The chiplet platform compiler (chipletc) turns a declarative description
of a chiplet-style system (processor, memory, peripherals) into the Lua
configuration file loaded by the simulation runtime.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}
