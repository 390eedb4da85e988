package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const chipletcVersion = "v0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Short: "Prints the version of this tool",
	Long:  `Prints the version of this tool.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("chipletc %s\n", chipletcVersion)
}
