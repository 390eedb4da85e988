package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiplab/chipletc/platform"
	"github.com/chiplab/chipletc/util"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Args:  cobra.NoArgs,
	Short: "Lists the recognized peripheral class profiles",
	Long: `Lists the recognized peripheral class profiles. Modules whose name matches
a profile (case-insensitively) inherit its display name, module type,
constant-name prefix and transport endpoints unless overridden.`,
	Run: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) {
	lines := util.MappedSlice(platform.ClassProfiles(), func(p platform.ClassProfile) string {
		line := fmt.Sprintf("  %-8s %-12s %-16s prefix=%s", p.Name, p.DisplayName, p.ModuleType, p.ConstPrefix)
		if p.TxURI != "" {
			line += fmt.Sprintf("  tx=%s rx=%s", p.TxURI, p.RxURI)
		}
		return line
	})
	for _, line := range lines {
		fmt.Println(line)
	}
}
