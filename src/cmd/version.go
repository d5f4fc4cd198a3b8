package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strucureo/inity-setup/src/internal/tui"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the inity-setup version",
	Long:  `Display the current version of inity-setup.`,
	Run: func(cmd *cobra.Command, args []string) {
		content := fmt.Sprintf("inity-setup %s", tui.RenderVersion(Version))
		fmt.Println(tui.RenderInfoBox(content))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
