package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version é sobrescrita em build via -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "agentctl %s\n", Version)
	},
}
