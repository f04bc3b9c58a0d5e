package cli

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Mostra estatísticas gerais do dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := getApp().Summarizer.Summary(cmd.Context())
		if err != nil {
			return err
		}

		return printJSON(cmd, summary)
	},
}
