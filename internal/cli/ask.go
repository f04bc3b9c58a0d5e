package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <pergunta>",
	Short: "Faz uma pergunta em linguagem natural (requer OPENAI_API_KEY)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := getApp().Querier.Ask(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	},
}
