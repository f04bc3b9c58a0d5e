package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	intentJSON string
	intentFile string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Executa uma intenção de consulta em JSON, sem passar pelo tradutor",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := []byte(intentJSON)
		if intentFile != "" {
			content, err := os.ReadFile(intentFile)
			if err != nil {
				return err
			}
			raw = content
		}
		if len(raw) == 0 {
			return fmt.Errorf("informe --intent ou --intent-file")
		}

		result, err := getApp().Querier.ExecuteIntent(cmd.Context(), raw)
		if err != nil {
			return err
		}

		return printJSON(cmd, result)
	},
}

func init() {
	queryCmd.Flags().StringVar(&intentJSON, "intent", "", "Intenção em JSON")
	queryCmd.Flags().StringVar(&intentFile, "intent-file", "", "Arquivo com a intenção em JSON")
	queryCmd.MarkFlagsMutuallyExclusive("intent", "intent-file")
}
