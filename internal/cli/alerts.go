package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

var (
	alertsPeriod string
	alertsMetric string
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Mostra resumo diário, anomalias e principais insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := getApp().Alerter.Report(cmd.Context(), domain.Metric(alertsMetric), domain.Period(alertsPeriod))
		if err != nil {
			return err
		}

		return printJSON(cmd, report)
	},
}

func init() {
	alertsCmd.Flags().StringVar(&alertsPeriod, "period", string(domain.PeriodD30), "Período de comparação dos insights (d1, d7, d30)")
	alertsCmd.Flags().StringVar(&alertsMetric, "metric", string(domain.MetricTPV), "Métrica do resumo diário")
}
