package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
)

// GetAlerts devolve resumo diário, anomalias e principais insights.
// Parâmetros opcionais: period (d1|d7|d30) e metric.
func GetAlerts(service alerting.Alerter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		metric := domain.Metric(query.Get("metric"))
		period := domain.Period(query.Get("period"))

		report, err := service.Report(r.Context(), metric, period)
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
