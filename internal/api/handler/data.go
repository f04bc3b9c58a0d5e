package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/summarizing"
)

func GetDataSummary(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func GetDashboard(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context())
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, dashboard)
	}
}

func GetColumns(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		columns, err := service.Columns(r.Context())
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"columns": columns})
	}
}

func GetColumnValues(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		column := httprouter.ParamsFromContext(r.Context()).ByName("column")

		values, err := service.ColumnValues(r.Context(), column)
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"column": column,
			"values": values,
		})
	}
}
