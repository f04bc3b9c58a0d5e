package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
	"github.com/vfg2006/transactions-agent-api/pkg/apiErrors"
	"github.com/vfg2006/transactions-agent-api/pkg/log"
)

// maxIntentBody limita o corpo aceito em /v1/query/intent
const maxIntentBody = 64 << 10

type QueryRequest struct {
	Question string `json:"question"`
}

// Ask traduz a pergunta em intenção e executa a consulta
func Ask(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Ask(r.Context(), req.Question)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Consulta não executada")
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// RunIntent executa uma intenção enviada diretamente pelo cliente, sem passar pelo tradutor
func RunIntent(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxIntentBody))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		result, err := service.ExecuteIntent(r.Context(), raw)
		if err != nil {
			handleServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
