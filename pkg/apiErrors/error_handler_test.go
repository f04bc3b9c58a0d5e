package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Métrica não suportada", code: ErrUnsupportedMetric, expectedStatus: http.StatusUnprocessableEntity},
		{name: "Pergunta inválida", code: ErrInvalidQuestion, expectedStatus: http.StatusBadRequest},
		{name: "Token expirado", code: ErrExpiredToken, expectedStatus: http.StatusUnauthorized},
		{name: "Código desconhecido", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrSchema).Code)

	apiErr := FromError(errors.New("coluna x"), ErrSchema)
	assert.Equal(t, ErrSchema, apiErr.Code)
	assert.Equal(t, "coluna x", apiErr.Message)
}
