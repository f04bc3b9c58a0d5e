package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação (1000-1999)
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido
	ErrExpiredToken       = "AUTH_007" // Token expirado

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros de consulta (3000-3999)
	ErrInvalidQuestion    = "QRY_001" // Pergunta vazia ou longa demais
	ErrTranslation        = "QRY_002" // Falha ao traduzir a pergunta
	ErrUnsupportedMetric  = "QRY_003" // Métrica fora do conjunto suportado
	ErrSchema             = "QRY_004" // Coluna inexistente ou não numérica
	ErrInvalidIntent      = "QRY_005" // Intenção malformada
	ErrTranslatorDisabled = "QRY_006" // Tradutor não configurado
	ErrInvalidPeriod      = "QRY_007" // Período de insights inválido
	ErrEmptyDataset       = "QRY_008" // Dataset sem registros

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrDatasetLoad     = "SRV_002" // Falha ao carregar o dataset
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrJobRunning      = "SRV_005" // Job já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInvalidQuestion:     http.StatusBadRequest,
	ErrTranslation:         http.StatusUnprocessableEntity,
	ErrUnsupportedMetric:   http.StatusUnprocessableEntity,
	ErrSchema:              http.StatusUnprocessableEntity,
	ErrInvalidIntent:       http.StatusUnprocessableEntity,
	ErrTranslatorDisabled:  http.StatusServiceUnavailable,
	ErrInvalidPeriod:       http.StatusBadRequest,
	ErrEmptyDataset:        http.StatusUnprocessableEntity,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatasetLoad:         http.StatusServiceUnavailable,
	ErrExternalService:     http.StatusBadGateway,
	ErrJobRunning:          http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
