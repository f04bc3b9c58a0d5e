package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/transactions-agent-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := UserFromContext(r.Context()); ok {
			w.Header().Set("X-User", claims.Username)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func()
		expectedStatus int
		expectedUser   string
	}{
		{
			name: "Autenticação desabilitada libera tudo",
			path: "/v1/query",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(false)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Rota pública não exige token",
			path: "/v1/login",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Sem cabeçalho Authorization",
			path: "/v1/query",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Cabeçalho sem Bearer",
			path:   "/v1/query",
			header: "Basic abc",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token inválido",
			path:   "/v1/query",
			header: "Bearer ruim",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
				mockAuth.EXPECT().ValidateToken("ruim").Return(nil, errors.New("token inválido"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido coloca claims no contexto",
			path:   "/v1/query",
			header: "Bearer bom",
			setup: func() {
				mockAuth.EXPECT().Enabled().Return(true)
				mockAuth.EXPECT().ValidateToken("bom").Return(&domain.Claims{Username: "admin"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(mockAuth)(okHandler()).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedUser, rr.Header().Get("X-User"))
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)
		req.Header.Set("Origin", "http://evil.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		called := false
		h := Cors([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
		req := httptest.NewRequest(http.MethodOptions, "/v1/query", nil)
		req.Header.Set("Origin", "http://qualquer.com")
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "http://qualquer.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	h := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/query", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestLoggingMiddleware_CapturaStatus(t *testing.T) {
	h := LoggingMiddleware(LoggingOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func slowWarnings(hook *logtest.Hook) []*logrus.Entry {
	var out []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if strings.Contains(entry.Message, "Requisição lenta") {
			out = append(out, entry)
		}
	}
	return out
}

func TestLoggingMiddleware_RequisicaoLenta(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	opts := LoggingOptions{
		SlowThreshold:       time.Millisecond,
		SlowThresholdByPath: map[string]time.Duration{"/v1/query": time.Hour, "/v1/data/summary": 0},
	}
	h := LoggingMiddleware(opts)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "Limite padrão excedido", path: "/health", expected: 1},
		{name: "Pergunta em linguagem natural tem limite próprio", path: "/v1/query", expected: 0},
		{name: "Limite zero desliga o aviso", path: "/v1/data/summary", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := logtest.NewGlobal()
			defer hook.Reset()

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			warnings := slowWarnings(hook)
			require.Len(t, warnings, tt.expected)
			for _, w := range warnings {
				assert.Equal(t, logrus.WarnLevel, w.Level)
				assert.Equal(t, tt.path, w.Data["path"])
			}
		})
	}
}

func TestLoggingMiddleware_IncluiCamposDaRequisicao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := logtest.NewGlobal()
	defer hook.Reset()

	h := LoggingMiddleware(LoggingOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.AddRequestFields(r.Context(), log.Fields{"execution_id": "abc123", "dataset_rows": 42})
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/query/intent", nil))

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Requisição finalizada", last.Message)
	assert.Equal(t, "abc123", last.Data["execution_id"])
	assert.Equal(t, 42, last.Data["dataset_rows"])
	assert.Equal(t, http.StatusOK, last.Data["status_code"])
	assert.NotEmpty(t, last.Data["correlation_id"])
}
