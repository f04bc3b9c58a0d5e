package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/summarizing"
	"golang.org/x/crypto/bcrypt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func testServices(t *testing.T, authEnabled bool) (*config.Config, Services) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		App:    config.App{Version: "1.0.0"},
		Server: config.Server{Host: "localhost", Port: "0", CorsOrigins: []string{"http://localhost:3000"}},
		Auth: config.Auth{
			Enabled:      authEnabled,
			Secret:       "segredo",
			Username:     "admin",
			PasswordHash: string(hash),
			TokenTTL:     time.Hour,
		},
	}

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	tx := func(product, entity, amount string, qty int64) domain.Transaction {
		return domain.Transaction{
			Day:                  day,
			Entity:               entity,
			Product:              product,
			PriceTier:            "normal",
			AnticipationMethod:   "D+1",
			PaymentMethod:        "credit",
			Installments:         1,
			AmountTransacted:     decimal.RequireFromString(amount),
			QuantityTransactions: qty,
			QuantityOfMerchants:  1,
		}
	}

	provider := dataset.NewStaticProvider(dataset.New([]domain.Transaction{
		tx("pix", "PJ", "50", 1),
		tx("pos", "PJ", "80", 2),
		tx("pix", "PF", "30", 3),
	}))

	return cfg, Services{
		Querier:       querying.NewService(nil, provider),
		Summarizer:    summarizing.NewService(provider),
		Alerter:       alerting.NewService(provider, alerting.DefaultThresholds()),
		Authenticator: authenticating.NewService(cfg.Auth),
	}
}

func TestNewHandler_SemAutenticacao(t *testing.T) {
	cfg, services := testServices(t, false)
	h := NewHandler(cfg, services)

	body := `{"metric":"tpv","aggregation":"sum","group_by":["product"],"filters":{"entity":"PJ"},"sort_by":"metric","sort_order":"desc","limit":1,"explanation":"maior TPV PJ"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/query/intent", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"product":"pos","metric_value":80}]`, extract(t, rr.Body.Bytes(), "data"))
	assert.JSONEq(t, `80`, extract(t, rr.Body.Bytes(), "metric_value"))

	req = httptest.NewRequest(http.MethodPost, "/v1/query", strings.NewReader(`{"question":"qual o tpv?"}`))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestNewHandler_ComAutenticacao(t *testing.T) {
	cfg, services := testServices(t, true)
	h := NewHandler(cfg, services)

	req := httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"username":"admin","password":"senha"}`))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var login map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &login))
	require.NotEmpty(t, login["token"])

	req = httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)
	req.Header.Set("Authorization", "Bearer "+login["token"])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var summary domain.DataSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 160.0, summary.TotalTPV)

	// healthcheck continua público
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func extract(t *testing.T, body []byte, field string) string {
	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	raw, err := json.Marshal(fields[field])
	require.NoError(t, err)
	return string(raw)
}
