package querying

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

func newTx(product, entity, amount string, qty int64) domain.Transaction {
	return domain.Transaction{
		Day:                  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Entity:               entity,
		Product:              product,
		PriceTier:            "normal",
		AnticipationMethod:   "Pix",
		PaymentMethod:        "credit",
		Installments:         1,
		AmountTransacted:     decimal.RequireFromString(amount),
		QuantityTransactions: qty,
		QuantityOfMerchants:  1,
	}
}

func intPtr(i int) *int { return &i }

func TestExecutor_Execute(t *testing.T) {
	executor := NewExecutor()

	tests := []struct {
		name     string
		records  []domain.Transaction
		intent   domain.QueryIntent
		validate func(t *testing.T, result *domain.QueryResult, err error)
	}{
		{
			name: "TPV de PJ por produto com limite 1",
			records: []domain.Transaction{
				newTx("pix", "PJ", "50", 1),
				newTx("pos", "PJ", "80", 1),
				newTx("pix", "PF", "999", 1),
			},
			intent: domain.QueryIntent{
				Metric:    domain.MetricTPV,
				GroupBy:   []string{"product"},
				Filters:   map[string]domain.FilterValue{"entity": domain.Scalar("PJ")},
				SortBy:    domain.SortByMetric,
				SortOrder: domain.SortDesc,
				Limit:     intPtr(1),
			},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Data, 1)
				assert.Equal(t, domain.Row{"product": "pos", "metric_value": 80.0}, result.Data[0])
				require.NotNil(t, result.MetricValue)
				assert.Equal(t, 80.0, *result.MetricValue)
				assert.Equal(t, "Total Payment Volume (TPV)", result.MetricName)
			},
		},
		{
			name: "Ticket médio ponderado sem agrupamento",
			records: []domain.Transaction{
				newTx("pix", "PF", "100", 5),
				newTx("pos", "PF", "200", 5),
			},
			intent: domain.QueryIntent{Metric: domain.MetricAverageTicket, Filters: map[string]domain.FilterValue{}},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Data, 1)
				assert.Equal(t, domain.Row{"metric_value": 30.0}, result.Data[0])
				require.NotNil(t, result.MetricValue)
				assert.Equal(t, 30.0, *result.MetricValue)
			},
		},
		{
			name: "Ticket médio não é a média das razões",
			records: []domain.Transaction{
				newTx("pix", "PF", "100", 1),
				newTx("pix", "PF", "100", 9),
			},
			intent: domain.QueryIntent{Metric: domain.MetricAverageTicket, GroupBy: []string{"product"}},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				// média das razões seria (100 + 11.11) / 2
				assert.Equal(t, 20.0, result.Data[0]["metric_value"])
			},
		},
		{
			name: "Ticket médio com quantidade zero",
			records: []domain.Transaction{
				newTx("pix", "PF", "100", 0),
			},
			intent: domain.QueryIntent{Metric: domain.MetricAverageTicket},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.0, *result.MetricValue)
			},
		},
		{
			name: "Transações e merchants",
			records: []domain.Transaction{
				newTx("pix", "PF", "100", 3),
				newTx("pos", "PJ", "100", 4),
			},
			intent: domain.QueryIntent{Metric: domain.MetricMerchants, GroupBy: []string{}},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2.0, *result.MetricValue)
			},
		},
		{
			name:    "Filtro sem resultados com agrupamento",
			records: []domain.Transaction{newTx("pix", "PF", "100", 1)},
			intent: domain.QueryIntent{
				Metric:  domain.MetricTPV,
				GroupBy: []string{"product"},
				Filters: map[string]domain.FilterValue{"entity": domain.Scalar("PJ")},
			},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Data)
				assert.Nil(t, result.MetricValue)
			},
		},
		{
			name:    "Filtro sem resultados sem agrupamento retorna zero linhas e nenhum escalar, não uma linha com zero",
			records: []domain.Transaction{newTx("pix", "PF", "100", 1)},
			intent: domain.QueryIntent{
				Metric:  domain.MetricTPV,
				Filters: map[string]domain.FilterValue{"entity": domain.Scalar("PJ")},
			},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Data)
				assert.Nil(t, result.MetricValue)
			},
		},
		{
			name: "Vários grupos não expõem valor escalar",
			records: []domain.Transaction{
				newTx("pix", "PF", "100", 1),
				newTx("pos", "PF", "100", 1),
			},
			intent: domain.QueryIntent{Metric: domain.MetricTPV, GroupBy: []string{"product"}},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Len(t, result.Data, 2)
				assert.Nil(t, result.MetricValue)
			},
		},
		{
			name: "Ordenação por coluna real",
			records: []domain.Transaction{
				newTx("tap", "PF", "10", 1),
				newTx("link", "PF", "30", 1),
				newTx("pix", "PF", "20", 1),
			},
			intent: domain.QueryIntent{
				Metric:    domain.MetricTPV,
				GroupBy:   []string{"product"},
				SortBy:    "product",
				SortOrder: domain.SortAsc,
			},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				products := []any{result.Data[0]["product"], result.Data[1]["product"], result.Data[2]["product"]}
				assert.Equal(t, []any{"link", "pix", "tap"}, products)
			},
		},
		{
			name: "Ordenação por coluna ausente mantém a ordem natural",
			records: []domain.Transaction{
				newTx("tap", "PF", "10", 1),
				newTx("link", "PF", "30", 1),
			},
			intent: domain.QueryIntent{
				Metric:    domain.MetricTPV,
				GroupBy:   []string{"product"},
				SortBy:    "entity",
				SortOrder: domain.SortDesc,
			},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "tap", result.Data[0]["product"])
				assert.Equal(t, "link", result.Data[1]["product"])
			},
		},
		{
			name: "Empates preservam a ordem de emissão",
			records: []domain.Transaction{
				newTx("tap", "PF", "10", 1),
				newTx("link", "PF", "10", 1),
				newTx("pix", "PF", "50", 1),
			},
			intent: domain.QueryIntent{Metric: domain.MetricTPV, GroupBy: []string{"product"}, SortBy: "metric"},
			validate: func(t *testing.T, result *domain.QueryResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, "pix", result.Data[0]["product"])
				assert.Equal(t, "tap", result.Data[1]["product"])
				assert.Equal(t, "link", result.Data[2]["product"])
			},
		},
		{
			name:    "Métrica não suportada",
			records: []domain.Transaction{newTx("pix", "PF", "100", 1)},
			intent:  domain.QueryIntent{Metric: "revenue"},
			validate: func(t *testing.T, _ *domain.QueryResult, err error) {
				var mErr *UnsupportedMetricError
				require.ErrorAs(t, err, &mErr)
				assert.Equal(t, "revenue", mErr.Metric)
			},
		},
		{
			name:    "Filtro por coluna desconhecida",
			records: []domain.Transaction{newTx("pix", "PF", "100", 1)},
			intent: domain.QueryIntent{
				Metric:  domain.MetricTPV,
				Filters: map[string]domain.FilterValue{"region": domain.Scalar("sul")},
			},
			validate: func(t *testing.T, _ *domain.QueryResult, err error) {
				var sErr *dataset.SchemaError
				require.ErrorAs(t, err, &sErr)
				assert.Equal(t, "region", sErr.Column)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := executor.Execute(dataset.New(tt.records), tt.intent)
			tt.validate(t, result, err)
		})
	}
}

func TestExecutor_OrdenacaoInvertida(t *testing.T) {
	store := dataset.New([]domain.Transaction{
		newTx("pix", "PF", "10", 1),
		newTx("pos", "PF", "30", 1),
		newTx("tap", "PF", "20", 1),
		newTx("link", "PF", "40", 1),
	})
	intent := domain.QueryIntent{Metric: domain.MetricTPV, GroupBy: []string{"product"}, SortBy: "metric"}

	intent.SortOrder = domain.SortDesc
	desc, err := NewExecutor().Execute(store, intent)
	require.NoError(t, err)

	intent.SortOrder = domain.SortAsc
	asc, err := NewExecutor().Execute(store, intent)
	require.NoError(t, err)

	require.Len(t, asc.Data, 4)
	for i := range desc.Data {
		assert.Equal(t, desc.Data[i], asc.Data[len(asc.Data)-1-i])
	}

	// o limite nunca reordena as linhas
	intent.Limit = intPtr(2)
	limited, err := NewExecutor().Execute(store, intent)
	require.NoError(t, err)
	assert.Equal(t, asc.Data[:2], limited.Data)
}
