package querying

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(t *testing.T, intent domain.QueryIntent, err error)
	}{
		{
			name: "Intenção completa",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":["product"],"filters":{"entity":"PJ","installments":[1,2]},"sort_by":"metric","sort_order":"asc","limit":5,"explanation":"TPV por produto"}`,
			validate: func(t *testing.T, intent domain.QueryIntent, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.MetricTPV, intent.Metric)
				assert.Equal(t, domain.AggregationSum, intent.Aggregation)
				assert.Equal(t, []string{"product"}, intent.GroupBy)
				assert.Equal(t, domain.Scalar("PJ"), intent.Filters["entity"])
				assert.Equal(t, domain.Set(float64(1), float64(2)), intent.Filters["installments"])
				assert.Equal(t, domain.SortAsc, intent.SortOrder)
				require.NotNil(t, intent.Limit)
				assert.Equal(t, 5, *intent.Limit)
				assert.Equal(t, "TPV por produto", intent.Explanation)
			},
		},
		{
			name: "Valores padrão de ordenação e limite",
			raw:  `{"metric":"average_ticket","aggregation":"mean","group_by":[],"filters":{},"explanation":""}`,
			validate: func(t *testing.T, intent domain.QueryIntent, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SortByMetric, intent.SortBy)
				assert.Equal(t, domain.SortDesc, intent.SortOrder)
				assert.Nil(t, intent.Limit)
				assert.Empty(t, intent.GroupBy)
			},
		},
		{
			name: "Limite zero e nulo significam sem limite",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":null,"filters":null,"limit":0,"explanation":"x"}`,
			validate: func(t *testing.T, intent domain.QueryIntent, err error) {
				require.NoError(t, err)
				assert.Nil(t, intent.Limit)
				assert.NotNil(t, intent.GroupBy)
				assert.NotNil(t, intent.Filters)
			},
		},
		{
			name: "Campo obrigatório ausente",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":[],"filters":{}}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "explanation", vErr.Field)
			},
		},
		{
			name: "Métrica fora do enum",
			raw:  `{"metric":"revenue","aggregation":"sum","group_by":[],"filters":{},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var mErr *UnsupportedMetricError
				require.ErrorAs(t, err, &mErr)
				assert.Equal(t, "revenue", mErr.Metric)
				assert.ErrorIs(t, err, domain.ErrUnsupportedMetric)
			},
		},
		{
			name: "Agregação inválida",
			raw:  `{"metric":"tpv","aggregation":"median","group_by":[],"filters":{},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "aggregation", vErr.Field)
			},
		},
		{
			name: "Agrupamento por coluna inexistente",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":["region"],"filters":{},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var sErr *dataset.SchemaError
				require.ErrorAs(t, err, &sErr)
				assert.Equal(t, "region", sErr.Column)
			},
		},
		{
			name: "Filtro por coluna inexistente",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":[],"filters":{"city":"SP"},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
			},
		},
		{
			name: "Filtro com objeto aninhado",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":[],"filters":{"entity":{"eq":"PF"}},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "filters.entity", vErr.Field)
			},
		},
		{
			name: "group_by que não é lista",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":"product","filters":{},"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "group_by", vErr.Field)
			},
		},
		{
			name: "Limite negativo",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":[],"filters":{},"limit":-1,"explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "limit", vErr.Field)
			},
		},
		{
			name: "Ordem de classificação inválida",
			raw:  `{"metric":"tpv","aggregation":"sum","group_by":[],"filters":{},"sort_order":"up","explanation":""}`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				assert.ErrorIs(t, err, ErrInvalidIntent)
			},
		},
		{
			name: "JSON malformado",
			raw:  `not json`,
			validate: func(t *testing.T, _ domain.QueryIntent, err error) {
				assert.ErrorIs(t, err, ErrInvalidIntent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := ParseIntent([]byte(tt.raw))
			tt.validate(t, intent, err)
		})
	}
}
