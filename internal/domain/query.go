package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Aggregation é apenas indicativa: a fórmula efetiva depende da métrica
type Aggregation string

const (
	AggregationSum   Aggregation = "sum"
	AggregationMean  Aggregation = "mean"
	AggregationCount Aggregation = "count"
)

func (a Aggregation) Valid() bool {
	switch a {
	case AggregationSum, AggregationMean, AggregationCount:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

const (
	// SortByMetric ordena pelo valor calculado em vez de uma coluna
	SortByMetric = "metric"
	// MetricValueColumn é a coluna sintética com o valor da métrica em cada linha
	MetricValueColumn = "metric_value"
)

// FilterValue é um valor único ou um conjunto de valores aceitos para uma coluna
type FilterValue struct {
	Values []any
	IsSet  bool
}

func Scalar(v any) FilterValue {
	return FilterValue{Values: []any{v}}
}

func Set(values ...any) FilterValue {
	return FilterValue{Values: values, IsSet: true}
}

// MarshalJSON devolve o filtro no mesmo formato em que foi recebido
func (f FilterValue) MarshalJSON() ([]byte, error) {
	if !f.IsSet && len(f.Values) == 1 {
		return json.Marshal(f.Values[0])
	}
	values := f.Values
	if values == nil {
		values = []any{}
	}
	return json.Marshal(values)
}

// QueryIntent é a intenção estruturada já validada
type QueryIntent struct {
	Metric      Metric                 `json:"metric"`
	Aggregation Aggregation            `json:"aggregation"`
	GroupBy     []string               `json:"group_by"`
	Filters     map[string]FilterValue `json:"filters"`
	SortBy      string                 `json:"sort_by"`
	SortOrder   SortOrder              `json:"sort_order"`
	Limit       *int                   `json:"limit"`
	Explanation string                 `json:"explanation"`
}

// Row é uma linha do resultado: colunas de agrupamento + metric_value
type Row map[string]any

type QueryResult struct {
	Data        []Row       `json:"data"`
	MetricValue *float64    `json:"metric_value"`
	MetricName  string      `json:"metric_name"`
	Explanation string      `json:"explanation"`
	QueryIntent QueryIntent `json:"query_intent"`
}
