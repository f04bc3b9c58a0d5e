package querying

import (
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var requiredFields = []string{"metric", "aggregation", "group_by", "filters", "explanation"}

// ParseIntent é o único ponto de validação da intenção. Nada que chegue ao
// Executor deixa de passar por aqui.
func ParseIntent(raw []byte) (domain.QueryIntent, error) {
	var intent domain.QueryIntent

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return intent, &ValidationError{Field: "intent", Reason: "deve ser um objeto JSON"}
	}

	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			return intent, &ValidationError{Field: f, Reason: "é obrigatório"}
		}
	}

	metric, ok := fields["metric"].(string)
	if !ok {
		return intent, &ValidationError{Field: "metric", Reason: "deve ser texto"}
	}
	intent.Metric = domain.Metric(metric)
	if !intent.Metric.Valid() {
		return intent, &UnsupportedMetricError{Metric: metric}
	}

	aggregation, ok := fields["aggregation"].(string)
	if !ok || !domain.Aggregation(aggregation).Valid() {
		return intent, &ValidationError{Field: "aggregation", Reason: "deve ser sum, mean ou count"}
	}
	intent.Aggregation = domain.Aggregation(aggregation)

	groupBy, err := parseGroupBy(fields["group_by"])
	if err != nil {
		return intent, err
	}
	intent.GroupBy = groupBy

	filters, err := parseFilters(fields["filters"])
	if err != nil {
		return intent, err
	}
	intent.Filters = filters

	explanation, ok := fields["explanation"].(string)
	if !ok {
		return intent, &ValidationError{Field: "explanation", Reason: "deve ser texto"}
	}
	intent.Explanation = explanation

	intent.SortBy = domain.SortByMetric
	if v, ok := fields["sort_by"]; ok && v != nil {
		sortBy, ok := v.(string)
		if !ok {
			return intent, &ValidationError{Field: "sort_by", Reason: "deve ser texto"}
		}
		if sortBy != "" {
			intent.SortBy = sortBy
		}
	}

	intent.SortOrder = domain.SortDesc
	if v, ok := fields["sort_order"]; ok && v != nil {
		order, ok := v.(string)
		if !ok || !domain.SortOrder(order).Valid() {
			return intent, &ValidationError{Field: "sort_order", Reason: "deve ser asc ou desc"}
		}
		intent.SortOrder = domain.SortOrder(order)
	}

	limit, err := parseLimit(fields["limit"])
	if err != nil {
		return intent, err
	}
	intent.Limit = limit

	return intent, nil
}

func parseGroupBy(v any) ([]string, error) {
	groupBy := make([]string, 0)
	if v == nil {
		return groupBy, nil
	}

	list, ok := v.([]any)
	if !ok {
		return nil, &ValidationError{Field: "group_by", Reason: "deve ser uma lista de colunas"}
	}

	for _, item := range list {
		col, ok := item.(string)
		if !ok {
			return nil, &ValidationError{Field: "group_by", Reason: "deve conter apenas nomes de colunas"}
		}
		if !dataset.IsColumn(col) {
			return nil, &dataset.SchemaError{Column: col, Op: "group_by", Err: dataset.ErrUnknownColumn}
		}
		groupBy = append(groupBy, col)
	}

	return groupBy, nil
}

func parseFilters(v any) (map[string]domain.FilterValue, error) {
	filters := make(map[string]domain.FilterValue)
	if v == nil {
		return filters, nil
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Field: "filters", Reason: "deve ser um objeto"}
	}

	for col, value := range obj {
		if !dataset.IsColumn(col) {
			return nil, &dataset.SchemaError{Column: col, Op: "filter", Err: dataset.ErrUnknownColumn}
		}

		switch val := value.(type) {
		case []any:
			for _, item := range val {
				if !isScalar(item) {
					return nil, &ValidationError{Field: "filters." + col, Reason: "deve conter apenas valores simples"}
				}
			}
			filters[col] = domain.Set(val...)
		default:
			if !isScalar(val) {
				return nil, &ValidationError{Field: "filters." + col, Reason: "deve ser um valor simples ou uma lista"}
			}
			filters[col] = domain.Scalar(val)
		}
	}

	return filters, nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool:
		return true
	}
	return false
}

// parseLimit trata null e 0 como sem limite
func parseLimit(v any) (*int, error) {
	if v == nil {
		return nil, nil
	}

	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) || n > math.MaxInt32 {
		return nil, &ValidationError{Field: "limit", Reason: "deve ser um número inteiro"}
	}
	if n < 0 {
		return nil, &ValidationError{Field: "limit", Reason: "não pode ser negativo"}
	}
	if n == 0 {
		return nil, nil
	}

	limit := int(n)
	return &limit, nil
}
