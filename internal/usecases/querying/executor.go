package querying

import (
	"sort"

	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

// Executor transforma uma intenção validada em resultado. Não guarda estado,
// pode ser compartilhado entre requisições.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// valueColumns devolve as colunas que precisam ser somadas para calcular a métrica
func valueColumns(m domain.Metric) ([]string, error) {
	switch m {
	case domain.MetricTPV:
		return []string{domain.ColumnAmountTransacted}, nil
	case domain.MetricAverageTicket:
		return []string{domain.ColumnAmountTransacted, domain.ColumnQuantityTransactions}, nil
	case domain.MetricTransactions:
		return []string{domain.ColumnQuantityTransactions}, nil
	case domain.MetricMerchants:
		return []string{domain.ColumnQuantityOfMerchants}, nil
	}
	return nil, &UnsupportedMetricError{Metric: string(m)}
}

// Execute roda a intenção sobre o store.
// Sem group_by, um conjunto filtrado vazio produz zero linhas e MetricValue nil:
// "nenhum escalar" é distinto de um valor zero e quem chama deve tratar os dois casos.
func (e *Executor) Execute(store *dataset.Store, intent domain.QueryIntent) (*domain.QueryResult, error) {
	cols, err := valueColumns(intent.Metric)
	if err != nil {
		return nil, err
	}

	filtered, err := store.Filter(intent.Filters)
	if err != nil {
		return nil, err
	}

	// a agregação é sempre soma; a fórmula da métrica é aplicada sobre as somas
	groups, err := filtered.Aggregate(intent.GroupBy, cols, dataset.OpSum)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0, len(groups))
	for _, g := range groups {
		value, err := intent.Metric.Compute(g.Totals())
		if err != nil {
			return nil, &UnsupportedMetricError{Metric: string(intent.Metric)}
		}

		row := make(domain.Row, len(intent.GroupBy)+1)
		for i, col := range intent.GroupBy {
			row[col] = g.Keys[i]
		}
		row[domain.MetricValueColumn] = value
		rows = append(rows, row)
	}

	sortRows(rows, intent)

	if intent.Limit != nil && *intent.Limit > 0 && len(rows) > *intent.Limit {
		rows = rows[:*intent.Limit]
	}

	result := &domain.QueryResult{
		Data:        rows,
		MetricName:  intent.Metric.Name(),
		Explanation: intent.Explanation,
		QueryIntent: intent,
	}

	if len(rows) == 1 {
		if v, ok := rows[0][domain.MetricValueColumn].(float64); ok {
			result.MetricValue = &v
		}
	}

	return result, nil
}

// sortColumn resolve a coluna de ordenação. Retorna false quando a ordem natural deve ser mantida.
func sortColumn(rows []domain.Row, sortBy string) (string, bool) {
	if len(rows) == 0 {
		return "", false
	}

	col := sortBy
	if sortBy == "" || sortBy == domain.SortByMetric {
		col = domain.MetricValueColumn
	}

	if _, ok := rows[0][col]; !ok {
		return "", false
	}
	return col, true
}

func sortRows(rows []domain.Row, intent domain.QueryIntent) {
	col, ok := sortColumn(rows, intent.SortBy)
	if !ok {
		return
	}

	desc := intent.SortOrder != domain.SortAsc
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][col], rows[j][col]
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}

// less compara números numericamente e textos lexicograficamente
func less(a, b any) bool {
	fa, aNum := number(a)
	fb, bNum := number(b)
	switch {
	case aNum && bNum:
		return fa < fb
	case aNum != bNum:
		// números antes de textos
		return aNum
	}

	sa, _ := a.(string)
	sb, _ := b.(string)
	return sa < sb
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
