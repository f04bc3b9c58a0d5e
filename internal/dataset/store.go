package dataset

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

// Op é a operação de agregação aplicada às colunas de valor
type Op string

const (
	OpSum   Op = "sum"
	OpMean  Op = "mean"
	OpCount Op = "count"
)

// Store é uma coleção imutável de transações. Filtros e recortes devolvem novas visões.
type Store struct {
	records []domain.Transaction
}

// New cria o store a partir das transações carregadas, derivando day_of_week
func New(records []domain.Transaction) *Store {
	txs := make([]domain.Transaction, len(records))
	for i, tx := range records {
		tx.Day = time.Date(tx.Day.Year(), tx.Day.Month(), tx.Day.Day(), 0, 0, 0, 0, time.UTC)
		tx.DayOfWeek = tx.Day.Weekday().String()
		txs[i] = tx
	}
	return &Store{records: txs}
}

func (s *Store) view(records []domain.Transaction) *Store {
	return &Store{records: records}
}

func (s *Store) Len() int {
	return len(s.records)
}

func (s *Store) IsEmpty() bool {
	return len(s.records) == 0
}

// Records devolve as transações da visão. O slice não deve ser alterado.
func (s *Store) Records() []domain.Transaction {
	return s.records
}

func (s *Store) ColumnNames() []string {
	return ColumnNames()
}

// Totals soma as colunas numéricas de todas as transações da visão
func (s *Store) Totals() domain.Totals {
	return domain.SumTotals(s.records)
}

// Filter mantém as linhas que satisfazem todos os predicados.
// Um valor escalar exige igualdade; um conjunto exige pertinência.
func (s *Store) Filter(predicates map[string]domain.FilterValue) (*Store, error) {
	if len(predicates) == 0 {
		return s, nil
	}

	type matcher struct {
		col     column
		allowed map[string]struct{}
	}

	// ordem estável para que o erro reportado seja determinístico
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)

	matchers := make([]matcher, 0, len(names))
	for _, name := range names {
		col, ok := lookupColumn(name)
		if !ok {
			return nil, unknownColumn("filter", name)
		}
		allowed := make(map[string]struct{}, len(predicates[name].Values))
		for _, v := range predicates[name].Values {
			if key, ok := col.normalize(v); ok {
				allowed[key] = struct{}{}
			}
		}
		matchers = append(matchers, matcher{col: col, allowed: allowed})
	}

	out := make([]domain.Transaction, 0)
	for i := range s.records {
		tx := &s.records[i]
		keep := true
		for _, m := range matchers {
			if _, ok := m.allowed[m.col.key(tx)]; !ok {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, *tx)
		}
	}

	return s.view(out), nil
}

// Where mantém as linhas para as quais fn retorna true
func (s *Store) Where(fn func(tx *domain.Transaction) bool) *Store {
	out := make([]domain.Transaction, 0)
	for i := range s.records {
		if fn(&s.records[i]) {
			out = append(out, s.records[i])
		}
	}
	return s.view(out)
}

// OnDay devolve as transações de um único dia
func (s *Store) OnDay(day time.Time) *Store {
	return s.Where(func(tx *domain.Transaction) bool { return tx.Day.Equal(day) })
}

// Between devolve as transações no intervalo [start, end)
func (s *Store) Between(start, end time.Time) *Store {
	return s.Where(func(tx *domain.Transaction) bool {
		return !tx.Day.Before(start) && tx.Day.Before(end)
	})
}

// MaxDay devolve o dia mais recente da visão
func (s *Store) MaxDay() (time.Time, bool) {
	if len(s.records) == 0 {
		return time.Time{}, false
	}
	maxDay := s.records[0].Day
	for _, tx := range s.records[1:] {
		if tx.Day.After(maxDay) {
			maxDay = tx.Day
		}
	}
	return maxDay, true
}

// MinDay devolve o dia mais antigo da visão
func (s *Store) MinDay() (time.Time, bool) {
	if len(s.records) == 0 {
		return time.Time{}, false
	}
	minDay := s.records[0].Day
	for _, tx := range s.records[1:] {
		if tx.Day.Before(minDay) {
			minDay = tx.Day
		}
	}
	return minDay, true
}

// Days devolve os dias distintos da visão em ordem crescente
func (s *Store) Days() []time.Time {
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0)
	for _, tx := range s.records {
		if _, ok := seen[tx.Day]; ok {
			continue
		}
		seen[tx.Day] = struct{}{}
		days = append(days, tx.Day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// UniqueValues devolve os valores distintos da coluna em ordem crescente
func (s *Store) UniqueValues(name string) ([]any, error) {
	col, ok := lookupColumn(name)
	if !ok {
		return nil, unknownColumn("unique_values", name)
	}

	seen := make(map[string]struct{})
	values := make([]any, 0)
	keys := make([]string, 0)
	for i := range s.records {
		tx := &s.records[i]
		key := col.key(tx)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, col.value(tx))
		keys = append(keys, key)
	}

	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return lessValue(values[idx[a]], values[idx[b]], keys[idx[a]], keys[idx[b]])
	})

	sorted := make([]any, len(values))
	for i, j := range idx {
		sorted[i] = values[j]
	}
	return sorted, nil
}

// Group é um bucket de agregação
type Group struct {
	// Keys traz os valores das colunas de agrupamento, na ordem de group_by
	Keys   []any
	Values map[string]decimal.Decimal
	Count  int
}

// Totals converte as somas do grupo nos totais usados pelas métricas
func (g Group) Totals() domain.Totals {
	return domain.Totals{
		Rows:                 g.Count,
		AmountTransacted:     g.Values[domain.ColumnAmountTransacted],
		QuantityTransactions: g.Values[domain.ColumnQuantityTransactions].IntPart(),
		QuantityOfMerchants:  g.Values[domain.ColumnQuantityOfMerchants].IntPart(),
	}
}

// Aggregate agrupa pelas colunas informadas e aplica op em cada coluna de valor.
// Sem group_by devolve um único grupo com a visão inteira (zero grupos se vazia).
// Os grupos saem na ordem em que a chave aparece pela primeira vez.
func (s *Store) Aggregate(groupBy []string, valueColumns []string, op Op) ([]Group, error) {
	keyCols := make([]column, 0, len(groupBy))
	for _, name := range groupBy {
		col, ok := lookupColumn(name)
		if !ok {
			return nil, unknownColumn("group_by", name)
		}
		keyCols = append(keyCols, col)
	}

	valCols := make([]column, 0, len(valueColumns))
	for _, name := range valueColumns {
		col, ok := lookupColumn(name)
		if !ok {
			return nil, unknownColumn("aggregate", name)
		}
		if col.num == nil && op != OpCount {
			return nil, &SchemaError{Column: name, Op: "aggregate", Err: ErrNonNumericColumn}
		}
		valCols = append(valCols, col)
	}

	if len(s.records) == 0 {
		return []Group{}, nil
	}

	type bucket struct {
		keys  []any
		sums  map[string]decimal.Decimal
		count int
	}

	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	var sb strings.Builder
	for i := range s.records {
		tx := &s.records[i]

		sb.Reset()
		for _, kc := range keyCols {
			sb.WriteString(kc.key(tx))
			sb.WriteByte(0)
		}
		id := sb.String()

		b, ok := buckets[id]
		if !ok {
			keys := make([]any, len(keyCols))
			for k, kc := range keyCols {
				keys[k] = kc.value(tx)
			}
			b = &bucket{keys: keys, sums: make(map[string]decimal.Decimal, len(valCols))}
			buckets[id] = b
			order = append(order, id)
		}

		b.count++
		if op == OpCount {
			continue
		}
		for _, vc := range valCols {
			b.sums[vc.name] = b.sums[vc.name].Add(vc.num(tx))
		}
	}

	groups := make([]Group, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		values := make(map[string]decimal.Decimal, len(valCols))
		for _, vc := range valCols {
			switch op {
			case OpCount:
				values[vc.name] = decimal.NewFromInt(int64(b.count))
			case OpMean:
				values[vc.name] = b.sums[vc.name].Div(decimal.NewFromInt(int64(b.count)))
			default:
				values[vc.name] = b.sums[vc.name]
			}
		}
		groups = append(groups, Group{Keys: b.keys, Values: values, Count: b.count})
	}

	return groups, nil
}

// lessValue compara números numericamente e o resto pela forma textual
func lessValue(a, b any, ka, kb string) bool {
	fa, aNum := asFloat(a)
	fb, bNum := asFloat(b)
	if aNum && bNum {
		return fa < fb
	}
	return ka < kb
}

func asFloat(v any) (float64, bool) {
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
