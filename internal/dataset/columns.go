package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

type columnKind int

const (
	kindText columnKind = iota
	kindDate
	kindInt
	kindDecimal
)

type column struct {
	name  string
	kind  columnKind
	value func(tx *domain.Transaction) any
	key   func(tx *domain.Transaction) string
	num   func(tx *domain.Transaction) decimal.Decimal
}

func textColumn(name string, get func(tx *domain.Transaction) string) column {
	return column{
		name:  name,
		kind:  kindText,
		value: func(tx *domain.Transaction) any { return get(tx) },
		key:   get,
	}
}

func intColumn(name string, get func(tx *domain.Transaction) int64) column {
	return column{
		name:  name,
		kind:  kindInt,
		value: func(tx *domain.Transaction) any { return get(tx) },
		key:   func(tx *domain.Transaction) string { return strconv.FormatInt(get(tx), 10) },
		num:   func(tx *domain.Transaction) decimal.Decimal { return decimal.NewFromInt(get(tx)) },
	}
}

// columns segue a ordem das colunas da fonte, com day_of_week por último
var columns = []column{
	{
		name:  domain.ColumnDay,
		kind:  kindDate,
		value: func(tx *domain.Transaction) any { return tx.Day.Format(domain.DateLayout) },
		key:   func(tx *domain.Transaction) string { return tx.Day.Format(domain.DateLayout) },
	},
	textColumn(domain.ColumnEntity, func(tx *domain.Transaction) string { return tx.Entity }),
	textColumn(domain.ColumnProduct, func(tx *domain.Transaction) string { return tx.Product }),
	textColumn(domain.ColumnPriceTier, func(tx *domain.Transaction) string { return tx.PriceTier }),
	textColumn(domain.ColumnAnticipationMethod, func(tx *domain.Transaction) string { return tx.AnticipationMethod }),
	textColumn(domain.ColumnPaymentMethod, func(tx *domain.Transaction) string { return tx.PaymentMethod }),
	intColumn(domain.ColumnInstallments, func(tx *domain.Transaction) int64 { return int64(tx.Installments) }),
	{
		name:  domain.ColumnAmountTransacted,
		kind:  kindDecimal,
		value: func(tx *domain.Transaction) any { return tx.AmountTransacted.InexactFloat64() },
		key:   func(tx *domain.Transaction) string { return tx.AmountTransacted.String() },
		num:   func(tx *domain.Transaction) decimal.Decimal { return tx.AmountTransacted },
	},
	intColumn(domain.ColumnQuantityTransactions, func(tx *domain.Transaction) int64 { return tx.QuantityTransactions }),
	intColumn(domain.ColumnQuantityOfMerchants, func(tx *domain.Transaction) int64 { return tx.QuantityOfMerchants }),
	textColumn(domain.ColumnDayOfWeek, func(tx *domain.Transaction) string { return tx.DayOfWeek }),
}

var columnIndex = func() map[string]column {
	index := make(map[string]column, len(columns))
	for _, c := range columns {
		index[c.name] = c
	}
	return index
}()

func lookupColumn(name string) (column, bool) {
	c, ok := columnIndex[name]
	return c, ok
}

// IsColumn informa se o nome corresponde a uma coluna do dataset
func IsColumn(name string) bool {
	_, ok := columnIndex[name]
	return ok
}

// ColumnNames devolve os nomes de todas as colunas, incluindo day_of_week
func ColumnNames() []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return names
}

// normalize converte um valor de filtro para a forma canônica da coluna.
// Valores que não podem existir na coluna retornam false e nunca casam.
func (c column) normalize(v any) (string, bool) {
	switch c.kind {
	case kindDate:
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		day, err := ParseDay(s)
		if err != nil {
			return "", false
		}
		return day.Format(domain.DateLayout), true

	case kindInt:
		d, ok := toDecimal(v)
		if !ok || !d.Equal(d.Truncate(0)) {
			return "", false
		}
		return d.String(), true

	case kindDecimal:
		d, ok := toDecimal(v)
		if !ok {
			return "", false
		}
		return d.String(), true
	}

	switch val := v.(type) {
	case string:
		return val, true
	case nil:
		return "", false
	default:
		return fmt.Sprint(val), true
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case int32:
		return decimal.NewFromInt32(val), true
	case decimal.Decimal:
		return val, true
	case fmt.Stringer:
		d, err := decimal.NewFromString(val.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		return d, err == nil
	}
	return decimal.Zero, false
}

var dayLayouts = []string{domain.DateLayout, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}

// ParseDay interpreta datas no formato YYYY-MM-DD (ou com horário) e trunca para o dia
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return CalendarDay(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// CalendarDay devolve a data do calendário de t no próprio fuso, como meia-noite UTC.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
