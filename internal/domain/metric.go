package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnsupportedMetric é retornado quando uma métrica fora do enum chega ao cálculo
var ErrUnsupportedMetric = errors.New("métrica não suportada")

type Metric string

const (
	MetricTPV           Metric = "tpv"
	MetricAverageTicket Metric = "average_ticket"
	MetricTransactions  Metric = "transactions"
	MetricMerchants     Metric = "merchants"
)

// Metrics lista todas as métricas suportadas, na ordem em que aparecem no prompt
var Metrics = []Metric{MetricTPV, MetricAverageTicket, MetricTransactions, MetricMerchants}

func (m Metric) Valid() bool {
	switch m {
	case MetricTPV, MetricAverageTicket, MetricTransactions, MetricMerchants:
		return true
	}
	return false
}

// Name é o nome legível devolvido junto com o resultado de uma consulta
func (m Metric) Name() string {
	switch m {
	case MetricTPV:
		return "Total Payment Volume (TPV)"
	case MetricAverageTicket:
		return "Average Ticket"
	case MetricTransactions:
		return "Total Transactions"
	case MetricMerchants:
		return "Total Merchants"
	}
	return string(m)
}

// Label é o rótulo usado no resumo diário
func (m Metric) Label() string {
	switch m {
	case MetricTPV:
		return "Total Payment Volume"
	case MetricAverageTicket:
		return "Average Ticket"
	case MetricTransactions:
		return "Total Transactions"
	case MetricMerchants:
		return "Total Merchants"
	}
	return "Unknown"
}

// ShortLabel é o rótulo usado nas mensagens de alerta
func (m Metric) ShortLabel() string {
	switch m {
	case MetricTPV:
		return "TPV"
	case MetricAverageTicket:
		return "Average Ticket"
	case MetricTransactions:
		return "Transactions"
	case MetricMerchants:
		return "Merchants"
	}
	return string(m)
}

// Totals acumula as somas necessárias para calcular qualquer métrica
type Totals struct {
	Rows                 int
	AmountTransacted     decimal.Decimal
	QuantityTransactions int64
	QuantityOfMerchants  int64
}

func (t Totals) Add(tx Transaction) Totals {
	t.Rows++
	t.AmountTransacted = t.AmountTransacted.Add(tx.AmountTransacted)
	t.QuantityTransactions += tx.QuantityTransactions
	t.QuantityOfMerchants += tx.QuantityOfMerchants
	return t
}

// Compute aplica a fórmula da métrica sobre os totais.
// O ticket médio é sempre a razão ponderada sum(amount)/sum(qty), nunca a média das razões.
func (m Metric) Compute(t Totals) (float64, error) {
	switch m {
	case MetricTPV:
		return t.AmountTransacted.InexactFloat64(), nil
	case MetricAverageTicket:
		if t.QuantityTransactions == 0 {
			return 0, nil
		}
		return t.AmountTransacted.Div(decimal.NewFromInt(t.QuantityTransactions)).InexactFloat64(), nil
	case MetricTransactions:
		return float64(t.QuantityTransactions), nil
	case MetricMerchants:
		return float64(t.QuantityOfMerchants), nil
	}
	return 0, ErrUnsupportedMetric
}

// SumTotals soma todas as transações informadas
func SumTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		t = t.Add(tx)
	}
	return t
}
