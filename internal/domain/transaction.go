package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas do dataset de transações
const (
	ColumnDay                  = "day"
	ColumnDayOfWeek            = "day_of_week"
	ColumnEntity               = "entity"
	ColumnProduct              = "product"
	ColumnPriceTier            = "price_tier"
	ColumnAnticipationMethod   = "anticipation_method"
	ColumnPaymentMethod        = "payment_method"
	ColumnInstallments         = "installments"
	ColumnAmountTransacted     = "amount_transacted"
	ColumnQuantityTransactions = "quantity_transactions"
	ColumnQuantityOfMerchants  = "quantity_of_merchants"
)

// SourceColumns são as colunas exigidas de qualquer fonte de dados.
// day_of_week não faz parte da lista porque é derivada na carga.
var SourceColumns = []string{
	ColumnDay,
	ColumnEntity,
	ColumnProduct,
	ColumnPriceTier,
	ColumnAnticipationMethod,
	ColumnPaymentMethod,
	ColumnInstallments,
	ColumnAmountTransacted,
	ColumnQuantityTransactions,
	ColumnQuantityOfMerchants,
}

// DateLayout é o formato usado para a coluna day em filtros, resultados e respostas
const DateLayout = "2006-01-02"

// Valores conhecidos da coluna entity
const (
	EntityIndividual = "PF"
	EntityBusiness   = "PJ"
)

// Transaction representa uma linha do dataset. Imutável depois da carga.
type Transaction struct {
	Day                  time.Time
	DayOfWeek            string
	Entity               string
	Product              string
	PriceTier            string
	AnticipationMethod   string
	PaymentMethod        string
	Installments         int
	AmountTransacted     decimal.Decimal
	QuantityTransactions int64
	QuantityOfMerchants  int64
}
