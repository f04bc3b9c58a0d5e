package summarizing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

func newTx(day int, entity, product, payment string, installments int, amount int64, qty, merchants int64) domain.Transaction {
	return domain.Transaction{
		Day:                  time.Date(2024, 5, day, 0, 0, 0, 0, time.UTC),
		Entity:               entity,
		Product:              product,
		PriceTier:            "normal",
		AnticipationMethod:   "Pix",
		PaymentMethod:        payment,
		Installments:         installments,
		AmountTransacted:     decimal.NewFromInt(amount),
		QuantityTransactions: qty,
		QuantityOfMerchants:  merchants,
	}
}

func newService() *Service {
	store := dataset.New([]domain.Transaction{
		newTx(1, "PJ", "pos", "credit", 3, 300, 3, 2),
		newTx(2, "PF", "pix", "uninformed", 1, 100, 4, 1),
		newTx(3, "PF", "pos", "debit", 1, 200, 1, 1),
	})
	return NewService(dataset.NewStaticProvider(store))
}

func TestService_Summary(t *testing.T) {
	summary, err := newService().Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, domain.DateRange{Start: "2024-05-01", End: "2024-05-03"}, summary.DateRange)
	assert.Equal(t, 600.0, summary.TotalTPV)
	assert.Equal(t, 75.0, summary.AverageTicket)
	assert.Equal(t, 2, summary.UniqueEntities)
	assert.Equal(t, 2, summary.UniqueProducts)
	assert.Equal(t, 4.0, summary.UniqueMerchants)
}

func TestService_Dashboard(t *testing.T) {
	data, err := newService().Dashboard(context.Background())

	require.NoError(t, err)

	require.Len(t, data.TPVByProduct, 2)
	assert.Equal(t, domain.Row{"product": "pos", "amount_transacted": 500.0}, data.TPVByProduct[0])

	require.Len(t, data.TPVByEntity, 2)
	assert.Equal(t, "PF", data.TPVByEntity[0]["entity"])

	require.Len(t, data.AvgTicketByEntity, 2)
	assert.Equal(t, domain.Row{"entity": "PF", "average_ticket": 60.0}, data.AvgTicketByEntity[0])
	assert.Equal(t, domain.Row{"entity": "PJ", "average_ticket": 100.0}, data.AvgTicketByEntity[1])

	require.Len(t, data.TPVByInstallments, 2)
	assert.Equal(t, int64(1), data.TPVByInstallments[0]["installments"])
	assert.Equal(t, int64(3), data.TPVByInstallments[1]["installments"])

	assert.Len(t, data.TPVByPaymentMethod, 3)
	assert.Equal(t, "credit", data.TPVByPaymentMethod[0]["payment_method"])
	assert.Len(t, data.TPVByPriceTier, 1)
	assert.Len(t, data.AvgTicketByProduct, 2)
	assert.Len(t, data.AvgTicketByPaymentMethod, 3)
}

func TestService_Columns(t *testing.T) {
	service := newService()

	columns, err := service.Columns(context.Background())
	require.NoError(t, err)
	assert.Contains(t, columns, "day_of_week")
	assert.Len(t, columns, 11)

	values, err := service.ColumnValues(context.Background(), "entity")
	require.NoError(t, err)
	assert.Equal(t, []any{"PF", "PJ"}, values)

	_, err = service.ColumnValues(context.Background(), "cidade")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}
