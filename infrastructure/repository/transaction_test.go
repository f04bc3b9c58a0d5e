package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
)

type failingQueryer struct {
	query string
}

func (f *failingQueryer) QueryContext(_ context.Context, query string, _ ...any) (*sql.Rows, error) {
	f.query = query
	return nil, errors.New("conexão recusada")
}

func TestTransactionRepository_selectQuery(t *testing.T) {
	repo := NewTransactionRepository(nil, "")

	query, args, err := repo.selectQuery()

	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t,
		"SELECT day, entity, product, price_tier, anticipation_method, payment_method, installments, amount_transacted, quantity_transactions, quantity_of_merchants FROM transactions ORDER BY day ASC",
		query,
	)
	assert.Equal(t, "postgres:transactions", repo.Describe())
}

func TestTransactionRepository_Load_ErroNaConsulta(t *testing.T) {
	q := &failingQueryer{}
	repo := NewTransactionRepository(q, "tx_snapshot")

	_, err := repo.Load(context.Background())

	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "postgres:tx_snapshot", loadErr.Source)
	assert.Contains(t, q.query, "FROM tx_snapshot")
}
