package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

const defaultTransactionsTable = "transactions"

// TransactionRepository lê o snapshot de transações de uma tabela do Postgres.
// Implementa dataset.Source.
type TransactionRepository struct {
	conn  postgres.Queryer
	table string
}

func NewTransactionRepository(conn postgres.Queryer, table string) *TransactionRepository {
	if table == "" {
		table = defaultTransactionsTable
	}
	return &TransactionRepository{conn: conn, table: table}
}

func (r *TransactionRepository) Describe() string {
	return "postgres:" + r.table
}

func (r *TransactionRepository) selectQuery() (string, []any, error) {
	return squirrel.
		Select(domain.SourceColumns...).
		From(r.table).
		OrderBy(domain.ColumnDay + " ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *TransactionRepository) Load(ctx context.Context) ([]domain.Transaction, error) {
	query, args, err := r.selectQuery()
	if err != nil {
		return nil, &dataset.LoadError{Source: r.Describe(), Err: errors.Wrap(err, "erro ao construir consulta")}
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &dataset.LoadError{Source: r.Describe(), Err: errors.Wrap(err, "erro ao consultar transações")}
	}
	defer rows.Close()

	records := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			tx     domain.Transaction
			day    time.Time
			amount decimal.Decimal
		)

		if err := rows.Scan(
			&day,
			&tx.Entity,
			&tx.Product,
			&tx.PriceTier,
			&tx.AnticipationMethod,
			&tx.PaymentMethod,
			&tx.Installments,
			&amount,
			&tx.QuantityTransactions,
			&tx.QuantityOfMerchants,
		); err != nil {
			return nil, &dataset.LoadError{Source: r.Describe(), Err: errors.Wrap(err, "erro ao processar resultado")}
		}

		tx.Day = dataset.CalendarDay(day)
		tx.AmountTransacted = amount
		records = append(records, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, &dataset.LoadError{Source: r.Describe(), Err: errors.Wrap(err, "erro durante iteração")}
	}

	logrus.WithFields(logrus.Fields{
		"source": r.Describe(),
		"rows":   len(records),
	}).Info("Dataset carregado do PostgreSQL")

	return records, nil
}
