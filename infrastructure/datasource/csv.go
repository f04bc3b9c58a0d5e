package datasource

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

var (
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidValue  = errors.New("valor inválido")
)

// CSVSource lê o dataset de um arquivo CSV com cabeçalho
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.path
}

func (s *CSVSource) Load(ctx context.Context) ([]domain.Transaction, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, &dataset.LoadError{Source: s.Describe(), Err: err}
	}
	defer file.Close()

	records, err := ParseCSV(ctx, file)
	if err != nil {
		return nil, &dataset.LoadError{Source: s.Describe(), Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"source": s.Describe(),
		"rows":   len(records),
	}).Info("Dataset carregado do CSV")

	return records, nil
}

// ParseCSV converte o CSV em transações. Colunas extras são ignoradas;
// a ausência de qualquer coluna obrigatória é erro.
func ParseCSV(ctx context.Context, r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler cabeçalho do CSV")
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}

	for _, col := range domain.SourceColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s", col)
		}
	}

	records := make([]domain.Transaction, 0)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}

		tx, err := parseRow(row, index)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}
		records = append(records, tx)
	}

	return records, nil
}

func parseRow(row []string, index map[string]int) (domain.Transaction, error) {
	get := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var tx domain.Transaction

	day, err := dataset.ParseDay(get(domain.ColumnDay))
	if err != nil {
		return tx, invalid(domain.ColumnDay, get(domain.ColumnDay))
	}
	tx.Day = day

	tx.Entity = get(domain.ColumnEntity)
	tx.Product = get(domain.ColumnProduct)
	tx.PriceTier = get(domain.ColumnPriceTier)
	tx.AnticipationMethod = get(domain.ColumnAnticipationMethod)
	tx.PaymentMethod = get(domain.ColumnPaymentMethod)

	installments, err := parseCount(get(domain.ColumnInstallments))
	if err != nil {
		return tx, invalid(domain.ColumnInstallments, get(domain.ColumnInstallments))
	}
	tx.Installments = int(installments)

	amount, err := decimal.NewFromString(get(domain.ColumnAmountTransacted))
	if err != nil || amount.IsNegative() {
		return tx, invalid(domain.ColumnAmountTransacted, get(domain.ColumnAmountTransacted))
	}
	tx.AmountTransacted = amount

	if tx.QuantityTransactions, err = parseCount(get(domain.ColumnQuantityTransactions)); err != nil {
		return tx, invalid(domain.ColumnQuantityTransactions, get(domain.ColumnQuantityTransactions))
	}
	if tx.QuantityOfMerchants, err = parseCount(get(domain.ColumnQuantityOfMerchants)); err != nil {
		return tx, invalid(domain.ColumnQuantityOfMerchants, get(domain.ColumnQuantityOfMerchants))
	}

	return tx, nil
}

// parseCount aceita inteiros não negativos, inclusive no formato "3.0" exportado por planilhas
func parseCount(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, ErrInvalidValue
		}
		return n, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return 0, ErrInvalidValue
	}
	return d.IntPart(), nil
}

func invalid(column, value string) error {
	return errors.Wrapf(ErrInvalidValue, "%s=%q", column, value)
}
