package datasource

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
)

const header = "day,entity,product,price_tier,anticipation_method,payment_method,installments,amount_transacted,quantity_transactions,quantity_of_merchants"

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		expectErr error
	}{
		{
			name:     "Arquivo válido",
			input:    header + "\n2024-01-01,PF,pix,normal,Pix,uninformed,1,100.50,4,2\n2024-01-02,PJ,pos,aggressive,D1Anticipation,credit,3,300,2,1\n",
			expected: 2,
		},
		{
			name:     "Colunas extras e ordem diferente",
			input:    "extra,quantity_of_merchants,quantity_transactions,amount_transacted,installments,payment_method,anticipation_method,price_tier,product,entity,day\nx,1,2,10,1,debit,Pix,normal,tap,PF,2024-01-01\n",
			expected: 1,
		},
		{
			name:     "Contagens com casa decimal",
			input:    header + "\n2024-01-01,PF,pix,normal,Pix,uninformed,1.0,100,4.0,2\n",
			expected: 1,
		},
		{
			name:      "Coluna obrigatória ausente",
			input:     "day,entity\n2024-01-01,PF\n",
			expectErr: ErrMissingColumn,
		},
		{
			name:      "Data inválida",
			input:     header + "\n01/01/2024,PF,pix,normal,Pix,uninformed,1,100,4,2\n",
			expectErr: ErrInvalidValue,
		},
		{
			name:      "Valor negativo",
			input:     header + "\n2024-01-01,PF,pix,normal,Pix,uninformed,1,-100,4,2\n",
			expectErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseCSV(context.Background(), strings.NewReader(tt.input))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, records, tt.expected)
		})
	}
}

func TestParseCSV_Valores(t *testing.T) {
	records, err := ParseCSV(context.Background(), strings.NewReader(header+"\n2024-01-01,PF,pix,normal,Pix,uninformed,2,100.50,4,2\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)

	tx := records[0]
	assert.Equal(t, "2024-01-01", tx.Day.Format("2006-01-02"))
	assert.Equal(t, "PF", tx.Entity)
	assert.Equal(t, "pix", tx.Product)
	assert.Equal(t, 2, tx.Installments)
	assert.Equal(t, "100.5", tx.AmountTransacted.String())
	assert.Equal(t, int64(4), tx.QuantityTransactions)
	assert.Equal(t, int64(2), tx.QuantityOfMerchants)
}

func TestCSVSource_Load(t *testing.T) {
	t.Run("Arquivo inexistente gera LoadError", func(t *testing.T) {
		src := NewCSVSource(filepath.Join(t.TempDir(), "nao-existe.csv"))

		_, err := src.Load(context.Background())

		var loadErr *dataset.LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Contains(t, loadErr.Source, "nao-existe.csv")
	})

	t.Run("Arquivo válido alimenta o store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.csv")
		require.NoError(t, os.WriteFile(path, []byte(header+"\n2024-01-01,PF,pix,normal,Pix,uninformed,1,100,4,2\n"), 0o600))

		store, err := dataset.Load(context.Background(), NewCSVSource(path))
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
		assert.Equal(t, "Monday", store.Records()[0].DayOfWeek)
	})
}
