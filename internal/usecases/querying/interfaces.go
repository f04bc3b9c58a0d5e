package querying

import (
	"context"

	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Translator converte uma pergunta em linguagem natural no JSON da intenção
type Translator interface {
	Translate(ctx context.Context, question string) ([]byte, error)
}

// StoreProvider entrega o dataset carregado
type StoreProvider interface {
	Get(ctx context.Context) (*dataset.Store, error)
}

type Querier interface {
	Ask(ctx context.Context, question string) (*domain.QueryResult, error)
	ExecuteIntent(ctx context.Context, raw []byte) (*domain.QueryResult, error)
	Run(ctx context.Context, intent domain.QueryIntent) (*domain.QueryResult, error)
}
