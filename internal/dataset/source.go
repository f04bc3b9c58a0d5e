package dataset

import (
	"context"
	"sync"

	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

// Source é uma origem de transações (CSV, Postgres...)
type Source interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
	Describe() string
}

// Load lê a fonte uma única vez e monta o store.
// Erros que não vierem como LoadError são embrulhados.
func Load(ctx context.Context, src Source) (*Store, error) {
	records, err := src.Load(ctx)
	if err != nil {
		if _, ok := err.(*LoadError); ok {
			return nil, err
		}
		return nil, &LoadError{Source: src.Describe(), Err: err}
	}

	return New(records), nil
}

// Provider carrega o dataset de forma preguiçosa e compartilha o mesmo store
// entre todos os consumidores. A carga acontece no máximo uma vez.
type Provider struct {
	source Source
	once   sync.Once
	store  *Store
	err    error
}

func NewProvider(src Source) *Provider {
	return &Provider{source: src}
}

// NewStaticProvider expõe um store já carregado
func NewStaticProvider(store *Store) *Provider {
	p := &Provider{store: store}
	p.once.Do(func() {})
	return p
}

func (p *Provider) Get(ctx context.Context) (*Store, error) {
	p.once.Do(func() {
		p.store, p.err = Load(ctx, p.source)
	})
	return p.store, p.err
}
