// Package app monta as dependências compartilhadas pela API e pela CLI
package app

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/transactions-agent-api/infrastructure/datasource"
	"github.com/vfg2006/transactions-agent-api/infrastructure/integrator/openai"
	"github.com/vfg2006/transactions-agent-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/transactions-agent-api/infrastructure/repository"
	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/summarizing"
)

// App reúne o dataset carregado e os casos de uso construídos sobre ele
type App struct {
	Provider   *dataset.Provider
	Querier    *querying.Service
	Summarizer *summarizing.Service
	Alerter    *alerting.Service

	closers []func() error
}

// New abre a fonte configurada e carrega o dataset. Um LoadError aqui é fatal
// para quem chama: nenhuma operação funciona sem o dataset.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	source, err := app.source(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app.Provider = dataset.NewProvider(source)
	store, err := app.Provider.Get(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"dataset_source": source.Describe(),
		"dataset_rows":   store.Len(),
	}).Info("Dataset carregado")

	app.Querier = querying.NewService(translator(cfg.OpenAI), app.Provider)
	app.Summarizer = summarizing.NewService(app.Provider)
	app.Alerter = alerting.NewService(app.Provider, alerting.ThresholdsFromConfig(cfg.Anomaly))

	return app, nil
}

func (a *App) source(ctx context.Context, cfg *config.Config) (dataset.Source, error) {
	switch cfg.Dataset.Source {
	case config.DataSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, &dataset.LoadError{Source: "postgres:" + cfg.Database.Table, Err: err}
		}
		a.closers = append(a.closers, conn.Close)
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		return repository.NewTransactionRepository(conn, cfg.Database.Table), nil

	case config.DataSourceCSV, "":
		return datasource.NewCSVSource(cfg.Dataset.Path), nil
	}

	return nil, errors.Errorf("DATA_SOURCE inválido: %q", cfg.Dataset.Source)
}

// translator devolve nil quando não há chave configurada; nesse caso só
// intenções diretas podem ser executadas.
func translator(cfg config.OpenAI) querying.Translator {
	if cfg.APIKey == "" {
		logrus.Warn("OPENAI_API_KEY não configurada, perguntas em linguagem natural estão desabilitadas")
		return nil
	}

	return openai.New(cfg, openaiclient.NewClient(cfg))
}

func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso")
		}
	}
	a.closers = nil
}
