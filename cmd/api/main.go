package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/internal/api"
	"github.com/vfg2006/transactions-agent-api/internal/api/handler"
	"github.com/vfg2006/transactions-agent-api/internal/app"
	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/internal/scheduler"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem dataset nenhuma rota funciona, então a falha na carga encerra o processo
	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset")
	}
	defer application.Close()

	authenticator := authenticating.NewService(cfg.Auth)

	alertsMonitor := scheduler.NewAlertsMonitorService(application.Alerter, cfg)
	if err := alertsMonitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o monitor de alertas")
	} else {
		logrus.Info("Monitor de alertas configurado")
	}

	server, err := api.New(cfg, api.Services{
		Querier:       application.Querier,
		Summarizer:    application.Summarizer,
		Alerter:       application.Alerter,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			AlertsMonitor: alertsMonitor,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
