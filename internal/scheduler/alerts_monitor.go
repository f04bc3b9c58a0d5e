// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
)

type AlertsMonitorConfig struct {
	CronSchedule string
	Enabled      bool
	Period       domain.Period
	Metric       domain.Metric
}

// AlertsMonitorService recalcula periodicamente o relatório de alertas e registra cada alerta no log
type AlertsMonitorService struct {
	scheduler          *gocron.Scheduler
	alerter            alerting.Alerter
	config             AlertsMonitorConfig
	runRunning         bool
	runMutex           sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastErr            error
	lastReport         *domain.AlertsReport
}

func NewAlertsMonitorService(alerter alerting.Alerter, cfg *config.Config) *AlertsMonitorService {
	monitorConfig := AlertsMonitorConfig{
		CronSchedule: cfg.AlertsMonitor.CronSchedule,
		Enabled:      cfg.AlertsMonitor.Enabled,
		Period:       domain.Period(cfg.AlertsMonitor.Period),
		Metric:       domain.Metric(cfg.AlertsMonitor.Metric),
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"period":        monitorConfig.Period,
		"metric":        monitorConfig.Metric,
	}).Info("Configuração do monitor de alertas carregada")

	return &AlertsMonitorService{
		scheduler: gocron.NewScheduler(time.UTC),
		alerter:   alerter,
		config:    monitorConfig,
	}
}

func (s *AlertsMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de alertas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do monitor de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunOnce(ctx); err != nil {
			logrus.WithError(err).Error("Erro na execução do monitor de alertas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do monitor de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce calcula o relatório uma vez. Execuções concorrentes são ignoradas.
func (s *AlertsMonitorService) RunOnce(ctx context.Context) error {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Warn("Monitor de alertas já está em execução")
		return nil
	}
	s.runRunning = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	report, err := s.alerter.Report(ctx, s.config.Metric, s.config.Period)

	s.runMutex.Lock()
	s.runRunning = false
	s.lastRunCompletedAt = time.Now()
	s.lastErr = err
	if err == nil {
		s.lastReport = report
	}
	s.runMutex.Unlock()

	if err != nil {
		return err
	}

	logAlerts(report)
	return nil
}

func logAlerts(report *domain.AlertsReport) {
	logrus.WithFields(logrus.Fields{
		"date":     report.DailySummary.Date,
		"metric":   report.DailySummary.Metric,
		"value":    report.DailySummary.ValueCurrent,
		"alerts":   len(report.Alerts),
		"insights": len(report.TopInsights),
	}).Info("Relatório de alertas atualizado")

	for _, alert := range report.Alerts {
		entry := logrus.WithFields(logrus.Fields{
			"alert_id":      alert.ID,
			"segment":       alert.Segment,
			"segment_value": alert.SegmentValue,
			"variation":     alert.Variation,
			"z_score":       alert.ZScore,
		})
		if alert.Type == domain.AlertWarning {
			entry.Warn(alert.Message)
		} else {
			entry.Info(alert.Message)
		}
	}
}

// TriggerManualRun dispara uma execução em background. Retorna false se já houver uma em andamento.
func (s *AlertsMonitorService) TriggerManualRun() bool {
	s.runMutex.Lock()
	if s.runRunning {
		s.runMutex.Unlock()
		logrus.Info("Monitor de alertas já em andamento, ignorando solicitação manual")
		return false
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando execução manual do monitor de alertas")
	go func() {
		if err := s.RunOnce(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do monitor de alertas")
		}
	}()
	return true
}

// LastReport devolve o último relatório calculado com sucesso, ou nil
func (s *AlertsMonitorService) LastReport() *domain.AlertsReport {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastReport
}

// GetStatus retorna o status atual do agendador
func (s *AlertsMonitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := map[string]any{
		"enabled":               s.config.Enabled,
		"cron":                  s.config.CronSchedule,
		"period":                s.config.Period,
		"metric":                s.config.Metric,
		"running":               s.runRunning,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
	if s.lastErr != nil {
		status["last_error"] = s.lastErr.Error()
	}
	if s.lastReport != nil {
		status["last_alerts"] = len(s.lastReport.Alerts)
		status["last_report"] = s.lastReport
	}

	return status
}
