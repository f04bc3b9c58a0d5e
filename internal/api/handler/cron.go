package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-agent-api/pkg/apiErrors"
)

const (
	CronJobTypeAlerts = "alerts"
)

// CronJob é o que o handler precisa de um job agendado
type CronJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	AlertsMonitor CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := map[string]CronJob{}
	if s.AlertsMonitor != nil {
		jobs[CronJobTypeAlerts] = s.AlertsMonitor
	}
	return jobs
}

// RunCronJob executa manualmente um job específico
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, ok := services.jobs()[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job não disponível", map[string]string{"type": cronType})
			return
		}

		if !job.TriggerManualRun() {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Cron job já está em execução", map[string]string{"type": cronType})
			return
		}

		logrus.WithField("job", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
