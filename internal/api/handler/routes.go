package handler

import (
	"net/http"

	"github.com/vfg2006/transactions-agent-api/internal/api/handler/router"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/summarizing"
)

func Healthcheck(version string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(version),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(version),
		},
	}
}

// AskPath recebe perguntas em linguagem natural e depende do tradutor externo
const AskPath = "/v1/query"

func Query(service querying.Querier) []router.Route {
	return []router.Route{
		{
			Path:    AskPath,
			Method:  http.MethodPost,
			Handler: Ask(service),
		},
		{
			Path:    "/v1/query/intent",
			Method:  http.MethodPost,
			Handler: RunIntent(service),
		},
	}
}

func Data(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/data/summary",
			Method:  http.MethodGet,
			Handler: GetDataSummary(service),
		},
		{
			Path:    "/v1/data/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/data/columns",
			Method:  http.MethodGet,
			Handler: GetColumns(service),
		},
		{
			Path:    "/v1/data/columns/:column/values",
			Method:  http.MethodGet,
			Handler: GetColumnValues(service),
		},
	}
}

func Alerts(service alerting.Alerter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alerts",
			Method:  http.MethodGet,
			Handler: GetAlerts(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/alerts/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeAlerts),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
