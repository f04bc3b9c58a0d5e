package alerting

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/transactions-agent-api/internal/config"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/pkg/log"
	"github.com/vfg2006/transactions-agent-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	DefaultLookbackDays       = 14
	DefaultVariationThreshold = 15.0
	DefaultZScoreThreshold    = 2.0
)

var (
	// ordem de emissão dos alertas: produto-tpv, entidade-tpv, produto-ticket, entidade-ticket
	anomalyMetrics    = []domain.Metric{domain.MetricTPV, domain.MetricAverageTicket}
	anomalySegments   = []string{domain.ColumnProduct, domain.ColumnEntity}
	insightSegments   = []string{domain.ColumnProduct, domain.ColumnEntity, domain.ColumnPaymentMethod}
	aggregatedColumns = []string{
		domain.ColumnAmountTransacted,
		domain.ColumnQuantityTransactions,
		domain.ColumnQuantityOfMerchants,
	}
)

// Thresholds define quando um segmento é considerado anômalo
type Thresholds struct {
	LookbackDays int
	Variation    float64
	ZScore       float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		LookbackDays: DefaultLookbackDays,
		Variation:    DefaultVariationThreshold,
		ZScore:       DefaultZScoreThreshold,
	}
}

// ThresholdsFromConfig usa os valores padrão para o que não estiver configurado
func ThresholdsFromConfig(cfg config.Anomaly) Thresholds {
	th := DefaultThresholds()
	if cfg.LookbackDays > 0 {
		th.LookbackDays = cfg.LookbackDays
	}
	if cfg.VariationThreshold > 0 {
		th.Variation = cfg.VariationThreshold
	}
	if cfg.ZScoreThreshold > 0 {
		th.ZScore = cfg.ZScoreThreshold
	}
	return th
}

type StoreProvider interface {
	Get(ctx context.Context) (*dataset.Store, error)
}

type Alerter interface {
	DailySummary(ctx context.Context, metric domain.Metric) (*domain.DailySummary, error)
	Anomalies(ctx context.Context) ([]domain.Alert, error)
	TopInsights(ctx context.Context, period domain.Period) ([]domain.TopInsight, error)
	Report(ctx context.Context, metric domain.Metric, period domain.Period) (*domain.AlertsReport, error)
}

type Service struct {
	provider   StoreProvider
	thresholds Thresholds
}

func NewService(provider StoreProvider, thresholds Thresholds) *Service {
	return &Service{
		provider:   provider,
		thresholds: thresholds,
	}
}

func (s *Service) DailySummary(ctx context.Context, metric domain.Metric) (*domain.DailySummary, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDailySummary(store, metric)
}

func (s *Service) Anomalies(ctx context.Context) ([]domain.Alert, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return DetectAnomalies(store, s.thresholds)
}

func (s *Service) TopInsights(ctx context.Context, period domain.Period) ([]domain.TopInsight, error) {
	days, ok := period.Days()
	if !ok {
		return nil, ErrInvalidPeriod
	}

	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeTopInsights(store, days)
}

// Report junta resumo diário, anomalias e insights. Métrica vazia vira tpv e período vazio vira d30.
func (s *Service) Report(ctx context.Context, metric domain.Metric, period domain.Period) (*domain.AlertsReport, error) {
	if metric == "" {
		metric = domain.MetricTPV
	}
	if period == "" {
		period = domain.PeriodD30
	}

	days, ok := period.Days()
	if !ok {
		return nil, ErrInvalidPeriod
	}

	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := ComputeDailySummary(store, metric)
	if err != nil {
		return nil, err
	}

	alerts, err := DetectAnomalies(store, s.thresholds)
	if err != nil {
		return nil, err
	}

	insights, err := ComputeTopInsights(store, days)
	if err != nil {
		return nil, err
	}

	fields := log.Fields{
		"metric":       metric,
		"period":       period,
		"date":         summary.Date,
		"alerts":       len(alerts),
		"insights":     len(insights),
		"dataset_rows": store.Len(),
	}
	log.AddRequestFields(ctx, fields)
	log.ForContext(ctx).WithFields(fields).Debug("Relatório de alertas calculado")

	return &domain.AlertsReport{
		DailySummary: *summary,
		Alerts:       alerts,
		TopInsights:  insights,
	}, nil
}

// ComputeDailySummary compara o último dia do dataset com D-1, D-7 e D-30
func ComputeDailySummary(store *dataset.Store, metric domain.Metric) (*domain.DailySummary, error) {
	if !metric.Valid() {
		return nil, ErrUnsupportedMetric
	}

	current, ok := store.MaxDay()
	if !ok {
		return nil, ErrEmptyDataset
	}

	valueOn := func(day time.Time) float64 {
		// métrica já validada, Compute não falha
		v, _ := metric.Compute(store.OnDay(day).Totals())
		return v
	}

	valueCurrent := valueOn(current)

	return &domain.DailySummary{
		Date:         current.Format(domain.DateLayout),
		Metric:       metric,
		MetricLabel:  metric.Label(),
		ValueCurrent: valueCurrent,
		VarD1:        variation(valueCurrent, valueOn(current.AddDate(0, 0, -1))),
		VarD7:        variation(valueCurrent, valueOn(current.AddDate(0, 0, -7))),
		VarD30:       variation(valueCurrent, valueOn(current.AddDate(0, 0, -30))),
	}, nil
}

// DetectAnomalies compara cada segmento do dia atual com sua janela histórica [atual-N, atual)
func DetectAnomalies(store *dataset.Store, th Thresholds) ([]domain.Alert, error) {
	current, ok := store.MaxDay()
	if !ok {
		return nil, ErrEmptyDataset
	}

	currentData := store.OnDay(current)
	historical := store.Between(current.AddDate(0, 0, -th.LookbackDays), current)

	alerts := make([]domain.Alert, 0)
	for _, metric := range anomalyMetrics {
		for _, segment := range anomalySegments {
			found, err := segmentAnomalies(currentData, historical, segment, metric, th)
			if err != nil {
				return nil, err
			}
			alerts = append(alerts, found...)
		}
	}

	return alerts, nil
}

type segmentTotals struct {
	value  string
	totals domain.Totals
}

// totalsBySegment agrega por segmento e devolve em ordem alfabética
func totalsBySegment(store *dataset.Store, segment string) ([]segmentTotals, error) {
	groups, err := store.Aggregate([]string{segment}, aggregatedColumns, dataset.OpSum)
	if err != nil {
		return nil, err
	}

	out := make([]segmentTotals, 0, len(groups))
	for _, g := range groups {
		out = append(out, segmentTotals{value: fmt.Sprint(g.Keys[0]), totals: g.Totals()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out, nil
}

func segmentAnomalies(currentData, historical *dataset.Store, segment string, metric domain.Metric, th Thresholds) ([]domain.Alert, error) {
	currentSegments, err := totalsBySegment(currentData, segment)
	if err != nil {
		return nil, err
	}

	// um valor histórico por dia presente na janela
	dailyGroups, err := historical.Aggregate([]string{segment, domain.ColumnDay}, aggregatedColumns, dataset.OpSum)
	if err != nil {
		return nil, err
	}
	history := make(map[string][]float64)
	for _, g := range dailyGroups {
		seg := fmt.Sprint(g.Keys[0])
		v, err := metric.Compute(g.Totals())
		if err != nil {
			return nil, ErrUnsupportedMetric
		}
		history[seg] = append(history[seg], v)
	}

	alerts := make([]domain.Alert, 0)
	for _, cs := range currentSegments {
		values, ok := history[cs.value]
		if !ok || len(values) == 0 {
			continue
		}

		currentValue, err := metric.Compute(cs.totals)
		if err != nil {
			return nil, ErrUnsupportedMetric
		}

		histMean := mean(values)
		histStd := sampleStdDev(values)
		v := variation(currentValue, histMean)
		z := zScore(currentValue, histMean, histStd)

		if math.Abs(v) <= th.Variation && math.Abs(z) <= th.ZScore {
			continue
		}

		alerts = append(alerts, newAlert(segment, cs.value, metric, v, z))
	}

	return alerts, nil
}

func newAlert(segment, value string, metric domain.Metric, v, z float64) domain.Alert {
	alertType := domain.AlertInfo
	if v < 0 {
		alertType = domain.AlertWarning
	}

	direction := "fell"
	if v > 0 {
		direction = "rose"
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Warn("Não foi possível gerar id do alerta")
	}

	return domain.Alert{
		ID:           id,
		Type:         alertType,
		Segment:      segment,
		SegmentValue: value,
		Metric:       metric,
		Variation:    v,
		ZScore:       z,
		Message:      fmt.Sprintf("%s of %s %s %.1f%%", metric.ShortLabel(), value, direction, math.Abs(v)),
	}
}

type insightCandidate struct {
	segment   string
	label     string
	tpv       float64
	variation float64
}

// ComputeTopInsights compara o TPV de cada segmento no dia atual com o dia atual-days.
// Empates ficam com o primeiro candidato: dimensões na ordem produto, entidade, meio de pagamento
// e valores em ordem alfabética.
func ComputeTopInsights(store *dataset.Store, days int) ([]domain.TopInsight, error) {
	current, ok := store.MaxDay()
	if !ok {
		return nil, ErrEmptyDataset
	}

	currentData := store.OnDay(current)
	comparisonData := store.OnDay(current.AddDate(0, 0, -days))

	insights := make([]domain.TopInsight, 0, 3)
	if comparisonData.IsEmpty() {
		return insights, nil
	}

	candidates := make([]insightCandidate, 0)
	for _, segment := range insightSegments {
		currentSegments, err := totalsBySegment(currentData, segment)
		if err != nil {
			return nil, err
		}
		comparisonSegments, err := totalsBySegment(comparisonData, segment)
		if err != nil {
			return nil, err
		}

		comparisonTPV := make(map[string]float64, len(comparisonSegments))
		for _, cs := range comparisonSegments {
			comparisonTPV[cs.value] = cs.totals.AmountTransacted.InexactFloat64()
		}

		for _, cs := range currentSegments {
			base, ok := comparisonTPV[cs.value]
			if !ok || base <= 0 {
				continue
			}
			tpv := cs.totals.AmountTransacted.InexactFloat64()
			candidates = append(candidates, insightCandidate{
				segment:   segment,
				label:     cs.value,
				tpv:       tpv,
				variation: variation(tpv, base),
			})
		}
	}

	if len(candidates) == 0 {
		return insights, nil
	}

	drop, contributor, growth := candidates[0], candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c.variation < drop.variation {
			drop = c
		}
		if c.tpv > contributor.tpv {
			contributor = c
		}
		if c.variation > growth.variation {
			growth = c
		}
	}

	if drop.variation < 0 {
		insights = append(insights, drop.toInsight(domain.InsightLargestDrop))
	}
	insights = append(insights, contributor.toInsight(domain.InsightMainContributor))
	if growth.variation > 0 {
		insights = append(insights, growth.toInsight(domain.InsightHighestGrowth))
	}

	return insights, nil
}

func (c insightCandidate) toInsight(t domain.InsightType) domain.TopInsight {
	return domain.TopInsight{
		Type:        t,
		Label:       c.label,
		SegmentType: c.segment,
		Value:       c.tpv,
		Variation:   c.variation,
	}
}
