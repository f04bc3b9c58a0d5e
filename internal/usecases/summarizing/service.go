package summarizing

import (
	"context"

	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type StoreProvider interface {
	Get(ctx context.Context) (*dataset.Store, error)
}

type Summarizer interface {
	Summary(ctx context.Context) (*domain.DataSummary, error)
	Dashboard(ctx context.Context) (*domain.DashboardData, error)
	Columns(ctx context.Context) ([]string, error)
	ColumnValues(ctx context.Context, column string) ([]any, error)
}

type Service struct {
	provider StoreProvider
	executor *querying.Executor
}

func NewService(provider StoreProvider) *Service {
	return &Service{
		provider: provider,
		executor: querying.NewExecutor(),
	}
}

func (s *Service) Summary(ctx context.Context) (*domain.DataSummary, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	totals := store.Totals()
	tpv, _ := domain.MetricTPV.Compute(totals)
	ticket, _ := domain.MetricAverageTicket.Compute(totals)

	summary := &domain.DataSummary{
		TotalRows:       totals.Rows,
		TotalTPV:        tpv,
		AverageTicket:   ticket,
		UniqueMerchants: float64(totals.QuantityOfMerchants),
	}

	if start, ok := store.MinDay(); ok {
		end, _ := store.MaxDay()
		summary.DateRange = domain.DateRange{
			Start: start.Format(domain.DateLayout),
			End:   end.Format(domain.DateLayout),
		}
	}

	entities, err := store.UniqueValues(domain.ColumnEntity)
	if err != nil {
		return nil, err
	}
	products, err := store.UniqueValues(domain.ColumnProduct)
	if err != nil {
		return nil, err
	}
	summary.UniqueEntities = len(entities)
	summary.UniqueProducts = len(products)

	return summary, nil
}

type chart struct {
	target      *[]domain.Row
	metric      domain.Metric
	groupBy     string
	sortBy      string
	sortOrder   domain.SortOrder
	valueColumn string
}

// Dashboard calcula as pré-agregações do painel usando o mesmo motor das consultas
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardData, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	data := &domain.DashboardData{}
	const (
		tpv    = domain.ColumnAmountTransacted
		ticket = "average_ticket"
	)

	charts := []chart{
		{&data.TPVByProduct, domain.MetricTPV, domain.ColumnProduct, domain.SortByMetric, domain.SortDesc, tpv},
		{&data.TPVByEntity, domain.MetricTPV, domain.ColumnEntity, domain.ColumnEntity, domain.SortAsc, tpv},
		{&data.TPVByPaymentMethod, domain.MetricTPV, domain.ColumnPaymentMethod, domain.SortByMetric, domain.SortDesc, tpv},
		{&data.AvgTicketByEntity, domain.MetricAverageTicket, domain.ColumnEntity, domain.ColumnEntity, domain.SortAsc, ticket},
		{&data.AvgTicketByProduct, domain.MetricAverageTicket, domain.ColumnProduct, domain.SortByMetric, domain.SortDesc, ticket},
		{&data.AvgTicketByPaymentMethod, domain.MetricAverageTicket, domain.ColumnPaymentMethod, domain.SortByMetric, domain.SortDesc, ticket},
		{&data.TPVByPriceTier, domain.MetricTPV, domain.ColumnPriceTier, domain.SortByMetric, domain.SortDesc, tpv},
		{&data.TPVByInstallments, domain.MetricTPV, domain.ColumnInstallments, domain.ColumnInstallments, domain.SortAsc, tpv},
	}

	for _, c := range charts {
		result, err := s.executor.Execute(store, domain.QueryIntent{
			Metric:      c.metric,
			Aggregation: domain.AggregationSum,
			GroupBy:     []string{c.groupBy},
			SortBy:      c.sortBy,
			SortOrder:   c.sortOrder,
		})
		if err != nil {
			return nil, err
		}
		*c.target = renameMetricColumn(result.Data, c.valueColumn)
	}

	return data, nil
}

// renameMetricColumn troca metric_value pelo nome usado nos gráficos
func renameMetricColumn(rows []domain.Row, name string) []domain.Row {
	for _, row := range rows {
		row[name] = row[domain.MetricValueColumn]
		delete(row, domain.MetricValueColumn)
	}
	return rows
}

func (s *Service) Columns(ctx context.Context) ([]string, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return store.ColumnNames(), nil
}

func (s *Service) ColumnValues(ctx context.Context, column string) ([]any, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}
	return store.UniqueValues(column)
}
