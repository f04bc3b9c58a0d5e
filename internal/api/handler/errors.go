package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/transactions-agent-api/internal/dataset"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/alerting"
	"github.com/vfg2006/transactions-agent-api/internal/usecases/querying"
	"github.com/vfg2006/transactions-agent-api/pkg/apiErrors"
	"github.com/vfg2006/transactions-agent-api/pkg/log"
)

// handleServiceError traduz os erros dos casos de uso para o formato padronizado da API
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		schemaErr      *dataset.SchemaError
		metricErr      *querying.UnsupportedMetricError
		validationErr  *querying.ValidationError
		translationErr *querying.TranslationError
		loadErr        *dataset.LoadError
	)

	switch {
	case errors.As(err, &schemaErr):
		apiErrors.WriteError(w, apiErrors.ErrSchema, err.Error(), map[string]string{
			"column":    schemaErr.Column,
			"operation": schemaErr.Op,
		})

	case errors.As(err, &metricErr):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedMetric, err.Error(), map[string]string{
			"metric": metricErr.Metric,
		})

	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidIntent, err.Error(), map[string]string{
			"field":  validationErr.Field,
			"reason": validationErr.Reason,
		})

	case errors.Is(err, querying.ErrTranslatorUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrTranslatorDisabled, "Nenhum tradutor configurado, use /v1/query/intent", nil)

	case errors.As(err, &translationErr):
		apiErrors.WriteError(w, apiErrors.ErrTranslation, err.Error(), nil)

	case errors.Is(err, querying.ErrInvalidQuestion):
		apiErrors.WriteError(w, apiErrors.ErrInvalidQuestion, err.Error(), nil)

	case errors.Is(err, alerting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)

	case errors.Is(err, alerting.ErrUnsupportedMetric):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedMetric, err.Error(), nil)

	case errors.Is(err, alerting.ErrEmptyDataset):
		apiErrors.WriteError(w, apiErrors.ErrEmptyDataset, err.Error(), nil)

	case errors.As(err, &loadErr):
		log.AddRequestFields(ctx, log.Fields{"dataset_source": loadErr.Source})
		log.ForContext(ctx).WithError(err).Error("Dataset indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDatasetLoad, "Dataset indisponível", map[string]string{
			"source": loadErr.Source,
		})

	default:
		log.ForContext(ctx).WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
