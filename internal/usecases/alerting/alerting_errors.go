package alerting

import "errors"

var (
	ErrEmptyDataset      = errors.New("dataset vazio, não há dia atual para comparar")
	ErrInvalidPeriod     = errors.New("período inválido, use d1, d7 ou d30")
	ErrUnsupportedMetric = errors.New("métrica não suportada para alertas")
)
