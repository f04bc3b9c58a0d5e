package querying

import (
	"errors"
	"fmt"

	"github.com/vfg2006/transactions-agent-api/internal/domain"
)

var (
	ErrInvalidIntent   = errors.New("intenção de consulta inválida")
	ErrTranslation     = errors.New("falha ao traduzir a pergunta")
	ErrInvalidQuestion = errors.New("pergunta inválida")

	// ErrTranslatorUnavailable indica que nenhum tradutor foi configurado
	ErrTranslatorUnavailable = errors.New("tradutor não configurado")
)

// UnsupportedMetricError indica uma métrica fora do enum suportado
type UnsupportedMetricError struct {
	Metric string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("métrica não suportada: '%s'", e.Metric)
}

func (e *UnsupportedMetricError) Unwrap() error {
	return domain.ErrUnsupportedMetric
}

// ValidationError indica que a intenção não passou na validação estrutural
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: campo '%s' %s", ErrInvalidIntent.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidIntent
}

// TranslationError indica que o tradutor falhou ou devolveu algo inutilizável
type TranslationError struct {
	Err error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrTranslation.Error(), e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslation
}
