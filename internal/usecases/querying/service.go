package querying

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/vfg2006/transactions-agent-api/internal/domain"
	"github.com/vfg2006/transactions-agent-api/pkg/log"
	"github.com/vfg2006/transactions-agent-api/pkg/utils"
)

const MaxQuestionLength = 500

type Service struct {
	translator Translator
	provider   StoreProvider
	executor   *Executor
}

// NewService cria o serviço de consultas. translator pode ser nil quando
// nenhuma chave de LLM está configurada; nesse caso só intents diretas funcionam.
func NewService(translator Translator, provider StoreProvider) *Service {
	return &Service{
		translator: translator,
		provider:   provider,
		executor:   NewExecutor(),
	}
}

func (s *Service) Ask(ctx context.Context, question string) (*domain.QueryResult, error) {
	question = strings.TrimSpace(question)
	if n := utf8.RuneCountInString(question); n == 0 || n > MaxQuestionLength {
		return nil, errors.Wrapf(ErrInvalidQuestion, "a pergunta deve ter entre 1 e %d caracteres", MaxQuestionLength)
	}

	if s.translator == nil {
		return nil, &TranslationError{Err: ErrTranslatorUnavailable}
	}

	logger := log.ForContext(ctx).WithField("question", question)
	logger.Info("Traduzindo pergunta")

	start := time.Now()
	raw, err := s.translator.Translate(ctx, question)
	if err != nil {
		logger.WithError(err).Error("Erro ao traduzir pergunta")
		return nil, &TranslationError{Err: err}
	}

	logger.WithFields(log.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"intent":      string(raw),
	}).Debug("Intenção recebida do tradutor")

	return s.ExecuteIntent(ctx, raw)
}

func (s *Service) ExecuteIntent(ctx context.Context, raw []byte) (*domain.QueryResult, error) {
	intent, err := ParseIntent(raw)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Intenção rejeitada na validação")
		return nil, err
	}

	return s.Run(ctx, intent)
}

func (s *Service) Run(ctx context.Context, intent domain.QueryIntent) (*domain.QueryResult, error) {
	store, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	executionID, _ := utils.GenerateID()
	result, err := s.executor.Execute(store, intent)
	if err != nil {
		return nil, err
	}

	fields := log.Fields{
		"execution_id": executionID,
		"metric":       intent.Metric,
		"rows":         len(result.Data),
		"dataset_rows": store.Len(),
	}
	log.AddRequestFields(ctx, fields)
	log.ForContext(ctx).WithFields(fields).WithField("group_by", intent.GroupBy).Info("Consulta executada")

	return result, nil
}
