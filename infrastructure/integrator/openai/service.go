package openai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	openaidomain "github.com/vfg2006/transactions-agent-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/transactions-agent-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/transactions-agent-api/internal/config"
)

var ErrEmptyResponse = errors.New("resposta vazia do modelo")

// Translator transforma perguntas em JSON de intenção usando chat completions.
// Implementa querying.Translator.
type Translator struct {
	cfg    config.OpenAI
	Client openaiclient.Client
}

func New(cfg config.OpenAI, client openaiclient.Client) *Translator {
	return &Translator{
		cfg:    cfg,
		Client: client,
	}
}

func (t *Translator) Translate(ctx context.Context, question string) ([]byte, error) {
	resp, err := t.Client.CreateChatCompletion(ctx, openaidomain.ChatRequest{
		Model: t.cfg.Model,
		Messages: []openaidomain.Message{
			{Role: openaidomain.RoleSystem, Content: systemPrompt},
			{Role: openaidomain.RoleUser, Content: question},
		},
		Temperature:    t.cfg.Temperature,
		ResponseFormat: &openaidomain.ResponseFormat{Type: openaidomain.ResponseFormatJSONObject},
	})
	if err != nil {
		logrus.WithError(err).Error("translator: failed to call chat completions")
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, ErrEmptyResponse
	}

	return []byte(content), nil
}

// stripCodeFence remove blocos ```json ... ``` que alguns modelos insistem em devolver
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
