package openaiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	openaidomain "github.com/vfg2006/transactions-agent-api/infrastructure/integrator/openai/domain"
	"github.com/vfg2006/transactions-agent-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrAPI = errors.New("erro na API da OpenAI")

type Client interface {
	CreateChatCompletion(ctx context.Context, req openaidomain.ChatRequest) (*openaidomain.ChatResponse, error)
}

type OpenAIClient struct {
	cfg        config.OpenAI
	httpClient *http.Client
}

func NewClient(cfg config.OpenAI) *OpenAIClient {
	return &OpenAIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// CreateChatCompletion chama POST {base}/chat/completions. Não faz retentativas.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, chatReq openaidomain.ChatRequest) (*openaidomain.ChatResponse, error) {
	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar requisição")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a OpenAI")
		return nil, errors.Wrap(err, "erro ao chamar a OpenAI")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta da OpenAI")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, handleError(resp.StatusCode, data)
	}

	var chatResp openaidomain.ChatResponse
	if err := json.Unmarshal(data, &chatResp); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta da OpenAI")
	}

	logrus.WithFields(logrus.Fields{
		"model":         chatResp.Model,
		"total_tokens":  chatResp.Usage.TotalTokens,
		"finish_reason": finishReason(&chatResp),
	}).Debug("Resposta recebida da OpenAI")

	return &chatResp, nil
}

func handleError(status int, data []byte) error {
	var errResp openaidomain.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error.Message != "" {
		return errors.Wrapf(ErrAPI, "status %d: %s", status, errResp.Error.Message)
	}
	return errors.Wrapf(ErrAPI, "status %d: %s", status, http.StatusText(status))
}

func finishReason(resp *openaidomain.ChatResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return resp.Choices[0].FinishReason
}
