package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"github.com/go-resty/resty/v2"
)

const analysisPrompt = `Ты — эксперт ЕГЭ по английскому языку. Проверь письмо ученика по четырём критериям:
K1 — решение коммуникативной задачи (0-3 балла),
K2 — организация текста (0-2 балла),
K3 — лексико-грамматическое оформление (0-3 балла),
K4 — орфография и пунктуация (0-2 балла).
Ответь строго JSON-объектом вида
{"K1": {"score": 0, "justification": "...", "recommendations": "..."}, ...}.
Для K3 добавь поле "mistaken_words": массив объектов
{"incorrect": "слово как написал ученик", "correct": "правильная форма", "translation": "перевод на русский"}.
Никакого текста вне JSON.`

// OpenRouterAPI analyzes essays via the OpenRouter chat completions API
type OpenRouterAPI struct {
	httpClient *resty.Client
	model      string
}

// NewOpenRouterAPI creates an analyzer client
func NewOpenRouterAPI(apiKey, model string) *OpenRouterAPI {
	httpClient := resty.New()
	httpClient.SetBaseURL("https://openrouter.ai/api/v1")
	httpClient.SetHeader("Authorization", "Bearer "+apiKey)
	httpClient.SetHeader("Content-Type", "application/json")

	return &OpenRouterAPI{
		httpClient: httpClient,
		model:      model,
	}
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message message `json:"message"`
}

// Analyze scores an essay per criterion and extracts mistake word triples
func (c *OpenRouterAPI) Analyze(ctx context.Context, text string) (domain.Feedback, error) {
	body := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: analysisPrompt},
			{Role: "user", Content: text},
		},
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&chatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("openrouter request: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("openrouter response %d: %s", response.StatusCode(), response.String())
	}

	completion := response.Result().(*chatCompletionResponse)
	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openrouter: empty response: %s", response.String())
	}

	content := stripCodeFence(completion.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("openrouter: empty completion content")
	}

	var feedback domain.Feedback
	if err := json.Unmarshal([]byte(content), &feedback); err != nil {
		return nil, fmt.Errorf("openrouter: parse feedback %q: %w", content, err)
	}

	return feedback, nil
}

// stripCodeFence unwraps a ```json ... ``` block some models emit
// despite the prompt
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
