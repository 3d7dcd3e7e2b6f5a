package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"adcheck/api/internal/factcheck"
	"adcheck/api/internal/prompt"
	"adcheck/api/internal/util"

	openai "github.com/sashabaranov/go-openai"
)

type Engine struct {
	Model           string
	MaxOutputTokens int
	client          *openai.Client
}

func New(apiKey, model string, maxOutputTokens int) *Engine {
	var client *openai.Client
	if key := strings.TrimSpace(apiKey); key != "" {
		client = openai.NewClient(key)
	}
	return &Engine{
		Model:           strings.TrimSpace(model),
		MaxOutputTokens: maxOutputTokens,
		client:          client,
	}
}

// WithBaseURL points the client at a different endpoint (tests, proxies).
func (e *Engine) WithBaseURL(apiKey, baseURL string) *Engine {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	e.client = openai.NewClientWithConfig(cfg)
	return e
}

func (e *Engine) Name() string { return "gpt" }

// Analyze sends the ad image through the chat completions API with the
// strict json_schema response format and returns the model's raw text.
// Single attempt, no retry.
func (e *Engine) Analyze(ctx context.Context, in factcheck.AnalyzeInput) (string, error) {
	if e.client == nil {
		return "", errors.New("OPENAI_API_KEY is empty")
	}

	schema, err := prompt.SchemaMap()
	if err != nil {
		return "", fmt.Errorf("openai analyze: bad embedded schema: %w", err)
	}
	util.FixJSONSchemaStrict(schema)
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("openai analyze: marshal schema: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt.FactCheckInstruction,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Answer strictly with JSON per factcheck.schema.json. No commentary.",
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: in.Image},
					},
				},
			},
		},
		MaxTokens:   e.MaxOutputTokens,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "factcheck",
				Strict: true,
				Schema: json.RawMessage(schemaJSON),
			},
		},
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai analyze: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai analyze: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
