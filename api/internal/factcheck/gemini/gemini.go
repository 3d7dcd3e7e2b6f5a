package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"adcheck/api/internal/factcheck"
	"adcheck/api/internal/prompt"
	"adcheck/api/internal/util"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Engine struct {
	APIKey          string
	Model           string
	MaxOutputTokens int32
}

func New(apiKey, model string, maxOutputTokens int) *Engine {
	return &Engine{
		APIKey:          strings.TrimSpace(apiKey),
		Model:           strings.TrimSpace(model),
		MaxOutputTokens: int32(maxOutputTokens),
	}
}

func (e *Engine) Name() string { return "gemini" }

// Analyze sends the ad image with the fact-check instruction and schema and
// returns the model's raw text. One shot: a failed call is the caller's
// terminal error, never retried here.
func (e *Engine) Analyze(ctx context.Context, in factcheck.AnalyzeInput) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}

	imgBytes, mimeFromDataURL, err := util.DecodeBase64MaybeDataURL(in.Image)
	if err != nil {
		return "", fmt.Errorf("gemini analyze: bad base64: %w", err)
	}
	mime := util.PickMIME(mimeFromDataURL, imgBytes)

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0.2),
		MaxOutputTokens:  ptrInt32(e.MaxOutputTokens),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(prompt.FactCheckInstruction),
			genai.Text("\nfactcheck.schema.json:\n" + prompt.FactCheckSchema),
		},
	}

	parts := []genai.Part{
		genai.Text("Answer strictly with JSON per factcheck.schema.json. No commentary."),
		&genai.Blob{MIMEType: mime, Data: imgBytes},
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini analyze: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
