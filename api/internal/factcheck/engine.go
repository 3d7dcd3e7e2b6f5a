package factcheck

import (
	"context"
	"errors"
)

// AnalyzeInput carries one data-URL-encoded ad image.
type AnalyzeInput struct {
	Image string `json:"image"`
}

// Engine sends one ad image to a multimodal model and returns the raw text
// payload (expected: one JSON document per factcheck.schema.json). Parsing
// and validation happen in the caller so it can tell a broken upstream from
// a non-conforming one.
type Engine interface {
	Name() string
	Analyze(ctx context.Context, in AnalyzeInput) (string, error)
}

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

// Get resolves the configured provider. Called once at startup; there is no
// per-request engine routing.
func (e *Engines) Get(name string) (Engine, error) {
	switch name {
	case "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	default:
		return nil, errors.New("unknown engine; use 'gemini' or 'gpt'")
	}
}
