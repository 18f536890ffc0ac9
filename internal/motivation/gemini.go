package motivation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nelld28/chorebender/internal/model"
)

const defaultModel = "gemini-2.0-flash"

// GeminiConfig holds the generative backend configuration from environment
// variables.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Gemini generates motivational messages through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed Generator.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model}, nil
}

// Generate asks the model for one message. There is no retry: a failure is
// returned to the caller as-is.
func (g *Gemini) Generate(ctx context.Context, element model.Element, progressPercentage float64) (string, error) {
	prompt := buildPrompt(element, progressPercentage)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate message: %w", err)
	}

	msg := strings.TrimSpace(resp.Text())
	if msg == "" {
		return "", errors.New("generate message: empty response")
	}
	return msg, nil
}
