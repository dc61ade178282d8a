package assistant

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inclusivehub/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Generator is the narrow Gemini surface the pipelines depend on.
type Generator interface {
	GenerateText(ctx context.Context, systemInstruction string, history []models.ConversationTurn, message string) (string, error)
	GenerateJSON(ctx context.Context, systemInstruction string, schema *genai.Schema, parts ...genai.Part) ([]byte, error)
}

// GeminiClient wraps the Gemini API with per-call timeouts and bounded retry
// on transient failures.
type GeminiClient struct {
	client      *genai.Client
	textModel   string
	visionModel string
	timeout     time.Duration
}

const (
	maxRetries       = 2
	retryBackoffBase = 500 * time.Millisecond
)

// NewGeminiClient creates a Gemini client from an API key.
func NewGeminiClient(ctx context.Context, apiKey, textModel, visionModel string, timeout time.Duration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{
		client:      client,
		textModel:   textModel,
		visionModel: visionModel,
		timeout:     timeout,
	}, nil
}

// Close releases the underlying API connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// GenerateText runs one chat turn: system instruction, replayed history, then
// the current message. Returns the concatenated text parts of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, systemInstruction string, history []models.ConversationTurn, message string) (string, error) {
	model := g.client.GenerativeModel(g.textModel)
	model.SystemInstruction = systemContent(systemInstruction)

	var resp *genai.GenerateContentResponse
	err := g.withRetry(ctx, func(callCtx context.Context) error {
		cs := model.StartChat()
		cs.History = HistoryContents(history)
		var sendErr error
		resp, sendErr = cs.SendMessage(callCtx, genai.Text(message))
		return sendErr
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return flattenText(resp), nil
}

// GenerateJSON runs a schema-constrained call and returns the raw JSON body.
// Multimodal inputs (any Blob part) are routed to the vision model.
func (g *GeminiClient) GenerateJSON(ctx context.Context, systemInstruction string, schema *genai.Schema, parts ...genai.Part) ([]byte, error) {
	name := g.textModel
	for _, p := range parts {
		if _, ok := p.(genai.Blob); ok {
			name = g.visionModel
			break
		}
	}

	model := g.client.GenerativeModel(name)
	model.SystemInstruction = systemContent(systemInstruction)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = schema

	var resp *genai.GenerateContentResponse
	err := g.withRetry(ctx, func(callCtx context.Context) error {
		var genErr error
		resp, genErr = model.GenerateContent(callCtx, parts...)
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	raw := flattenText(resp)
	if raw == "" {
		return nil, errors.New("empty response from model")
	}
	return []byte(raw), nil
}

// systemContent wraps a system instruction as model content. Empty
// instructions map to nil so callers like SimplifyContent that compose the
// whole prompt inline never send an empty content part.
func systemContent(systemInstruction string) *genai.Content {
	if systemInstruction == "" {
		return nil
	}
	return &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
}

// withRetry runs call once plus up to maxRetries more times on transient
// errors, with exponential backoff and jitter. Each attempt gets its own
// deadline so a hung call cannot consume the whole request budget.
func (g *GeminiClient) withRetry(ctx context.Context, call func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := retryBackoffBase << (attempt - 1)
			jitter := time.Duration(rand.Int63n(int64(backoff)))
			select {
			case <-time.After(backoff + jitter):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		lastErr = call(callCtx)
		cancel()

		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// isTransient reports whether the API error is worth retrying. Malformed-input
// and quota-exhausted-forever classes are not.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}

// flattenText concatenates the text parts of the first candidate.
func flattenText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
