package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const (
	adviceModel = "gemini-2.0-flash"
	lookupModel = "gemini-2.0-flash"
)

type geminiProvider struct {
	client *genai.Client
	logger *slog.Logger
}

// NewGeminiProvider creates a Provider backed by the Gemini API. The API key
// is taken from the environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func NewGeminiProvider(ctx context.Context, logger *slog.Logger) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &geminiProvider{client: client, logger: logger}, nil
}

func (p *geminiProvider) Advice(ctx context.Context, data any) (string, error) {
	prompt, err := advicePrompt(data)
	if err != nil {
		return "", err
	}

	result, err := p.client.Models.GenerateContent(ctx, adviceModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate advice: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func (p *geminiProvider) BookByISBN(ctx context.Context, isbn string) (BookResult, error) {
	return p.lookupBook(ctx, bookByISBNPrompt(isbn))
}

func (p *geminiProvider) BookByQuery(ctx context.Context, query string) (BookResult, error) {
	return p.lookupBook(ctx, bookByQueryPrompt(query))
}

func (p *geminiProvider) lookupBook(ctx context.Context, prompt string) (BookResult, error) {
	result, err := p.client.Models.GenerateContent(ctx, lookupModel, genai.Text(prompt), nil)
	if err != nil {
		return BookResult{}, fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	p.logger.Debug("book lookup response", "raw", raw)

	var book BookResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &book); err != nil {
		return BookResult{}, fmt.Errorf("failed to decode book result: %w", err)
	}
	if !book.Found {
		return BookResult{}, ErrNotFound
	}
	return book, nil
}

func (p *geminiProvider) ISBNFromImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(isbnFromImagePrompt),
		}, genai.RoleUser),
	}

	result, err := p.client.Models.GenerateContent(ctx, lookupModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to analyze image: %w", err)
	}

	raw := strings.TrimSpace(result.Text())
	if raw == "" || strings.Contains(strings.ToLower(raw), "null") {
		return "", ErrNotFound
	}

	digits := keepDigits(raw)
	if len(digits) < 10 {
		return "", ErrNotFound
	}
	return digits, nil
}

func (p *geminiProvider) Visuals(ctx context.Context, country string) (CountryVisuals, error) {
	result, err := p.client.Models.GenerateContent(ctx, lookupModel, genai.Text(visualsPrompt(country)), nil)
	if err != nil {
		return CountryVisuals{}, fmt.Errorf("failed to generate content: %w", err)
	}

	var visuals CountryVisuals
	if err := json.Unmarshal([]byte(stripFences(result.Text())), &visuals); err != nil {
		return CountryVisuals{}, fmt.Errorf("failed to decode country visuals: %w", err)
	}
	return visuals, nil
}

// stripFences removes the markdown code fences models wrap JSON answers in.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.Trim(clean, "`")
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
