package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	"google.golang.org/genai"
)

const imageMIMEType = "image/png"

type GeminiClient struct {
	Client *genai.Client
	Model  string
}

// NewGeminiClient builds the process-wide client. baseURL is optional and only
// overrides the Gemini API endpoint, e.g. for a proxy.
func NewGeminiClient(ctx context.Context, apikey, model, baseURL string) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{APIKey: apikey, Backend: genai.BackendGeminiAPI}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to create gemini client", err)
	}
	return &GeminiClient{Client: client, Model: model}, nil
}

// AnalyzeImage sends the prompt and the image, re-encoded as PNG, as one user turn.
func (g GeminiClient) AnalyzeImage(ctx context.Context, req domain.AnalysisRequest) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, req.Image); err != nil {
		return "", domain.NewAnalysisFailedError(fmt.Errorf("encode image: %w", err))
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		genai.NewPartFromBytes(buf.Bytes(), imageMIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.Client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		return "", domain.NewAnalysisFailedError(err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", domain.NewAnalysisFailedError(fmt.Errorf("prompt blocked: %s", result.PromptFeedback.BlockReason))
	}

	text := result.Text()
	if text == "" {
		return "", domain.NewAnalysisFailedError(errors.New("model returned no text"))
	}

	return text, nil
}
