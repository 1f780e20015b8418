package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"menuparser/internal/metrics"
)

type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds a single call; zero leaves it to the request context.
	Timeout time.Duration
}

type GeminiClient struct {
	http  *resty.Client
	model string
}

func NewGeminiClient(opts GeminiOptions) *GeminiClient {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("x-goog-api-key", opts.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(0) // one call per upload, failures go straight back to the caller

	return &GeminiClient{
		http:  httpClient,
		model: opts.Model,
	}
}

func (g *GeminiClient) Model() string {
	return g.model
}

// GenerateJSON sends the prompt and inline image with a response schema and
// returns the concatenated text of the first candidate.
func (g *GeminiClient) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if g.model == "" {
		return "", errors.New("missing gemini model")
	}
	if req.Image.Data == "" {
		return "", errors.New("empty image payload")
	}

	payload := generateContentRequest{
		Contents: []content{
			{
				Role: "user",
				Parts: []part{
					{Text: req.Prompt},
					{InlineData: &inlineData{MIMEType: req.Image.MIMEType, Data: req.Image.Data}},
				},
			},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   req.Schema,
		},
	}

	start := time.Now()
	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/v1beta/models/" + g.model + ":generateContent")

	status := "error"
	if resp != nil && resp.StatusCode() != 0 {
		status = strconv.Itoa(resp.StatusCode())
	}
	metrics.UpstreamDuration.WithLabelValues(g.model, status).Observe(time.Since(start).Seconds())

	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	log.WithFields(log.Fields{
		"model":   g.model,
		"status":  resp.StatusCode(),
		"bytes":   len(resp.Body()),
		"elapsed": time.Since(start).String(),
	}).Debug("gemini response received")

	if resp.StatusCode() != 200 {
		return "", parseAPIError(resp.StatusCode(), resp.Body())
	}

	var out generateContentResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, out.PromptFeedback.BlockReason)
	}

	if len(out.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	if strings.TrimSpace(text.String()) == "" {
		if reason := out.Candidates[0].FinishReason; reason != "" {
			return "", fmt.Errorf("%w (finish reason %s)", ErrEmptyResponse, reason)
		}
		return "", ErrEmptyResponse
	}

	return text.String(), nil
}

func parseAPIError(code int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: code}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		apiErr.Status = env.Error.Status
		apiErr.Message = env.Error.Message
		return apiErr
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	apiErr.Message = msg
	return apiErr
}
