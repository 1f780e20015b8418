package menu

import (
	"context"
	"fmt"

	"menuparser/internal/llm"
)

type Service struct {
	client llm.Client
	prompt string
	schema *llm.Schema
}

func NewService(client llm.Client) *Service {
	return &Service{
		client: client,
		prompt: llm.BuildMenuPrompt(),
		schema: ItemSchema(),
	}
}

// --------------------------------------------------
// Extract menu items from one photo
// --------------------------------------------------
func (s *Service) Extract(ctx context.Context, upload Upload) ([]Item, error) {
	if len(upload.Data) == 0 {
		return nil, ErrEmptyFile
	}

	mimeType := ResolveMIME(upload.MIMEType, upload.Data)
	if !IsAllowedImage(mimeType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, mimeType)
	}

	text, err := s.client.GenerateJSON(ctx, llm.Request{
		Prompt: s.prompt,
		Image:  llm.NewInlineImage(mimeType, upload.Data),
		Schema: s.schema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	var base []BaseItem
	if err := llm.Decode(text, s.schema, &base); err != nil {
		return nil, err
	}

	return Enrich(base), nil
}
