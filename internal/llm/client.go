package llm

import (
	"context"
	"encoding/base64"
)

// Client sends one multimodal prompt to a generative model and returns the
// model's raw text, which is expected to be JSON conforming to Request.Schema.
type Client interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

type Request struct {
	Prompt string
	Image  InlineImage
	Schema *Schema
}

// InlineImage is an image sent in the request body rather than by reference.
// Data holds the standard base64 encoding of the image bytes.
type InlineImage struct {
	MIMEType string
	Data     string
}

func NewInlineImage(mimeType string, raw []byte) InlineImage {
	return InlineImage{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(raw),
	}
}
