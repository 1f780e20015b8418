package menu

import (
	"errors"

	"menuparser/internal/llm"
)

var (
	ErrEmptyFile         = errors.New("uploaded file is empty")
	ErrUnsupportedType   = errors.New("unsupported file type")
	ErrUpstream          = errors.New("menu extraction failed")
	ErrContractViolation = llm.ErrContractViolation
)
