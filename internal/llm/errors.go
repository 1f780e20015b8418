package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation matches any *ContractError.
	ErrContractViolation = errors.New("upstream contract violation")
	ErrEmptyResponse     = errors.New("empty model response")
	ErrBlocked           = errors.New("prompt blocked by model")
	ErrCircuitOpen       = errors.New("model circuit open")
)

// ContractError reports model output that is not valid JSON or does not
// match the schema the model was asked to follow.
type ContractError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ContractError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrContractViolation, e.Reason)
	}
	return fmt.Sprintf("%s at %s: %s", ErrContractViolation, e.Path, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func (e *ContractError) Is(target error) bool {
	return target == ErrContractViolation
}

func violation(path, format string, args ...any) *ContractError {
	return &ContractError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// APIError is a non-200 answer from the model provider.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini api error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini api error %d: %s", e.StatusCode, e.Message)
}
