package llm

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Decode parses model text as JSON, validates it against schema and then
// unmarshals it into out. Every failure is a *ContractError.
func Decode(text string, schema *Schema, out any) error {
	raw := []byte(stripFences(text))

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return &ContractError{Reason: "response is not valid JSON", Err: err}
	}

	if schema != nil {
		if err := schema.Validate(generic); err != nil {
			return err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return &ContractError{Reason: "response does not fit target type", Err: err}
	}

	return nil
}

// stripFences removes a markdown code fence some models wrap JSON in even
// when asked for application/json.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}

	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")

	return strings.TrimSpace(t)
}
