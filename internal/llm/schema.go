package llm

import (
	"fmt"
	"math"
	"slices"
)

type Type string

// Type names follow the OpenAPI subset accepted by Gemini's responseSchema.
const (
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeInteger Type = "INTEGER"
	TypeBoolean Type = "BOOLEAN"
	TypeArray   Type = "ARRAY"
	TypeObject  Type = "OBJECT"
)

// Schema describes the JSON shape a model response must have. It is sent to
// the model as-is and reused to validate what comes back.
type Schema struct {
	Type             Type               `json:"type"`
	Description      string             `json:"description,omitempty"`
	Enum             []string           `json:"enum,omitempty"`
	Nullable         bool               `json:"nullable,omitempty"`
	Items            *Schema            `json:"items,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

// Validate checks a value produced by encoding/json decoding into `any`
// against the schema. The first mismatch is returned as a *ContractError.
func (s *Schema) Validate(v any) error {
	return s.validate("$", v)
}

func (s *Schema) validate(path string, v any) error {
	if v == nil {
		if s.Nullable {
			return nil
		}
		return violation(path, "expected %s, got null", s.kind())
	}

	switch s.Type {
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return violation(path, "expected array, got %s", kindOf(v))
		}
		if s.Items == nil {
			return nil
		}
		for i, el := range arr {
			if err := s.Items.validate(fmt.Sprintf("%s[%d]", path, i), el); err != nil {
				return err
			}
		}

	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return violation(path, "expected object, got %s", kindOf(v))
		}
		for _, name := range s.Required {
			if _, ok := obj[name]; !ok {
				return violation(path, "missing required field %q", name)
			}
		}
		for _, name := range s.propertyNames() {
			prop := s.Properties[name]
			val, ok := obj[name]
			if !ok || prop == nil {
				continue
			}
			if err := prop.validate(path+"."+name, val); err != nil {
				return err
			}
		}

	case TypeString:
		str, ok := v.(string)
		if !ok {
			return violation(path, "expected string, got %s", kindOf(v))
		}
		if len(s.Enum) > 0 && !slices.Contains(s.Enum, str) {
			return violation(path, "value %q not in %v", str, s.Enum)
		}

	case TypeNumber:
		if _, ok := v.(float64); !ok {
			return violation(path, "expected number, got %s", kindOf(v))
		}

	case TypeInteger:
		n, ok := v.(float64)
		if !ok {
			return violation(path, "expected integer, got %s", kindOf(v))
		}
		if n != math.Trunc(n) {
			return violation(path, "expected integer, got %v", n)
		}

	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return violation(path, "expected boolean, got %s", kindOf(v))
		}

	default:
		return fmt.Errorf("schema at %s: unknown type %q", path, s.Type)
	}

	return nil
}

// propertyNames returns property names in a stable order so the reported
// violation does not depend on map iteration.
func (s *Schema) propertyNames() []string {
	if len(s.PropertyOrdering) > 0 {
		return s.PropertyOrdering
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Schema) kind() string {
	switch s.Type {
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	}
	return string(s.Type)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
