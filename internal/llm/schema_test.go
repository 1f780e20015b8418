package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dishSchema = &Schema{
	Type: TypeArray,
	Items: &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name":  {Type: TypeString},
			"kind":  {Type: TypeString, Enum: []string{"hot", "cold"}},
			"price": {Type: TypeNumber},
			"qty":   {Type: TypeInteger},
			"spicy": {Type: TypeBoolean},
			"note":  {Type: TypeString, Nullable: true},
		},
		Required: []string{"name", "kind", "price"},
	},
}

func decodeAny(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"valid", `[{"name":"Soup","kind":"hot","price":120,"qty":2,"spicy":false,"note":null}]`, ""},
		{"empty array", `[]`, ""},
		{"root not array", `{"name":"Soup"}`, "$"},
		{"missing required", `[{"name":"Soup","kind":"hot"}]`, "$[0]"},
		{"wrong type", `[{"name":"Soup","kind":"hot","price":"120"}]`, "$[0].price"},
		{"enum violation", `[{"name":"Soup","kind":"warm","price":1}]`, "$[0].kind"},
		{"null required", `[{"name":null,"kind":"hot","price":1}]`, "$[0].name"},
		{"fractional integer", `[{"name":"Soup","kind":"hot","price":1,"qty":1.5}]`, "$[0].qty"},
		{"bad boolean", `[{"name":"Soup","kind":"hot","price":1,"spicy":"yes"}]`, "$[0].spicy"},
		{"second item", `[{"name":"A","kind":"hot","price":1},{"name":"B","kind":"hot"}]`, "$[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dishSchema.Validate(decodeAny(t, tt.input))
			if tt.wantPath == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrContractViolation)

			var cerr *ContractError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantPath, cerr.Path)
		})
	}
}

func TestSchema_MarshalShape(t *testing.T) {
	raw, err := json.Marshal(&Schema{
		Type:     TypeObject,
		Required: []string{"a"},
		Properties: map[string]*Schema{
			"a": {Type: TypeString, Description: "field a", Enum: []string{"x"}},
		},
	})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"type":"OBJECT","required":["a"],"properties":{"a":{"type":"STRING","description":"field a","enum":["x"]}}}`,
		string(raw),
	)
}
