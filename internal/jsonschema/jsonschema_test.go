package jsonschema

import (
	"testing"
)

type searchInput struct {
	Query   string   `json:"query" jsonschema:"description=The search query,required"`
	Limit   int      `json:"limit,omitempty" jsonschema:"description=Maximum results,minimum=1,maximum=100"`
	Mode    string   `json:"mode,omitempty" jsonschema:"enum=fast,enum=deep"`
	Filters []string `json:"filters,omitempty"`
	Debug   *bool    `json:"debug,omitempty"`

	hidden string `json:"hidden"` //nolint:unused
	Skip   string `json:"-"`
}

func TestGenerateJSONSchema_StructFields(t *testing.T) {
	schema := GenerateJSONSchema[searchInput]()

	if schema.Type != "object" {
		t.Fatalf("expected object schema, got %q", schema.Type)
	}

	query, ok := schema.Properties["query"]
	if !ok {
		t.Fatal("expected query property")
	}
	if query.Type != "string" {
		t.Errorf("expected string type for query, got %q", query.Type)
	}
	if query.Description != "The search query" {
		t.Errorf("unexpected description: %q", query.Description)
	}

	limit := schema.Properties["limit"]
	if limit.Type != "integer" {
		t.Errorf("expected integer type for limit, got %q", limit.Type)
	}
	if limit.Minimum == nil || *limit.Minimum != 1 {
		t.Errorf("expected minimum=1, got %v", limit.Minimum)
	}
	if limit.Maximum == nil || *limit.Maximum != 100 {
		t.Errorf("expected maximum=100, got %v", limit.Maximum)
	}

	filters := schema.Properties["filters"]
	if filters.Type != "array" || filters.Items == nil || filters.Items.Type != "string" {
		t.Errorf("unexpected filters schema: %+v", filters)
	}
}

func TestGenerateJSONSchema_EnumValues(t *testing.T) {
	schema := GenerateJSONSchema[searchInput]()
	mode := schema.Properties["mode"]

	if len(mode.Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(mode.Enum))
	}
	if mode.Enum[0] != "fast" || mode.Enum[1] != "deep" {
		t.Errorf("unexpected enum values: %v", mode.Enum)
	}
}

func TestGenerateJSONSchema_RequiredHandling(t *testing.T) {
	schema := GenerateJSONSchema[searchInput]()

	want := map[string]bool{"query": true}
	for _, name := range schema.Required {
		if !want[name] {
			t.Errorf("field %q should not be required", name)
		}
		delete(want, name)
	}
	for name := range want {
		t.Errorf("expected field %q to be required", name)
	}
}

func TestGenerateJSONSchema_UnexportedAndSkippedFieldsOmitted(t *testing.T) {
	schema := GenerateJSONSchema[searchInput]()

	if _, ok := schema.Properties["hidden"]; ok {
		t.Error("unexported field must not appear in schema")
	}
	if _, ok := schema.Properties["Skip"]; ok {
		t.Error("json:\"-\" field must not appear in schema")
	}
}

func TestGenerateJSONSchema_Primitives(t *testing.T) {
	if got := GenerateJSONSchema[string]().Type; got != "string" {
		t.Errorf("expected string, got %q", got)
	}
	if got := GenerateJSONSchema[float64]().Type; got != "number" {
		t.Errorf("expected number, got %q", got)
	}
	if got := GenerateJSONSchema[bool]().Type; got != "boolean" {
		t.Errorf("expected boolean, got %q", got)
	}
}
