package mcp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hyperengineering/roster"
	"github.com/hyperengineering/roster/mcp"
)

func createSchema(t *testing.T) []mcp.Field {
	t.Helper()
	tool, ok := mcp.DefaultCatalog().Lookup("create_person")
	if !ok {
		t.Fatal("create_person not in catalog")
	}
	return tool.Schema
}

func listSchema(t *testing.T) []mcp.Field {
	t.Helper()
	tool, ok := mcp.DefaultCatalog().Lookup("list_people")
	if !ok {
		t.Fatal("list_people not in catalog")
	}
	return tool.Schema
}

func TestValidateArgs_Create(t *testing.T) {
	valid := map[string]any{
		"name":        "Jane Smith",
		"email":       "jane@example.com",
		"phoneNumber": "0423456789",
	}

	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{"valid", func(m map[string]any) {}, ""},
		{"missing name", func(m map[string]any) { delete(m, "name") }, "name"},
		{"empty name", func(m map[string]any) { m["name"] = "" }, "name"},
		{"nil name", func(m map[string]any) { m["name"] = nil }, "name"},
		{"non-string name", func(m map[string]any) { m["name"] = 42.0 }, "name"},
		{"missing email", func(m map[string]any) { delete(m, "email") }, "email"},
		{"malformed email", func(m map[string]any) { m["email"] = "nope" }, "email"},
		{"missing phone", func(m map[string]any) { delete(m, "phoneNumber") }, "phoneNumber"},
		{"short phone", func(m map[string]any) { m["phoneNumber"] = "12345" }, "phoneNumber"},
		{"wrong prefix phone", func(m map[string]any) { m["phoneNumber"] = "0512345678" }, "phoneNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make(map[string]any, len(valid))
			for k, v := range valid {
				args[k] = v
			}
			tt.mutate(args)

			validated, err := mcp.ValidateArgs(createSchema(t), args)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateArgs() returned error: %v", err)
				}
				if validated["name"] != "Jane Smith" {
					t.Errorf("validated[name] = %v, want Jane Smith", validated["name"])
				}
				return
			}

			var argErr *mcp.ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("ValidateArgs() error = %v, want *ArgumentError", err)
			}
			if argErr.Field != tt.wantField {
				t.Errorf("ArgumentError.Field = %q, want %q", argErr.Field, tt.wantField)
			}
			if !strings.Contains(argErr.Error(), tt.wantField) {
				t.Errorf("Error() = %q, want it to name field %q", argErr.Error(), tt.wantField)
			}
		})
	}
}

func TestValidateArgs_UnknownFieldsIgnored(t *testing.T) {
	validated, err := mcp.ValidateArgs(listSchema(t), map[string]any{
		"query":        "smith",
		"unknownField": "surprise",
		"anotherOne":   123,
	})
	if err != nil {
		t.Fatalf("ValidateArgs() returned error: %v", err)
	}

	if _, ok := validated["unknownField"]; ok {
		t.Error("validated args include unknown field")
	}
	if validated["query"] != "smith" {
		t.Errorf("validated[query] = %v, want smith", validated["query"])
	}
}

func TestValidateArgs_Limit(t *testing.T) {
	tests := []struct {
		name    string
		limit   any
		want    int
		wantErr bool
	}{
		{"lower bound", float64(1), 1, false},
		{"upper bound", float64(roster.MaxLimit), roster.MaxLimit, false},
		{"mid-range", float64(25), 25, false},
		{"zero", float64(0), 0, true},
		{"above max", float64(101), 0, true},
		{"negative", float64(-5), 0, true},
		{"fractional", 2.5, 0, true},
		{"non-number", "ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := mcp.ValidateArgs(listSchema(t), map[string]any{"limit": tt.limit})
			if tt.wantErr {
				var argErr *mcp.ArgumentError
				if !errors.As(err, &argErr) {
					t.Fatalf("ValidateArgs() error = %v, want *ArgumentError", err)
				}
				if argErr.Field != "limit" {
					t.Errorf("ArgumentError.Field = %q, want limit", argErr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateArgs() returned error: %v", err)
			}
			if validated["limit"] != tt.want {
				t.Errorf("validated[limit] = %v, want %d", validated["limit"], tt.want)
			}
		})
	}
}

func TestValidateArgs_AbsentOptional(t *testing.T) {
	validated, err := mcp.ValidateArgs(listSchema(t), map[string]any{})
	if err != nil {
		t.Fatalf("ValidateArgs() returned error: %v", err)
	}
	if _, ok := validated["query"]; ok {
		t.Error("absent optional field appeared in validated args")
	}
	if _, ok := validated["limit"]; ok {
		t.Error("absent limit appeared in validated args; default belongs to the store layer")
	}

	// Empty optional strings are treated as absent
	validated, err = mcp.ValidateArgs(listSchema(t), map[string]any{"query": ""})
	if err != nil {
		t.Fatalf("ValidateArgs() returned error: %v", err)
	}
	if _, ok := validated["query"]; ok {
		t.Error("empty optional string appeared in validated args")
	}
}
