// Package mcp exposes the Roster people directory as MCP (Model Context
// Protocol) tools. One transport-agnostic dispatcher backs two transports:
// a stdio server for desktop agents and a streamable HTTP server for
// remote callers. Both produce identical response envelopes.
package mcp

import (
	"github.com/hyperengineering/roster"
)

// Tool names in the catalog.
const (
	ToolListPeople   = "list_people"
	ToolGetPerson    = "get_person"
	ToolCreatePerson = "create_person"
	ToolUpdatePerson = "update_person"
	ToolDeletePerson = "delete_person"
)

// FieldType is the semantic type of a tool parameter.
type FieldType string

// Supported parameter types.
const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
)

// Formats understood by the argument validator.
const FormatEmail = "email"

// Field declares one tool parameter and its constraints.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Required    bool

	// Format names a well-known shape check (FormatEmail). Strings only.
	Format string

	// Pattern is a regular expression the value must match. Strings only.
	Pattern string

	// Min and Max bound integer values. Only enforced when Max > 0.
	Min int
	Max int
}

// Tool is an immutable catalog entry: a named operation with a
// human-readable description and a parameter schema.
type Tool struct {
	Name        string
	Description string
	Schema      []Field
}

// Catalog is the static registry of tools, enumerable in declaration order.
type Catalog struct {
	tools  []Tool
	byName map[string]Tool
}

// NewCatalog builds a catalog from the given tools.
func NewCatalog(tools ...Tool) *Catalog {
	c := &Catalog{
		tools:  tools,
		byName: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		c.byName[t.Name] = t
	}
	return c
}

// List returns all tools in declaration order.
func (c *Catalog) List() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Lookup returns the tool with the given name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// DefaultCatalog returns the five person-directory tools.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Tool{
			Name:        ToolListPeople,
			Description: "List all people in the database or search by name",
			Schema: []Field{
				{Name: "query", Type: TypeString, Description: "Optional search query to filter by name"},
				{Name: "limit", Type: TypeInteger, Description: "Maximum number of results (default: 50)", Min: 1, Max: roster.MaxLimit},
			},
		},
		Tool{
			Name:        ToolGetPerson,
			Description: "Get details of a specific person by their ID",
			Schema: []Field{
				{Name: "id", Type: TypeString, Description: "The unique ID of the person to retrieve", Required: true},
			},
		},
		Tool{
			Name:        ToolCreatePerson,
			Description: "Create a new person in the database",
			Schema: []Field{
				{Name: "name", Type: TypeString, Description: "Full name of the person", Required: true},
				{Name: "email", Type: TypeString, Description: "Email address", Required: true, Format: FormatEmail},
				{Name: "phoneNumber", Type: TypeString, Description: "Australian mobile number (format: 04XXXXXXXX)", Required: true, Pattern: roster.PhonePattern},
			},
		},
		Tool{
			Name:        ToolUpdatePerson,
			Description: "Update an existing person's information",
			Schema: []Field{
				{Name: "id", Type: TypeString, Description: "The unique ID of the person to update", Required: true},
				{Name: "name", Type: TypeString, Description: "New name (optional)"},
				{Name: "email", Type: TypeString, Description: "New email (optional)", Format: FormatEmail},
				{Name: "phoneNumber", Type: TypeString, Description: "New phone number (optional)", Pattern: roster.PhonePattern},
			},
		},
		Tool{
			Name:        ToolDeletePerson,
			Description: "Delete a person from the database",
			Schema: []Field{
				{Name: "id", Type: TypeString, Description: "The unique ID of the person to delete", Required: true},
			},
		},
	)
}
