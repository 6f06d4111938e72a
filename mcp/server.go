package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hyperengineering/roster"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with Roster people tools.
type Server struct {
	client    *roster.Client
	catalog   *Catalog
	mcpServer *server.MCPServer
	timeout   time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithCallTimeout bounds each dispatch. When the store does not answer in
// time the caller receives a timeout envelope and the operation's context
// is cancelled; nothing keeps running after the response is written.
// Used by the HTTP transport; the stdio transport runs unbounded.
func WithCallTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// NewServer creates a new MCP server with the people tools registered.
func NewServer(client *roster.Client, opts ...Option) *Server {
	s := &Server{
		client:  client,
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = server.NewMCPServer(
		"roster",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Run starts the MCP server over stdio. It returns when stdin closes or
// the process receives an interrupt signal.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

// HandleMessage processes a raw JSON-RPC message and returns a response.
// This is primarily for testing the MCP protocol layer.
func (s *Server) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	return s.mcpServer.HandleMessage(ctx, message)
}

// Catalog returns the tool catalog served by this server.
func (s *Server) Catalog() *Catalog {
	return s.catalog
}

func (s *Server) registerTools() {
	for _, t := range s.catalog.List() {
		s.mcpServer.AddTool(mcpTool(t), s.toolHandler(t.Name))
	}
}

// mcpTool converts a catalog entry to the wire tool definition.
func mcpTool(t Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	for _, f := range t.Schema {
		props := []mcp.PropertyOption{mcp.Description(f.Description)}
		if f.Required {
			props = append(props, mcp.Required())
		}

		switch f.Type {
		case TypeInteger:
			if f.Max > 0 {
				props = append(props, mcp.Min(float64(f.Min)), mcp.Max(float64(f.Max)))
			}
			opts = append(opts, mcp.WithNumber(f.Name, props...))
		default:
			if f.Pattern != "" {
				props = append(props, mcp.Pattern(f.Pattern))
			}
			opts = append(opts, mcp.WithString(f.Name, props...))
		}
	}

	return mcp.NewTool(t.Name, opts...)
}

func (s *Server) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env := s.Dispatch(ctx, name, req.GetArguments())
		return toMCPResult(env), nil
	}
}

// toMCPResult wraps an envelope in the protocol's content-block framing.
func toMCPResult(env Envelope) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: env.JSON(),
			},
		},
	}
	if !env.Success {
		result.IsError = true
	}
	return result
}

// Dispatch executes a tool by name with the given raw arguments.
// It never returns an error: unknown tools, invalid arguments, missing
// records, email conflicts, store failures, and timeouts are all
// reported inside the envelope.
func (s *Server) Dispatch(ctx context.Context, name string, args map[string]any) Envelope {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	tool, ok := s.catalog.Lookup(name)
	if !ok {
		return errorEnvelope("Unknown tool: " + name)
	}

	validated, err := ValidateArgs(tool.Schema, args)
	if err != nil {
		return errorEnvelope(err.Error())
	}

	switch name {
	case ToolListPeople:
		return s.listPeople(ctx, validated)
	case ToolGetPerson:
		return s.getPerson(ctx, validated)
	case ToolCreatePerson:
		return s.createPerson(ctx, validated)
	case ToolUpdatePerson:
		return s.updatePerson(ctx, validated)
	case ToolDeletePerson:
		return s.deletePerson(ctx, validated)
	default:
		// Catalog and switch are defined together; a mismatch is a bug.
		return errorEnvelope("Unknown tool: " + name)
	}
}

func (s *Server) listPeople(ctx context.Context, args map[string]any) Envelope {
	people, err := s.client.List(ctx, roster.ListParams{
		Query: stringArg(args, "query"),
		Limit: intArg(args, "limit"),
	})
	if err != nil {
		return errorEnvelope(envelopeMessage(err))
	}
	return listEnvelope(people)
}

func (s *Server) getPerson(ctx context.Context, args map[string]any) Envelope {
	person, err := s.client.Get(ctx, stringArg(args, "id"))
	if err != nil {
		return errorEnvelope(envelopeMessage(err))
	}
	return Envelope{Success: true, Person: person}
}

func (s *Server) createPerson(ctx context.Context, args map[string]any) Envelope {
	person, err := s.client.Create(ctx, roster.CreateParams{
		Name:        stringArg(args, "name"),
		Email:       stringArg(args, "email"),
		PhoneNumber: stringArg(args, "phoneNumber"),
	})
	if err != nil {
		return errorEnvelope(envelopeMessage(err))
	}
	return personEnvelope("Person created successfully", person)
}

func (s *Server) updatePerson(ctx context.Context, args map[string]any) Envelope {
	patch := roster.UpdateParams{
		Name:        stringArg(args, "name"),
		Email:       stringArg(args, "email"),
		PhoneNumber: stringArg(args, "phoneNumber"),
	}

	// Cross-field rule: per-field validation can succeed while the patch
	// carries nothing to apply. The dispatcher owns this check.
	if patch.IsEmpty() {
		return errorEnvelope("No fields to update")
	}

	person, err := s.client.Update(ctx, stringArg(args, "id"), patch)
	if err != nil {
		return errorEnvelope(envelopeMessage(err))
	}
	return personEnvelope("Person updated successfully", person)
}

func (s *Server) deletePerson(ctx context.Context, args map[string]any) Envelope {
	if err := s.client.Delete(ctx, stringArg(args, "id")); err != nil {
		return errorEnvelope(envelopeMessage(err))
	}
	return messageEnvelope("Person deleted successfully")
}

// envelopeMessage translates client errors into caller-facing messages.
func envelopeMessage(err error) string {
	var conflict *roster.ConflictError
	switch {
	case errors.Is(err, roster.ErrNotFound):
		return "Person not found"
	case errors.Is(err, roster.ErrNoFields):
		return "No fields to update"
	case errors.As(err, &conflict):
		return conflict.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "Operation timed out"
	default:
		return err.Error()
	}
}
