package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/hyperengineering/roster"
)

// Envelope is the uniform tool result payload. Every dispatch produces
// exactly one envelope, serialized as JSON inside a single text content
// block, regardless of transport or outcome.
type Envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Count   *int           `json:"count,omitempty"`
	Person  *roster.Person `json:"person,omitempty"`

	// People is a pointer so list envelopes always carry the key, even
	// for an empty result ("people": []), while other envelopes omit it.
	People *[]roster.Person `json:"people,omitempty"`

	Error string `json:"error,omitempty"`
}

// JSON serializes the envelope for the wire.
func (e Envelope) JSON() string {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		// Envelope contains only marshalable fields; this is unreachable
		// short of memory corruption, but never panic on the wire path.
		return fmt.Sprintf(`{"success":false,"error":%q}`, err.Error())
	}
	return string(b)
}

func errorEnvelope(msg string) Envelope {
	return Envelope{Error: msg}
}

func personEnvelope(message string, p *roster.Person) Envelope {
	return Envelope{Success: true, Message: message, Person: p}
}

func listEnvelope(people []roster.Person) Envelope {
	count := len(people)
	return Envelope{Success: true, Count: &count, People: &people}
}

func messageEnvelope(message string) Envelope {
	return Envelope{Success: true, Message: message}
}
