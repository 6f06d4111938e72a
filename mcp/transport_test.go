package mcp_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// postJSONRPC sends a raw JSON-RPC message to the streamable HTTP endpoint
// and returns the decoded response body. The endpoint may answer with plain
// JSON or with an SSE frame depending on negotiation, so both are handled.
func postJSONRPC(t *testing.T, url string, message string) map[string]any {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s: status %d", url, resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response body: %v", err)
	}

	payload := buf.Bytes()
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream") {
		payload = sseData(t, payload)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("response body is not JSON: %v\n%s", err, payload)
	}
	return decoded
}

// sseData extracts the JSON payload from the first data: line of an SSE body.
func sseData(t *testing.T, body []byte) []byte {
	t.Helper()

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		if rest, ok := strings.CutPrefix(line, "data: "); ok {
			return []byte(rest)
		}
	}
	t.Fatalf("no data frame in SSE body:\n%s", body)
	return nil
}

// envelopeText pulls the serialized envelope out of a tools/call response.
func envelopeText(t *testing.T, response map[string]any) (text string, isError bool) {
	t.Helper()

	result, ok := response["result"].(map[string]any)
	if !ok {
		t.Fatalf("response missing result: %v", response)
	}
	isError, _ = result["isError"].(bool)
	content, ok := result["content"].([]any)
	if !ok || len(content) != 1 {
		t.Fatalf("content = %v, want one block", result["content"])
	}
	block, ok := content[0].(map[string]any)
	if !ok || block["type"] != "text" {
		t.Fatalf("content block = %v, want text block", content[0])
	}
	text, _ = block["text"].(string)
	return text, isError
}

func callRequest(id int, tool string, args string) string {
	return fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":"tools/call","params":{"name":%q,"arguments":%s}}`, id, tool, args)
}

// Both transports front the same dispatcher, so the same call must produce
// byte-identical envelope text whether it arrives over stdio framing or HTTP.
func TestTransportEquivalence(t *testing.T) {
	server := newTestServer(t)
	createPerson(t, server, "Jane Smith", "jane@example.com", "0423456789")

	ts := httptest.NewServer(server.HTTPHandler())
	defer ts.Close()

	calls := []struct {
		name string
		tool string
		args string
	}{
		{"list", "list_people", `{}`},
		{"search", "list_people", `{"query":"jane"}`},
		{"not found", "get_person", `{"id":"nonexistent"}`},
		{"validation error", "create_person", `{"name":"X","email":"x@x.com","phoneNumber":"12345"}`},
	}

	for i, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			message := callRequest(100+i, c.tool, c.args)

			stdioResp := toMap(t, server.HandleMessage(context.Background(), []byte(message)))
			httpResp := postJSONRPC(t, ts.URL, message)

			stdioText, stdioErr := envelopeText(t, stdioResp)
			httpText, httpErr := envelopeText(t, httpResp)

			if stdioText != httpText {
				t.Errorf("envelope text differs across transports:\nstdio: %s\nhttp:  %s", stdioText, httpText)
			}
			if stdioErr != httpErr {
				t.Errorf("isError differs across transports: stdio=%v http=%v", stdioErr, httpErr)
			}
		})
	}
}

func TestHTTPToolsList(t *testing.T) {
	server := newTestServer(t)

	ts := httptest.NewServer(server.HTTPHandler())
	defer ts.Close()

	resp := postJSONRPC(t, ts.URL, `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)

	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("tools/list response missing result: %v", resp)
	}
	tools, ok := result["tools"].([]any)
	if !ok {
		t.Fatal("tools/list result missing tools array")
	}
	if len(tools) != 5 {
		t.Errorf("tools/list over HTTP returned %d tools, want 5", len(tools))
	}
}

// An unregistered tool name is rejected at the protocol layer before any
// handler runs. Both transports must reject it the same way.
func TestUnknownToolOverWire(t *testing.T) {
	server := newTestServer(t)

	ts := httptest.NewServer(server.HTTPHandler())
	defer ts.Close()

	message := callRequest(1, "not_a_tool", `{}`)

	stdioResp := toMap(t, server.HandleMessage(context.Background(), []byte(message)))
	httpResp := postJSONRPC(t, ts.URL, message)

	stdioErr, ok := stdioResp["error"].(map[string]any)
	if !ok {
		t.Fatalf("stdio response has no error for unknown tool: %v", stdioResp)
	}
	httpErr, ok := httpResp["error"].(map[string]any)
	if !ok {
		t.Fatalf("http response has no error for unknown tool: %v", httpResp)
	}
	if stdioErr["code"] != httpErr["code"] {
		t.Errorf("error code differs across transports: stdio=%v http=%v", stdioErr["code"], httpErr["code"])
	}
}
