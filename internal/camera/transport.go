package camera

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aidapov/povctl/internal/logging"
	"github.com/aidapov/povctl/internal/version"
)

const (
	// EndpointPath is the single command endpoint of the camera web interface
	EndpointPath = "/cgi-bin/web.fcgi"

	// TokenField is the request field carrying the session token
	TokenField = "key"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Func is the operation tag sent as the func query parameter.
type Func string

const (
	FuncGet   Func = "get"
	FuncSet   Func = "set"
	FuncLogin Func = "login"
)

// Response is a decoded JSON response. Its shape mirrors the request:
// top-level keys are subsystems such as "system", "image" and "venc".
type Response map[string]any

// Object returns the nested object at path, or nil when any step is missing
// or not an object.
func (r Response) Object(path ...string) map[string]any {
	current := map[string]any(r)
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Lookup returns the value at path and whether it was present.
func (r Response) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent := r.Object(path[:len(path)-1]...)
	if parent == nil {
		return nil, false
	}
	v, ok := parent[path[len(path)-1]]
	return v, ok
}

// Transport performs single POST exchanges with one camera. It never retries.
type Transport struct {
	host string
	http *resty.Client
}

// NewTransport creates a transport for host ("10.0.0.2" or "10.0.0.2:8080").
func NewTransport(host string, timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	r := resty.New()
	r.SetBaseURL("http://" + host)
	r.SetTimeout(timeout)
	r.SetRetryCount(0)
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	r.SetHeader("User-Agent", version.UserAgent())

	return &Transport{
		host: host,
		http: r,
	}
}

// Host returns the camera host this transport talks to.
func (t *Transport) Host() string {
	return t.host
}

// Endpoint returns the full URL for an operation tag.
func (t *Transport) Endpoint(fn Func) string {
	return fmt.Sprintf("http://%s%s?func=%s", t.host, EndpointPath, fn)
}

// Post sends body merged with the token under TokenField. An empty token is
// omitted from the payload entirely.
func (t *Transport) Post(ctx context.Context, fn Func, token string, body map[string]any) (Response, error) {
	payload := make(map[string]any, len(body)+1)
	if token != "" {
		payload[TokenField] = token
	}
	for k, v := range body {
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, NewParseError("failed to encode request body", err)
	}

	logging.LogRequest(t.host, string(fn), data)

	resp, err := t.http.R().
		SetContext(ctx).
		SetQueryParam("func", string(fn)).
		SetBody(data).
		Post(EndpointPath)
	if err != nil {
		devErr := NewNetworkError(fmt.Sprintf("%s request failed", fn), err)
		devErr.DeviceIP = t.host
		return nil, devErr
	}

	raw := resp.Body()
	logging.LogResponse(t.host, string(fn), resp.StatusCode(), raw)

	parsed, err := ParseResponse(raw)
	if err != nil {
		if resp.IsError() {
			devErr := NewHTTPError(resp.StatusCode(), fmt.Sprintf("%s request failed with status %d", fn, resp.StatusCode()))
			devErr.DeviceIP = t.host
			return nil, devErr
		}
		return nil, err
	}

	return parsed, nil
}

// ParseResponse decodes a response body into a Response. A literal null is an
// empty response; anything that is not a JSON object is a parse error.
func ParseResponse(data []byte) (Response, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return Response{}, nil
	}

	object, err := extractJSONObject(trimmed)
	if err != nil {
		return nil, NewParseError("response is not a JSON object", err)
	}

	var parsed Response
	if err := json.Unmarshal(object, &parsed); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}
	if parsed == nil {
		parsed = Response{}
	}
	return parsed, nil
}

// extractJSONObject returns the first complete JSON object in data, ignoring
// anything the web server prints before or after it. A body that is a JSON
// array is rejected even when it contains objects.
func extractJSONObject(data []byte) ([]byte, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		return nil, fmt.Errorf("response is a JSON array")
	}

	start := bytes.IndexByte(data, '{')
	if start == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(data); i++ {
		b := data[i]

		if escaped {
			escaped = false
			continue
		}
		if b == '\\' {
			escaped = true
			continue
		}
		if b == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch b {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1], nil
			}
		}
	}

	return nil, fmt.Errorf("unclosed JSON object in response")
}
