package camera

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const testToken = "tok123"

// rawBody makes the fake camera write the string as-is instead of JSON.
type rawBody string

type recordedRequest struct {
	Func string
	Body map[string]any
}

// fakeCamera is an httptest server speaking the web.fcgi protocol.
type fakeCamera struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	respond  func(fn string, body map[string]any) any
}

func newFakeCamera(t *testing.T, respond func(fn string, body map[string]any) any) *fakeCamera {
	t.Helper()

	fc := &fakeCamera{respond: respond}
	fc.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Request method = %s, want POST", r.Method)
		}
		if r.URL.Path != EndpointPath {
			t.Errorf("Request path = %s, want %s", r.URL.Path, EndpointPath)
		}

		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := json.Unmarshal(data, &body); err != nil {
			t.Errorf("request body is not JSON: %v (%s)", err, data)
		}

		fn := r.URL.Query().Get("func")
		fc.mu.Lock()
		fc.requests = append(fc.requests, recordedRequest{Func: fn, Body: body})
		fc.mu.Unlock()

		out := fc.respond(fn, body)
		if raw, ok := out.(rawBody); ok {
			_, _ = w.Write([]byte(raw))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(fc.server.Close)

	return fc
}

// echoCamera answers a set by echoing the body and a get with fixed state.
func echoCamera(t *testing.T, state map[string]any) *fakeCamera {
	return newFakeCamera(t, func(fn string, body map[string]any) any {
		if fn == string(FuncSet) {
			delete(body, TokenField)
			return body
		}
		return state
	})
}

func (fc *fakeCamera) host() string {
	return strings.TrimPrefix(fc.server.URL, "http://")
}

func (fc *fakeCamera) recorded() []recordedRequest {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := make([]recordedRequest, len(fc.requests))
	copy(out, fc.requests)
	return out
}

func (fc *fakeCamera) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := fc.recorded()
	if len(reqs) == 0 {
		t.Fatal("no request reached the camera")
	}
	return reqs[len(reqs)-1]
}

func validLogin(token string) TokenRequester {
	return TokenRequesterFunc(func(ctx context.Context, host, username, password string) (LoginResult, error) {
		return LoginResult{Valid: true, Login: token}, nil
	})
}

// readySession returns a logged-in session talking to host.
func readySession(t *testing.T, host string, opts ...Option) *Session {
	t.Helper()

	opts = append([]Option{
		WithTokenRequester(validLogin(testToken)),
		WithTransport(NewTransport(host, 2*time.Second)),
	}, opts...)
	s := NewSession(host, "admin", "secret", opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.WhenReady(ctx); err != nil {
		t.Fatalf("WhenReady() error = %v", err)
	}
	return s
}

// collectErrors registers a handler that records every reported error.
type collectErrors struct {
	mu   sync.Mutex
	errs []error
}

func (c *collectErrors) handle(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

func (c *collectErrors) all() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]error, len(c.errs))
	copy(out, c.errs)
	return out
}
