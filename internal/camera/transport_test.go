package camera

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aidapov/povctl/internal/params"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Response
		wantError bool
	}{
		{
			name:  "plain object",
			input: `{"image":{"brightness":7}}`,
			want:  Response{"image": map[string]any{"brightness": float64(7)}},
		},
		{
			name:  "null body",
			input: "null",
			want:  Response{},
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"valid\":true}\r\n",
			want:  Response{"valid": true},
		},
		{
			name:  "junk after object",
			input: `{"system":{"device_name":"cam}"}}` + "\x00\x00garbage",
			want:  Response{"system": map[string]any{"device_name": "cam}"}},
		},
		{
			name:  "escaped quote inside string",
			input: `{"a":"x\"}y"}`,
			want:  Response{"a": `x"}y`},
		},
		{
			name:      "html",
			input:     "<html>Unauthorized</html>",
			wantError: true,
		},
		{
			name:      "empty",
			input:     "",
			wantError: true,
		},
		{
			name:      "array of objects",
			input:     `[{"image":{"shutter":11}}, 5]`,
			wantError: true,
		},
		{
			name:      "array after whitespace",
			input:     "\n [{\"valid\":true}]",
			wantError: true,
		},
		{
			name:      "unclosed",
			input:     `{"image":{"brightness":7}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse([]byte(tt.input))
			if tt.wantError {
				if !IsParseError(err) {
					t.Errorf("ParseResponse() error = %v, want parse error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseResponse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResponseLookup(t *testing.T) {
	resp := Response{
		"venc": map[string]any{
			"sub": map[string]any{"rtspUrl": "rtsp://cam/sub"},
		},
		"flat": 3,
	}

	if got := resp.Object("venc", "sub"); got["rtspUrl"] != "rtsp://cam/sub" {
		t.Errorf("Object(venc, sub) = %v", got)
	}
	if got := resp.Object("venc", "main"); got != nil {
		t.Errorf("Object(venc, main) = %v, want nil", got)
	}
	if got := resp.Object("flat", "x"); got != nil {
		t.Errorf("Object(flat, x) = %v, want nil", got)
	}

	if v, ok := resp.Lookup("venc", "sub", "rtspUrl"); !ok || v != "rtsp://cam/sub" {
		t.Errorf("Lookup() = %v, %v", v, ok)
	}
	if _, ok := resp.Lookup("venc", "sub", "rtmpUrl"); ok {
		t.Error("Lookup() of missing field should report absent")
	}
	if _, ok := resp.Lookup(); ok {
		t.Error("Lookup() with empty path should report absent")
	}
}

func TestTransportEndpoint(t *testing.T) {
	tr := NewTransport("10.0.0.2", 0)

	if got, want := tr.Endpoint(FuncGet), "http://10.0.0.2/cgi-bin/web.fcgi?func=get"; got != want {
		t.Errorf("Endpoint(get) = %s, want %s", got, want)
	}
	if got, want := tr.Endpoint(FuncSet), "http://10.0.0.2/cgi-bin/web.fcgi?func=set"; got != want {
		t.Errorf("Endpoint(set) = %s, want %s", got, want)
	}
	if tr.Host() != "10.0.0.2" {
		t.Errorf("Host() = %s", tr.Host())
	}
}

func TestTransportPost_HeadersAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if r.URL.RawQuery != "func=set" {
			t.Errorf("query = %q, want func=set", r.URL.RawQuery)
		}
		w.Write([]byte(`{"image":{"gamma":2}}`))
	}))
	defer server.Close()

	tr := NewTransport(strings.TrimPrefix(server.URL, "http://"), time.Second)

	resp, err := tr.Post(context.Background(), FuncSet, "tok", map[string]any{"image": map[string]any{"gamma": 2}})
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if v, ok := resp.Lookup("image", "gamma"); !ok || v != float64(2) {
		t.Errorf("Post() response = %v", resp)
	}
}

func TestTransportPost_HTTPErrorWithoutJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	tr := NewTransport(strings.TrimPrefix(server.URL, "http://"), time.Second)

	_, err := tr.Post(context.Background(), FuncGet, "", nil)
	if !IsHTTPError(err) {
		t.Fatalf("Post() error = %v, want HTTP error", err)
	}
	devErr, _ := asDeviceError(err)
	if devErr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", devErr.StatusCode)
	}
}

func TestTransportPost_HTTPErrorWithJSONIsParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"valid":false}`))
	}))
	defer server.Close()

	tr := NewTransport(strings.TrimPrefix(server.URL, "http://"), time.Second)

	resp, err := tr.Post(context.Background(), FuncLogin, "", nil)
	if err != nil {
		t.Fatalf("Post() error = %v", err)
	}
	if resp["valid"] != false {
		t.Errorf("Post() = %v", resp)
	}
}

func TestTransportPost_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	tr := NewTransport(strings.TrimPrefix(server.URL, "http://"), 50*time.Millisecond)

	_, err := tr.Post(context.Background(), FuncGet, "", nil)
	if !IsNetworkError(err) {
		t.Errorf("Post() error = %v, want network error", err)
	}
}

func TestGetStreamURLs(t *testing.T) {
	fc := newFakeCamera(t, func(fn string, body map[string]any) any {
		venc, _ := body["venc"].(map[string]any)
		name := "main"
		if venc["sub"] == true {
			name = "sub"
		}
		return map[string]any{"venc": map[string]any{name: map[string]any{
			FieldRTSPURL:   "rtsp://cam/" + name,
			FieldRTMPURL:   "rtmp://cam/" + name,
			FieldFLVURL:    "http://cam/" + name + ".flv",
			FieldWebRTCURL: "webrtc://cam/" + name,
		}}}
	})
	s := readySession(t, fc.host())

	url, ok, err := s.GetRTSPURL(context.Background(), params.StreamSub)
	if err != nil || !ok || url != "rtsp://cam/sub" {
		t.Errorf("GetRTSPURL(sub) = %q, %v, %v", url, ok, err)
	}
	wantBody := map[string]any{"main": false, "sub": true}
	if got := fc.last(t).Body["venc"]; !reflect.DeepEqual(got, wantBody) {
		t.Errorf("venc body = %v, want %v", got, wantBody)
	}

	url, ok, err = s.GetFLVURL(context.Background(), "")
	if err != nil || !ok || url != "http://cam/main.flv" {
		t.Errorf("GetFLVURL(default) = %q, %v, %v", url, ok, err)
	}
	wantBody = map[string]any{"main": true, "sub": false}
	if got := fc.last(t).Body["venc"]; !reflect.DeepEqual(got, wantBody) {
		t.Errorf("venc body = %v, want %v", got, wantBody)
	}

	urls, err := s.GetStreamURLs(context.Background(), params.StreamMain)
	if err != nil || urls == nil {
		t.Fatalf("GetStreamURLs() = %v, %v", urls, err)
	}
	if urls.RTMP != "rtmp://cam/main" || urls.WebRTC != "webrtc://cam/main" || urls.Stream != params.StreamMain {
		t.Errorf("GetStreamURLs() = %+v", urls)
	}
}

func TestGetStreamURL_WrongStreamAbsent(t *testing.T) {
	fc := newFakeCamera(t, func(fn string, body map[string]any) any {
		return map[string]any{"venc": map[string]any{"main": map[string]any{FieldRTSPURL: "rtsp://cam/main"}}}
	})
	s := readySession(t, fc.host())

	url, ok, err := s.GetRTSPURL(context.Background(), params.StreamSub)
	if err != nil || ok || url != "" {
		t.Errorf("GetRTSPURL(sub) = %q, %v, %v, want absent", url, ok, err)
	}

	url, ok, err = s.GetWebRTCURL(context.Background(), params.StreamMain)
	if err != nil || ok || url != "" {
		t.Errorf("GetWebRTCURL(main) = %q, %v, %v, want absent", url, ok, err)
	}
}

func TestGetStreamURL_InvalidStream(t *testing.T) {
	fc := echoCamera(t, nil)
	s := readySession(t, fc.host())

	if _, _, err := s.GetRTMPURL(context.Background(), "third"); !IsValidationError(err) {
		t.Errorf("GetRTMPURL(third) error = %v, want validation error", err)
	}
	if n := len(fc.recorded()); n != 0 {
		t.Errorf("%d requests sent, want 0", n)
	}
}
