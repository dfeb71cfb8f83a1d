package logging

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogRequestRedactsToken(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogRequest("10.0.0.2", "get", []byte(`{"key":"tok123","system":{"app_version":true}}`))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	body, ok := entries[0].ContextMap()["body"].(string)
	if !ok {
		t.Fatal("body field missing")
	}
	if body != `{"key":"***","system":{"app_version":true}}` {
		t.Errorf("body = %s, token was not redacted", body)
	}
}

func TestAsciiDump(t *testing.T) {
	if got := asciiDump([]byte("ok\x00\n")); got != "ok.." {
		t.Errorf("asciiDump() = %q, want %q", got, "ok..")
	}
	if got := asciiDump(nil); got != "" {
		t.Errorf("asciiDump(nil) = %q, want empty", got)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Debug("from session goroutine")
		}()
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop())
		}()
	}
	wg.Wait()

	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(nil)
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
