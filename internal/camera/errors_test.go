package camera

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantType    ErrorType
		wantSubtype NetworkErrorSubtype
	}{
		{
			name:        "deadline exceeded",
			err:         os.ErrDeadlineExceeded,
			wantType:    ErrTypeTimeout,
			wantSubtype: NetworkErrorTimeout,
		},
		{
			name:        "dns",
			err:         &net.DNSError{Name: "pov.local", Err: "no such host"},
			wantType:    ErrTypeDNS,
			wantSubtype: NetworkErrorDNS,
		},
		{
			name:        "connection refused",
			err:         &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			wantType:    ErrTypeConnectionRefused,
			wantSubtype: NetworkErrorConnectionRefused,
		},
		{
			name:        "host unreachable",
			err:         &net.OpError{Op: "dial", Net: "tcp", Err: syscall.EHOSTUNREACH},
			wantType:    ErrTypeNetwork,
			wantSubtype: NetworkErrorHostUnreachable,
		},
		{
			name:        "generic",
			err:         errors.New("broken pipe"),
			wantType:    ErrTypeNetwork,
			wantSubtype: NetworkErrorGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyNetworkError(tt.err, "10.0.0.2")
			if got.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", got.Type, tt.wantType)
			}
			if got.NetworkSubtype != tt.wantSubtype {
				t.Errorf("NetworkSubtype = %v, want %v", got.NetworkSubtype, tt.wantSubtype)
			}
			if got.DeviceIP != "10.0.0.2" {
				t.Errorf("DeviceIP = %s", got.DeviceIP)
			}
			if !IsNetworkError(got) {
				t.Error("IsNetworkError() = false")
			}
		})
	}

	if ClassifyNetworkError(nil, "") != nil {
		t.Error("ClassifyNetworkError(nil) should be nil")
	}
}

func TestErrorClassifiers(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name       string
		err        error
		network    bool
		auth       bool
		http       bool
		parse      bool
		validation bool
	}{
		{"network", NewNetworkError("down", cause), true, false, false, false, false},
		{"auth", NewAuthError("Invalid login credentials"), false, true, false, false, false},
		{"http", NewHTTPError(500, "boom"), false, false, true, false, false},
		{"parse", NewParseError("junk", cause), false, false, false, true, false},
		{"validation", NewValidationError("invalid shutter", cause), false, false, false, false, true},
		{"wrapped auth", fmt.Errorf("login: %w", NewAuthError("nope")), false, true, false, false, false},
		{"plain", cause, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNetworkError(tt.err); got != tt.network {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.network)
			}
			if got := IsAuthError(tt.err); got != tt.auth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.auth)
			}
			if got := IsHTTPError(tt.err); got != tt.http {
				t.Errorf("IsHTTPError() = %v, want %v", got, tt.http)
			}
			if got := IsParseError(tt.err); got != tt.parse {
				t.Errorf("IsParseError() = %v, want %v", got, tt.parse)
			}
			if got := IsValidationError(tt.err); got != tt.validation {
				t.Errorf("IsValidationError() = %v, want %v", got, tt.validation)
			}
			wantTransport := tt.network || tt.http || tt.parse
			if got := IsTransportError(tt.err); got != wantTransport {
				t.Errorf("IsTransportError() = %v, want %v", got, wantTransport)
			}
		})
	}
}

func TestDeviceErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewParseError("bad body", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
	if got := NewAuthError("x").Error(); got != "Authentication Error: x" {
		t.Errorf("Error() = %q", got)
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewAuthError("whatever"), "Invalid login credentials"},
		{NewHTTPError(502, "bad gateway"), "Camera error (HTTP 502)"},
		{ClassifyNetworkError(os.ErrDeadlineExceeded, ""), "Camera not responding (timeout)"},
		{NewParseError("junk", nil), "Failed to parse camera response"},
		{NewValidationError("invalid shutter", errors.New("unknown symbol")), "unknown symbol"},
		{errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		if got := GetShortErrorMessage(tt.err); got != tt.want {
			t.Errorf("GetShortErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestGetTroubleshootingHint(t *testing.T) {
	if hint := GetTroubleshootingHint(NewAuthError("x")); !strings.Contains(hint, "never stored") {
		t.Errorf("auth hint = %q", hint)
	}
	if hint := GetTroubleshootingHint(NewHTTPError(404, "x")); !strings.Contains(hint, "404") {
		t.Errorf("http hint = %q", hint)
	}
	if hint := GetTroubleshootingHint(errors.New("x")); hint == "" {
		t.Error("hint for plain error should not be empty")
	}
}
