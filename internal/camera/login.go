package camera

import (
	"context"
	"time"
)

// LoginResult is the outcome of a login exchange.
type LoginResult struct {
	Valid bool   `json:"valid"`
	Login string `json:"login"` // session token when Valid
}

// TokenRequester performs the login exchange for a session.
type TokenRequester interface {
	RequestToken(ctx context.Context, host, username, password string) (LoginResult, error)
}

// TokenRequesterFunc adapts a function to TokenRequester.
type TokenRequesterFunc func(ctx context.Context, host, username, password string) (LoginResult, error)

// RequestToken calls f.
func (f TokenRequesterFunc) RequestToken(ctx context.Context, host, username, password string) (LoginResult, error) {
	return f(ctx, host, username, password)
}

// HTTPTokenRequester logs in through func=login on the camera's command
// endpoint, posting the credentials and reading {"valid":..,"login":..}.
type HTTPTokenRequester struct {
	Timeout time.Duration
}

// RequestToken implements TokenRequester.
func (r HTTPTokenRequester) RequestToken(ctx context.Context, host, username, password string) (LoginResult, error) {
	t := NewTransport(host, r.Timeout)

	resp, err := t.Post(ctx, FuncLogin, "", map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var result LoginResult
	if valid, ok := resp["valid"].(bool); ok {
		result.Valid = valid
	}
	if login, ok := resp["login"].(string); ok {
		result.Login = login
	}
	return result, nil
}
