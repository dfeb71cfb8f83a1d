package camera

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/aidapov/povctl/internal/logging"
)

// ErrNotReady is returned by WhenReady when login failed and the failure was
// already delivered to the registered error handler.
var ErrNotReady = errors.New("camera session is not ready")

// ErrorHandler receives failures that would otherwise be returned to callers.
type ErrorHandler func(error)

// Session is an authenticated connection to one camera.
//
// NewSession starts the login exchange in the background. Accessors may be
// called at any time; calls made before the session is ready go out without a
// token. Use WhenReady to wait for login.
type Session struct {
	host     string
	username string
	password string

	timeout   time.Duration
	transport *Transport
	requester TokenRequester

	mu            sync.RWMutex
	token         string
	handler       ErrorHandler
	loginErr      error
	loginReported bool

	ready atomic.Bool
	done  chan struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithErrorHandler registers the error handler before login starts, so a
// login failure can never race the registration.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(s *Session) {
		s.handler = handler
	}
}

// WithTimeout sets the HTTP timeout used for login and every request.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Session) {
		s.timeout = timeout
	}
}

// WithTokenRequester replaces the login exchange.
func WithTokenRequester(requester TokenRequester) Option {
	return func(s *Session) {
		s.requester = requester
	}
}

// WithTransport replaces the transport used by accessors.
func WithTransport(transport *Transport) Option {
	return func(s *Session) {
		s.transport = transport
	}
}

// NewSession creates a session and begins logging in. It never blocks.
func NewSession(host, username, password string, opts ...Option) *Session {
	s := &Session{
		host:     host,
		username: username,
		password: password,
		timeout:  DefaultTimeout,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.transport == nil {
		s.transport = NewTransport(host, s.timeout)
	}
	if s.requester == nil {
		s.requester = HTTPTokenRequester{Timeout: s.timeout}
	}

	go s.login()

	return s
}

func (s *Session) login() {
	defer close(s.done)

	result, err := s.requester.RequestToken(context.Background(), s.host, s.username, s.password)
	if err != nil {
		var devErr *DeviceError
		if !errors.As(err, &devErr) {
			err = NewNetworkError("login request failed", err)
		}
		s.failLogin(err)
		return
	}

	if !result.Valid {
		s.failLogin(NewAuthError("Invalid login credentials"))
		return
	}

	s.mu.Lock()
	s.token = result.Login
	s.mu.Unlock()
	s.ready.Store(true)

	logging.Info("Camera login succeeded",
		zap.String("host", s.host),
		zap.String("username", s.username),
	)
}

func (s *Session) failLogin(err error) {
	logging.Warn("Camera login failed",
		zap.String("host", s.host),
		zap.String("username", s.username),
		zap.Error(err),
	)

	s.mu.Lock()
	s.loginErr = err
	handler := s.handler
	s.loginReported = handler != nil
	s.mu.Unlock()

	if handler != nil {
		handler(err)
	}
}

// fail delivers err to the error handler and returns nil, or returns err
// unchanged when no handler is registered.
func (s *Session) fail(err error) error {
	s.mu.RLock()
	handler := s.handler
	s.mu.RUnlock()

	if handler == nil {
		return err
	}
	handler(err)
	return nil
}

// OnError registers the error handler, replacing any previous one. A nil
// handler restores the default of returning errors to callers.
func (s *Session) OnError(handler ErrorHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handler = handler
}

// WhenReady blocks until login succeeds, login fails, or ctx is done.
// It returns nil immediately when the session is already ready.
func (s *Session) WhenReady(ctx context.Context) error {
	if s.ready.Load() {
		return nil
	}

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if s.ready.Load() {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loginReported {
		return ErrNotReady
	}
	return s.loginErr
}

// Done is closed once the login exchange has finished, successfully or not.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// IsReady reports whether a token has been obtained.
func (s *Session) IsReady() bool {
	return s.ready.Load()
}

// Err returns the login failure, if any.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginErr
}

// Token returns the session token, empty until login succeeds.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Host returns the camera host.
func (s *Session) Host() string {
	return s.host
}

// Username returns the login username.
func (s *Session) Username() string {
	return s.username
}

// Request sends one raw get or set exchange carrying the session token.
// Failures follow the session's error policy.
func (s *Session) Request(ctx context.Context, fn Func, body map[string]any) (Response, error) {
	resp, err := s.transport.Post(ctx, fn, s.Token(), body)
	if err != nil {
		return nil, s.fail(err)
	}
	return resp, nil
}
