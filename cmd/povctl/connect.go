package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/aidapov/povctl/internal/camera"
	"github.com/aidapov/povctl/internal/config"
	"github.com/aidapov/povctl/internal/logging"
	"github.com/aidapov/povctl/internal/ui"
)

var errNoCamera = errors.New("no camera selected: pass --camera or set POVCTL_HOST (or save exactly one camera with 'povctl camera add')")

// conn is a logged-in session plus the registry entry it came from, if any.
type conn struct {
	session  *camera.Session
	registry *config.Registry
	name     string
}

// saved returns the registry entry of the connected camera, or nil.
func (c *conn) saved() *config.Camera {
	if c.name == "" {
		return nil
	}
	return c.registry.GetCamera(c.name)
}

// target picks the camera from --camera / POVCTL_HOST, or the only saved one.
func (a *app) target(reg *config.Registry) (string, error) {
	if t := a.v.GetString("host"); t != "" {
		return t, nil
	}
	if names := reg.Names(); len(names) == 1 {
		return names[0], nil
	}
	return "", errNoCamera
}

func (a *app) timeout(reg *config.Registry) time.Duration {
	if s := a.v.GetInt("timeout"); s > 0 {
		return time.Duration(s) * time.Second
	}
	return reg.Timeout()
}

// password returns the configured password or prompts for it without echo.
func (a *app) password(username, host string) (string, error) {
	if p := a.v.GetString("password"); p != "" {
		return p, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password required: pass --password or set POVCTL_PASSWORD")
	}

	fmt.Fprintf(a.errOut, "Password for %s@%s: ", username, host)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(a.errOut)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(secret), nil
}

// connect logs in to the selected camera and waits for the session to be
// ready.
func (a *app) connect(ctx context.Context) (*conn, error) {
	reg, err := config.Load()
	if err != nil {
		return nil, err
	}

	t, err := a.target(reg)
	if err != nil {
		return nil, err
	}

	host, username, name := reg.Resolve(t)
	if u := a.v.GetString("username"); u != "" {
		username = u
	}

	password, err := a.password(username, host)
	if err != nil {
		return nil, err
	}

	session := camera.NewSession(host, username, password, camera.WithTimeout(a.timeout(reg)))

	label := fmt.Sprintf("Logging in to %s as %s", host, username)
	if err := ui.Wait(ctx, a.errOut, label, session.Done()); err != nil {
		return nil, err
	}
	if err := session.WhenReady(ctx); err != nil {
		return nil, err
	}

	if name != "" {
		reg.MarkSeen(name)
		if err := reg.Save(); err != nil {
			logging.Warn("Failed to update camera registry", zap.String("camera", name), zap.Error(err))
		}
	}

	return &conn{session: session, registry: reg, name: name}, nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetString("output") == "json"
}

func (a *app) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(a.out, string(data))
	return nil
}
