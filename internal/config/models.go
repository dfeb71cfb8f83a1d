package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultUsername is the factory login of POV cameras
	DefaultUsername = "admin"

	// DefaultTimeoutSeconds matches the camera client's default HTTP timeout
	DefaultTimeoutSeconds = 10
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                `yaml:"version"`
	Cameras     map[string]*Camera `yaml:"cameras,omitempty"` // Keyed by user-chosen name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Camera is a saved camera. Passwords are never stored.
type Camera struct {
	Host          string    `yaml:"host"`                     // IP or hostname, optionally with :port
	Username      string    `yaml:"username,omitempty"`       // Login name (falls back to preferences)
	Nickname      string    `yaml:"nickname,omitempty"`       // Display name
	DefaultStream string    `yaml:"default_stream,omitempty"` // "main" or "sub"
	LastSeen      time.Time `yaml:"last_seen,omitempty"`      // Last successful login
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultUsername string `yaml:"default_username,omitempty"`
	TimeoutSeconds  int    `yaml:"timeout_seconds,omitempty"`
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DefaultUsername: DefaultUsername,
		TimeoutSeconds:  DefaultTimeoutSeconds,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Cameras:     make(map[string]*Camera),
		Preferences: defaultPreferences(),
	}
}

// ValidateName checks that a camera name can be used on the command line.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("camera name cannot be empty")
	}
	if strings.ContainsAny(name, " \t\n/\\") {
		return fmt.Errorf("camera name %q cannot contain whitespace or slashes", name)
	}
	return nil
}

// GetCamera returns the saved camera, or nil.
func (r *Registry) GetCamera(name string) *Camera {
	return r.Cameras[name]
}

// AddCamera saves or replaces a camera entry.
func (r *Registry) AddCamera(name string, cam *Camera) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if cam == nil || cam.Host == "" {
		return fmt.Errorf("camera %q needs a host", name)
	}
	switch cam.DefaultStream {
	case "", "main", "sub":
	default:
		return fmt.Errorf("default stream must be main or sub, got %q", cam.DefaultStream)
	}

	if r.Cameras == nil {
		r.Cameras = make(map[string]*Camera)
	}
	r.Cameras[name] = cam
	return nil
}

// RemoveCamera deletes a camera entry and reports whether it existed.
func (r *Registry) RemoveCamera(name string) bool {
	if _, ok := r.Cameras[name]; !ok {
		return false
	}
	delete(r.Cameras, name)
	return true
}

// Names returns the saved camera names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Cameras))
	for name := range r.Cameras {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MarkSeen records a successful login to the named camera.
func (r *Registry) MarkSeen(name string) {
	if cam := r.Cameras[name]; cam != nil {
		cam.LastSeen = time.Now()
	}
}

// Resolve turns a camera name or a bare host into a connection target. A
// saved name wins over a host with the same spelling.
func (r *Registry) Resolve(nameOrHost string) (host, username, name string) {
	if cam := r.Cameras[nameOrHost]; cam != nil {
		username = cam.Username
		if username == "" {
			username = r.DefaultUsername()
		}
		return cam.Host, username, nameOrHost
	}
	return nameOrHost, r.DefaultUsername(), ""
}

// DefaultUsername returns the preferred username, or "admin".
func (r *Registry) DefaultUsername() string {
	if r.Preferences != nil && r.Preferences.DefaultUsername != "" {
		return r.Preferences.DefaultUsername
	}
	return DefaultUsername
}

// Timeout returns the preferred request timeout.
func (r *Registry) Timeout() time.Duration {
	if r.Preferences != nil && r.Preferences.TimeoutSeconds > 0 {
		return time.Duration(r.Preferences.TimeoutSeconds) * time.Second
	}
	return DefaultTimeoutSeconds * time.Second
}
