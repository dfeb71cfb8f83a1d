package profile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aidapov/povctl/internal/camera"
)

// Setting assigns value to one named image parameter.
type Setting struct {
	Name  string `json:"parameter"`
	Value string `json:"value"`
}

// Profile is an ordered list of settings. Order is preserved from the file
// and is the order settings are sent.
type Profile struct {
	Settings []Setting
}

const fileHeader = `# povctl image profile
# Apply with: povctl profile apply <file>
`

type document struct {
	Version int       `yaml:"version"`
	Image   yaml.Node `yaml:"image"`
}

// Parse decodes a profile document. Parameter names are normalised but values
// are not checked; call Validate for that.
func Parse(data []byte) (*Profile, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported profile version: %d (expected 1)", doc.Version)
	}

	p := &Profile{}
	if doc.Image.Kind == 0 {
		return p, nil
	}
	if doc.Image.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("profile line %d: image must be a mapping of parameter: value", doc.Image.Line)
	}

	for i := 0; i+1 < len(doc.Image.Content); i += 2 {
		key, value := doc.Image.Content[i], doc.Image.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("profile line %d: %s must have a single value", value.Line, key.Value)
		}
		name := key.Value
		if param, ok := camera.LookupParameter(name); ok {
			name = param.Name
		}
		p.Settings = append(p.Settings, Setting{Name: name, Value: value.Value})
	}

	return p, nil
}

// LoadFile reads and parses a profile from path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return Parse(data)
}

// Validate checks every setting without contacting a camera. All problems
// are reported together.
func (p *Profile) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(p.Settings))

	for _, s := range p.Settings {
		param, ok := camera.LookupParameter(s.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown parameter %q", s.Name))
			continue
		}
		if seen[param.Name] {
			errs = append(errs, fmt.Errorf("%s is set more than once", param.Name))
		}
		seen[param.Name] = true

		if err := param.Check(s.Value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", param.Name, err))
		}
	}

	return errors.Join(errs...)
}

// Names returns the parameter names in profile order.
func (p *Profile) Names() []string {
	names := make([]string, len(p.Settings))
	for i, s := range p.Settings {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the value assigned to name.
func (p *Profile) Lookup(name string) (string, bool) {
	for _, s := range p.Settings {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// Marshal encodes the profile with a header comment, keeping setting order.
func (p *Profile) Marshal() ([]byte, error) {
	image := yaml.Node{Kind: yaml.MappingNode}
	for _, s := range p.Settings {
		image.Content = append(image.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Value},
		)
	}

	data, err := yaml.Marshal(&document{Version: 1, Image: image})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return append([]byte(fileHeader), data...), nil
}

// SaveFile writes the profile to path.
func (p *Profile) SaveFile(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

// Capture reads the named parameters from the camera, or every parameter
// when names is empty. Parameters the camera does not report are left out.
func Capture(ctx context.Context, s *camera.Session, names ...string) (*Profile, error) {
	var selected []camera.Parameter
	if len(names) == 0 {
		selected = camera.Parameters()
	} else {
		for _, name := range names {
			param, ok := camera.LookupParameter(name)
			if !ok {
				return nil, fmt.Errorf("unknown parameter %q", name)
			}
			selected = append(selected, param)
		}
	}

	p := &Profile{}
	for _, param := range selected {
		value, ok, err := param.Get(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", param.Name, err)
		}
		if ok {
			p.Settings = append(p.Settings, Setting{Name: param.Name, Value: value})
		}
	}
	return p, nil
}
