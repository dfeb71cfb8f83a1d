package camera

import (
	"context"
	"sort"
	"testing"
)

func TestLookupParameter(t *testing.T) {
	for _, name := range ParameterNames() {
		p, ok := LookupParameter(name)
		if !ok {
			t.Errorf("LookupParameter(%q) not found", name)
			continue
		}
		if p.Get == nil || p.Set == nil || p.Check == nil {
			t.Errorf("parameter %q missing accessor", name)
		}
	}

	if _, ok := LookupParameter("  Shutter "); !ok {
		t.Error("LookupParameter() should ignore case and whitespace")
	}
	if _, ok := LookupParameter("zoom"); ok {
		t.Error("LookupParameter(zoom) should not exist")
	}
}

func TestParameterNames(t *testing.T) {
	names := ParameterNames()
	if len(names) != len(Parameters()) {
		t.Errorf("ParameterNames() = %d names, want %d", len(names), len(Parameters()))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("ParameterNames() not sorted: %v", names)
	}
}

func TestParameterSet_ByName(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		field     string
		wantWire  any
		wantError bool
	}{
		{"shutter", "1/250", FieldShutter, float64(11), false},
		{"gain", "0dB", FieldGain, float64(0), false},
		{"anti-flicker", "60Hz", FieldAntiFlicker, float64(2), false},
		{"white-balance", "manual", FieldWhiteBalanceMode, "manual", false},
		{"mirror", "on", FieldMirror, float64(1), false},
		{"flip", "no", FieldFlip, float64(0), false},
		{"brightness", "12", FieldBrightness, float64(12), false},
		{"nr3d", "Off", FieldNoiseReduction3D, float64(5), false},
		{"wdr", "off", FieldWDREnable, float64(0), false},
		{"shutter", "1/42", "", nil, true},
		{"brightness", "bright", "", nil, true},
		{"mirror", "maybe", "", nil, true},
		{"wdr", "9", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"="+tt.value, func(t *testing.T) {
			fc := echoCamera(t, nil)
			s := readySession(t, fc.host())

			p, ok := LookupParameter(tt.name)
			if !ok {
				t.Fatalf("LookupParameter(%q) not found", tt.name)
			}

			set, err := p.Set(context.Background(), s, tt.value)
			if tt.wantError {
				if !IsValidationError(err) {
					t.Errorf("Set(%q) error = %v, want validation error", tt.value, err)
				}
				if n := len(fc.recorded()); n != 0 {
					t.Errorf("%d requests sent, want 0", n)
				}
				return
			}
			if err != nil || !set {
				t.Fatalf("Set(%q) = %v, %v", tt.value, set, err)
			}

			image, _ := fc.last(t).Body["image"].(map[string]any)
			if image[tt.field] != tt.wantWire {
				t.Errorf("%s wire value = %v, want %v", tt.field, image[tt.field], tt.wantWire)
			}
		})
	}
}

func TestParameterGet_ByName(t *testing.T) {
	fc := echoCamera(t, map[string]any{"image": map[string]any{
		FieldShutter:    999,
		FieldGamma:      2,
		FieldMirror:     1,
		FieldWDREnable:  0,
		FieldWDRLevel:   3,
		FieldBrightness: 9,
	}})
	s := readySession(t, fc.host())

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"shutter", "", false},
		{"gamma", "2", true},
		{"mirror", "on", true},
		{"flip", "", false},
		{"wdr", "Off", true},
		{"brightness", "9", true},
		{"contrast", "", false},
	}

	for _, tt := range tests {
		p, _ := LookupParameter(tt.name)
		got, ok, err := p.Get(context.Background(), s)
		if err != nil {
			t.Errorf("Get(%s) error = %v", tt.name, err)
			continue
		}
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Get(%s) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParameterSet_ParseFailureGoesToHandler(t *testing.T) {
	for _, tt := range []struct{ name, value string }{
		{"shutter", "1/42"},
		{"brightness", "bright"},
		{"mirror", "maybe"},
		{"wdr", "9"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			fc := echoCamera(t, nil)
			var errs collectErrors
			s := readySession(t, fc.host(), WithErrorHandler(errs.handle))

			p, _ := LookupParameter(tt.name)
			set, err := p.Set(context.Background(), s, tt.value)
			if err != nil || set {
				t.Fatalf("Set(%q) = %v, %v, want false, nil", tt.value, set, err)
			}

			got := errs.all()
			if len(got) != 1 || !IsValidationError(got[0]) {
				t.Errorf("handler received %v, want one validation error", got)
			}
			if n := len(fc.recorded()); n != 0 {
				t.Errorf("%d requests sent, want 0", n)
			}
		})
	}
}

func TestParameterCheck(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"shutter", "1/250", false},
		{"shutter", "1/9999", true},
		{"color-temperature", "6500", false},
		{"color-temperature", "20000", true},
		{"color-temperature", "warm", true},
		{"brightness", "20", false}, // advisory range
		{"mirror", "on", false},
		{"mirror", "sideways", true},
		{"wdr", "4", false},
		{"wdr", "extreme", true},
		{"exposure-mode", "anything", false},
	}

	for _, tt := range tests {
		p, ok := LookupParameter(tt.name)
		if !ok {
			t.Fatalf("LookupParameter(%q) not found", tt.name)
		}
		err := p.Check(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s.Check(%q) error = %v, wantErr %v", tt.name, tt.value, err, tt.wantErr)
		}
		if err != nil && !IsValidationError(err) {
			t.Errorf("%s.Check(%q) error should be a validation error, got %T", tt.name, tt.value, err)
		}
	}
}

func TestParameterWarning(t *testing.T) {
	brightness, _ := LookupParameter("brightness")
	if err := brightness.Warning("20"); !IsWarning(err) {
		t.Errorf("Warning(20) = %v, want warning", err)
	}
	if err := brightness.Warning("15"); err != nil {
		t.Errorf("Warning(15) = %v, want nil", err)
	}

	// enforced ranges reject instead of warning
	colorTemp, _ := LookupParameter("color-temperature")
	if err := colorTemp.Warning("20000"); err != nil {
		t.Errorf("color-temperature Warning() = %v, want nil", err)
	}

	shutter, _ := LookupParameter("shutter")
	if err := shutter.Warning("1/250"); err != nil {
		t.Errorf("shutter Warning() = %v, want nil", err)
	}
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"ON", true, false},
		{"off", false, false},
		{"yes", true, false},
		{"disabled", false, false},
		{"1", true, false},
		{"false", false, false},
		{"sometimes", false, true},
	}

	for _, tt := range tests {
		got, err := ParseSwitch(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSwitch(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSwitch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
