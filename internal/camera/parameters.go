package camera

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aidapov/povctl/internal/params"
)

// Kind is the codec family of a parameter.
type Kind int

const (
	KindEnum Kind = iota
	KindString
	KindRange
	KindBool
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindString:
		return "string"
	case KindRange:
		return "range"
	case KindBool:
		return "bool"
	case KindComposite:
		return "composite"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Parameter adapts one get/set accessor pair to string values, for callers
// that pick parameters by name.
type Parameter struct {
	Name        string
	Description string
	Kind        Kind
	Values      []string      // accepted symbols for enum, string and composite kinds
	Range       *params.Range // declared bounds for range kinds

	Get func(ctx context.Context, s *Session) (string, bool, error)
	Set func(ctx context.Context, s *Session, value string) (bool, error)

	// Check returns the validation error Set would report for value,
	// without sending anything.
	Check func(value string) error
}

// Warning returns a non-nil error prefixed with "warning:" when value lies
// outside an advisory range. Such values are still sent.
func (p Parameter) Warning(value string) error {
	if p.Range == nil || p.Range.Enforced {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || p.Range.Contains(n) {
		return nil
	}
	return fmt.Errorf("warning: %s %d is outside the documented range %s", p.Name, n, p.Range)
}

// IsWarning reports whether err is a non-fatal warning.
func IsWarning(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "warning:")
}

func symbolStrings[S ~string](symbols []S) []string {
	out := make([]string, len(symbols))
	for i, s := range symbols {
		out[i] = string(s)
	}
	return out
}

func enumParameter[S ~string](name, description string, table *params.Enum[S],
	get func(*Session, context.Context) (S, bool, error),
	set func(*Session, context.Context, S) (bool, error)) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindEnum,
		Values:      symbolStrings(table.Symbols()),
		Get: func(ctx context.Context, s *Session) (string, bool, error) {
			v, ok, err := get(s, ctx)
			return string(v), ok, err
		},
		Set: func(ctx context.Context, s *Session, value string) (bool, error) {
			symbol, err := table.Parse(value)
			if err != nil {
				return false, s.invalid(name, err)
			}
			return set(s, ctx, symbol)
		},
		Check: func(value string) error {
			if _, err := table.Parse(value); err != nil {
				return NewValidationError("invalid "+name, err)
			}
			return nil
		},
	}
}

func stringParameter[S ~string](name, description string, values []S,
	get func(*Session, context.Context) (S, bool, error),
	set func(*Session, context.Context, S) (bool, error)) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindString,
		Values:      symbolStrings(values),
		Get: func(ctx context.Context, s *Session) (string, bool, error) {
			v, ok, err := get(s, ctx)
			return string(v), ok, err
		},
		Set: func(ctx context.Context, s *Session, value string) (bool, error) {
			return set(s, ctx, S(value))
		},
		Check: func(string) error { return nil },
	}
}

func rangeParameter(name, description string, r params.Range,
	get func(*Session, context.Context) (int, bool, error),
	set func(*Session, context.Context, int) (bool, error)) Parameter {
	bounds := r
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindRange,
		Range:       &bounds,
		Get: func(ctx context.Context, s *Session) (string, bool, error) {
			v, ok, err := get(s, ctx)
			if !ok {
				return "", ok, err
			}
			return strconv.Itoa(v), ok, err
		},
		Set: func(ctx context.Context, s *Session, value string) (bool, error) {
			n, err := strconv.Atoi(value)
			if err != nil {
				return false, s.invalid(name, err)
			}
			return set(s, ctx, n)
		},
		Check: func(value string) error {
			n, err := strconv.Atoi(value)
			if err == nil {
				err = bounds.Check(n)
			}
			if err != nil {
				return NewValidationError("invalid "+name, err)
			}
			return nil
		},
	}
}

// boolParameter reads field directly so that a field the camera leaves out
// is reported as absent rather than off.
func boolParameter(name, description, field string,
	set func(*Session, context.Context, bool) (bool, error)) Parameter {
	return Parameter{
		Name:        name,
		Description: description,
		Kind:        KindBool,
		Values:      []string{"on", "off"},
		Get: func(ctx context.Context, s *Session) (string, bool, error) {
			v, ok, err := s.lookupBool(ctx, field)
			if !ok {
				return "", false, err
			}
			return onOff(v), true, err
		},
		Set: func(ctx context.Context, s *Session, value string) (bool, error) {
			enabled, err := ParseSwitch(value)
			if err != nil {
				return false, s.invalid(name, err)
			}
			return set(s, ctx, enabled)
		},
		Check: func(value string) error {
			if _, err := ParseSwitch(value); err != nil {
				return NewValidationError("invalid "+name, err)
			}
			return nil
		},
	}
}

// ParseSwitch accepts on/off, yes/no and anything strconv.ParseBool accepts.
func ParseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes", "enable", "enabled":
		return true, nil
	case "off", "no", "disable", "disabled":
		return false, nil
	}
	return strconv.ParseBool(value)
}

var parameters = []Parameter{
	stringParameter("exposure-mode", "Exposure mode", params.ExposureModes,
		(*Session).GetExposureMode, (*Session).SetExposureMode),
	enumParameter("shutter", "Shutter speed", params.ShutterTable,
		(*Session).GetShutter, (*Session).SetShutter),
	enumParameter("gain", "Exposure gain", params.GainTable,
		(*Session).GetExposureGain, (*Session).SetExposureGain),
	enumParameter("iris", "Iris aperture", params.IrisTable,
		(*Session).GetIris, (*Session).SetIris),
	enumParameter("anti-flicker", "Anti-flicker frequency", params.AntiFlickerTable,
		(*Session).GetAntiFlicker, (*Session).SetAntiFlicker),
	stringParameter("white-balance", "White balance mode", params.WhiteBalanceModes,
		(*Session).GetWhiteBalanceMode, (*Session).SetWhiteBalanceMode),
	rangeParameter("red-gain", "White balance red gain", params.RedGainRange,
		(*Session).GetRedGain, (*Session).SetRedGain),
	rangeParameter("blue-gain", "White balance blue gain", params.BlueGainRange,
		(*Session).GetBlueGain, (*Session).SetBlueGain),
	rangeParameter("color-temperature", "Color temperature in kelvin", params.ColorTemperatureRange,
		(*Session).GetColorTemperature, (*Session).SetColorTemperature),
	boolParameter("mirror", "Horizontal mirror", FieldMirror,
		(*Session).SetMirror),
	boolParameter("flip", "Vertical flip", FieldFlip,
		(*Session).SetFlip),
	boolParameter("backlight-compensation", "Backlight compensation", FieldBacklightCompensation,
		(*Session).SetBacklightCompensation),
	rangeParameter("gamma", "Gamma curve", params.GammaRange,
		(*Session).GetGamma, (*Session).SetGamma),
	{
		Name:        "wdr",
		Description: "Wide dynamic range",
		Kind:        KindComposite,
		Values:      wdrValues(),
		Get: func(ctx context.Context, s *Session) (string, bool, error) {
			level, ok, err := s.GetWideDynamicRange(ctx)
			if !ok {
				return "", ok, err
			}
			return level.String(), ok, err
		},
		Set: func(ctx context.Context, s *Session, value string) (bool, error) {
			level, err := params.ParseWDRLevel(value)
			if err != nil {
				return false, s.invalid("wdr", err)
			}
			return s.SetWideDynamicRange(ctx, level)
		},
		Check: func(value string) error {
			if _, err := params.ParseWDRLevel(value); err != nil {
				return NewValidationError("invalid wdr", err)
			}
			return nil
		},
	},
	rangeParameter("brightness", "Brightness", params.BrightnessRange,
		(*Session).GetBrightness, (*Session).SetBrightness),
	rangeParameter("sharpness", "Sharpness", params.SharpnessRange,
		(*Session).GetSharpness, (*Session).SetSharpness),
	rangeParameter("contrast", "Contrast", params.ContrastRange,
		(*Session).GetContrast, (*Session).SetContrast),
	rangeParameter("saturation", "Saturation", params.SaturationRange,
		(*Session).GetSaturation, (*Session).SetSaturation),
	boolParameter("nr2d", "2D noise reduction", FieldNoiseReduction2D,
		(*Session).Set2DNoiseReduction),
	enumParameter("nr3d", "3D noise reduction", params.NoiseReduction3DTable,
		(*Session).Get3DNoiseReduction, (*Session).Set3DNoiseReduction),
}

func wdrValues() []string {
	out := make([]string, len(params.WDRLevels))
	for i, l := range params.WDRLevels {
		out[i] = l.String()
	}
	return out
}

// Parameters returns every named parameter in display order.
func Parameters() []Parameter {
	out := make([]Parameter, len(parameters))
	copy(out, parameters)
	return out
}

// LookupParameter finds a parameter by name, case-insensitively.
func LookupParameter(name string) (Parameter, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// ParameterNames returns the sorted parameter names.
func ParameterNames() []string {
	names := make([]string, len(parameters))
	for i, p := range parameters {
		names[i] = p.Name
	}
	sort.Strings(names)
	return names
}
