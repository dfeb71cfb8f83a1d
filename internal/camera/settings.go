package camera

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidapov/povctl/internal/params"
)

// ImageSettings is a decoded read of the whole image subsystem. Zero values
// and nil pointers mean the camera did not return the field.
type ImageSettings struct {
	ExposureMode     params.ExposureMode     `json:"exposure_mode,omitempty"`
	Shutter          params.Shutter          `json:"shutter,omitempty"`
	Gain             params.Gain             `json:"gain,omitempty"`
	Iris             params.Iris             `json:"iris,omitempty"`
	AntiFlicker      params.AntiFlicker      `json:"anti_flicker,omitempty"`
	WhiteBalanceMode params.WhiteBalanceMode `json:"white_balance_mode,omitempty"`
	NoiseReduction3D params.NoiseReduction3D `json:"noise_reduction_3d,omitempty"`

	RedGain          *int `json:"red_gain,omitempty"`
	BlueGain         *int `json:"blue_gain,omitempty"`
	ColorTemperature *int `json:"color_temperature,omitempty"`
	Gamma            *int `json:"gamma,omitempty"`
	Brightness       *int `json:"brightness,omitempty"`
	Sharpness        *int `json:"sharpness,omitempty"`
	Contrast         *int `json:"contrast,omitempty"`
	Saturation       *int `json:"saturation,omitempty"`

	WideDynamicRange *params.WDRLevel `json:"wide_dynamic_range,omitempty"`

	Mirror                bool `json:"mirror"`
	Flip                  bool `json:"flip"`
	BacklightCompensation bool `json:"backlight_compensation"`
	NoiseReduction2D      bool `json:"noise_reduction_2d"`
}

var imageSettingsFields = []string{
	FieldExposureMode, FieldShutter, FieldGain, FieldIris, FieldAntiFlicker,
	FieldWhiteBalanceMode, FieldRedGain, FieldBlueGain, FieldColorTemperature,
	FieldMirror, FieldFlip, FieldBacklightCompensation, FieldGamma,
	FieldWDREnable, FieldWDRLevel, FieldBrightness, FieldSharpness,
	FieldContrast, FieldSaturation, FieldNoiseReduction2D, FieldNoiseReduction3D,
}

// GetImageSettings reads every image field in one request. It returns nil
// when the camera returned no image object.
func (s *Session) GetImageSettings(ctx context.Context) (*ImageSettings, error) {
	image, err := s.get(ctx, subsystemImage, imageSettingsFields...)
	if err != nil || image == nil {
		return nil, err
	}
	return decodeImageSettings(image), nil
}

func decodeImageSettings(image map[string]any) *ImageSettings {
	num := func(field string) *int {
		if v, ok := params.WireInt(image[field]); ok {
			return &v
		}
		return nil
	}
	str := func(field string) string {
		v, _ := image[field].(string)
		return v
	}

	settings := &ImageSettings{
		ExposureMode:          params.ExposureMode(str(FieldExposureMode)),
		WhiteBalanceMode:      params.WhiteBalanceMode(str(FieldWhiteBalanceMode)),
		RedGain:               num(FieldRedGain),
		BlueGain:              num(FieldBlueGain),
		ColorTemperature:      num(FieldColorTemperature),
		Gamma:                 num(FieldGamma),
		Brightness:            num(FieldBrightness),
		Sharpness:             num(FieldSharpness),
		Contrast:              num(FieldContrast),
		Saturation:            num(FieldSaturation),
		Mirror:                params.DecodeBool(image[FieldMirror]),
		Flip:                  params.DecodeBool(image[FieldFlip]),
		BacklightCompensation: params.DecodeBool(image[FieldBacklightCompensation]),
		NoiseReduction2D:      params.DecodeBool(image[FieldNoiseReduction2D]),
	}

	settings.Shutter, _ = params.ShutterTable.Decode(image[FieldShutter])
	settings.Gain, _ = params.GainTable.Decode(image[FieldGain])
	settings.Iris, _ = params.IrisTable.Decode(image[FieldIris])
	settings.AntiFlicker, _ = params.AntiFlickerTable.Decode(image[FieldAntiFlicker])
	settings.NoiseReduction3D, _ = params.NoiseReduction3DTable.Decode(image[FieldNoiseReduction3D])

	if level, ok := params.DecodeWDR(image[FieldWDREnable], image[FieldWDRLevel]); ok {
		settings.WideDynamicRange = &level
	}

	return settings
}

// FormatDetailed returns the sectioned view printed by 'povctl show'
func (is *ImageSettings) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Exposure ===\n")
	b.WriteString(fmt.Sprintf("Mode:            %s\n", orDash(string(is.ExposureMode))))
	b.WriteString(fmt.Sprintf("Shutter:         %s\n", orDash(string(is.Shutter))))
	b.WriteString(fmt.Sprintf("Gain:            %s\n", orDash(string(is.Gain))))
	b.WriteString(fmt.Sprintf("Iris:            %s\n", orDash(string(is.Iris))))
	b.WriteString(fmt.Sprintf("Anti-flicker:    %s\n", orDash(string(is.AntiFlicker))))
	b.WriteString(fmt.Sprintf("Backlight comp.: %s\n", onOff(is.BacklightCompensation)))
	b.WriteString(fmt.Sprintf("WDR:             %s\n", formatWDR(is.WideDynamicRange)))
	b.WriteString("\n")

	b.WriteString("=== Color ===\n")
	b.WriteString(fmt.Sprintf("White balance:   %s\n", orDash(string(is.WhiteBalanceMode))))
	b.WriteString(fmt.Sprintf("Color temp.:     %s\n", formatInt(is.ColorTemperature, "K")))
	b.WriteString(fmt.Sprintf("Red gain:        %s\n", formatInt(is.RedGain, "")))
	b.WriteString(fmt.Sprintf("Blue gain:       %s\n", formatInt(is.BlueGain, "")))
	b.WriteString(fmt.Sprintf("Saturation:      %s\n", formatInt(is.Saturation, "")))
	b.WriteString("\n")

	b.WriteString("=== Picture ===\n")
	b.WriteString(fmt.Sprintf("Brightness:      %s\n", formatInt(is.Brightness, "")))
	b.WriteString(fmt.Sprintf("Contrast:        %s\n", formatInt(is.Contrast, "")))
	b.WriteString(fmt.Sprintf("Sharpness:       %s\n", formatInt(is.Sharpness, "")))
	b.WriteString(fmt.Sprintf("Gamma:           %s\n", formatInt(is.Gamma, "")))
	b.WriteString(fmt.Sprintf("Mirror:          %s\n", onOff(is.Mirror)))
	b.WriteString(fmt.Sprintf("Flip:            %s\n", onOff(is.Flip)))
	b.WriteString(fmt.Sprintf("2D NR:           %s\n", onOff(is.NoiseReduction2D)))
	b.WriteString(fmt.Sprintf("3D NR:           %s\n", orDash(string(is.NoiseReduction3D))))

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func formatInt(v *int, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, unit)
}

func formatWDR(level *params.WDRLevel) string {
	if level == nil {
		return "-"
	}
	return level.String()
}
