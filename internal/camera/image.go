package camera

import (
	"context"

	"github.com/aidapov/povctl/internal/params"
)

// Wire field names of the image subsystem.
const (
	FieldExposureMode          = "exposure_mode"
	FieldShutter               = "shutter"
	FieldGain                  = "gain"
	FieldIris                  = "iris"
	FieldAntiFlicker           = "anti_flicker"
	FieldWhiteBalanceMode      = "WB_mode"
	FieldRedGain               = "R_gain"
	FieldBlueGain              = "B_gain"
	FieldColorTemperature      = "color_temperature"
	FieldMirror                = "mirror"
	FieldFlip                  = "flip"
	FieldBacklightCompensation = "backlight_compensation"
	FieldGamma                 = "gamma"
	FieldWDREnable             = "WDR_enable"
	FieldWDRLevel              = "WDR_level"
	FieldBrightness            = "brightness"
	FieldSharpness             = "sharpness"
	FieldContrast              = "contrast"
	FieldSaturation            = "saturation"
	FieldNoiseReduction2D      = "noise_reduction_2D"
	FieldNoiseReduction3D      = "noise_reduction_3D"
)

// SetExposureMode sends the mode verbatim.
func (s *Session) SetExposureMode(ctx context.Context, mode params.ExposureMode) (bool, error) {
	return setString(ctx, s, FieldExposureMode, mode)
}

// GetExposureMode returns the mode as reported by the camera.
func (s *Session) GetExposureMode(ctx context.Context) (params.ExposureMode, bool, error) {
	return getString[params.ExposureMode](ctx, s, FieldExposureMode)
}

// SetShutter sends the table code for shutter. Symbols outside the table
// are rejected without sending.
func (s *Session) SetShutter(ctx context.Context, shutter params.Shutter) (bool, error) {
	return setEnum(ctx, s, params.ShutterTable, FieldShutter, shutter)
}

// GetShutter returns false as its second result for codes outside the table.
func (s *Session) GetShutter(ctx context.Context) (params.Shutter, bool, error) {
	return getEnum(ctx, s, params.ShutterTable, FieldShutter)
}

// SetExposureGain sends the table code for gain.
func (s *Session) SetExposureGain(ctx context.Context, gain params.Gain) (bool, error) {
	return setEnum(ctx, s, params.GainTable, FieldGain, gain)
}

// GetExposureGain returns false as its second result for codes outside the table.
func (s *Session) GetExposureGain(ctx context.Context) (params.Gain, bool, error) {
	return getEnum(ctx, s, params.GainTable, FieldGain)
}

// SetIris sends the table code for the aperture.
func (s *Session) SetIris(ctx context.Context, iris params.Iris) (bool, error) {
	return setEnum(ctx, s, params.IrisTable, FieldIris, iris)
}

// GetIris returns false as its second result for codes outside the table.
func (s *Session) GetIris(ctx context.Context) (params.Iris, bool, error) {
	return getEnum(ctx, s, params.IrisTable, FieldIris)
}

// SetAntiFlicker sends the table code for the mains frequency.
func (s *Session) SetAntiFlicker(ctx context.Context, frequency params.AntiFlicker) (bool, error) {
	return setEnum(ctx, s, params.AntiFlickerTable, FieldAntiFlicker, frequency)
}

// GetAntiFlicker returns false as its second result for codes outside the table.
func (s *Session) GetAntiFlicker(ctx context.Context) (params.AntiFlicker, bool, error) {
	return getEnum(ctx, s, params.AntiFlickerTable, FieldAntiFlicker)
}

// SetWhiteBalanceMode sends the mode verbatim.
func (s *Session) SetWhiteBalanceMode(ctx context.Context, mode params.WhiteBalanceMode) (bool, error) {
	return setString(ctx, s, FieldWhiteBalanceMode, mode)
}

// GetWhiteBalanceMode returns the mode as reported by the camera.
func (s *Session) GetWhiteBalanceMode(ctx context.Context) (params.WhiteBalanceMode, bool, error) {
	return getString[params.WhiteBalanceMode](ctx, s, FieldWhiteBalanceMode)
}

// SetRedGain sends value as is. The 0-255 range is advisory.
func (s *Session) SetRedGain(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.RedGainRange, value)
}

// GetRedGain returns the white balance red gain.
func (s *Session) GetRedGain(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldRedGain)
}

// SetBlueGain sends value as is. The 0-255 range is advisory.
func (s *Session) SetBlueGain(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.BlueGainRange, value)
}

// GetBlueGain returns the white balance blue gain.
func (s *Session) GetBlueGain(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldBlueGain)
}

// SetColorTemperature rejects values outside 1800-10000 K without sending.
func (s *Session) SetColorTemperature(ctx context.Context, kelvin int) (bool, error) {
	return s.setInt(ctx, params.ColorTemperatureRange, kelvin)
}

// GetColorTemperature returns the color temperature in kelvin.
func (s *Session) GetColorTemperature(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldColorTemperature)
}

// SetMirror turns horizontal mirroring on or off.
func (s *Session) SetMirror(ctx context.Context, enabled bool) (bool, error) {
	return s.setBool(ctx, FieldMirror, enabled)
}

// GetMirror reports false when the field is missing or not exactly 1.
func (s *Session) GetMirror(ctx context.Context) (bool, error) {
	return s.getBool(ctx, FieldMirror)
}

// SetFlip turns vertical flipping on or off.
func (s *Session) SetFlip(ctx context.Context, enabled bool) (bool, error) {
	return s.setBool(ctx, FieldFlip, enabled)
}

// GetFlip reports false when the field is missing or not exactly 1.
func (s *Session) GetFlip(ctx context.Context) (bool, error) {
	return s.getBool(ctx, FieldFlip)
}

// SetBacklightCompensation turns backlight compensation on or off.
func (s *Session) SetBacklightCompensation(ctx context.Context, enabled bool) (bool, error) {
	return s.setBool(ctx, FieldBacklightCompensation, enabled)
}

// GetBacklightCompensation reports false when the field is missing or not exactly 1.
func (s *Session) GetBacklightCompensation(ctx context.Context) (bool, error) {
	return s.getBool(ctx, FieldBacklightCompensation)
}

// SetGamma sends value as is. The 0-4 range is advisory.
func (s *Session) SetGamma(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.GammaRange, value)
}

// GetGamma returns the gamma curve index.
func (s *Session) GetGamma(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldGamma)
}

// SetWideDynamicRange sends WDR_enable and WDR_level together and succeeds
// only when both are echoed back.
func (s *Session) SetWideDynamicRange(ctx context.Context, level params.WDRLevel) (bool, error) {
	if level < params.WDROff || level > 6 {
		return false, s.invalid("wide dynamic range", params.ErrUnknownSymbol)
	}
	enable, wireLevel := params.EncodeWDR(level)
	return s.set(ctx, subsystemImage, map[string]any{
		FieldWDREnable: enable,
		FieldWDRLevel:  wireLevel,
	})
}

// GetWideDynamicRange combines WDR_enable and WDR_level. A disabled
// camera reports WDROff whatever the level.
func (s *Session) GetWideDynamicRange(ctx context.Context) (params.WDRLevel, bool, error) {
	image, err := s.get(ctx, subsystemImage, FieldWDREnable, FieldWDRLevel)
	if err != nil || image == nil {
		return params.WDROff, false, err
	}
	level, ok := params.DecodeWDR(image[FieldWDREnable], image[FieldWDRLevel])
	return level, ok, nil
}

// SetBrightness sends value as is. The 0-15 range is advisory.
func (s *Session) SetBrightness(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.BrightnessRange, value)
}

// GetBrightness returns the brightness level.
func (s *Session) GetBrightness(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldBrightness)
}

// SetSharpness sends value as is. The 0-15 range is advisory.
func (s *Session) SetSharpness(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.SharpnessRange, value)
}

// GetSharpness returns the sharpness level.
func (s *Session) GetSharpness(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldSharpness)
}

// SetContrast sends value as is. The 0-15 range is advisory.
func (s *Session) SetContrast(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.ContrastRange, value)
}

// GetContrast returns the contrast level.
func (s *Session) GetContrast(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldContrast)
}

// SetSaturation sends value as is. The 0-15 range is advisory.
func (s *Session) SetSaturation(ctx context.Context, value int) (bool, error) {
	return s.setInt(ctx, params.SaturationRange, value)
}

// GetSaturation returns the saturation level.
func (s *Session) GetSaturation(ctx context.Context) (int, bool, error) {
	return s.getInt(ctx, FieldSaturation)
}

// Set2DNoiseReduction turns 2D noise reduction on or off.
func (s *Session) Set2DNoiseReduction(ctx context.Context, enabled bool) (bool, error) {
	return s.setBool(ctx, FieldNoiseReduction2D, enabled)
}

// Get2DNoiseReduction reports false when the field is missing or not exactly 1.
func (s *Session) Get2DNoiseReduction(ctx context.Context) (bool, error) {
	return s.getBool(ctx, FieldNoiseReduction2D)
}

// Set3DNoiseReduction sends the table code for the 3D noise reduction level.
func (s *Session) Set3DNoiseReduction(ctx context.Context, mode params.NoiseReduction3D) (bool, error) {
	return setEnum(ctx, s, params.NoiseReduction3DTable, FieldNoiseReduction3D, mode)
}

// Get3DNoiseReduction returns false as its second result for codes outside the table.
func (s *Session) Get3DNoiseReduction(ctx context.Context) (params.NoiseReduction3D, bool, error) {
	return getEnum(ctx, s, params.NoiseReduction3DTable, FieldNoiseReduction3D)
}
