package params

// Shutter is a symbolic shutter speed.
type Shutter string

// Gain is a symbolic exposure gain.
type Gain string

// Iris is a symbolic aperture setting.
type Iris string

// AntiFlicker is a symbolic anti-flicker frequency.
type AntiFlicker string

// NoiseReduction3D is a symbolic 3D noise reduction mode.
type NoiseReduction3D string

// ExposureMode travels to the device verbatim.
type ExposureMode string

// WhiteBalanceMode travels to the device verbatim.
type WhiteBalanceMode string

// Stream selects the main or sub video encoder.
type Stream string

const (
	StreamMain Stream = "main"
	StreamSub  Stream = "sub"
)

// Exposure modes accepted by the device.
const (
	ExposureAuto   ExposureMode = "auto"
	ExposureManual ExposureMode = "manual"
)

// ExposureModes lists the documented exposure modes.
var ExposureModes = []ExposureMode{ExposureAuto, ExposureManual}

// White balance modes accepted by the device.
const (
	WhiteBalanceAuto         WhiteBalanceMode = "auto"
	WhiteBalanceIndoor       WhiteBalanceMode = "indoor"
	WhiteBalanceOutdoor      WhiteBalanceMode = "outdoor"
	WhiteBalanceOnePush      WhiteBalanceMode = "one push"
	WhiteBalanceAutoTracking WhiteBalanceMode = "auto tracking"
	WhiteBalanceManual       WhiteBalanceMode = "manual"
	WhiteBalanceTemperature  WhiteBalanceMode = "temperature"
)

// WhiteBalanceModes lists the documented white balance modes.
var WhiteBalanceModes = []WhiteBalanceMode{
	WhiteBalanceAuto,
	WhiteBalanceIndoor,
	WhiteBalanceOutdoor,
	WhiteBalanceOnePush,
	WhiteBalanceAutoTracking,
	WhiteBalanceManual,
	WhiteBalanceTemperature,
}

// ShutterTable maps shutter speeds to wire codes 6-21.
var ShutterTable = NewEnum[Shutter]("shutter",
	Entry[Shutter]{"1/60", 6},
	Entry[Shutter]{"1/90", 7},
	Entry[Shutter]{"1/100", 8},
	Entry[Shutter]{"1/125", 9},
	Entry[Shutter]{"1/180", 10},
	Entry[Shutter]{"1/250", 11},
	Entry[Shutter]{"1/350", 12},
	Entry[Shutter]{"1/500", 13},
	Entry[Shutter]{"1/725", 14},
	Entry[Shutter]{"1/1000", 15},
	Entry[Shutter]{"1/1500", 16},
	Entry[Shutter]{"1/2000", 17},
	Entry[Shutter]{"1/3000", 18},
	Entry[Shutter]{"1/4000", 19},
	Entry[Shutter]{"1/6000", 20},
	Entry[Shutter]{"1/10000", 21},
)

// GainTable maps 0-30 dB in 2 dB steps to wire codes 0-15.
var GainTable = NewEnum[Gain]("gain",
	Entry[Gain]{"0dB", 0},
	Entry[Gain]{"2dB", 1},
	Entry[Gain]{"4dB", 2},
	Entry[Gain]{"6dB", 3},
	Entry[Gain]{"8dB", 4},
	Entry[Gain]{"10dB", 5},
	Entry[Gain]{"12dB", 6},
	Entry[Gain]{"14dB", 7},
	Entry[Gain]{"16dB", 8},
	Entry[Gain]{"18dB", 9},
	Entry[Gain]{"20dB", 10},
	Entry[Gain]{"22dB", 11},
	Entry[Gain]{"24dB", 12},
	Entry[Gain]{"26dB", 13},
	Entry[Gain]{"28dB", 14},
	Entry[Gain]{"30dB", 15},
)

// IrisTable maps aperture stops to wire codes 0-13.
var IrisTable = NewEnum[Iris]("iris",
	Entry[Iris]{"Close", 0},
	Entry[Iris]{"F14.0", 1},
	Entry[Iris]{"F11.0", 2},
	Entry[Iris]{"F9.6", 3},
	Entry[Iris]{"F8.0", 4},
	Entry[Iris]{"F6.8", 5},
	Entry[Iris]{"F5.6", 6},
	Entry[Iris]{"F4.8", 7},
	Entry[Iris]{"F4.0", 8},
	Entry[Iris]{"F3.4", 9},
	Entry[Iris]{"F2.8", 10},
	Entry[Iris]{"F2.4", 11},
	Entry[Iris]{"F2.0", 12},
	Entry[Iris]{"F1.8", 13},
)

// AntiFlickerTable maps mains frequencies to wire codes.
var AntiFlickerTable = NewEnum[AntiFlicker]("anti_flicker",
	Entry[AntiFlicker]{"Off", 0},
	Entry[AntiFlicker]{"50Hz", 1},
	Entry[AntiFlicker]{"60Hz", 2},
)

// NoiseReduction3DTable maps 3D noise reduction modes. Off is code 5, not 0.
var NoiseReduction3DTable = NewEnum[NoiseReduction3D]("noise_reduction_3D",
	Entry[NoiseReduction3D]{"Off", 5},
	Entry[NoiseReduction3D]{"Auto", 0},
	Entry[NoiseReduction3D]{"1", 1},
	Entry[NoiseReduction3D]{"2", 2},
	Entry[NoiseReduction3D]{"3", 3},
	Entry[NoiseReduction3D]{"4", 4},
)

// Declared numeric ranges. Only ColorTemperatureRange is enforced at runtime.
var (
	ColorTemperatureRange = Range{Field: "color_temperature", Min: 1800, Max: 10000, Enforced: true}
	RedGainRange          = Range{Field: "R_gain", Min: 0, Max: 255}
	BlueGainRange         = Range{Field: "B_gain", Min: 0, Max: 255}
	GammaRange            = Range{Field: "gamma", Min: 0, Max: 4}
	BrightnessRange       = Range{Field: "brightness", Min: 0, Max: 15}
	SharpnessRange        = Range{Field: "sharpness", Min: 0, Max: 15}
	ContrastRange         = Range{Field: "contrast", Min: 0, Max: 15}
	SaturationRange       = Range{Field: "saturation", Min: 0, Max: 15}
)
