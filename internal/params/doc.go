// Package params translates camera settings between the symbolic values used
// by callers and the wire values the camera's web.fcgi interface expects.
//
// Four families exist:
//   - Enumerants (shutter, gain, iris, anti-flicker, 3D noise reduction): an
//     Enum table mapping names to integer codes in both directions.
//   - Booleans: 1/0 on the wire; only an exact 1 decodes as true.
//   - Bounded integers: passed through unchanged. Each declares a Range, but
//     only color temperature is enforced before sending.
//   - Wide dynamic range: a composite of WDR_enable and WDR_level.
//
// Adding a camera parameter of an existing family means adding a table entry
// in catalog.go.
package params
