// Package camera is the control-plane client for AIDA POV cameras.
//
// Every exchange is a JSON POST to /cgi-bin/web.fcgi?func=get|set. A get
// names the wanted fields with placeholder true values:
//
//	{"key": "<token>", "image": {"shutter": true}}
//
// and the camera answers in the same shape with real values. A set carries
// the new values and the camera echoes what it applied; a set succeeds only
// when every echoed field equals what was sent.
//
// # Sessions
//
// NewSession starts login in the background and returns immediately:
//
//	s := camera.NewSession("192.168.1.20", "admin", password)
//	if err := s.WhenReady(ctx); err != nil {
//	    return err
//	}
//	info, err := s.GetInfo(ctx)
//
// # Errors
//
// Without an error handler, accessors return failures to the caller. When a
// handler is registered with WithErrorHandler or OnError, failures go to the
// handler instead and accessors return a zero or absent result with a nil
// error. Failures are *DeviceError values; use IsNetworkError, IsAuthError,
// IsHTTPError, IsParseError and IsValidationError to classify them.
//
// Value encoding lives in package params. Parameters exposes every image
// accessor by name for command-line use.
package camera
