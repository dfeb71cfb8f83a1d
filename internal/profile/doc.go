// Package profile saves and applies named sets of image settings.
//
// A profile is a small YAML document:
//
//	version: 1
//	image:
//	  exposure-mode: manual
//	  shutter: 1/250
//	  brightness: 8
//
// Apply checks every value before anything is sent, skips settings that
// already match the camera, and restores the previous values if a setting
// fails part way through.
package profile
