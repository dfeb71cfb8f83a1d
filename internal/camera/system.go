package camera

import (
	"context"
	"fmt"
	"strings"
)

// SystemInfo identifies the camera firmware and hardware.
type SystemInfo struct {
	AppVersion        string `json:"app_version"`
	BootloaderVersion string `json:"bootloader_version"`
	DeviceName        string `json:"device_name"`
	SerialNumber      string `json:"serial_number"`
	SystemVersion     string `json:"system_version"`

	// Raw is the system object exactly as the camera returned it.
	Raw map[string]any `json:"-"`
}

var systemInfoFields = []string{
	"app_version",
	"bootloader_version",
	"device_name",
	"serial_number",
	"system_version",
}

// GetInfo reads the system identification fields. It returns nil when the
// camera returned no system object.
func (s *Session) GetInfo(ctx context.Context) (*SystemInfo, error) {
	system, err := s.get(ctx, subsystemSystem, systemInfoFields...)
	if err != nil || system == nil {
		return nil, err
	}

	str := func(key string) string {
		v, _ := system[key].(string)
		return v
	}

	return &SystemInfo{
		AppVersion:        str("app_version"),
		BootloaderVersion: str("bootloader_version"),
		DeviceName:        str("device_name"),
		SerialNumber:      str("serial_number"),
		SystemVersion:     str("system_version"),
		Raw:               system,
	}, nil
}

// Summary returns a one-line summary of the camera
func (i *SystemInfo) Summary() string {
	return fmt.Sprintf("%s (serial %s, app %s)", i.DeviceName, i.SerialNumber, i.AppVersion)
}

// FormatDetailed returns the identification block shown by 'povctl info'
func (i *SystemInfo) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Camera Information ===\n")
	b.WriteString(fmt.Sprintf("Device Name:    %s\n", i.DeviceName))
	b.WriteString(fmt.Sprintf("Serial Number:  %s\n", i.SerialNumber))
	b.WriteString(fmt.Sprintf("App Version:    %s\n", i.AppVersion))
	b.WriteString(fmt.Sprintf("System Version: %s\n", i.SystemVersion))
	b.WriteString(fmt.Sprintf("Bootloader:     %s\n", i.BootloaderVersion))

	return b.String()
}
