// Package config stores saved cameras and preferences for povctl.
//
// The registry is a YAML file in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/povctl/config.yaml or $HOME/.config/povctl/config.yaml
//   - macOS: $HOME/.config/povctl/config.yaml
//   - Windows: %LOCALAPPDATA%\povctl\config.yaml
//
// POVCTL_CONFIG_DIR overrides the directory on every platform.
//
// # Security
//
// Camera passwords are never stored. They come from a flag, the environment
// or an interactive prompt each time.
//
// # Usage Example
//
//	registry, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = registry.AddCamera("lobby", &config.Camera{
//	    Host:          "192.168.1.20",
//	    Nickname:      "Lobby PTZ",
//	    DefaultStream: "sub",
//	})
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
