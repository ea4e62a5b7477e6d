// Package config decides where the thermostat configuration file lives.
//
// The file is looked up in this order:
//  1. An explicit path (the --config flag)
//  2. The SMARTTHERMO_CONFIG environment variable
//  3. config.yaml in the working directory
//
// With --user the CLI instead uses the per-user location, which follows
// OS-specific conventions:
//   - Linux and macOS: $XDG_CONFIG_HOME/smartthermo/config.yaml or $HOME/.config/smartthermo/config.yaml
//   - Windows: %LOCALAPPDATA%\smartthermo\config.yaml
//
// Reading and writing the file itself is handled by package thermoconfig.
package config
