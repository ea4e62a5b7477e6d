// Package thermoconfig loads, validates and persists the SmartThermo
// configuration file.
//
// The file holds two top-level sections: "app", which describes the
// thermostat (name, version, enabled features, operating mode and set point),
// and "logging", an opaque mapping that is handed back to the caller and
// written out again untouched.
//
// # File Format
//
//	app:
//	  name: SmartThermo
//	  version: 1.0.0
//	  features: [temperature_control]
//	  mode: "off"
//	  set_point: 70
//	logging:
//	  level: info
//	  file: logs/output.log
//
// Files ending in .toml are read and written as TOML with [app] and [logging]
// tables. Every other extension is treated as YAML.
//
// # Usage Example
//
//	state, aux, err := thermoconfig.Load("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(thermoconfig.Summarize(state, aux))
//
//	state.ChangeMode("cool")
//	state.UpdateSetPoint(67)
//
//	if err := thermoconfig.Save(state, "config.yaml", aux); err != nil {
//	    log.Fatal(err)
//	}
//
// # Bootstrap
//
// When no file exists at the requested path, Load writes a default document
// there and returns the default values directly.
//
// # Validation Policy
//
// The "app" section is required and must carry all five fields. A field that
// is present but null counts as missing. The "logging" section is optional;
// when absent it loads as an empty mapping. There is no default filling of
// individual fields.
//
// # Error Handling
//
// Every failure is a *ConfigError whose Type tells parse errors, missing
// sections, missing fields and I/O errors apart. Use the IsXxxError helpers
// or errors.Is with the ErrXxx sentinels to branch on the kind.
package thermoconfig
