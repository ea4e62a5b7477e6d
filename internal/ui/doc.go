// Package ui renders terminal output for the thermoctl CLI.
//
// Components follow a "render once and print" pattern:
//
//   - Panel: titled box listing the device state fields
//   - Result: success, failure or warning box with details and
//     troubleshooting tips
//
// Both render with lipgloss when stdout is a terminal and fall back to plain
// text otherwise, so output piped to files or other tools stays readable.
//
//	fmt.Println(ui.RenderSuccess("Configuration saved", []ui.Detail{
//	    {Key: "File", Value: "config.yaml"},
//	    {Key: "Mode", Value: "cool"},
//	}))
//
// Logging is controlled separately by SMARTTHERMO_LOG_LEVEL; when unset, zap
// is silent and only these components write to stdout.
package ui
