package thermoconfig

import (
	"fmt"
	"strings"
)

// Summarize returns the multi-line summary shown after loading:
//
//	Application: SmartThermo (v1.0.0)
//	Enabled Features: temperature_control
//	Mode: off
//	Set Point: 70
//	Logging: info -> logs/output.log
func Summarize(state *DeviceState, aux AuxiliarySettings) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Application: %s (v%s)\n", state.Name, state.Version))
	b.WriteString(fmt.Sprintf("Enabled Features: %s\n", strings.Join(state.Features, ", ")))
	b.WriteString(fmt.Sprintf("Mode: %s\n", state.Mode))
	b.WriteString(fmt.Sprintf("Set Point: %d\n", state.SetPoint))
	b.WriteString(fmt.Sprintf("Logging: %s -> %s", aux.Level(), aux.File()))

	return b.String()
}

// FormatDetailed returns the summary with one feature per line
func FormatDetailed(state *DeviceState, aux AuxiliarySettings) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Application: %s (v%s)\n", state.Name, state.Version))
	b.WriteString("Enabled Features:\n")
	if len(state.Features) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, feature := range state.Features {
		b.WriteString(fmt.Sprintf("- %s\n", feature))
	}
	b.WriteString(fmt.Sprintf("Mode: %s\n", state.Mode))
	b.WriteString(fmt.Sprintf("Set Point: %d\n", state.SetPoint))
	b.WriteString(fmt.Sprintf("Logging: %s -> %s", aux.Level(), aux.File()))

	return b.String()
}

// FormatCompact returns a one-line summary of the device state
func FormatCompact(state *DeviceState) string {
	return fmt.Sprintf("%s v%s [%s @ %d]", state.Name, state.Version, state.Mode, state.SetPoint)
}

// FormatDiff returns the fields that differ between two states, one per line
func FormatDiff(old, new *DeviceState) string {
	if old.Equal(new) {
		return "(no changes)\n"
	}

	var b strings.Builder

	if old.Name != new.Name {
		b.WriteString(fmt.Sprintf("Name:      %s → %s\n", old.Name, new.Name))
	}
	if old.Version != new.Version {
		b.WriteString(fmt.Sprintf("Version:   %s → %s\n", old.Version, new.Version))
	}
	oldFeatures, newFeatures := strings.Join(old.Features, ", "), strings.Join(new.Features, ", ")
	if oldFeatures != newFeatures {
		b.WriteString(fmt.Sprintf("Features:  %s → %s\n", oldFeatures, newFeatures))
	}
	if old.Mode != new.Mode {
		b.WriteString(fmt.Sprintf("Mode:      %s → %s\n", old.Mode, new.Mode))
	}
	if old.SetPoint != new.SetPoint {
		b.WriteString(fmt.Sprintf("Set Point: %d → %d\n", old.SetPoint, new.SetPoint))
	}

	return b.String()
}
