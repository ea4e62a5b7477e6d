package thermoconfig

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	got := Summarize(DefaultState(), DefaultAuxiliarySettings())

	want := "Application: SmartThermo (v1.0.0)\n" +
		"Enabled Features: temperature_control\n" +
		"Mode: off\n" +
		"Set Point: 70\n" +
		"Logging: info -> logs/output.log"

	if got != want {
		t.Errorf("Summarize() =\n%s\nwant:\n%s", got, want)
	}
}

func TestSummarizeJoinsFeatures(t *testing.T) {
	state := DefaultState()
	state.Features = []string{"temperature_control", "humidity_sensor", "schedule"}

	got := Summarize(state, AuxiliarySettings{})

	if !strings.Contains(got, "Enabled Features: temperature_control, humidity_sensor, schedule\n") {
		t.Errorf("Summarize() should join features in order, got:\n%s", got)
	}
	if !strings.HasSuffix(got, "Logging:  -> ") {
		t.Errorf("Summarize() with empty aux should end with blank logging line, got:\n%s", got)
	}
}

func TestFormatDetailed(t *testing.T) {
	state := DefaultState()
	state.Features = []string{"temperature_control", "schedule"}

	got := FormatDetailed(state, DefaultAuxiliarySettings())

	for _, want := range []string{
		"Application: SmartThermo (v1.0.0)\n",
		"Enabled Features:\n- temperature_control\n- schedule\n",
		"Mode: off\n",
		"Set Point: 70\n",
		"Logging: info -> logs/output.log",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatDetailed() missing %q, got:\n%s", want, got)
		}
	}
}

func TestFormatDetailedNoFeatures(t *testing.T) {
	state := DefaultState()
	state.Features = nil

	if got := FormatDetailed(state, nil); !strings.Contains(got, "(none)") {
		t.Errorf("FormatDetailed() should mark an empty feature list, got:\n%s", got)
	}
}

func TestFormatCompact(t *testing.T) {
	state := DefaultState()
	state.ChangeMode("cool")
	state.UpdateSetPoint(67)

	if got, want := FormatCompact(state), "SmartThermo v1.0.0 [cool @ 67]"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatDiff(t *testing.T) {
	old := DefaultState()
	updated := old.Clone()
	updated.ChangeMode("cool")
	updated.UpdateSetPoint(67)

	got := FormatDiff(old, updated)

	if !strings.Contains(got, "Mode:      off → cool") {
		t.Errorf("FormatDiff() missing mode change, got:\n%s", got)
	}
	if !strings.Contains(got, "Set Point: 70 → 67") {
		t.Errorf("FormatDiff() missing set point change, got:\n%s", got)
	}
	if strings.Contains(got, "Name") || strings.Contains(got, "Features") {
		t.Errorf("FormatDiff() should only list changed fields, got:\n%s", got)
	}

	if got := FormatDiff(old, old.Clone()); got != "(no changes)\n" {
		t.Errorf("FormatDiff() of equal states = %q", got)
	}
}
