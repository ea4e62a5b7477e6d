package thermoconfig

import (
	"reflect"
	"testing"
)

func TestDefaultState(t *testing.T) {
	state := DefaultState()

	if state.Name != "SmartThermo" {
		t.Errorf("Name = %v, want SmartThermo", state.Name)
	}
	if state.Version != "1.0.0" {
		t.Errorf("Version = %v, want 1.0.0", state.Version)
	}
	if !reflect.DeepEqual(state.Features, []string{"temperature_control"}) {
		t.Errorf("Features = %v, want [temperature_control]", state.Features)
	}
	if state.Mode != "off" {
		t.Errorf("Mode = %v, want off", state.Mode)
	}
	if state.SetPoint != 70 {
		t.Errorf("SetPoint = %v, want 70", state.SetPoint)
	}

	// Each call returns an independent value
	state.Features[0] = "changed"
	if DefaultState().Features[0] != "temperature_control" {
		t.Error("DefaultState() should not share its Features slice")
	}
}

func TestDefaultAuxiliarySettings(t *testing.T) {
	aux := DefaultAuxiliarySettings()

	if aux.Level() != "info" {
		t.Errorf("Level() = %v, want info", aux.Level())
	}
	if aux.File() != "logs/output.log" {
		t.Errorf("File() = %v, want logs/output.log", aux.File())
	}
	if len(aux) != 2 {
		t.Errorf("len = %d, want 2", len(aux))
	}
}

func TestChangeMode(t *testing.T) {
	state := DefaultState()
	before := state.Clone()

	state.ChangeMode("cool")

	if state.Mode != "cool" {
		t.Errorf("Mode = %v, want cool", state.Mode)
	}
	if state.SetPoint != before.SetPoint || state.Name != before.Name ||
		state.Version != before.Version || !reflect.DeepEqual(state.Features, before.Features) {
		t.Errorf("ChangeMode() altered other fields: got %+v, before %+v", state, before)
	}
}

func TestChangeModeAcceptsAnyValue(t *testing.T) {
	for _, mode := range []string{"heat", "eco", "", "AUTO"} {
		state := DefaultState()
		state.ChangeMode(mode)
		if state.Mode != mode {
			t.Errorf("ChangeMode(%q) left Mode = %q", mode, state.Mode)
		}
	}
}

func TestUpdateSetPoint(t *testing.T) {
	tests := []int{67, 0, -10, 500}

	for _, temp := range tests {
		state := DefaultState()
		before := state.Clone()

		state.UpdateSetPoint(temp)

		if state.SetPoint != temp {
			t.Errorf("UpdateSetPoint(%d) left SetPoint = %d", temp, state.SetPoint)
		}
		if state.Mode != before.Mode || state.Name != before.Name {
			t.Errorf("UpdateSetPoint(%d) altered other fields: %+v", temp, state)
		}
	}
}

func TestClone(t *testing.T) {
	state := DefaultState()
	clone := state.Clone()

	if !clone.Equal(state) {
		t.Fatalf("Clone() = %+v, want %+v", clone, state)
	}

	clone.Features[0] = "humidity_sensor"
	clone.Mode = "heat"
	if state.Features[0] != "temperature_control" || state.Mode != "off" {
		t.Error("Clone() should not share state with the original")
	}
}

func TestEqual(t *testing.T) {
	base := DefaultState()

	tests := []struct {
		name   string
		mutate func(s *DeviceState)
		want   bool
	}{
		{"identical", func(s *DeviceState) {}, true},
		{"name", func(s *DeviceState) { s.Name = "Other" }, false},
		{"version", func(s *DeviceState) { s.Version = "2.0.0" }, false},
		{"mode", func(s *DeviceState) { s.Mode = "heat" }, false},
		{"set point", func(s *DeviceState) { s.SetPoint = 71 }, false},
		{"extra feature", func(s *DeviceState) { s.Features = append(s.Features, "x") }, false},
		{"feature order", func(s *DeviceState) {
			s.Features = []string{"b", "a"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Clone()
			tt.mutate(other)
			if got := base.Equal(other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}

	var nilState *DeviceState
	if !nilState.Equal(nil) {
		t.Error("nil states should be equal")
	}
	if base.Equal(nil) {
		t.Error("non-nil state should not equal nil")
	}
}

func TestAuxiliaryAccessors(t *testing.T) {
	tests := []struct {
		name      string
		aux       AuxiliarySettings
		wantLevel string
		wantFile  string
	}{
		{"nil", nil, "", ""},
		{"empty", AuxiliarySettings{}, "", ""},
		{"strings", AuxiliarySettings{"level": "warn", "file": "a.log"}, "warn", "a.log"},
		{"non-string", AuxiliarySettings{"level": 3, "file": nil}, "3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aux.Level(); got != tt.wantLevel {
				t.Errorf("Level() = %q, want %q", got, tt.wantLevel)
			}
			if got := tt.aux.File(); got != tt.wantFile {
				t.Errorf("File() = %q, want %q", got, tt.wantFile)
			}
		})
	}
}
