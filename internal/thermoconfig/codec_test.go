package thermoconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"config.yaml", "yaml"},
		{"config.yml", "yaml"},
		{"CONFIG.TOML", "toml"},
		{"/etc/thermo/config.toml", "toml"},
		{"config", "yaml"},
		{"config.conf", "yaml"},
	}

	for _, tt := range tests {
		if got := FormatFor(tt.path); got != tt.want {
			t.Errorf("FormatFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSaveWritesDocumentShape(t *testing.T) {
	tests := []struct {
		file string
		want []string
	}{
		{"config.yaml", []string{"app:\n", "  name: SmartThermo\n", "  set_point: 70\n", "logging:\n", "  level: info\n"}},
		{"config.toml", []string{"[app]\n", "name = ", "SmartThermo", "set_point = 70\n", "[logging]\n", "level = "}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := Save(DefaultState(), path, DefaultAuxiliarySettings()); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read saved config: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(data), want) {
					t.Errorf("saved %s missing %q, got:\n%s", tt.file, want, data)
				}
			}
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(DefaultState(), nil)
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}

	got := string(data)
	if strings.HasPrefix(got, "#") {
		t.Error("MarshalYAML() should not include the file header")
	}
	if !strings.Contains(got, "logging: {}") {
		t.Errorf("nil aux should render as an empty mapping, got:\n%s", got)
	}
}
