package thermoconfig

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/smartthermo/internal/logging"
)

// Top-level section names in the configuration document.
const (
	SectionApp     = "app"
	SectionLogging = "logging"
)

// App field names, in the order they are validated.
const (
	FieldName     = "name"
	FieldVersion  = "version"
	FieldFeatures = "features"
	FieldMode     = "mode"
	FieldSetPoint = "set_point"
)

// RequiredFields lists every field the app section must carry.
var RequiredFields = []string{FieldName, FieldVersion, FieldFeatures, FieldMode, FieldSetPoint}

// Default bootstrap values written when no configuration file exists.
const (
	DefaultName         = "SmartThermo"
	DefaultVersion      = "1.0.0"
	DefaultFeature      = "temperature_control"
	DefaultMode         = "off"
	DefaultSetPoint     = 70
	DefaultLogLevel     = "info"
	DefaultLogFile      = "logs/output.log"
	auxiliaryLevelKey   = "level"
	auxiliaryFileKey    = "file"
	defaultFileMode     = 0644
	configHeaderComment = "# SmartThermo configuration file\n"
)

// DeviceState is the in-memory record of the thermostat's identity and
// operating parameters. The caller owns it between Load and Save.
type DeviceState struct {
	Name     string   `yaml:"name" toml:"name" json:"name"`
	Version  string   `yaml:"version" toml:"version" json:"version"`
	Features []string `yaml:"features" toml:"features" json:"features"` // Display order is preserved
	Mode     string   `yaml:"mode" toml:"mode" json:"mode"`             // Free-form: "off", "heat", "cool", ...
	SetPoint int      `yaml:"set_point" toml:"set_point" json:"set_point"`
}

// AuxiliarySettings is the opaque "logging" section. It is never validated
// and is written back exactly as loaded.
type AuxiliarySettings map[string]any

// document is the on-disk shape produced by Save and by the default bootstrap.
type document struct {
	App     *DeviceState      `yaml:"app" toml:"app" json:"app"`
	Logging AuxiliarySettings `yaml:"logging" toml:"logging" json:"logging"`
}

// DefaultState returns a fresh DeviceState holding the bootstrap values.
func DefaultState() *DeviceState {
	return &DeviceState{
		Name:     DefaultName,
		Version:  DefaultVersion,
		Features: []string{DefaultFeature},
		Mode:     DefaultMode,
		SetPoint: DefaultSetPoint,
	}
}

// DefaultAuxiliarySettings returns a fresh logging section holding the
// bootstrap values.
func DefaultAuxiliarySettings() AuxiliarySettings {
	return AuxiliarySettings{
		auxiliaryLevelKey: DefaultLogLevel,
		auxiliaryFileKey:  DefaultLogFile,
	}
}

// ChangeMode sets the operating mode. Any value is accepted.
func (s *DeviceState) ChangeMode(mode string) {
	old := s.Mode
	s.Mode = mode
	logging.LogStateChange(FieldMode, old, mode)
}

// UpdateSetPoint sets the target temperature. No range is enforced.
func (s *DeviceState) UpdateSetPoint(temp int) {
	old := s.SetPoint
	s.SetPoint = temp
	logging.LogStateChange(FieldSetPoint, old, temp)
}

// Clone returns a deep copy of the state.
func (s *DeviceState) Clone() *DeviceState {
	c := *s
	if s.Features != nil {
		c.Features = append([]string(nil), s.Features...)
	}
	return &c
}

// Equal reports whether two states hold the same field values.
func (s *DeviceState) Equal(other *DeviceState) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Name != other.Name || s.Version != other.Version ||
		s.Mode != other.Mode || s.SetPoint != other.SetPoint {
		return false
	}
	if len(s.Features) != len(other.Features) {
		return false
	}
	for i := range s.Features {
		if s.Features[i] != other.Features[i] {
			return false
		}
	}
	return true
}

// Level returns the "level" entry as a string, or "" when absent.
func (a AuxiliarySettings) Level() string {
	return a.stringValue(auxiliaryLevelKey)
}

// File returns the "file" entry as a string, or "" when absent.
func (a AuxiliarySettings) File() string {
	return a.stringValue(auxiliaryFileKey)
}

func (a AuxiliarySettings) stringValue(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// newDocument builds the on-disk document, normalizing nil collections so
// both codecs emit an empty sequence/mapping instead of null.
func newDocument(state *DeviceState, aux AuxiliarySettings) *document {
	app := state.Clone()
	if app.Features == nil {
		app.Features = []string{}
	}
	if aux == nil {
		aux = AuxiliarySettings{}
	}
	return &document{App: app, Logging: aux}
}

func logFields(path string, state *DeviceState) []zap.Field {
	return []zap.Field{
		zap.String("path", path),
		zap.String("name", state.Name),
		zap.String("mode", state.Mode),
		zap.Int("set_point", state.SetPoint),
	}
}
