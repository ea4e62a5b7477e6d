package thermoconfig

import (
	"fmt"
	"math"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// validateDocument checks a decoded document against the required layout and
// builds a fresh DeviceState from it. The logging section is optional and
// comes back as an empty mapping when absent or null.
func validateDocument(path string, raw map[string]any) (*DeviceState, AuxiliarySettings, error) {
	appRaw, ok := raw[SectionApp]
	if !ok || appRaw == nil {
		return nil, nil, NewMissingSectionError(path, SectionApp)
	}
	app, ok := asMapping(appRaw)
	if !ok {
		return nil, nil, NewParseError(path, fmt.Sprintf("section %q must be a mapping, got %s", SectionApp, kindOf(appRaw)), nil)
	}

	if err := validateRequiredFields(path, app); err != nil {
		return nil, nil, err
	}

	state, err := stateFromSection(path, app)
	if err != nil {
		return nil, nil, err
	}

	aux, err := auxiliaryFromSection(path, raw[SectionLogging])
	if err != nil {
		return nil, nil, err
	}

	return state, aux, nil
}

// validateRequiredFields checks that every required field is present and
// non-null in an app section. The error names the first missing field in
// RequiredFields order.
func validateRequiredFields(path string, app map[string]any) error {
	for _, field := range RequiredFields {
		if v, ok := app[field]; !ok || v == nil {
			return NewMissingFieldError(path, field)
		}
	}
	return nil
}

func stateFromSection(path string, app map[string]any) (*DeviceState, error) {
	var (
		state DeviceState
		err   error
	)

	if state.Name, err = scalarString(path, FieldName, app[FieldName]); err != nil {
		return nil, err
	}
	if state.Version, err = scalarString(path, FieldVersion, app[FieldVersion]); err != nil {
		return nil, err
	}
	if state.Features, err = stringList(path, FieldFeatures, app[FieldFeatures]); err != nil {
		return nil, err
	}
	if state.Mode, err = scalarString(path, FieldMode, app[FieldMode]); err != nil {
		return nil, err
	}
	if state.SetPoint, err = integer(path, FieldSetPoint, app[FieldSetPoint]); err != nil {
		return nil, err
	}

	return &state, nil
}

func auxiliaryFromSection(path string, v any) (AuxiliarySettings, error) {
	if v == nil {
		return AuxiliarySettings{}, nil
	}
	m, ok := asMapping(v)
	if !ok {
		return nil, NewParseError(path, fmt.Sprintf("section %q must be a mapping, got %s", SectionLogging, kindOf(v)), nil)
	}
	return AuxiliarySettings(m), nil
}

// scalarString accepts any scalar and returns its text form, so unquoted
// values such as `version: 2` still load. YAML text fields arrive as the
// literal text already; this covers TOML's typed values.
func scalarString(path, field string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int64, uint64:
		return fmt.Sprint(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	case toml.LocalDate, toml.LocalDateTime, toml.LocalTime:
		return fmt.Sprint(t), nil
	default:
		return "", NewFieldParseError(path, field, fmt.Sprintf("expected a scalar value, got %s", kindOf(v)))
	}
}

func stringList(path, field string, v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return append([]string{}, t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			if item == nil {
				return nil, NewFieldParseError(path, field, fmt.Sprintf("item %d is null", i))
			}
			s, err := scalarString(path, field, item)
			if err != nil {
				return nil, NewFieldParseError(path, field, fmt.Sprintf("item %d: expected a scalar value, got %s", i, kindOf(item)))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, NewFieldParseError(path, field, fmt.Sprintf("expected a list, got %s", kindOf(v)))
	}
}

func integer(path, field string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		if t < math.MinInt || t > math.MaxInt {
			return 0, NewFieldParseError(path, field, fmt.Sprintf("value %d out of range", t))
		}
		return int(t), nil
	case uint64:
		if t > math.MaxInt {
			return 0, NewFieldParseError(path, field, fmt.Sprintf("value %d out of range", t))
		}
		return int(t), nil
	case float64:
		if t != math.Trunc(t) || t < math.MinInt || t > math.MaxInt {
			return 0, NewFieldParseError(path, field, fmt.Sprintf("expected a whole number, got %v", t))
		}
		return int(t), nil
	default:
		return 0, NewFieldParseError(path, field, fmt.Sprintf("expected an integer, got %s", kindOf(v)))
	}
}

// asMapping normalizes the mapping types the decoders produce. yaml.v3 falls
// back to map[interface{}]interface{} when a mapping has non-string keys.
func asMapping(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case AuxiliarySettings:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case time.Time, toml.LocalDate, toml.LocalDateTime, toml.LocalTime:
		return "datetime"
	case []any, []string:
		return "list"
	case map[string]any, map[any]any, AuxiliarySettings:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
