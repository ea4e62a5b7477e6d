package thermoconfig

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/muurk/smartthermo/internal/logging"
)

// Load reads the configuration file at path and returns a fresh DeviceState
// together with the logging section.
//
// When no file exists at path, the default document is written there and the
// default values are returned without reading the file back.
func Load(path string) (*DeviceState, AuxiliarySettings, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return bootstrap(path)
	} else if err != nil {
		return nil, nil, NewIOError(path, "failed to stat config file", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, NewIOError(path, "failed to read config file", err)
	}

	c := codecFor(path)
	raw, err := c.Decode(data)
	if err != nil {
		return nil, nil, NewParseError(path, "failed to parse config file as "+c.Name(), err)
	}

	state, aux, err := validateDocument(path, raw)
	if err != nil {
		logging.Warn("Config validation failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, nil, err
	}

	logging.LogConfigEvent(path, "loaded")
	logging.Debug("Config loaded", logFields(path, state)...)
	return state, aux, nil
}

// bootstrap writes the default document to path and returns its values.
func bootstrap(path string) (*DeviceState, AuxiliarySettings, error) {
	state := DefaultState()
	aux := DefaultAuxiliarySettings()

	if err := Save(state, path, aux); err != nil {
		return nil, nil, err
	}

	logging.LogConfigEvent(path, "bootstrapped")
	return state, aux, nil
}

// Save writes state and aux to path, replacing any existing content.
// The write is not atomic and no backup of the previous file is kept.
func Save(state *DeviceState, path string, aux AuxiliarySettings) error {
	c := codecFor(path)
	data, err := c.Encode(newDocument(state, aux))
	if err != nil {
		return NewEncodeError(path, err)
	}

	if err := os.WriteFile(path, data, defaultFileMode); err != nil {
		return NewIOError(path, "failed to write config file", err)
	}

	logging.LogConfigEvent(path, "saved")
	logging.Debug("Config saved", logFields(path, state)...)
	return nil
}

// Exists reports whether a configuration file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteDefault overwrites path with the default document, regardless of
// what is there.
func WriteDefault(path string) (*DeviceState, AuxiliarySettings, error) {
	return bootstrap(path)
}
