// Package logging provides structured logging for the thermoctl CLI.
//
// This package wraps a global zap logger. It is silent by default so that
// command output stays clean; set SMARTTHERMO_LOG_LEVEL (or pass --log-level)
// to "debug", "info", "warn" or "error" to see log lines on stdout.
//
// # Configuration Events
//
//	logging.LogConfigEvent("config.yaml", "loaded")
//	logging.LogStateChange("mode", "off", "cool")
//
// # Log File
//
// AttachFile tees every entry at or above the given level into a rotating
// JSON file managed by lumberjack. The CLI uses the "logging" section of the
// configuration file (level and file) for this when --log-to-file is set:
//
//	if err := logging.AttachFile(aux.Level(), aux.File()); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
