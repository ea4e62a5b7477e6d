package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"WARNING", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is configured")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	defer resetLogger()

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestAttachFile(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer resetLogger()

	path := filepath.Join(t.TempDir(), "logs", "output.log")
	if err := AttachFile("info", path); err != nil {
		t.Fatalf("AttachFile() error = %v", err)
	}

	LogConfigEvent("config.yaml", "saved")
	Debug("filtered out")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, `"event":"saved"`) {
		t.Errorf("log file missing config event, got: %s", content)
	}
	if strings.Contains(content, "filtered out") {
		t.Errorf("debug entry should not reach an info-level file, got: %s", content)
	}
}

func TestAttachFileEmptyPath(t *testing.T) {
	if err := AttachFile("info", ""); err == nil {
		t.Error("AttachFile() with empty path should fail")
	}
}

func TestAttachFileReplacesPrevious(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize("info"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer resetLogger()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	if err := AttachFile("info", first); err != nil {
		t.Fatalf("AttachFile(first) error = %v", err)
	}
	Info("before switch")

	if err := AttachFile("info", second); err != nil {
		t.Fatalf("AttachFile(second) error = %v", err)
	}
	Info("after switch")
	Sync()

	firstData, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("first log not written: %v", err)
	}
	if !strings.Contains(string(firstData), "before switch") {
		t.Errorf("first log missing entry written before the switch, got: %s", firstData)
	}
	if strings.Contains(string(firstData), "after switch") {
		t.Errorf("first log should not receive entries after the switch, got: %s", firstData)
	}

	secondData, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("second log not written: %v", err)
	}
	if strings.Contains(string(secondData), "before switch") {
		t.Errorf("second log should only hold entries after the switch, got: %s", secondData)
	}
	if !strings.Contains(string(secondData), "after switch") {
		t.Errorf("second log missing entry written after the switch, got: %s", secondData)
	}
}

func resetLogger() {
	closeFile()
	logger = nil
	baseCore = nil
}
