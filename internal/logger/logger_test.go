package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLogBeforeInit(t *testing.T) {
	// The package-level logger discards until Init; this must not panic.
	Info("before init", zap.Int("frame", 1))
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "softcube.log")

	if err := Init("debug", logFile, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = Init("info", "", false) }()

	Log.Debug("frame rendered", zap.Int("drawn", 2))
	Named("driver").Info("loop stopped")
	Warn("fallback mesh")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	out := string(data)

	for _, want := range []string{"DEBUG", "frame rendered", "drawn", "driver", "loop stopped", "WARN", "fallback mesh"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "filtered.log")

	if err := Init("warn", logFile, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = Init("info", "", false) }()

	Info("hidden")
	Log.Error("shown")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("error entry should be written at warn level")
	}
}

func TestFileWriterRotates(t *testing.T) {
	w := fileWriter("x.log")
	if w.Filename != "x.log" || w.MaxSize <= 0 || w.MaxBackups <= 0 || !w.Compress {
		t.Errorf("unexpected rotation settings: %+v", w)
	}
}
