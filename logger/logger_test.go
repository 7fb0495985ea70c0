package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestDefaultLoggerIsNoop(t *testing.T) {
	// Must be usable before Initialize without panicking
	Info("message before init")
	Infow("structured message", "key", "value")
	Errorw("error message", "key", "value")
}

func TestInitializeConsole(t *testing.T) {
	if err := Initialize(false, 1); err != nil {
		t.Fatalf("Initialize(false, 1) error: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}
	if JSONOutput {
		t.Error("JSONOutput = true after console init")
	}
}

func TestInitializeJSON(t *testing.T) {
	if err := Initialize(true, 1); err != nil {
		t.Fatalf("Initialize(true, 1) error: %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput = false after JSON init")
	}
	Cleanup()
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		verbosity int
		want      string
	}{
		{0, zap.WarnLevel.String()},
		{1, zap.InfoLevel.String()},
		{2, zap.DebugLevel.String()},
		{5, zap.DebugLevel.String()},
	}
	for _, tc := range cases {
		if got := levelFor(tc.verbosity).String(); got != tc.want {
			t.Errorf("levelFor(%d) = %s, want %s", tc.verbosity, got, tc.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	if LevelName(0) != "WARN+" {
		t.Errorf("LevelName(0) = %s, want WARN+", LevelName(0))
	}
	if LevelName(1) != "INFO+" {
		t.Errorf("LevelName(1) = %s, want INFO+", LevelName(1))
	}
	if LevelName(3) != "DEBUG+" {
		t.Errorf("LevelName(3) = %s, want DEBUG+", LevelName(3))
	}
}
