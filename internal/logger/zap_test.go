package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewCoreRespectsLevel(t *testing.T) {
	t.Parallel()

	for _, format := range []string{ConsoleFormat, JSONFormat} {
		core := newCore(zapcore.WarnLevel, format)
		if core.Enabled(zapcore.InfoLevel) {
			t.Fatalf("%s core: info should be disabled at warn level", format)
		}
		if !core.Enabled(zapcore.ErrorLevel) {
			t.Fatalf("%s core: error should be enabled at warn level", format)
		}
	}
}

func TestInitReturnsSingleton(t *testing.T) {
	a := Init(InfoLevel, JSONFormat)
	b := Get(DebugLevel)
	if a != b {
		t.Fatal("expected the same logger instance")
	}
}
