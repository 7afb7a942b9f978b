package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level   log.Level
		debug   bool
		wantOut bool
	}{
		{log.InfoLevel, false, true},
		{log.InfoLevel, true, false},
		{log.DebugLevel, true, true},
		{log.WarnLevel, false, false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := newLogger(&buf, tt.level)
		if tt.debug {
			l.Debug("generated frame")
		} else {
			l.Info("generated frame")
		}
		if got := buf.Len() > 0; got != tt.wantOut {
			t.Errorf("level %v debug=%v: wrote %v, want %v", tt.level, tt.debug, got, tt.wantOut)
		}
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("rendered", "sketch", "arc")

	for _, want := range []string{"rendered", "elapsed=", "sketch=arc"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("progress.done() output %q missing %q", buf.String(), want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should yield log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}

	c := New(&buf, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)
	if !c.verbose() {
		t.Error("debug level should be verbose")
	}
}
