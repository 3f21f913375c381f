package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestSourceAttr(t *testing.T) {
	if isSystemdService() {
		t.Skip("logging to the journal")
	}
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelWarn)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := WithSource(context.Background(), "hello.bf")
		logger.With("pass", "cancel").DebugContext(ctx, "optimized")
		line := buf.String()
		if !strings.Contains(line, "source=hello.bf") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "pass=cancel") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestLevel(t *testing.T) {
	if isSystemdService() {
		t.Skip("logging to the journal")
	}
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		if buf.Len() != 0 {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("run.steps-max"); got != "RUN_STEPS_MAX" {
		t.Fatalf("got %q", got)
	}
}
