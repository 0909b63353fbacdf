package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"
)

type captureHandler struct {
	min  slog.Level
	msgs []string
}

func (h *captureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.msgs = append(h.msgs, record.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

type failingHandler struct{}

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}
func (failingHandler) WithAttrs([]slog.Attr) slog.Handler { return failingHandler{} }
func (failingHandler) WithGroup(string) slog.Handler      { return failingHandler{} }

func TestFanout_PerSinkLevelGating(t *testing.T) {
	stdout := &captureHandler{min: slog.LevelInfo}
	errorSink := &captureHandler{min: slog.LevelError}
	log := slog.New(Fanout(stdout, errorSink))

	log.Info("listing created")
	log.Error("listing rejected")

	if len(stdout.msgs) != 2 {
		t.Fatalf("stdout sink saw %d records, want 2", len(stdout.msgs))
	}
	if len(errorSink.msgs) != 1 || errorSink.msgs[0] != "listing rejected" {
		t.Fatalf("error sink saw %v, want only the error record", errorSink.msgs)
	}
}

func TestFanout_FailingSinkDoesNotStarveOthers(t *testing.T) {
	healthy := &captureHandler{min: slog.LevelInfo}
	fan := Fanout(failingHandler{}, healthy)

	record := slog.NewRecord(time.Now(), slog.LevelError, "db unreachable", 0)
	err := fan.Handle(context.Background(), record)
	if err == nil {
		t.Fatal("failing sink's error was swallowed")
	}
	if len(healthy.msgs) != 1 || healthy.msgs[0] != "db unreachable" {
		t.Fatalf("healthy sink saw %v, want the record despite the failure", healthy.msgs)
	}
}

func TestFanout_EnabledWhenAnySinkIs(t *testing.T) {
	fan := Fanout(&captureHandler{min: slog.LevelError})
	if fan.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug enabled with an error-only sink")
	}
	if !fan.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error not enabled")
	}
}
