package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"log/slog"
)

func TestContextHandlerKV(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newContextHandler(formatKV, buf, slog.LevelInfo)

	ctx := WithRID(Background(), BuildRID(42, 7, 9))
	ctx = WithUpdateMeta(ctx, 42, 9, 7)
	ctx = WithHandler(ctx, "command.start")

	log := slog.New(handler).With("component", "tg")
	LogEvent(ctx, log, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
	)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	for _, want := range []string{
		"component=tg",
		"event=test.event",
		"status=ok",
		"rid=42:7:9",
		"update_id=42",
		"chat_id=7",
		"user_id=9",
		"handler=command.start",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line missing %q: %s", want, line)
		}
	}
}

func TestContextHandlerJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newContextHandler(formatJSON, buf, slog.LevelInfo)

	ctx := WithRID(Background(), "rid-1")
	slog.New(handler).InfoContext(ctx, "json.event")

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("not valid JSON: %v (%s)", err, buf.String())
	}
	if payload["rid"] != "rid-1" {
		t.Fatalf("rid = %v", payload["rid"])
	}
	if payload["msg"] != "json.event" {
		t.Fatalf("msg = %v", payload["msg"])
	}
}

func TestContextHandlerLevelGate(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := newContextHandler(formatKV, buf, slog.LevelWarn)

	slog.New(handler).Info("quiet.event")
	if buf.Len() != 0 {
		t.Fatalf("info leaked past warn gate: %s", buf.String())
	}

	slog.New(handler).Warn("loud.event")
	if buf.Len() == 0 {
		t.Fatal("warn suppressed")
	}
}

func TestBuildRID(t *testing.T) {
	if got := BuildRID(42, 7, 9); got != "42:7:9" {
		t.Fatalf("rid = %q", got)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("a\x00b\x1bc"); got != "abc" {
		t.Fatalf("control chars survived: %q", got)
	}
	if got := Sanitize("line one\nline two\ttabbed"); got != "line one\nline two\ttabbed" {
		t.Fatalf("newline and tab not preserved: %q", got)
	}
	long := strings.Repeat("x", 300)
	if got := SanitizeLimit(long, 64); len(got) > 70 {
		t.Fatalf("limit not applied: %d chars", len(got))
	}
}
