package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "vet-clinic", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("hello", map[string]any{"status": 200})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" || entry["app"] != "vet-clinic" || entry["request_id"] != "r-1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["status"] != float64(200) {
		t.Fatalf("expected status field, got %v", entry["status"])
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("skipped", nil)
	l.Warn("kept", nil)

	out := buf.String()
	if strings.Contains(out, "skipped") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "msg=kept") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestFromContext_FallsBackToNop(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected a usable logger")
	}

	var buf bytes.Buffer
	l := New(Options{Output: &buf})
	ctx := WithContext(context.Background(), l)
	FromContext(ctx).Info("from ctx", nil)
	if !strings.Contains(buf.String(), "from ctx") {
		t.Fatalf("expected stored logger to be used, got %q", buf.String())
	}
}
