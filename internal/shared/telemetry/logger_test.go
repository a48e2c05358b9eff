package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) []map[string]any {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read log output: %v", err)
	}
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(line), &payload); err != nil {
			t.Fatalf("decode log json %q: %v", line, err)
		}
		out = append(out, payload)
	}
	return out
}

func TestLogLinesCarryLevelMessageAndFields(t *testing.T) {
	lines := captureStdout(t, func() {
		Info("resume.generate.start", map[string]any{"template": "modern", "experience_count": 2})
		Warn("optimize.shape_violation", map[string]any{"violation": "skills: invalid type"})
		Error("llm.call", map[string]any{"error": errors.New("boom")})
	})
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(lines))
	}

	wantLevels := []string{"info", "warn", "error"}
	for i, line := range lines {
		if line["level"] != wantLevels[i] {
			t.Fatalf("line %d: expected level %s, got %v", i, wantLevels[i], line["level"])
		}
		if _, ok := line["ts"]; !ok {
			t.Fatalf("line %d: missing ts", i)
		}
	}
	if lines[0]["msg"] != "resume.generate.start" || lines[0]["template"] != "modern" {
		t.Fatalf("unexpected info line: %v", lines[0])
	}
	if lines[2]["error"] != "boom" {
		t.Fatalf("expected error string, got %v", lines[2]["error"])
	}
}

func TestDebugIsGated(t *testing.T) {
	EnableDebug(false)
	lines := captureStdout(t, func() {
		Debug("hidden", nil)
	})
	if len(lines) != 0 {
		t.Fatalf("expected no debug output, got %v", lines)
	}

	EnableDebug(true)
	t.Cleanup(func() { EnableDebug(false) })
	lines = captureStdout(t, func() {
		Debug("shown", nil)
	})
	if len(lines) != 1 || lines[0]["level"] != "debug" {
		t.Fatalf("expected one debug line, got %v", lines)
	}
}
