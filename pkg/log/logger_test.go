package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden")
	logger.Notice("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message emitted at notice level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "[test]") {
		t.Errorf("notice message missing module tag: %q", out)
	}

	SetLevel(Debug)
	if !IsEnabled(Debug) {
		t.Error("debug should be enabled after SetLevel(Debug)")
	}
	logger.Debugf("pass %d", 3)
	if !strings.Contains(buf.String(), "pass 3") {
		t.Errorf("debug message missing: %q", buf.String())
	}
}
