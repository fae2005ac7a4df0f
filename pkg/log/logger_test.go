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
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden")
	logger.Notice("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message logged at notice level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("notice message missing at notice level")
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("row %d", 3)
	if !strings.Contains(buf.String(), "row 3") {
		t.Errorf("debug message missing at debug level, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[test]") {
		t.Errorf("expected module name in output, got %q", buf.String())
	}
}

func TestPrinterLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	printer := NewPrinter(New("printer"))

	SetLevel(Info)
	printer.Printf("rendering %s", "scene")
	if !strings.Contains(buf.String(), "rendering scene") {
		t.Errorf("expected printf output at info level, got %q", buf.String())
	}

	buf.Reset()
	SetLevel(Warning)
	printer.Printf("quiet")
	if buf.Len() != 0 {
		t.Errorf("expected no output at warning level, got %q", buf.String())
	}
}

func TestGetLevel(t *testing.T) {
	defer SetLevel(Notice)

	for _, level := range []Level{Debug, Info, Notice, Warning, Error} {
		SetLevel(level)
		if got := GetLevel(); got != level {
			t.Errorf("expected level %d, got %d", level, got)
		}
	}
}
