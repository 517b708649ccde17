package emolog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// readLog reads the file sink's content, failing the test on error.
func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file %s: %v", path, err)
	}
	return string(data)
}

// TestFileSinkAppends verifies the file sink scenario: the first error call
// writes exactly one labeled line, and a second call appends a second line
// without altering the first.
func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger := New("test-service", WithConsoleEnabled(false), WithFile(path))
	defer logger.Close()

	if err := logger.Error("boom"); err != nil {
		t.Fatalf("Unexpected error from Error: %v", err)
	}
	firstLine := defaultLabels[ErrorLevel] + " boom\n"
	if got := readLog(t, path); got != firstLine {
		t.Errorf("Expected file to contain exactly %q, got %q", firstLine, got)
	}

	if err := logger.Error("boom2"); err != nil {
		t.Fatalf("Unexpected error from second Error: %v", err)
	}
	want := firstLine + defaultLabels[ErrorLevel] + " boom2\n"
	if got := readLog(t, path); got != want {
		t.Errorf("Expected file to contain %q after second call, got %q", want, got)
	}
}

// TestFileSinkCreatesParentDirs verifies that missing parent directories of
// the file sink are created on first emission.
func TestFileSinkCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.log")
	logger := New("test-service", WithConsoleEnabled(false), WithFile(path))
	defer logger.Close()

	if err := logger.Info("nested"); err != nil {
		t.Fatalf("Unexpected error from Info: %v", err)
	}
	if !strings.Contains(readLog(t, path), "nested") {
		t.Errorf("Expected nested log file to contain the message")
	}
}

// TestFileSinkUnwritablePath verifies that an unwritable file path surfaces
// an I/O error from the logging call, and that the console sink was already
// written (console first, file second, no rollback).
func TestFileSinkUnwritablePath(t *testing.T) {
	tmp := t.TempDir()
	// A regular file where a directory is needed makes the path unwritable.
	block := filepath.Join(tmp, "block")
	if err := os.WriteFile(block, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}
	path := filepath.Join(block, "sub", "out.log")

	buf := new(bytes.Buffer)
	logger := New("test-service", WithConsole(buf), WithFile(path))

	err := logger.Error("boom")
	if err == nil {
		t.Fatal("Expected an I/O error for unwritable file path, got nil")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected console output despite file failure, got: %s", buf.String())
	}
}

// TestDualSink verifies that console and file sinks receive the same entry.
func TestDualSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	buf := new(bytes.Buffer)
	logger := New("test-service", WithConsole(buf), WithFile(path), WithThreshold(DebugLevel))
	defer logger.Close()

	if err := logger.Warning("both sinks"); err != nil {
		t.Fatalf("Unexpected error from Warning: %v", err)
	}
	want := defaultLabels[WarningLevel] + " both sinks\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected console output %q, got %q", want, got)
	}
	if got := readLog(t, path); got != want {
		t.Errorf("Expected file output %q, got %q", want, got)
	}
}

// TestFilteredMessageLeavesNoFile verifies lazy opening: a suppressed message
// does not create the file sink.
func TestFilteredMessageLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger := New("test-service", WithConsoleEnabled(false), WithFile(path))

	if err := logger.Debug("below threshold"); err != nil {
		t.Fatalf("Unexpected error from Debug: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no log file for a filtered message, stat error: %v", err)
	}
}

// TestSetFileRedirect verifies that SetFile closes the current file and
// directs subsequent entries to the new path, leaving the old file untouched.
func TestSetFileRedirect(t *testing.T) {
	tmp := t.TempDir()
	first := filepath.Join(tmp, "first.log")
	second := filepath.Join(tmp, "second.log")
	logger := New("test-service", WithConsoleEnabled(false), WithFile(first))
	defer logger.Close()

	_ = logger.Info("to first")
	if err := logger.SetFile(second); err != nil {
		t.Fatalf("Unexpected error from SetFile: %v", err)
	}
	_ = logger.Info("to second")

	if got := readLog(t, first); !strings.Contains(got, "to first") || strings.Contains(got, "to second") {
		t.Errorf("Expected first file to hold only the first entry, got %q", got)
	}
	if got := readLog(t, second); !strings.Contains(got, "to second") {
		t.Errorf("Expected second file to hold the redirected entry, got %q", got)
	}
}

// TestCloseReopens verifies that Close is safe to call repeatedly and that a
// later emission reopens the file in append mode.
func TestCloseReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger := New("test-service", WithConsoleEnabled(false), WithFile(path))

	_ = logger.Info("before close")
	if err := logger.Close(); err != nil {
		t.Fatalf("Unexpected error from Close: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Expected repeated Close to be a no-op, got: %v", err)
	}

	_ = logger.Info("after close")
	defer logger.Close()

	got := readLog(t, path)
	if !strings.Contains(got, "before close") || !strings.Contains(got, "after close") {
		t.Errorf("Expected both entries after reopen, got %q", got)
	}
	if strings.Count(got, "\n") != 2 {
		t.Errorf("Expected exactly two lines, got %q", got)
	}
}
