package emolog

import (
	"io"
	"os"
	"path/filepath"
)

// ensureFile opens the append-mode file sink if it is not already open,
// creating parent directories as needed. The handle stays open across
// emissions until Close or SetFile.
func (l *Logger) ensureFile() error {
	if l.file != nil {
		return nil
	}
	if dir := filepath.Dir(l.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	l.file = f
	return nil
}

// writeFile appends the entry to the file sink, opening it on first use.
func (l *Logger) writeFile(entry string) error {
	if err := l.ensureFile(); err != nil {
		return err
	}
	_, err := io.WriteString(l.file, entry)
	return err
}

// SetFile redirects the file sink to a new path, closing the currently open
// file if any. An empty path disables file output. The new file is opened on
// the next emission.
func (l *Logger) SetFile(path string) error {
	if err := l.Close(); err != nil {
		return err
	}
	l.filePath = path
	return nil
}

// Close releases the file sink if one is open. The logger remains usable
// afterwards; a subsequent emission reopens the file. Calling Close on a
// logger without an open file is a no-op.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
