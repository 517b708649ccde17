package emolog

import (
	"os"
	"path/filepath"
	"strings"
)

// Predefined severity levels for logging.
const (
	// DebugLevel represents debug-level messages for development diagnostics
	DebugLevel Severity = iota

	// InfoLevel indicates normal operational messages for tracking progress
	InfoLevel

	// WarningLevel signifies potential issues that don't disrupt core functionality
	WarningLevel

	// ErrorLevel denotes failures in specific operations or components
	ErrorLevel

	// CriticalLevel represents severe errors that demand immediate attention
	CriticalLevel

	// DisableLevel is a special threshold that disables all logging.
	// It is not a valid level to log at.
	DisableLevel
)

// severityNames holds the canonical upper-case name of each severity level.
var severityNames = [...]string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// defaultLabels are the decorative labels written in front of each message,
// one emoji per severity level followed by the level name.
var defaultLabels = [5]string{
	"🛠️ DEBUG",
	"📚 INFO",
	"🔥 WARNING",
	"⛔️ ERROR",
	"❌ CRITICAL",
}

// defaultTimeFormat is the timestamp layout used in framed output.
const defaultTimeFormat = "2006-01-02 15:04:05"

// Default frame decoration lines.
var (
	defaultBorderLine = strings.Repeat("=", 50)
	defaultSepLine    = strings.Repeat("-", 50)
)

// Default is a pre-configured Logger instance intended for general use.
// It is named after the current executable's base name, writes to os.Stdout,
// and is set to log messages at the Info level.
var Default = New(filepath.Base(os.Args[0]))
