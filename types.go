package emolog

import (
	"io"
	"os"
)

// Severity defines the logging severity level as an unsigned 32-bit integer.
// Higher values indicate more urgent messages.
type Severity uint32

// Logger represents a logging instance with its configuration settings. It holds
// the logger's identifier, the console and file sinks, the severity threshold,
// the decorative per-level labels, and the frame and timestamp configuration.
type Logger struct {
	name           string    // Logger identifier, shown in framed output.
	console        io.Writer // Console sink (e.g., os.Stdout).
	consoleEnabled bool      // If false, nothing is written to the console sink.
	filePath       string    // Path of the file sink; empty means no file output.
	file           *os.File  // Append-mode file handle, opened on first emission.
	minLevel       Severity  // Minimum severity level to log; lower levels are dropped.
	labels         [5]string // Decorative labels, one per severity level.
	timeFormat     string    // Format for framed timestamps (Go reference time format).
	useUTC         bool      // If true, framed timestamps are in UTC; otherwise, local time.
	framed         bool      // If true, entries are wrapped in a bordered frame.
	borderLine     string    // Opening and closing line of a framed entry.
	sepLine        string    // Line separating the frame header from the message.
	dedup          bool      // If true, consecutive identical entries are dropped.
	lastEntry      string    // Severity and message of the previous emission, used by dedup.
}

// Option defines a functional option for configuring a Logger instance during creation.
// Each Option is a function that accepts a pointer to a Logger and modifies its configuration.
type Option func(*Logger)

// Caller is a type alias for specifying the caller stack skip depth.
// It allows the developer to indicate how many stack frames to skip when reporting
// the source location (file, function and line number) of the log call in framed output.
type Caller int

// locker is an interface that defines basic locking operations.
// If the console sink implements this interface, it is locked during writes to
// ensure thread safety.
type locker interface {
	Lock()
	Unlock()
}
