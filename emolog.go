// Package emolog provides a minimalist logging library with emoji-decorated
// severity labels, configurable severity filtering, and console and file sinks.
//
// Key features:
//   - Five severity levels (Debug, Info, Warning, Error, Critical) with emoji labels
//   - Console output and append-mode file output, individually configurable
//   - Optional framed output with timestamps and caller source location
//   - Optional suppression of consecutive duplicate entries
//   - Package-level default logger and configurable instances
package emolog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidSeverity is returned when a severity level outside the five
// defined levels is supplied dynamically, either to Log or to ParseSeverity.
var ErrInvalidSeverity = errors.New("emolog: invalid severity level")

// String returns the canonical upper-case name of the severity level,
// or "UNKNOWN" for values outside the defined range.
func (s Severity) String() string {
	if s >= DisableLevel {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// ParseSeverity converts a level name such as "debug" or "WARNING" into its
// Severity value. Matching is case-insensitive and ignores surrounding
// whitespace. An unrecognized name yields ErrInvalidSeverity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeverity, name)
	}
}

// New creates a new Logger instance configured with the provided options.
// Without options the logger writes to os.Stdout only, filters below the Info
// level, and emits plain "<label> <message>" lines. An empty name is replaced
// with the current executable's base name.
//
// Example:
//
//	logger := New("my-service", WithThreshold(DebugLevel), WithFile("logs/service.log"))
func New(name string, opts ...Option) *Logger {
	if name == "" {
		name = filepath.Base(os.Args[0])
	}
	l := &Logger{
		name:           name,
		console:        os.Stdout,
		consoleEnabled: true,
		minLevel:       InfoLevel,
		labels:         defaultLabels,
		timeFormat:     defaultTimeFormat,
		borderLine:     defaultBorderLine,
		sepLine:        defaultSepLine,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithThreshold returns an Option that sets the initial minimum severity level.
// Messages with a lower level are silently dropped. Values above DisableLevel
// are ignored.
func WithThreshold(level Severity) Option {
	return func(l *Logger) {
		if level <= DisableLevel {
			l.minLevel = level
		}
	}
}

// WithConsole returns an Option that replaces the console sink with the given
// writer. A nil writer is ignored.
//
// Example:
//
//	logger := New("my-service", WithConsole(os.Stderr))
func WithConsole(w io.Writer) Option {
	return func(l *Logger) {
		if w != nil {
			l.console = w
		}
	}
}

// WithConsoleEnabled returns an Option that enables or disables console
// output. Combine with WithFile for file-only logging.
func WithConsoleEnabled(enabled bool) Option {
	return func(l *Logger) {
		l.consoleEnabled = enabled
	}
}

// WithFile returns an Option that enables the file sink. The file is opened
// in append mode on the first emission, creating parent directories as
// needed; open or write failures surface from the logging call.
//
// Example:
//
//	logger := New("my-service", WithFile("logs/service.log"))
func WithFile(path string) Option {
	return func(l *Logger) {
		l.filePath = path
	}
}

// WithLabels returns an Option that sets custom decorative labels for the
// severity levels, one per level from Debug through Critical.
//
// Example:
//
//	logger := New("my-service", WithLabels([5]string{"DBG", "INF", "WRN", "ERR", "CRT"}))
func WithLabels(labels [5]string) Option {
	return func(l *Logger) {
		l.labels = labels
	}
}

// WithTimeFormat returns an Option that sets a custom layout for the
// timestamps in framed output. The layout should be specified using Go's
// reference time (Mon Jan 2 15:04:05 MST 2006).
func WithTimeFormat(format string) Option {
	return func(l *Logger) {
		l.timeFormat = format
	}
}

// WithUTC returns an Option that configures the Logger to use UTC for framed
// timestamps if set to true, or the local time zone if false.
func WithUTC(utc bool) Option {
	return func(l *Logger) {
		l.useUTC = utc
	}
}

// WithFrame returns an Option that enables or disables framed output. A
// framed entry wraps the message in border lines and adds a header with the
// timestamp, severity, logger name, and caller source location.
func WithFrame(framed bool) Option {
	return func(l *Logger) {
		l.framed = framed
	}
}

// WithFrameLines returns an Option that sets custom border and separator
// lines for framed output. Empty strings are ignored.
func WithFrameLines(border, sep string) Option {
	return func(l *Logger) {
		if border != "" {
			l.borderLine = border
		}
		if sep != "" {
			l.sepLine = sep
		}
	}
}

// WithDedup returns an Option that enables suppression of consecutive
// duplicate entries: an emission carrying the same severity and message as
// the previous one is dropped. Disabled by default.
func WithDedup(dedup bool) Option {
	return func(l *Logger) {
		l.dedup = dedup
	}
}

// Name returns the logger's identifier.
func (l *Logger) Name() string {
	return l.name
}

// UpdateConsole safely updates the Logger's console sink to a new writer.
// If both the current writer and the new writer implement the locker interface but are not the same,
// the update is rejected (returns false) to avoid locking mismatches. Otherwise, the writer is updated.
// The function locks the current writer (if possible) during the update to ensure thread safety.
//
// Parameters:
//   - w: the new io.Writer to use as the console sink.
//
// Returns:
//   - true if the writer was successfully updated.
//   - false if the update was rejected due to nil writer or incompatible locking behavior.
func (l *Logger) UpdateConsole(w io.Writer) bool {
	if w == nil {
		return false
	}
	currentLocker, hasLock := l.console.(locker)
	newLocker, newHasLock := w.(locker)
	if hasLock && newHasLock && currentLocker != newLocker {
		return false
	}
	if hasLock {
		currentLocker.Lock()
		defer currentLocker.Unlock()
	}
	l.console = w
	return true
}

// SetLevel changes the Logger's minimum logging severity level at runtime.
// Only messages at or above the new level will be logged.
//
// Parameters:
//   - level: the new Severity level to set. Must be a valid level (less than or equal to DisableLevel).
func (l *Logger) SetLevel(level Severity) {
	if level <= DisableLevel {
		l.minLevel = level
	}
}

// GetLevel returns the current minimum logging severity level.
// This can be used to inspect the current filtering threshold for logging messages.
func (l *Logger) GetLevel() Severity {
	return l.minLevel
}

// Log is the core function that writes a log entry to the enabled sinks if
// the message's severity is at or above the Logger's configured minimum
// level. It accepts an optional Caller argument as the first parameter to
// control the stack skip depth when framed output captures the caller's
// source location.
//
// The console sink is written first and the file sink second; the two writes
// are independent, so a file failure does not undo the console output.
//
// Parameters:
//   - level: the Severity level of the log message.
//   - msg: one or more message components to be logged. If the first argument is of type Caller,
//     it is used to set the caller depth (number of stack frames to skip).
//
// Returns:
//   - ErrInvalidSeverity if level is not one of the five defined severities.
//   - An error if there is a failure while writing to a sink; otherwise, nil.
func (l *Logger) Log(level Severity, msg ...interface{}) error {
	if level >= DisableLevel {
		return ErrInvalidSeverity
	}
	// Do nothing if the message severity is below the minimum level or no message is provided.
	if level < l.minLevel || len(msg) == 0 {
		return nil
	}

	// Process the optional Caller argument (if provided as the first element).
	skip := 0
	if depth, ok := msg[0].(Caller); ok {
		skip = int(depth)
		if skip < 0 {
			skip = 0
		} else if skip > 99 {
			skip = 99
		}
		msg = msg[1:]
		if len(msg) == 0 {
			return nil
		}
	}

	// Combine the log message components.
	// If there is only one message argument and it is a string, use it directly.
	var text string
	if len(msg) == 1 {
		if s, ok := msg[0].(string); ok {
			text = s
		} else {
			text = fmt.Sprint(msg[0])
		}
	} else {
		// For multiple arguments, combine them using fmt.Sprint.
		text = fmt.Sprint(msg...)
	}

	// Drop the entry when it repeats the previous emission verbatim.
	if l.dedup {
		key := severityNames[level] + "\x00" + text
		if key == l.lastEntry {
			return nil
		}
		l.lastEntry = key
	}

	// Use strings.Builder to efficiently build the complete log entry.
	var b strings.Builder
	b.Grow(128) // Pre-allocate an estimated capacity to minimize allocations.

	if l.framed {
		l.writeFrameHeader(&b, level, skip+3)
	}
	b.WriteString(l.labels[level])
	b.WriteByte(' ')
	b.WriteString(text)
	if l.framed {
		b.WriteByte('\n')
		b.WriteString(l.borderLine)
	}
	// Ensure the entry ends with a newline.
	if b.String()[b.Len()-1] != '\n' {
		b.WriteByte('\n')
	}
	entry := b.String()

	// Console first, file second. The writes are independent: a file failure
	// leaves the console output in place and vice versa.
	var consoleErr, fileErr error
	if l.consoleEnabled && l.console != nil {
		consoleErr = l.writeConsole(entry)
	}
	if l.filePath != "" {
		fileErr = l.writeFile(entry)
	}
	return errors.Join(consoleErr, fileErr)
}

// writeConsole writes the entry to the console sink with locking if available.
func (l *Logger) writeConsole(entry string) error {
	if lock, ok := l.console.(locker); ok {
		lock.Lock()
		defer lock.Unlock()
	}
	_, err := io.WriteString(l.console, entry)
	return err
}

// Debug logs a debug-level message using the Logger instance.
// An optional Caller argument may be provided as the first parameter to control the caller depth.
//
// Example:
//
//	logger.Debug("This is a debug message.")
//	logger.Debug(Caller(1), "Message from a wrapper function.")
func (l *Logger) Debug(msg ...interface{}) error {
	return l.Log(DebugLevel, msg...)
}

// Debugf logs a formatted debug-level message using the Logger instance.
// It formats the message using the provided format string and arguments.
//
// Example:
//
//	logger.Debugf("Debug value: %v", someValue)
func (l *Logger) Debugf(format string, args ...interface{}) error {
	return l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the Logger instance.
// An optional Caller argument may be provided as the first parameter to control the caller depth.
func (l *Logger) Info(msg ...interface{}) error {
	return l.Log(InfoLevel, msg...)
}

// Infof logs a formatted informational message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warning logs a warning message using the Logger instance.
// An optional Caller argument may be provided as the first parameter to control the caller depth.
func (l *Logger) Warning(msg ...interface{}) error {
	return l.Log(WarningLevel, msg...)
}

// Warningf logs a formatted warning message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.Log(WarningLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message using the Logger instance.
// An optional Caller argument may be provided as the first parameter to control the caller depth.
func (l *Logger) Error(msg ...interface{}) error {
	return l.Log(ErrorLevel, msg...)
}

// Errorf logs a formatted error message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Critical logs a critical message using the Logger instance.
// An optional Caller argument may be provided as the first parameter to control the caller depth.
func (l *Logger) Critical(msg ...interface{}) error {
	return l.Log(CriticalLevel, msg...)
}

// Criticalf logs a formatted critical message using the Logger instance.
// It formats the message using the provided format string and arguments.
func (l *Logger) Criticalf(format string, args ...interface{}) error {
	return l.Log(CriticalLevel, fmt.Sprintf(format, args...))
}

// Debug logs a debug-level message using the package-level Default logger.
// An optional Caller argument may be provided as the first parameter.
func Debug(msg ...interface{}) error {
	return Default.Log(DebugLevel, msg...)
}

// Debugf logs a formatted debug-level message using the package-level Default logger.
func Debugf(format string, args ...interface{}) error {
	return Default.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs an informational message using the package-level Default logger.
// An optional Caller argument may be provided as the first parameter.
func Info(msg ...interface{}) error {
	return Default.Log(InfoLevel, msg...)
}

// Infof logs a formatted informational message using the package-level Default logger.
func Infof(format string, args ...interface{}) error {
	return Default.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warning logs a warning message using the package-level Default logger.
// An optional Caller argument may be provided as the first parameter.
func Warning(msg ...interface{}) error {
	return Default.Log(WarningLevel, msg...)
}

// Warningf logs a formatted warning message using the package-level Default logger.
func Warningf(format string, args ...interface{}) error {
	return Default.Log(WarningLevel, fmt.Sprintf(format, args...))
}

// Error logs an error message using the package-level Default logger.
// An optional Caller argument may be provided as the first parameter.
func Error(msg ...interface{}) error {
	return Default.Log(ErrorLevel, msg...)
}

// Errorf logs a formatted error message using the package-level Default logger.
func Errorf(format string, args ...interface{}) error {
	return Default.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Critical logs a critical message using the package-level Default logger.
// An optional Caller argument may be provided as the first parameter.
func Critical(msg ...interface{}) error {
	return Default.Log(CriticalLevel, msg...)
}

// Criticalf logs a formatted critical message using the package-level Default logger.
func Criticalf(format string, args ...interface{}) error {
	return Default.Log(CriticalLevel, fmt.Sprintf(format, args...))
}
