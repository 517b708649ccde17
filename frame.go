package emolog

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// writeFrameHeader composes the opening of a framed entry: the border line,
// a "timestamp | LEVEL | name" line, the caller's source location, and the
// separator line. skip is the number of stack frames between runtime.Caller
// and the logging call site.
func (l *Logger) writeFrameHeader(b *strings.Builder, level Severity, skip int) {
	now := time.Now()
	if l.useUTC {
		now = now.UTC()
	}

	b.WriteString(l.borderLine)
	b.WriteByte('\n')
	b.WriteString(now.Format(l.timeFormat))
	b.WriteString(" | ")
	b.WriteString(severityNames[level])
	b.WriteString(" | ")
	b.WriteString(l.name)
	b.WriteByte('\n')

	// Caller source location (file, function and line number) if available.
	if pc, file, line, ok := runtime.Caller(skip); ok {
		b.WriteString(filepath.Base(file))
		b.WriteString(" | ")
		b.WriteString(funcBaseName(pc))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(line))
		b.WriteByte('\n')
	}

	b.WriteString(l.sepLine)
	b.WriteByte('\n')
}

// funcBaseName resolves a program counter to the bare function name, without
// the package path qualifier.
func funcBaseName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
