package roster

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DebugLogger provides debug logging for Roster operations.
// When enabled, it logs every store operation performed by the client,
// including failures with full error details.
type DebugLogger struct {
	mu      sync.Mutex
	enabled bool
	writer  io.Writer
}

// NewDebugLogger creates a new debug logger.
// If logPath is empty, logs to stderr.
func NewDebugLogger(enabled bool, logPath string) (*DebugLogger, error) {
	var writer io.Writer = os.Stderr

	if enabled && logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open debug log: %w", err)
		}
		writer = f
	}

	return &DebugLogger{
		enabled: enabled,
		writer:  writer,
	}, nil
}

// Close closes the debug logger if it's writing to a file.
func (l *DebugLogger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if closer, ok := l.writer.(io.Closer); ok && l.writer != os.Stderr {
		return closer.Close()
	}
	return nil
}

// Log writes a debug message if logging is enabled.
func (l *DebugLogger) Log(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(l.writer, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}
