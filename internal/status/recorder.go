package status

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownLevel is returned when a level name cannot be decoded.
var ErrUnknownLevel = errors.New("unknown status level")

// Line is a single recorded status line.
type Line struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Recorder is a Reporter that keeps every line in memory. The node service
// uses it to return the status lines of a request alongside the report.
type Recorder struct {
	mu    sync.Mutex
	next  Reporter
	lines []Line
}

// NewRecorder returns a Recorder that also forwards each line to next when
// next is non-nil.
func NewRecorder(next Reporter) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Info(format string, args ...any) {
	r.record(LevelInfo, format, args...)
	if r.next != nil {
		r.next.Info(format, args...)
	}
}

func (r *Recorder) Success(format string, args ...any) {
	r.record(LevelSuccess, format, args...)
	if r.next != nil {
		r.next.Success(format, args...)
	}
}

func (r *Recorder) Warn(format string, args ...any) {
	r.record(LevelWarn, format, args...)
	if r.next != nil {
		r.next.Warn(format, args...)
	}
}

func (r *Recorder) Error(format string, args ...any) {
	r.record(LevelError, format, args...)
	if r.next != nil {
		r.next.Error(format, args...)
	}
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Messages returns the recorded messages without their levels.
func (r *Recorder) Messages() []string {
	lines := r.Lines()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Message)
	}
	return out
}

func (r *Recorder) record(level Level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Level: level, Message: fmt.Sprintf(format, args...)})
}

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarn:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText lets levels appear as names in JSON.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes the names produced by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	for _, level := range []Level{LevelInfo, LevelSuccess, LevelWarn, LevelError} {
		if level.String() == string(text) {
			*l = level
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLevel, text)
}
