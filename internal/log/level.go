package log

import "log/slog"

// Level is the minimum severity a message needs to be emitted.
type Level int

const (
	// LevelDebug traces individual guard decisions and storage reads.
	LevelDebug Level = iota
	// LevelInfo covers normal lifecycle events.
	LevelInfo
	// LevelWarn flags recovered problems, like cleared session state.
	LevelWarn
	// LevelError reports failures.
	LevelError
)

// String returns the level name as it appears in log output.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ToSlogLevel maps the level onto its slog equivalent.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel reads a level name from config or a flag. Unrecognized
// input falls back to info rather than failing startup.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}
