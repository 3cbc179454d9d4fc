package pulse

import (
	"context"
	"log/slog"
)

// debugMessengerInfo subscribes to warnings and errors of every message type.
func debugMessengerInfo() DebugMessengerCreateInfo {
	return DebugMessengerCreateInfo{
		Severities: SeverityWarning | SeverityError,
		Types:      TypeGeneral | TypePerformance | TypeValidation,
		Callback:   LogDebugMessage,
	}
}

// LogDebugMessage reports a driver message through slog. It never asks
// the driver to abort the call that produced the message.
func LogDebugMessage(severity MessageSeverity, types MessageType, message string) bool {
	slog.Log(context.Background(), severityLevel(severity),
		"Vulkan debug message",
		slog.String("severity", severity.String()),
		slog.String("type", types.String()),
		slog.String("message", message),
	)

	return false
}

func severityLevel(severity MessageSeverity) slog.Level {
	switch {
	case severity.Has(SeverityError):
		return slog.LevelError
	case severity.Has(SeverityWarning):
		return slog.LevelWarn
	case severity.Has(SeverityInfo):
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
