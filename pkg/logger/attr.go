package logger

import (
	"fmt"
	"log/slog"
)

// Function records the guarded function name under the key "function".
func Function(name string) slog.Attr {
	return slog.String("function", name)
}

// Parameter records a parameter name under the key "parameter".
func Parameter(name string) slog.Attr {
	return slog.String("parameter", name)
}

// Ordinal records a formatted argument position (such as "2nd") under the
// key "ordinal".
func Ordinal(ordinal string) slog.Attr {
	return slog.String("ordinal", ordinal)
}

// Value records the validated value and its dynamic type as the group
// "value" with keys "type" and "data".
func Value(v any) slog.Attr {
	return slog.Group("value",
		slog.String("type", fmt.Sprintf("%T", v)),
		slog.Any("data", v),
	)
}

// Alternatives records a rendered alternatives list under the key
// "alternatives".
func Alternatives(described string) slog.Attr {
	return slog.String("alternatives", described)
}

// Reason records a validation message under the key "reason".
// If reason is empty, it returns an empty Attr.
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
