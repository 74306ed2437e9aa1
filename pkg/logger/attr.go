package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Mode records the generation mode under the key "mode".
func Mode(mode string) slog.Attr {
	return slog.String("mode", mode)
}

// Length records the generated length under the key "length".
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}

// Count records how many values were generated under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Composition records a character-class breakdown under the key
// "composition". v renders itself through slog.LogValuer.
func Composition(v slog.LogValuer) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("composition", v)
}
