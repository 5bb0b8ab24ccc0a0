package sl

import (
	"log/slog"

	"github.com/UnknownOlympus/hestia/internal/models"
)

// Err creates a slog.Attr with the given error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// ErrKind creates a slog.Attr with the classification of the given error.
func ErrKind(err error) slog.Attr {
	return slog.String("error_kind", models.KindOf(err).String())
}
