// AngelaMos | 2026
// outcome.go

package core

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

const (
	LoginPath        = "/login"
	ErrorPath        = "/error"
	UnauthorizedPath = "/unauthorized"
)

// Outcome is the result of a mutating action: the page the caller is sent to.
// Actions never write responses themselves; the HTTP adapter performs the redirect.
type Outcome struct {
	Location string
}

func RedirectTo(location string) Outcome {
	return Outcome{Location: location}
}

// FailureLocation maps an action error onto its redirect target.
func FailureLocation(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return LoginPath
	case errors.Is(err, ErrForbidden):
		return UnauthorizedPath
	default:
		return ErrorPath
	}
}

// Redirect concludes a form action. Every branch ends in 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, out Outcome, err error) {
	location := out.Location
	if err != nil {
		location = FailureLocation(err)
	}
	if location == "" {
		location = ErrorPath
	}

	http.Redirect(w, r, location, http.StatusSeeOther)
}

type ActionRecorder interface {
	RecordAction(action, result string)
}

// ResultLabel classifies an action error for logs and metrics.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthenticated"
	case errors.Is(err, ErrForbidden):
		return "denied"
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrPrecondition):
		return "rejected"
	default:
		return "error"
	}
}

// Finish logs and records the action result, then redirects.
func Finish(
	w http.ResponseWriter,
	r *http.Request,
	rec ActionRecorder,
	action string,
	out Outcome,
	err error,
) {
	result := ResultLabel(err)
	AddSpanEvent(r.Context(), "action",
		attribute.String("action.name", action),
		attribute.String("action.result", result),
	)

	switch result {
	case "ok":
	case "error":
		slog.ErrorContext(r.Context(), "action failed",
			"action", action,
			"error", err,
		)
		SetSpanError(r.Context(), err)
	default:
		slog.InfoContext(r.Context(), "action refused",
			"action", action,
			"result", result,
			"reason", err.Error(),
		)
	}

	if rec != nil {
		rec.RecordAction(action, result)
	}

	Redirect(w, r, out, err)
}
