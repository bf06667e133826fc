package transport

import (
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/vyper/kintai/internal/handlers"
	"github.com/vyper/kintai/internal/models"
	"go.uber.org/zap"
)

// EventFromRequest reads the request body and flattens its headers. When a
// header repeats, the first value wins.
func EventFromRequest(r *http.Request) (models.Event, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return models.Event{}, fmt.Errorf("error reading request body: %w", err)
	}

	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	return models.Event{Headers: headers, Body: string(body)}, nil
}

// WriteResponse writes resp to w.
func WriteResponse(w http.ResponseWriter, resp models.Response) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		w.Write([]byte(resp.Body))
	}
}

// NewHTTPHandler adapts the dispatcher to net/http. Every request gets its own
// request_id on the logger.
func NewHTTPHandler(d *handlers.Dispatcher, logger *zap.Logger, runtime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLogger := RequestLogger(logger, runtime)

		event, err := EventFromRequest(r)
		if err != nil {
			reqLogger.Error("error reading request", zap.Error(err))
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		WriteResponse(w, d.Dispatch(r.Context(), event, reqLogger))
	}
}

// RequestLogger tags logger with a fresh request id and the runtime name.
func RequestLogger(logger *zap.Logger, runtime string) *zap.Logger {
	return logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("transport", runtime),
	)
}
