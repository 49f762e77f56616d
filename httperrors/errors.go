package httperrors

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"go.uber.org/zap"
)

type HttpError struct {
	statusCode int
	body       any
	err        error
}

func New(statusCode int, message string, err error) HttpError {
	return HttpError{
		statusCode: statusCode,
		body:       map[string]string{"error": message},
		err:        err,
	}
}

// NewWithBody keeps the wire payload under the caller's control,
// for endpoints whose error shape differs from the default {"error": ...}.
func NewWithBody(statusCode int, body any, err error) HttpError {
	return HttpError{
		statusCode: statusCode,
		body:       body,
		err:        err,
	}
}

func (e HttpError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	data, _ := json.Marshal(e.body)
	return string(data)
}

func (e HttpError) Unwrap() error {
	return e.err
}

func (e HttpError) WriteError(ctx context.Context, w http.ResponseWriter, logger log.Logger) {
	if e.statusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(e.err), zap.Int("statusCode", e.statusCode))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(e.err), zap.Int("statusCode", e.statusCode))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.statusCode)
	_ = json.NewEncoder(w).Encode(e.body)
}
