package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/pkg/errors"
)

const maxRequestBodySize = 1 << 20

func readJson(r *http.Request, value any) error {
	body := io.LimitReader(r.Body, maxRequestBodySize)
	err := json.NewDecoder(body).Decode(value)
	if err != nil {
		return httperrors.New(http.StatusBadRequest, "invalid json body", errors.WithMessage(err, "decode request body"))
	}
	return nil
}

func writeJson(w http.ResponseWriter, statusCode int, value any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		return errors.WithMessage(err, "encode response body")
	}
	return nil
}
