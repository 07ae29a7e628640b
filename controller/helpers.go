package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"student-management-api/store"
	"student-management-api/util"
)

// decodeBody reads a JSON request body into dst. An empty body decodes as {}
// so that required-field validation reports what is missing.
func decodeBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// failure writes err as {"message": ...}. fallback is the endpoint's failure
// status; only a not-found error is allowed to override it.
func failure(w http.ResponseWriter, r *http.Request, logger *zap.Logger, handler string, fallback int, err error) {
	status := fallback
	if errors.Is(err, store.ErrNotFound) {
		status = http.StatusNotFound
	}
	logger.Warn(handler+": request failed",
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", util.GetRequestID(r.Context())),
	)
	util.WriteErrorResponse(w, status, err.Error())
}

// lookupFailure maps errors of a single-record read: a malformed id is the
// caller's fault, a store outage is not.
func lookupFailure(w http.ResponseWriter, r *http.Request, logger *zap.Logger, handler string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, store.ErrInvalidID) {
		status = http.StatusBadRequest
	}
	failure(w, r, logger, handler, status, err)
}
