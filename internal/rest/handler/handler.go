// Package handler implements the REST API endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic/decoder"
	restTypes "github.com/harborlight/harborlight/internal/rest/types"
	"github.com/uptrace/bunrouter"
)

// errInternal masks internal failures from API callers; details go to the
// server log only.
var (
	errInternal        = errors.New("internal server error")
	errMissingDay      = errors.New("day query parameter is required")
	errPartnerInput    = errors.New("partner id and api key are required")
	errConfidenceRange = errors.New("confidence must be between 0 and 100")
)

// decodeJSON decodes a request body into dst.
func decodeJSON(req bunrouter.Request, dst any) error {
	return decoder.NewStreamDecoder(req.Body).Decode(dst)
}

// writeError writes a JSON error response with the given status.
func writeError(w http.ResponseWriter, status int, err error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return bunrouter.JSON(w, restTypes.ErrorResponse{Error: err.Error()})
}
