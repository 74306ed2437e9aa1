package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/qrcode"
)

// envelope is the body of every JSON response.
type envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errBadRequest marks malformed bodies and query strings.
var errBadRequest = errors.New("bad request")

var clientErrors = []struct {
	err  error
	code string
}{
	{passgen.ErrNoAlphabet, "no_alphabet"},
	{passgen.ErrSyntax, "syntax_error"},
	{passgen.ErrEmptyPool, "empty_pool"},
	{passgen.ErrInvalidLength, "invalid_length"},
	{passgen.ErrUnknownMode, "unknown_mode"},
	{qrcode.ErrEncode, "qr_too_large"},
	{errBadRequest, "bad_request"},
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Data: data})
}

// fail writes err as a 400 when it is a known client error and as an opaque
// 500 otherwise.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			a.log.DebugContext(r.Context(), "request rejected",
				slog.String("code", ce.code),
				logger.Error(err),
			)
			writeJSON(w, http.StatusBadRequest, envelope{Error: &errorDetail{
				Code:    ce.code,
				Message: err.Error(),
			}})
			return
		}
	}

	a.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, envelope{Error: &errorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}})
}
