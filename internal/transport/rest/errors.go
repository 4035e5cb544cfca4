package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tarot-backend/internal/domain"
	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies. The largest request is a reading note.
const maxBodyBytes = 64 << 10

// errorResponse is the JSON body of every non-2xx API response.
type errorResponse struct {
	Error     string          `json:"error"`
	Code      string          `json:"code"`
	Fields    []fieldResponse `json:"fields,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleError maps domain errors to HTTP statuses. Unexpected errors are
// logged and hidden behind a generic message.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	requestID := ctxutil.RequestIDFromCtx(ctx)

	switch {
	case errors.Is(err, domain.ErrValidation):
		resp := errorResponse{Error: "validation failed", Code: "VALIDATION", RequestID: requestID}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Fields = make([]fieldResponse, len(ve.Errors))
			for i, fe := range ve.Errors {
				resp.Fields[i] = fieldResponse{Field: fe.Field, Message: fe.Message}
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrUnauthorized):
		writeErrorCode(w, r, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized")

	case errors.Is(err, domain.ErrForbidden):
		writeErrorCode(w, r, http.StatusForbidden, "FORBIDDEN", "forbidden")

	case errors.Is(err, domain.ErrNotFound):
		writeErrorCode(w, r, http.StatusNotFound, "NOT_FOUND", "not found")

	case errors.Is(err, domain.ErrAlreadyExists):
		writeErrorCode(w, r, http.StatusConflict, "ALREADY_EXISTS", "already exists")

	case errors.Is(err, domain.ErrConflict):
		writeErrorCode(w, r, http.StatusConflict, "CONFLICT", "conflict")

	case errors.Is(err, domain.ErrHistoryUnavailable):
		log.WarnContext(ctx, "history unavailable",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		writeErrorCode(w, r, http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "history unavailable")

	case errors.Is(err, domain.ErrGenerationUnavailable):
		writeErrorCode(w, r, http.StatusServiceUnavailable, "GENERATION_UNAVAILABLE", "generation unavailable")

	default:
		log.ErrorContext(ctx, "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", requestID),
		)
		writeErrorCode(w, r, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func writeErrorCode(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		Code:      code,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	code := "BAD_REQUEST"
	if status == http.StatusUnauthorized {
		code = "UNAUTHENTICATED"
	}
	writeErrorCode(w, r, status, code, message)
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
