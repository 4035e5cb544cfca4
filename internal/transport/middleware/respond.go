package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// writeError answers in the same JSON shape as the REST handlers.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":      message,
		"code":       code,
		"request_id": ctxutil.RequestIDFromCtx(r.Context()),
	})
}
