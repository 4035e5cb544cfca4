package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/tarot-backend/pkg/ctxutil"
)

// TimezoneHeader carries the browser's IANA timezone name.
const TimezoneHeader = "X-Timezone"

// Timezone stores a valid client-reported timezone in the request context.
// Unknown names, and "Local" (the server's zone), are ignored rather than
// rejected.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tz := r.Header.Get(TimezoneHeader)
		if tz == "" || tz == "Local" || len(tz) > 64 {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := time.LoadLocation(tz); err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithTimezone(r.Context(), tz)))
	})
}
