package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/cycle-tracker/pkg/problem"
	"github.com/rs/zerolog"
)

// Recovery turns handler panics into a logged 500 problem response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				// Aborted responses are not failures of the handler.
				if err == http.ErrAbortHandler {
					panic(err)
				}
				zerolog.Ctx(r.Context()).Error().
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				problem.InternalError("An unexpected error occurred").Write(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
