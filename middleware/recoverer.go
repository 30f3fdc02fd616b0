package middleware

import (
	"fmt"
	"net/http"

	"partialdate/log"
	"partialdate/oops"
)

func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				err, ok := rvr.(error)
				if !ok {
					err = fmt.Errorf("%v", rvr)
				}

				sterr, ok := err.(*oops.Error)
				if !ok {
					sterr = oops.Wrap(err).(*oops.Error)
				}
				log.Error().Err(sterr).Msg("panic serving request")

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"internal server error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
