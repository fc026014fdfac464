package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Recoverer turns a handler panic into the JSON failure envelope. The stack
// is printed the same way chi's own recoverer does.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			middleware.PrintPrettyStack(rvr)
			RespondWithFailure(w, http.StatusInternalServerError, "Something went wrong!", fmt.Sprint(rvr))
		}()

		next.ServeHTTP(w, r)
	})
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	RespondWithFailure(w, http.StatusNotFound, "Endpoint not found",
		fmt.Sprintf("The endpoint %s %s does not exist", r.Method, r.URL.Path))
}

func handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RespondWithFailure(w, http.StatusMethodNotAllowed, "Method not allowed",
		fmt.Sprintf("The endpoint %s %s does not accept this method", r.Method, r.URL.Path))
}
