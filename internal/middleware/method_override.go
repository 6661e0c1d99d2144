package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms issue PUT and DELETE requests through a
// hidden _method field, since browsers only submit GET and POST. It must wrap
// the router so the override is applied before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.PostFormValue("_method")) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
