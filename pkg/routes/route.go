package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler. Patterns are
// relative; the owning Group supplies the prefix at registration time.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
