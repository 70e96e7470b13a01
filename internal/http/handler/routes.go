package handler

import (
	"net/http"
	"path"
	"strings"
)

var (
	ListUsers  = "GET /users"
	GetUser    = "GET /users/{id}"
	CreateUser = "POST /users"
	DeleteUser = "DELETE /users/{id}"
)

// NewServeMux registers the users routes. Anything else, including a known path
// with an unsupported method or a path that is not in canonical form, gets an
// empty 404.
func NewServeMux(h *UserHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(ListUsers, h.HandleListUsers)
	mux.HandleFunc(GetUser, h.HandleGetUser)
	mux.HandleFunc(CreateUser, h.HandleCreateUser)
	mux.HandleFunc(DeleteUser, h.HandleDeleteUser)
	mux.HandleFunc("/", NotFound)

	return exactPaths(mux)
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// exactPaths answers 404 for paths ServeMux would otherwise redirect to their
// cleaned form.
func exactPaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; p != cleanPath(p) {
			NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cleanPath mirrors ServeMux: path.Clean, keeping a trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if strings.HasSuffix(p, "/") && np != "/" {
		np += "/"
	}
	return np
}
