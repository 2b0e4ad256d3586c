package auth

import "net/http"

// handleMethod registers h for path restricted to method, matching the
// behavior of the "METHOD /path" ServeMux patterns added in Go 1.22,
// which the current toolchain does not support.
func handleMethod(mux *http.ServeMux, method, path string, h http.HandlerFunc) {
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}
