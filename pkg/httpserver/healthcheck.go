package httpserver

import "net/http"

// Liveness answers 200 "ALIVE". The generator has no external dependencies,
// so liveness and readiness coincide.
func Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}
