package middleware

import (
	"net/http"

	"github.com/marketstage/backend/internal/config"
)

// WriteGate rejects mutating requests while the platform is in judging
// mode. The gate lives entirely at the transport layer so the services
// stay mode-agnostic.
func WriteGate(cfg config.PlatformConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.IsJudging() && isWriteMethod(r.Method) {
				http.Error(w, "writes are disabled while judging is in progress", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
