package middleware

import (
	"net/http"
	"strings"

	"github.com/marketstage/backend/internal/auth"
	"github.com/marketstage/backend/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Identity, error)
}

// Auth resolves the Bearer token into a caller identity on the request
// context. Requests without a token pass through anonymously; the services
// reject them where identity is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			identity, err := validator.Validate(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := r.Context()
			if identity.Staff {
				ctx = ctxutil.WithStaff(ctx)
			} else {
				ctx = ctxutil.WithTeamID(ctx, identity.TeamID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
