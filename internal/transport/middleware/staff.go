package middleware

import (
	"context"

	"github.com/marketstage/backend/internal/domain"
	"github.com/marketstage/backend/pkg/ctxutil"
)

// RequireStaff returns domain.ErrForbidden if the context caller is not
// staff. Use in REST handlers, not as HTTP middleware.
func RequireStaff(ctx context.Context) error {
	if !ctxutil.IsStaff(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
