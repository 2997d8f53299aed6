package middleware

import (
	"context"
	"ims_server/lib"
	"ims_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		// Logged-out tokens keep a valid signature until expiry,
		// so the jti blacklist has the final say.
		blacklisted, err := mw.cacheService.IsTokenBlacklisted(claims.Jti)
		if err != nil {
			mw.logger.Warn("Token blacklist check failed", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		}
		if blacklisted {
			gecho.Unauthorized(w, gecho.WithMessage("Session has been logged out"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffOnlyMiddleware protects routes to staff accounts.
// Must be used after UserAuthMiddleware.
func (mw *Middleware) StaffOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			mw.logger.Warn("Staff route reached without claims in context")
			gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
			return
		}

		if !claims.IsStaff {
			mw.logger.Warn("Non-staff user attempted to access staff route", gecho.Field("user_id", claims.Sub))
			gecho.Forbidden(w, gecho.WithMessage("Staff access required"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}
