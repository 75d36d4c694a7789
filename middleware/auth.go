package middleware

import (
	"ak-storefront/utils"
	"context"
	"net/http"
	"strings"
)

type contextKey string

// ClaimsKey holds the verified admin token claims on the request context.
const ClaimsKey = contextKey("claims")

// Claims returns the token claims AuthMiddleware attached to ctx.
func Claims(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*utils.Claims)
	return claims, ok && claims != nil
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != "" && !strings.ContainsAny(token, " \t")
}

// AuthMiddleware accepts only requests carrying a valid access-code token
// issued by /admin/login.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "Admin token missing", http.StatusUnauthorized)
			return
		}
		raw, ok := bearerToken(header)
		if !ok {
			http.Error(w, "Expected a Bearer admin token", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseJWT(raw)
		if err != nil {
			http.Error(w, "Admin token is invalid or expired", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims)))
	})
}

// AdminMiddleware lets through tokens minted for the admin console and
// rejects any other role.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := Claims(r.Context()); !ok || claims.Role != utils.RoleAdmin {
			http.Error(w, "Admin console is locked", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// JSONContentType defaults every response to JSON. Handlers serving files
// override it.
func JSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
