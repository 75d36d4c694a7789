package middleware

import (
	"ak-storefront/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guarded() http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := Claims(r.Context())
		w.Write([]byte(claims.Role))
	})
	return AuthMiddleware(AdminMiddleware(ok))
}

func serve(h http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	utils.JwtKey = []byte("middleware-key")
	admin, err := utils.GenerateJWT("admin", utils.RoleAdmin)
	require.NoError(t, err)
	shopper, err := utils.GenerateJWT("shopper", "shopper")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + admin, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"extra fields", "Bearer " + admin + " trailing", http.StatusUnauthorized},
		{"lowercase scheme", "bearer " + admin, http.StatusOK},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"not admin", "Bearer " + shopper, http.StatusForbidden},
		{"admin", "Bearer " + admin, http.StatusOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.status, serve(guarded(), c.header).Code)
		})
	}

	rec := serve(guarded(), "Bearer "+admin)
	assert.Equal(t, utils.RoleAdmin, rec.Body.String())
}

func TestAdminMiddlewareWithoutClaims(t *testing.T) {
	h := AdminMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	assert.Equal(t, http.StatusForbidden, serve(h, "").Code)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("  Bearer   abc.def ")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	for _, header := range []string{"Bearer", "Token abc", "abc"} {
		_, ok := bearerToken(header)
		assert.False(t, ok, header)
	}
}

func TestJSONContentType(t *testing.T) {
	h := JSONContentType(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := serve(h, "")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
