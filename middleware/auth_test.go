package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"LearningHubBackend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoClaims(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(c.UserID + "|" + c.Email + "|" + string(c.Role)))
	})
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	auth := NewAuth("test-secret", time.Hour)
	token, err := auth.GenerateToken(models.User{UserID: "STU-1", Name: "Amy", Email: "amy@hub.test", Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	auth.Middleware(echoClaims(t)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "STU-1|amy@hub.test|student", rr.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	auth := NewAuth("test-secret", time.Hour)
	other := NewAuth("other-secret", time.Hour)
	forged, err := other.GenerateToken(models.User{UserID: "ADM-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "STU-1", Role: models.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	})
	expiredToken, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing":   "",
		"no bearer": "Token abc",
		"garbage":   "Bearer not-a-jwt",
		"forged":    "Bearer " + forged,
		"expired":   "Bearer " + expiredToken,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			auth.Middleware(echoClaims(t)).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	cases := []struct {
		role models.Role
		want int
	}{
		{models.RoleAdmin, http.StatusNoContent},
		{models.RoleInstructor, http.StatusNoContent},
		{models.RoleStudent, http.StatusForbidden},
		{models.RoleCompany, http.StatusForbidden},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithClaims(req.Context(), &Claims{UserID: "X", Role: c.role}))
		rr := httptest.NewRecorder()
		StaffOnly(ok).ServeHTTP(rr, req)
		assert.Equal(t, c.want, rr.Code, string(c.role))
	}

	rr := httptest.NewRecorder()
	AdminOnly(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
