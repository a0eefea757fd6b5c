package auth

import (
	"net/http"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	return req
}

func signToken(t *testing.T, role string, secret string) string {
	t.Helper()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestResolveAPIKeys(t *testing.T) {
	r := NewResolver("admin-key", "user-key", testSecret)

	req := newRequest(t)
	req.Header.Set("X-API-Key", "admin-key")
	assert.Equal(t, RoleAdmin, r.Resolve(req).Role)

	req = newRequest(t)
	req.Header.Set("X-API-Key", "user-key")
	assert.Equal(t, RoleUser, r.Resolve(req).Role)

	req = newRequest(t)
	req.Header.Set("X-API-Key", "wrong")
	assert.Equal(t, RoleUnknown, r.Resolve(req).Role)

	assert.Equal(t, RoleUnknown, r.Resolve(newRequest(t)).Role)
}

func TestResolveBearerToken(t *testing.T) {
	r := NewResolver("admin-key", "user-key", testSecret)

	req := newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", testSecret))
	assert.Equal(t, RoleAdmin, r.Resolve(req).Role)

	req = newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user", testSecret))
	assert.Equal(t, RoleUser, r.Resolve(req).Role)

	// wrong secret
	req = newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "other-secret"))
	assert.Equal(t, RoleUnknown, r.Resolve(req).Role)

	// unknown role claim
	req = newRequest(t)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "superuser", testSecret))
	assert.Equal(t, RoleUnknown, r.Resolve(req).Role)
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, AuthContext{Role: RoleAdmin}.RequireAdmin())
	assert.ErrorIs(t, AuthContext{Role: RoleUser}.RequireAdmin(), ErrAdminOnly)
	assert.ErrorIs(t, AuthContext{Role: RoleUnknown}.RequireAdmin(), ErrAdminOnly)
}
