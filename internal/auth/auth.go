// Package auth resolves inbound credentials into an explicit AuthContext.
// The context value is threaded into handler and service calls directly;
// nothing is stashed in a per-request extension bag.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleUnknown Role = "unknown"
)

var ErrAdminOnly = errors.New("admin role required")

// AuthContext carries the caller's resolved role for one request.
type AuthContext struct {
	Role Role
}

func (a AuthContext) IsAdmin() bool { return a.Role == RoleAdmin }

// RequireAdmin is the single role check services perform before any write.
func (a AuthContext) RequireAdmin() error {
	if !a.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

type claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// Resolver maps API keys or HS256 bearer tokens to roles. Token issuance
// lives elsewhere; this only validates.
type Resolver struct {
	adminKey string
	userKey  string
	secret   []byte
}

func NewResolver(adminKey, userKey, jwtSecret string) *Resolver {
	return &Resolver{
		adminKey: adminKey,
		userKey:  userKey,
		secret:   []byte(jwtSecret),
	}
}

// Resolve inspects X-API-Key and Authorization headers. Missing or invalid
// credentials resolve to RoleUnknown rather than an error; the caller's
// role check decides what that means.
func (r *Resolver) Resolve(req *http.Request) AuthContext {
	if key := strings.TrimSpace(req.Header.Get("X-API-Key")); key != "" {
		switch key {
		case r.adminKey:
			return AuthContext{Role: RoleAdmin}
		case r.userKey:
			return AuthContext{Role: RoleUser}
		}
		return AuthContext{Role: RoleUnknown}
	}

	header := req.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if role, err := r.validateToken(tokenStr); err == nil {
			return AuthContext{Role: role}
		}
	}
	return AuthContext{Role: RoleUnknown}
}

func (r *Resolver) validateToken(tokenStr string) (Role, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &claims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	}, jwtlib.WithTimeFunc(time.Now))
	if err != nil || !token.Valid {
		return RoleUnknown, errors.New("invalid token")
	}
	c, ok := token.Claims.(*claims)
	if !ok {
		return RoleUnknown, errors.New("invalid claims")
	}
	switch Role(c.Role) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	}
	return RoleUnknown, nil
}
