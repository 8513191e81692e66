package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// The identity gate runs upstream; this package only carries the verified
// identity through the request context.

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RolePatron = "PATRON"
	RoleStaff  = "STAFF"
	RoleAdmin  = "ADMIN"
)

var JWTKey = []byte(getEnv("JWT_KEY", "secret"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", errors.New("no user name in context")
	}
	return name, nil
}

func Role(ctx context.Context) (string, error) {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", errors.New("no user role in context")
	}
	return role, nil
}

// IsStaff reports whether the caller may take staff decisions.
func IsStaff(ctx context.Context) bool {
	role, err := Role(ctx)
	if err != nil {
		return false
	}
	return role == RoleStaff || role == RoleAdmin
}
