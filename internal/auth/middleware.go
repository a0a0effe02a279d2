package auth

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "carvault/internal/errors"
)

// contextKey is the echo context slot echo-jwt stores the verified token in.
const contextKey = "user"

// Gate returns the authorization middleware: it pulls the session token from
// the http-only cookie, verifies it once, and attaches the verified claims to
// the request context. Handlers read the identity via IdentityFromContext and
// never re-verify.
func Gate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + SessionCookieName,
		ContextKey:  contextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &Claims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "user not authenticated",
					Code:  "UNAUTHENTICATED",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	})
}

// IdentityFromContext returns the claims the gate attached for this request.
// The second return is false on routes that did not pass the gate.
func IdentityFromContext(c echo.Context) (*Claims, bool) {
	token, ok := c.Get(contextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}
