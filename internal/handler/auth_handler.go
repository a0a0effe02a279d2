package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carvault/internal/auth"
	apperrors "carvault/internal/errors"
	"carvault/internal/service"
)

// AuthHandler handles registration, login, logout and the current-user lookup.
type AuthHandler struct {
	authService service.AuthService
	tokens      *auth.TokenService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens}
}

// CredentialsRequest represents a registration or login request.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IdentityResponse represents the current user's identity.
type IdentityResponse struct {
	Username string `json:"username"`
	ID       uint   `json:"id"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Registration data"
// @Success 200 {string} string "USER REGISTERED"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, "USER REGISTERED")
}

// Login godoc
// @Summary Log in and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {string} string "LOGGED IN"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	setSessionCookie(c, token, int(auth.SessionTTL.Seconds()))
	return c.JSON(http.StatusOK, "LOGGED IN")
}

// Logout godoc
// @Summary Log out by expiring the session cookie
// @Tags auth
// @Produce json
// @Success 200 {string} string "LOGGED OUT"
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [post]
//
// The previously issued token string stays cryptographically valid until its
// embedded expiry; logout only clears the cookie on the client. Server-side
// revocation would need a deny-list, which this system does not keep.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "user not authenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	// The gate already verified this token; an unverified decode is enough to
	// recover the identity for the replacement cookie.
	claims, err := h.tokens.Decode(cookie.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid or expired token",
			Code:  "INVALID_TOKEN",
		})
	}

	token, err := h.tokens.Issue(claims.UserID, claims.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "failed to log out",
			Code:  "INTERNAL_ERROR",
		})
	}

	setSessionCookie(c, token, -1)
	return c.JSON(http.StatusOK, "LOGGED OUT")
}

// CurrentUser godoc
// @Summary Get the logged-in user's identity
// @Tags auth
// @Produce json
// @Success 200 {object} IdentityResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /user [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "user not authenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	return c.JSON(http.StatusOK, IdentityResponse{
		Username: claims.Username,
		ID:       claims.UserID,
	})
}

// setSessionCookie writes the http-only session cookie. A negative maxAge
// makes the client discard it immediately.
func setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
}
