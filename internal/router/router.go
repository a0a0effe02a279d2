package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"carvault/internal/auth"
	"carvault/internal/config"
	"carvault/internal/handler"
)

// Register wires routes and middleware. Register and login are public;
// everything touching a session or a car sits behind the gate.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	carHandler *handler.CarHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Secured routes (require a valid session cookie)
	secured := e.Group("", auth.Gate(cfg.JWTSecret))

	secured.POST("/logout", authHandler.Logout)
	secured.GET("/user", authHandler.CurrentUser)

	// Car routes
	secured.POST("/cars", carHandler.CreateCar)
	secured.GET("/cars", carHandler.ListCars)
	secured.DELETE("/cars/:id", carHandler.DeleteCar)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
