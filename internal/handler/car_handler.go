package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"carvault/internal/auth"
	apperrors "carvault/internal/errors"
	"carvault/internal/model"
	"carvault/internal/service"
)

// CarHandler handles the per-user car endpoints. All of them sit behind the
// gate; the owner id always comes from the verified session identity.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// CreateCarRequest represents a car creation request.
type CreateCarRequest struct {
	Model        string `json:"model" validate:"required"`
	PurchaseDate string `json:"purchaseDate"`
}

// CreateCarResponse echoes the created car back to the client.
type CreateCarResponse struct {
	Message      string `json:"message"`
	Model        string `json:"model"`
	PurchaseDate string `json:"purchaseDate,omitempty"`
}

// ListCarsResponse wraps the caller's car list.
type ListCarsResponse struct {
	Cars []model.Car `json:"cars"`
}

// MessageResponse carries a plain outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateCar godoc
// @Summary Create a car for the logged-in user
// @Tags cars
// @Accept json
// @Produce json
// @Param request body CreateCarRequest true "Car data"
// @Success 200 {object} CreateCarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cars [post]
func (h *CarHandler) CreateCar(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "user not authenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	var req CreateCarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	purchaseDate, err := parsePurchaseDate(req.PurchaseDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid purchase date",
			Code:  "VALIDATION_FAILED",
		})
	}

	if _, err := h.carService.CreateCar(c.Request().Context(), claims.UserID, req.Model, purchaseDate); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, CreateCarResponse{
		Message:      "car created",
		Model:        req.Model,
		PurchaseDate: req.PurchaseDate,
	})
}

// ListCars godoc
// @Summary List the logged-in user's cars
// @Tags cars
// @Produce json
// @Success 200 {object} ListCarsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cars [get]
func (h *CarHandler) ListCars(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "user not authenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	cars, err := h.carService.ListCars(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if cars == nil {
		cars = []model.Car{}
	}

	return c.JSON(http.StatusOK, ListCarsResponse{Cars: cars})
}

// DeleteCar godoc
// @Summary Delete one of the logged-in user's cars
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /cars/{id} [delete]
//
// A miss answers 200 with "car not found": the lookup is scoped to the
// caller, so the response does not reveal whether the id exists for someone
// else.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	claims, ok := auth.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "user not authenticated",
			Code:  "UNAUTHENTICATED",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid car id",
			Code:  "VALIDATION_FAILED",
		})
	}

	if err := h.carService.DeleteCar(c.Request().Context(), claims.UserID, uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrCarNotFound) {
			return c.JSON(http.StatusOK, MessageResponse{Message: "car not found"})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "car deleted"})
}

// parsePurchaseDate accepts an empty value, a plain date or an RFC 3339
// timestamp.
func parsePurchaseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
