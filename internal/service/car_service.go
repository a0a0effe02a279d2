package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"carvault/internal/cache"
	apperrors "carvault/internal/errors"
	"carvault/internal/model"
	"carvault/internal/repository"
)

const carListCacheTTL = 5 * time.Minute

// CarService exposes the per-user car operations. Every operation takes the
// caller's verified identity; ownership is never read from client input.
type CarService interface {
	CreateCar(ctx context.Context, ownerID uint, carModel string, purchaseDate *time.Time) (*model.Car, error)
	ListCars(ctx context.Context, ownerID uint) ([]model.Car, error)
	DeleteCar(ctx context.Context, ownerID, carID uint) error
}

type carService struct {
	carRepo repository.CarRepository
	cache   *cache.Client
}

// NewCarService builds a CarService with repository and cache.
func NewCarService(carRepo repository.CarRepository, cache *cache.Client) CarService {
	return &carService{carRepo: carRepo, cache: cache}
}

func (s *carService) cacheKey(ownerID uint) string {
	return fmt.Sprintf("cars:%d", ownerID)
}

// CreateCar persists a car stamped with the caller's identity as owner.
func (s *carService) CreateCar(ctx context.Context, ownerID uint, carModel string, purchaseDate *time.Time) (*model.Car, error) {
	car := &model.Car{
		Model:        carModel,
		PurchaseDate: purchaseDate,
		UserID:       ownerID,
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return car, nil
}

// ListCars returns the caller's cars, cached per owner.
func (s *carService) ListCars(ctx context.Context, ownerID uint) ([]model.Car, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(ownerID)); data != nil {
		var cached []model.Car
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	cars, err := s.carRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(cars); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(ownerID), payload, carListCacheTTL)
	}
	return cars, nil
}

// DeleteCar removes the caller's car with the given id. The lookup and the
// delete are both scoped to the owner, so another user's car with the same id
// is invisible here and reported as not found.
func (s *carService) DeleteCar(ctx context.Context, ownerID, carID uint) error {
	if _, err := s.carRepo.FindByOwnerAndID(ctx, ownerID, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCarNotFound
		}
		return fmt.Errorf("find car: %w", err)
	}

	if err := s.carRepo.DeleteByOwnerAndID(ctx, ownerID, carID); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(ownerID))
	return nil
}
