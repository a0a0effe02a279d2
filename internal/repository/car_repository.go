package repository

import (
	"context"

	"gorm.io/gorm"

	"carvault/internal/model"
)

// CarRepository defines car persistence operations. Every query is scoped to
// an owner id; there is no unscoped lookup by design.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Car, error)
	FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Car, error)
	DeleteByOwnerAndID(ctx context.Context, ownerID, id uint) error
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository builds a GORM-backed repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", ownerID, id).First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Where("user_id = ? AND id = ?", ownerID, id).Delete(&model.Car{}).Error
}
