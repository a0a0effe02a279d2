package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "carvault/internal/errors"
	"carvault/internal/model"
)

// MockCarRepository is a mock implementation of CarRepository.
type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) Create(ctx context.Context, car *model.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Car, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uint) (*model.Car, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func TestCarService_CreateCar_StampsOwner(t *testing.T) {
	mockRepo := new(MockCarRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(car *model.Car) bool {
		return car.UserID == 42 && car.Model == "Civic"
	})).Return(nil)

	svc := NewCarService(mockRepo, nil)

	purchase := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	car, err := svc.CreateCar(context.Background(), 42, "Civic", &purchase)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), car.UserID)
	assert.Equal(t, "Civic", car.Model)
	mockRepo.AssertExpectations(t)
}

func TestCarService_ListCars_ScopedToOwner(t *testing.T) {
	mockRepo := new(MockCarRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(42)).Return([]model.Car{
		{ID: 1, Model: "Civic", UserID: 42},
	}, nil)

	svc := NewCarService(mockRepo, nil)

	cars, err := svc.ListCars(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, cars, 1)
	assert.Equal(t, uint(42), cars[0].UserID)
	mockRepo.AssertExpectations(t)
}

func TestCarService_DeleteCar(t *testing.T) {
	tests := []struct {
		name          string
		ownerID       uint
		carID         uint
		setupMock     func(*MockCarRepository)
		expectedError error
	}{
		{
			name:    "successful delete",
			ownerID: 42,
			carID:   1,
			setupMock: func(m *MockCarRepository) {
				m.On("FindByOwnerAndID", mock.Anything, uint(42), uint(1)).Return(&model.Car{ID: 1, UserID: 42}, nil)
				m.On("DeleteByOwnerAndID", mock.Anything, uint(42), uint(1)).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "car does not exist",
			ownerID: 42,
			carID:   999,
			setupMock: func(m *MockCarRepository) {
				m.On("FindByOwnerAndID", mock.Anything, uint(42), uint(999)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCarNotFound,
		},
		{
			// the owner scope hides other users' cars: a delete for someone
			// else's car id reads as not found and deletes nothing
			name:    "car owned by another user",
			ownerID: 7,
			carID:   1,
			setupMock: func(m *MockCarRepository) {
				m.On("FindByOwnerAndID", mock.Anything, uint(7), uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrCarNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCarRepository)
			tt.setupMock(mockRepo)

			svc := NewCarService(mockRepo, nil)
			err := svc.DeleteCar(context.Background(), tt.ownerID, tt.carID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "DeleteByOwnerAndID", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
