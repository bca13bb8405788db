package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxi-service/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) List(ctx context.Context, params ListParams) (ListResult[model.Driver], error) {
	return list[model.Driver](ctx, r.db, params, "username", "username ASC, created_at ASC")
}

func (r *DriverRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.WithContext(ctx).
		Preload("Cars", func(db *gorm.DB) *gorm.DB {
			return db.Order("cars.model ASC")
		}).
		Preload("Cars.Manufacturer").
		Where("id = ?", id).
		First(&driver).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &driver, nil
}

func (r *DriverRepository) GetByUsername(ctx context.Context, username string) (*model.Driver, error) {
	var driver model.Driver
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&driver).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &driver, nil
}

// FindByIDs returns the drivers that exist among ids, ordered by username.
func (r *DriverRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Driver, error) {
	drivers := make([]model.Driver, 0, len(ids))
	if len(ids) == 0 {
		return drivers, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("username ASC").
		Find(&drivers).Error
	return drivers, err
}

func (r *DriverRepository) Create(ctx context.Context, driver *model.Driver) error {
	return translateError(r.db.WithContext(ctx).Omit("Cars").Create(driver).Error)
}

func (r *DriverRepository) UpdateLicenseNumber(ctx context.Context, id uuid.UUID, licenseNumber string) error {
	result := r.db.WithContext(ctx).Model(&model.Driver{}).
		Where("id = ?", id).
		Update("license_number", licenseNumber)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Driver{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DriverRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Driver](ctx, r.db)
}
