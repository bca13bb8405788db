package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taxi-service/internal/model"
)

type ManufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

func (r *ManufacturerRepository) List(ctx context.Context, params ListParams) (ListResult[model.Manufacturer], error) {
	return list[model.Manufacturer](ctx, r.db, params, "name", "name ASC, created_at ASC")
}

func (r *ManufacturerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&manufacturer).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &manufacturer, nil
}

func (r *ManufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	return translateError(r.db.WithContext(ctx).Create(manufacturer).Error)
}

func (r *ManufacturerRepository) Update(ctx context.Context, manufacturer *model.Manufacturer) error {
	result := r.db.WithContext(ctx).Model(&model.Manufacturer{}).
		Where("id = ?", manufacturer.ID).
		Updates(map[string]interface{}{
			"name":    manufacturer.Name,
			"country": manufacturer.Country,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the manufacturer; its cars go with it (ON DELETE CASCADE).
func (r *ManufacturerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Manufacturer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ManufacturerRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Manufacturer](ctx, r.db)
}
