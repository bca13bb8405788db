package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taxi-service/internal/model"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) List(ctx context.Context, params ListParams) (ListResult[model.Car], error) {
	return list[model.Car](ctx, r.db, params, "model", "model ASC, created_at ASC", "Manufacturer")
}

func (r *CarRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Car, error) {
	var car model.Car
	err := r.db.WithContext(ctx).
		Preload("Manufacturer").
		Preload("Drivers", func(db *gorm.DB) *gorm.DB {
			return db.Order("drivers.username ASC")
		}).
		Where("id = ?", id).
		First(&car).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &car, nil
}

// Create inserts the car and links it to car.Drivers. The drivers
// themselves are expected to exist already.
func (r *CarRepository) Create(ctx context.Context, car *model.Car) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(car).Error; err != nil {
			return err
		}
		return linkDrivers(tx, car.ID, car.Drivers)
	})
	return translateError(err)
}

// Update replaces the car's model, manufacturer and driver set.
func (r *CarRepository) Update(ctx context.Context, car *model.Car) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Car{}).
			Where("id = ?", car.ID).
			Updates(map[string]interface{}{
				"model":           car.Model,
				"manufacturer_id": car.ManufacturerID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		if err := tx.Exec("DELETE FROM cars_drivers WHERE car_id = ?", car.ID).Error; err != nil {
			return err
		}
		return linkDrivers(tx, car.ID, car.Drivers)
	})
	return translateError(err)
}

func (r *CarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Car{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarRepository) Count(ctx context.Context) (int64, error) {
	return count[model.Car](ctx, r.db)
}

func (r *CarRepository) AddDriver(ctx context.Context, carID, driverID uuid.UUID) error {
	return translateError(linkDrivers(r.db.WithContext(ctx), carID, []model.Driver{{ID: driverID}}))
}

func (r *CarRepository) RemoveDriver(ctx context.Context, carID, driverID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM cars_drivers WHERE car_id = ? AND driver_id = ?", carID, driverID).Error
}

func linkDrivers(tx *gorm.DB, carID uuid.UUID, drivers []model.Driver) error {
	for _, driver := range drivers {
		err := tx.Exec(
			"INSERT INTO cars_drivers (car_id, driver_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
			carID, driver.ID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
