package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Car struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Model          string        `gorm:"type:varchar(255);not null;index" json:"model"`
	ManufacturerID uuid.UUID     `gorm:"type:uuid;not null;index" json:"manufacturer_id"`
	Manufacturer   *Manufacturer `gorm:"foreignKey:ManufacturerID;constraint:OnDelete:CASCADE" json:"manufacturer,omitempty"`
	Drivers        []Driver      `gorm:"many2many:cars_drivers;joinForeignKey:CarID;joinReferences:DriverID" json:"drivers,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Car) TableName() string {
	return "cars"
}

func (c *Car) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c Car) String() string {
	return c.Model
}

// HasDriver reports whether the driver is among the loaded Drivers.
func (c Car) HasDriver(driverID uuid.UUID) bool {
	for _, d := range c.Drivers {
		if d.ID == driverID {
			return true
		}
	}
	return false
}
