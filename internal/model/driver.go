package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is the user account of the service. Every driver except
// superusers created from the command line carries a license number.
type Driver struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username      string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	PasswordHash  string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName     string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName      string    `gorm:"type:varchar(150);not null" json:"last_name"`
	Email         string    `gorm:"type:varchar(254);not null" json:"email"`
	LicenseNumber string    `gorm:"type:varchar(8);not null" json:"license_number"`
	IsStaff       bool      `gorm:"not null" json:"is_staff"`
	IsSuperuser   bool      `gorm:"not null" json:"is_superuser"`
	IsActive      bool      `gorm:"not null" json:"is_active"`
	DateJoined    time.Time `gorm:"not null" json:"date_joined"`
	Cars          []Car     `gorm:"many2many:cars_drivers;joinForeignKey:DriverID;joinReferences:CarID" json:"cars,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.DateJoined.IsZero() {
		d.DateJoined = time.Now().UTC()
	}
	return nil
}

func (d Driver) String() string {
	return fmt.Sprintf("%s (%s %s)", d.Username, d.FirstName, d.LastName)
}
