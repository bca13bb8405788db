package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS manufacturers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		country VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_manufacturers_name ON manufacturers (name);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(150) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		email VARCHAR(254) NOT NULL DEFAULT '',
		license_number VARCHAR(8) NOT NULL DEFAULT '',
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_drivers_username ON drivers (username);`,
	// superusers may have no license, so uniqueness only covers non-empty values
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_drivers_license_number ON drivers (license_number) WHERE license_number <> '';`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_drivers_license_number') THEN
			ALTER TABLE drivers
				ADD CONSTRAINT chk_drivers_license_number
				CHECK (license_number = '' OR license_number ~ '^[A-Z]{3}[0-9]{5}$');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS cars (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		model VARCHAR(255) NOT NULL,
		manufacturer_id UUID NOT NULL REFERENCES manufacturers(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_model ON cars (model);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_manufacturer_id ON cars (manufacturer_id);`,
	`CREATE TABLE IF NOT EXISTS cars_drivers (
		car_id UUID NOT NULL REFERENCES cars(id) ON DELETE CASCADE,
		driver_id UUID NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
		PRIMARY KEY (car_id, driver_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_cars_drivers_driver_id ON cars_drivers (driver_id);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_manufacturers_updated_at') THEN
			CREATE TRIGGER trg_manufacturers_updated_at
				BEFORE UPDATE ON manufacturers
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_drivers_updated_at') THEN
			CREATE TRIGGER trg_drivers_updated_at
				BEFORE UPDATE ON drivers
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_cars_updated_at') THEN
			CREATE TRIGGER trg_cars_updated_at
				BEFORE UPDATE ON cars
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
