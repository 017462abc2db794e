package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListVehicles(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error) {
	q := s.db.WithContext(ctx).Model(&model.Vehicle{})
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Brand != "" {
		q = q.Where("LOWER(brand) = ?", strings.ToLower(f.Brand))
	}
	if f.Model != "" {
		q = q.Where("LOWER(model) = ?", strings.ToLower(f.Model))
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.Fuel != "" {
		q = q.Where("LOWER(fuel) = ?", strings.ToLower(f.Fuel))
	}

	var vehicles []model.Vehicle
	if err := q.Order("id").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *gormStore) GetVehicle(ctx context.Context, id uint) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, notFound(err, "vehicle", id)
	}
	return &v, nil
}

func (s *gormStore) CreateVehicle(ctx context.Context, v *model.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleAvailable
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Vehicle{}).
		Where("plate = ?", v.Plate).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check plate uniqueness: %w", err)
	}
	if count > 0 {
		return domain.ConflictError("vehicle with plate %q already exists", v.Plate)
	}
	if err := s.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateVehicle(ctx context.Context, v *model.Vehicle) error {
	existing, err := s.GetVehicle(ctx, v.ID)
	if err != nil {
		return err
	}
	if v.Plate != existing.Plate {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Vehicle{}).
			Where("plate = ? AND id <> ?", v.Plate, v.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check plate uniqueness: %w", err)
		}
		if count > 0 {
			return domain.ConflictError("vehicle with plate %q already exists", v.Plate)
		}
	}
	// Status and odometer change through dedicated operations only.
	existing.Brand = v.Brand
	existing.Model = v.Model
	existing.Plate = v.Plate
	existing.Year = v.Year
	existing.DailyRate = v.DailyRate
	existing.Seats = v.Seats
	existing.Transmission = v.Transmission
	existing.Fuel = v.Fuel
	existing.Thumbnail = v.Thumbnail
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update vehicle %d: %w", v.ID, err)
	}
	*v = *existing
	return nil
}

func (s *gormStore) UpdateVehicleStatus(ctx context.Context, id uint, status domain.VehicleStatus) (*model.Vehicle, error) {
	var v model.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return notFound(err, "vehicle", id)
		}
		if v.Status == domain.VehicleDecommissioned {
			return domain.ConflictError("vehicle %d is decommissioned", id)
		}
		if status == domain.VehicleAvailable {
			var open int64
			if err := tx.Model(&model.Maintenance{}).
				Where("vehicle_id = ? AND status = ?", id, domain.MaintenanceStarted).
				Count(&open).Error; err != nil {
				return fmt.Errorf("failed to check open maintenance: %w", err)
			}
			if open > 0 {
				return domain.ConflictError("vehicle %d has an open maintenance job", id)
			}
		}
		v.Status = status
		return tx.Save(&v).Error
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DecommissionVehicle retires a vehicle permanently. The row survives so
// historical rentals and invoices keep resolving.
func (s *gormStore) DecommissionVehicle(ctx context.Context, id uint) (*model.Vehicle, error) {
	var v model.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, id).Error; err != nil {
			return notFound(err, "vehicle", id)
		}
		active, err := activeRentalID(tx, id)
		if err != nil {
			return err
		}
		if active != 0 {
			return domain.ConflictError("vehicle %d has an active rental %d", id, active)
		}
		v.Status = domain.VehicleDecommissioned
		return tx.Save(&v).Error
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// activeRentalID returns the id of the rental currently holding the vehicle,
// or 0 when the vehicle is free. Created, reserved and started rentals all
// count as holding.
func activeRentalID(tx *gorm.DB, vehicleID uint) (uint, error) {
	var r model.Rental
	err := tx.Where("vehicle_id = ? AND status IN ?", vehicleID, []domain.RentalStatus{
		domain.RentalCreated, domain.RentalReserved, domain.RentalStarted,
	}).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check active rentals for vehicle %d: %w", vehicleID, err)
	}
	return r.ID, nil
}
