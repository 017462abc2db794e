package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListMaintenance(ctx context.Context, f MaintenanceFilter) ([]model.Maintenance, error) {
	q := s.db.WithContext(ctx).Model(&model.Maintenance{}).Preload("Vehicle")
	if f.VehicleID != 0 {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var jobs []model.Maintenance
	if err := q.Order("id").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance jobs: %w", err)
	}
	return jobs, nil
}

func (s *gormStore) GetMaintenance(ctx context.Context, id uint) (*model.Maintenance, error) {
	var m model.Maintenance
	if err := s.db.WithContext(ctx).Preload("Vehicle").First(&m, id).Error; err != nil {
		return nil, notFound(err, "maintenance", id)
	}
	return &m, nil
}

// CreateMaintenance opens a job and pulls the vehicle out of the bookable
// pool. A vehicle takes at most one open job at a time and cannot enter the
// shop while a rental holds it.
func (s *gormStore) CreateMaintenance(ctx context.Context, m *model.Maintenance) error {
	if m.Cost < 0 {
		return domain.ValidationError("maintenance cost must not be negative")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, m.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", m.VehicleID)
		}
		if vehicle.Status == domain.VehicleDecommissioned {
			return domain.ConflictError("vehicle %d is decommissioned", m.VehicleID)
		}
		if active, err := activeRentalID(tx, m.VehicleID); err != nil {
			return err
		} else if active != 0 {
			return domain.ConflictError("vehicle %d is held by rental %d", m.VehicleID, active)
		}
		var open int64
		if err := tx.Model(&model.Maintenance{}).
			Where("vehicle_id = ? AND status = ?", m.VehicleID, domain.MaintenanceStarted).
			Count(&open).Error; err != nil {
			return fmt.Errorf("failed to check open maintenance: %w", err)
		}
		if open > 0 {
			return domain.ConflictError("vehicle %d already has an open maintenance job", m.VehicleID)
		}

		if m.StartDate.IsZero() {
			m.StartDate = time.Now()
		}
		m.EndDate = nil
		m.Status = domain.MaintenanceStarted
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("failed to create maintenance job: %w", err)
		}

		vehicle.Status = domain.VehicleInMaintenance
		return tx.Save(&vehicle).Error
	})
}

// FinishMaintenance closes the job and returns the vehicle to the bookable
// pool. When the shop adjusted the odometer it can be set here.
func (s *gormStore) FinishMaintenance(ctx context.Context, id uint, odometerKm *int) (*model.Maintenance, error) {
	var m model.Maintenance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return notFound(err, "maintenance", id)
		}
		if m.Status != domain.MaintenanceStarted {
			return domain.ConflictError("maintenance job %d is already finished", id)
		}
		now := time.Now()
		m.EndDate = &now
		m.Status = domain.MaintenanceFinished
		if err := tx.Save(&m).Error; err != nil {
			return fmt.Errorf("failed to finish maintenance job %d: %w", id, err)
		}

		var vehicle model.Vehicle
		if err := tx.First(&vehicle, m.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", m.VehicleID)
		}
		if odometerKm != nil {
			if *odometerKm < vehicle.OdometerKm {
				return domain.ValidationError("odometer cannot decrease (current %d)", vehicle.OdometerKm)
			}
			vehicle.OdometerKm = *odometerKm
		}
		if vehicle.Status == domain.VehicleInMaintenance {
			vehicle.Status = domain.VehicleAvailable
		}
		return tx.Save(&vehicle).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *gormStore) DeleteMaintenance(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Maintenance
		if err := tx.First(&m, id).Error; err != nil {
			return notFound(err, "maintenance", id)
		}
		if err := tx.Delete(&m).Error; err != nil {
			return fmt.Errorf("failed to delete maintenance job %d: %w", id, err)
		}
		// Deleting an open job releases the vehicle as if the job never
		// happened.
		if m.Status == domain.MaintenanceStarted {
			var vehicle model.Vehicle
			if err := tx.First(&vehicle, m.VehicleID).Error; err != nil {
				return notFound(err, "vehicle", m.VehicleID)
			}
			if vehicle.Status == domain.VehicleInMaintenance {
				vehicle.Status = domain.VehicleAvailable
				return tx.Save(&vehicle).Error
			}
		}
		return nil
	})
}
