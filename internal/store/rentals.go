package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListRentals(ctx context.Context, f RentalFilter) ([]model.Rental, error) {
	q := s.db.WithContext(ctx).Model(&model.Rental{}).
		Preload("Client").Preload("Vehicle").Preload("Employee")
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.VehicleID != 0 {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	var rentals []model.Rental
	if err := q.Order("id").Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

func (s *gormStore) GetRental(ctx context.Context, id uint) (*model.Rental, error) {
	var r model.Rental
	if err := s.db.WithContext(ctx).
		Preload("Client").Preload("Vehicle").Preload("Employee").Preload("Incidents").
		First(&r, id).Error; err != nil {
		return nil, notFound(err, "rental", id)
	}
	return &r, nil
}

// CreateRental books a vehicle for a client. The start odometer is copied
// from the vehicle and the amount is estimated up front; both are
// re-examined when the rental finishes.
func (s *gormStore) CreateRental(ctx context.Context, r *model.Rental) error {
	if !r.StartTime.Before(r.EndTime) {
		return domain.ValidationError("rental end time must be after start time")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client model.Client
		if err := tx.First(&client, r.ClientID).Error; err != nil {
			return notFound(err, "client", r.ClientID)
		}
		if client.Status != domain.ClientActive {
			return domain.ConflictError("client %d is inactive", r.ClientID)
		}
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, r.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", r.VehicleID)
		}
		if vehicle.Status != domain.VehicleAvailable {
			return domain.ConflictError("vehicle %d is not available (%s)", r.VehicleID, vehicle.Status)
		}
		if active, err := activeRentalID(tx, r.VehicleID); err != nil {
			return err
		} else if active != 0 {
			return domain.ConflictError("vehicle %d is already held by rental %d", r.VehicleID, active)
		}
		if err := tx.First(&model.Employee{}, r.EmployeeID).Error; err != nil {
			return notFound(err, "employee", r.EmployeeID)
		}

		r.StartKm = vehicle.OdometerKm
		r.EndKm = nil
		r.Amount = domain.EstimateCost(r.StartTime, r.EndTime, vehicle.DailyRate)
		r.Status = domain.RentalCreated
		r.CreatedOn = time.Now()
		r.ConfirmedOn = nil
		r.CancelledOn = nil
		if err := tx.Create(r).Error; err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}
		return nil
	})
}

// UpdateRental edits the booking window while the rental has not started.
// The estimated amount is recomputed from the new window.
func (s *gormStore) UpdateRental(ctx context.Context, r *model.Rental) error {
	if !r.StartTime.Before(r.EndTime) {
		return domain.ValidationError("rental end time must be after start time")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Rental
		if err := tx.First(&existing, r.ID).Error; err != nil {
			return notFound(err, "rental", r.ID)
		}
		if existing.Status != domain.RentalCreated && existing.Status != domain.RentalReserved {
			return domain.ConflictError("rental %d cannot be edited in status %s", r.ID, existing.Status)
		}
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, existing.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", existing.VehicleID)
		}
		existing.StartTime = r.StartTime
		existing.EndTime = r.EndTime
		existing.Amount = domain.EstimateCost(r.StartTime, r.EndTime, vehicle.DailyRate)
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update rental %d: %w", r.ID, err)
		}
		*r = existing
		return nil
	})
}

func (s *gormStore) ReserveRental(ctx context.Context, id uint) (*model.Rental, error) {
	return s.transition(ctx, id, domain.EventReserve, func(tx *gorm.DB, r *model.Rental) error {
		return nil
	})
}

// StartRental hands the vehicle over. The vehicle must still be fit to
// drive; a job opened or a decommission issued since booking blocks it.
func (s *gormStore) StartRental(ctx context.Context, id uint) (*model.Rental, error) {
	return s.transition(ctx, id, domain.EventStart, func(tx *gorm.DB, r *model.Rental) error {
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, r.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", r.VehicleID)
		}
		if vehicle.Status != domain.VehicleAvailable {
			return domain.ConflictError("vehicle %d is not available (%s)", r.VehicleID, vehicle.Status)
		}
		now := time.Now()
		r.ConfirmedOn = &now
		r.StartKm = vehicle.OdometerKm
		return nil
	})
}

// FinishRental closes the rental and issues its invoice in one transaction.
// The invoice base is recomputed from the agreed window and the vehicle's
// rate, and every incident logged against the rental is added on top.
func (s *gormStore) FinishRental(ctx context.Context, id uint, endKm float64) (*model.Rental, *model.Invoice, error) {
	var invoice model.Invoice
	rental, err := s.transition(ctx, id, domain.EventFinish, func(tx *gorm.DB, r *model.Rental) error {
		if err := domain.ValidateMileage(r.StartKm, endKm); err != nil {
			return err
		}
		var vehicle model.Vehicle
		if err := tx.First(&vehicle, r.VehicleID).Error; err != nil {
			return notFound(err, "vehicle", r.VehicleID)
		}
		var incidents []model.Incident
		if err := tx.Where("rental_id = ?", r.ID).Find(&incidents).Error; err != nil {
			return fmt.Errorf("failed to load incidents for rental %d: %w", r.ID, err)
		}
		costs := make([]float64, len(incidents))
		for i, inc := range incidents {
			costs[i] = inc.Cost
		}
		base := domain.EstimateCost(r.StartTime, r.EndTime, vehicle.DailyRate)
		totals := domain.DeriveInvoice(base, costs)

		km := int(endKm)
		r.EndKm = &km
		r.Amount = base

		vehicle.OdometerKm = km
		if err := tx.Save(&vehicle).Error; err != nil {
			return fmt.Errorf("failed to update vehicle odometer: %w", err)
		}

		invoice = model.Invoice{
			RentalID:       r.ID,
			IssueDate:      time.Now(),
			Status:         domain.InvoicePending,
			BaseAmount:     totals.Base,
			IncidentsTotal: totals.IncidentsTotal,
			Total:          totals.Total,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice for rental %d: %w", r.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return rental, &invoice, nil
}

func (s *gormStore) CancelRental(ctx context.Context, id uint) (*model.Rental, error) {
	return s.transition(ctx, id, domain.EventCancel, func(tx *gorm.DB, r *model.Rental) error {
		now := time.Now()
		r.CancelledOn = &now
		return nil
	})
}

func (s *gormStore) DeleteRental(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r model.Rental
		if err := tx.First(&r, id).Error; err != nil {
			return notFound(err, "rental", id)
		}
		if r.Status != domain.RentalCreated && r.Status != domain.RentalCancelled {
			return domain.ConflictError("rental %d cannot be deleted in status %s", id, r.Status)
		}
		if err := tx.Where("rental_id = ?", id).Delete(&model.Incident{}).Error; err != nil {
			return fmt.Errorf("failed to delete incidents for rental %d: %w", id, err)
		}
		return tx.Delete(&r).Error
	})
}

// transition loads the rental, applies the lifecycle event and runs the
// event's side effects inside one transaction. The status write and every
// side effect commit together or not at all.
func (s *gormStore) transition(ctx context.Context, id uint, event domain.Event, apply func(tx *gorm.DB, r *model.Rental) error) (*model.Rental, error) {
	var r model.Rental
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&r, id).Error; err != nil {
			return notFound(err, "rental", id)
		}
		next, err := domain.Transition(r.Status, event)
		if err != nil {
			return err
		}
		if err := apply(tx, &r); err != nil {
			return err
		}
		r.Status = next
		if err := tx.Save(&r).Error; err != nil {
			return fmt.Errorf("failed to save rental %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}
