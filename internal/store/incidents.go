package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListIncidents(ctx context.Context, f IncidentFilter) ([]model.Incident, error) {
	q := s.db.WithContext(ctx).Model(&model.Incident{})
	if f.RentalID != 0 {
		q = q.Where("rental_id = ?", f.RentalID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	var incidents []model.Incident
	if err := q.Order("id").Find(&incidents).Error; err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

func (s *gormStore) GetIncident(ctx context.Context, id uint) (*model.Incident, error) {
	var i model.Incident
	if err := s.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, notFound(err, "incident", id)
	}
	return &i, nil
}

// CreateIncident attaches a damage report or fine to a rental. Incidents can
// be logged while the rental is open or after it finished, as long as the
// invoice has not been paid yet.
func (s *gormStore) CreateIncident(ctx context.Context, i *model.Incident) error {
	if i.Cost < 0 {
		return domain.ValidationError("incident cost must not be negative")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r model.Rental
		if err := tx.First(&r, i.RentalID).Error; err != nil {
			return notFound(err, "rental", i.RentalID)
		}
		if r.Status == domain.RentalCancelled {
			return domain.ConflictError("rental %d is cancelled", i.RentalID)
		}
		if err := invoiceMutableForRental(tx, i.RentalID); err != nil {
			return err
		}
		if err := tx.Create(i).Error; err != nil {
			return fmt.Errorf("failed to create incident: %w", err)
		}
		if r.Status == domain.RentalFinished {
			return refreshInvoiceTotals(tx, i.RentalID)
		}
		return nil
	})
}

func (s *gormStore) UpdateIncident(ctx context.Context, i *model.Incident) error {
	if i.Cost < 0 {
		return domain.ValidationError("incident cost must not be negative")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Incident
		if err := tx.First(&existing, i.ID).Error; err != nil {
			return notFound(err, "incident", i.ID)
		}
		if err := invoiceMutableForRental(tx, existing.RentalID); err != nil {
			return err
		}
		// The owning rental never changes.
		existing.EmployeeID = i.EmployeeID
		existing.Type = i.Type
		existing.Description = i.Description
		existing.Cost = i.Cost
		existing.Date = i.Date
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update incident %d: %w", i.ID, err)
		}
		*i = existing
		return refreshInvoiceTotals(tx, existing.RentalID)
	})
}

func (s *gormStore) DeleteIncident(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Incident
		if err := tx.First(&existing, id).Error; err != nil {
			return notFound(err, "incident", id)
		}
		if err := invoiceMutableForRental(tx, existing.RentalID); err != nil {
			return err
		}
		if err := tx.Delete(&existing).Error; err != nil {
			return fmt.Errorf("failed to delete incident %d: %w", id, err)
		}
		return refreshInvoiceTotals(tx, existing.RentalID)
	})
}

// invoiceMutableForRental rejects incident mutations once the rental's
// invoice has been paid. Pending and voided invoices still allow changes.
func invoiceMutableForRental(tx *gorm.DB, rentalID uint) error {
	var inv model.Invoice
	err := tx.Where("rental_id = ?", rentalID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load invoice for rental %d: %w", rentalID, err)
	}
	if inv.Status == domain.InvoicePaid {
		return domain.ConflictError("invoice %d for rental %d is paid; incidents are frozen", inv.ID, rentalID)
	}
	return nil
}

// refreshInvoiceTotals recomputes the incident surcharge on a pending
// invoice after its rental's incidents changed. No-op when no invoice
// exists yet.
func refreshInvoiceTotals(tx *gorm.DB, rentalID uint) error {
	var inv model.Invoice
	err := tx.Where("rental_id = ?", rentalID).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load invoice for rental %d: %w", rentalID, err)
	}
	var incidents []model.Incident
	if err := tx.Where("rental_id = ?", rentalID).Find(&incidents).Error; err != nil {
		return fmt.Errorf("failed to load incidents for rental %d: %w", rentalID, err)
	}
	costs := make([]float64, len(incidents))
	for i, inc := range incidents {
		costs[i] = inc.Cost
	}
	totals := domain.DeriveInvoice(inv.BaseAmount, costs)
	inv.IncidentsTotal = totals.IncidentsTotal
	inv.Total = totals.Total
	if err := tx.Save(&inv).Error; err != nil {
		return fmt.Errorf("failed to refresh invoice %d: %w", inv.ID, err)
	}
	return nil
}
