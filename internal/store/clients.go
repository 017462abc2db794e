package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListClients(ctx context.Context, status *domain.ClientStatus) ([]model.Client, error) {
	q := s.db.WithContext(ctx).Model(&model.Client{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var clients []model.Client
	if err := q.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *gormStore) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "client", id)
	}
	return &c, nil
}

func (s *gormStore) CreateClient(ctx context.Context, c *model.Client) error {
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Client{}).
		Where("national_id = ?", c.NationalID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check national id uniqueness: %w", err)
	}
	if count > 0 {
		return domain.ConflictError("client with national id %q already exists", c.NationalID)
	}
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateClient(ctx context.Context, c *model.Client) error {
	existing, err := s.GetClient(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.NationalID != existing.NationalID {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Client{}).
			Where("national_id = ? AND id <> ?", c.NationalID, c.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check national id uniqueness: %w", err)
		}
		if count > 0 {
			return domain.ConflictError("client with national id %q already exists", c.NationalID)
		}
	}
	// Status changes go through UpdateClientStatus.
	existing.Name = c.Name
	existing.NationalID = c.NationalID
	existing.Email = c.Email
	existing.Phone = c.Phone
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update client %d: %w", c.ID, err)
	}
	*c = *existing
	return nil
}

func (s *gormStore) UpdateClientStatus(ctx context.Context, id uint, status domain.ClientStatus) (*model.Client, error) {
	var c model.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, id).Error; err != nil {
			return notFound(err, "client", id)
		}
		if status == domain.ClientInactive {
			var open int64
			if err := tx.Model(&model.Rental{}).
				Where("client_id = ? AND status IN ?", id, []domain.RentalStatus{
					domain.RentalCreated, domain.RentalReserved, domain.RentalStarted,
				}).Count(&open).Error; err != nil {
				return fmt.Errorf("failed to check open rentals for client %d: %w", id, err)
			}
			if open > 0 {
				return domain.ConflictError("client %d has open rentals", id)
			}
		}
		c.Status = status
		return tx.Save(&c).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *gormStore) DeleteClient(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Client
		if err := tx.First(&c, id).Error; err != nil {
			return notFound(err, "client", id)
		}
		var rentals int64
		if err := tx.Model(&model.Rental{}).Where("client_id = ?", id).Count(&rentals).Error; err != nil {
			return fmt.Errorf("failed to check rentals for client %d: %w", id, err)
		}
		if rentals > 0 {
			return domain.ConflictError("client %d has rental history; deactivate instead", id)
		}
		return tx.Delete(&c).Error
	})
}
