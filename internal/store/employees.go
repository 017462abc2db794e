package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := s.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *gormStore) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, notFound(err, "employee", id)
	}
	return &e, nil
}

func (s *gormStore) CreateEmployee(ctx context.Context, e *model.Employee) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Employee{}).
		Where("national_id = ?", e.NationalID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check national id uniqueness: %w", err)
	}
	if count > 0 {
		return domain.ConflictError("employee with national id %q already exists", e.NationalID)
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateEmployee(ctx context.Context, e *model.Employee) error {
	existing, err := s.GetEmployee(ctx, e.ID)
	if err != nil {
		return err
	}
	if e.NationalID != existing.NationalID {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Employee{}).
			Where("national_id = ? AND id <> ?", e.NationalID, e.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check national id uniqueness: %w", err)
		}
		if count > 0 {
			return domain.ConflictError("employee with national id %q already exists", e.NationalID)
		}
	}
	existing.Name = e.Name
	existing.NationalID = e.NationalID
	existing.Role = e.Role
	existing.Email = e.Email
	existing.Phone = e.Phone
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return fmt.Errorf("failed to update employee %d: %w", e.ID, err)
	}
	*e = *existing
	return nil
}

func (s *gormStore) DeleteEmployee(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e model.Employee
		if err := tx.First(&e, id).Error; err != nil {
			return notFound(err, "employee", id)
		}
		var users int64
		if err := tx.Model(&model.User{}).Where("employee_id = ?", id).Count(&users).Error; err != nil {
			return fmt.Errorf("failed to check users for employee %d: %w", id, err)
		}
		if users > 0 {
			return domain.ConflictError("employee %d has a login user", id)
		}
		return tx.Delete(&e).Error
	})
}
