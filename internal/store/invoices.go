package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func (s *gormStore) ListInvoices(ctx context.Context, f InvoiceFilter) ([]model.Invoice, error) {
	q := s.db.WithContext(ctx).Model(&model.Invoice{}).Preload("Rental")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.PaymentMethod != "" {
		q = q.Where("LOWER(payment_method) = ?", strings.ToLower(f.PaymentMethod))
	}
	var invoices []model.Invoice
	if err := q.Order("id").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

func (s *gormStore) GetInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	var inv model.Invoice
	if err := s.db.WithContext(ctx).
		Preload("Rental").Preload("Rental.Client").Preload("Rental.Vehicle").Preload("Rental.Incidents").
		First(&inv, id).Error; err != nil {
		return nil, notFound(err, "invoice", id)
	}
	return &inv, nil
}

func (s *gormStore) MarkInvoicePaid(ctx context.Context, id uint, paymentMethod string) (*model.Invoice, error) {
	if paymentMethod == "" {
		return nil, domain.ValidationError("payment method is required")
	}
	return s.setInvoiceStatus(ctx, id, domain.InvoicePaid, paymentMethod)
}

func (s *gormStore) VoidInvoice(ctx context.Context, id uint) (*model.Invoice, error) {
	return s.setInvoiceStatus(ctx, id, domain.InvoiceVoided, "")
}

func (s *gormStore) setInvoiceStatus(ctx context.Context, id uint, status domain.InvoiceStatus, paymentMethod string) (*model.Invoice, error) {
	var inv model.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, id).Error; err != nil {
			return notFound(err, "invoice", id)
		}
		if err := domain.NextInvoiceStatus(inv.Status, status); err != nil {
			return err
		}
		inv.Status = status
		if paymentMethod != "" {
			inv.PaymentMethod = paymentMethod
		}
		return tx.Save(&inv).Error
	})
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
