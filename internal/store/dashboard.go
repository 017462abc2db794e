package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
	"vehicle-rental-backend/internal/report"
)

// DashboardData is the aggregate snapshot behind the landing page.
type DashboardData struct {
	VehiclesAvailable int64 `json:"vehiclesAvailable"`
	VehiclesTotal     int64 `json:"vehiclesTotal"`
	ActiveRentals     int64 `json:"activeRentals"`
	ActiveClients     int64 `json:"activeClients"`
	PendingInvoices   int64 `json:"pendingInvoices"`
	OpenMaintenance   int64 `json:"openMaintenance"`

	// MonthlyRevenue holds paid invoice totals for the current year,
	// twelve buckets from January to December.
	MonthlyRevenue []float64 `json:"monthlyRevenue"`

	PopularVehicles []PopularVehicle `json:"popularVehicles"`
	RecentInvoices  []model.Invoice  `json:"recentInvoices"`
}

// PopularVehicle is one slice of the rental-count breakdown. The top three
// vehicles are listed by name and everything else is folded into an
// "other" slice.
type PopularVehicle struct {
	VehicleID uint   `json:"vehicleId,omitempty"`
	Name      string `json:"name"`
	Rentals   int    `json:"rentals"`
}

// Dashboard assembles the KPI counters, the current-year revenue series,
// the rental-count leaderboard and the latest issued invoices. Aggregation
// happens in Go so the queries stay portable across sqlite and postgres.
func (s *gormStore) Dashboard(ctx context.Context, loc *time.Location) (*DashboardData, error) {
	d := &DashboardData{MonthlyRevenue: make([]float64, 12)}

	counts := []struct {
		dst   *int64
		query func() error
	}{
		{&d.VehiclesAvailable, func() error {
			return s.db.WithContext(ctx).Model(&model.Vehicle{}).
				Where("status = ?", domain.VehicleAvailable).Count(&d.VehiclesAvailable).Error
		}},
		{&d.VehiclesTotal, func() error {
			return s.db.WithContext(ctx).Model(&model.Vehicle{}).
				Where("status <> ?", domain.VehicleDecommissioned).Count(&d.VehiclesTotal).Error
		}},
		{&d.ActiveRentals, func() error {
			return s.db.WithContext(ctx).Model(&model.Rental{}).
				Where("status IN ?", []domain.RentalStatus{
					domain.RentalCreated, domain.RentalReserved, domain.RentalStarted,
				}).Count(&d.ActiveRentals).Error
		}},
		{&d.ActiveClients, func() error {
			return s.db.WithContext(ctx).Model(&model.Client{}).
				Where("status = ?", domain.ClientActive).Count(&d.ActiveClients).Error
		}},
		{&d.PendingInvoices, func() error {
			return s.db.WithContext(ctx).Model(&model.Invoice{}).
				Where("status = ?", domain.InvoicePending).Count(&d.PendingInvoices).Error
		}},
		{&d.OpenMaintenance, func() error {
			return s.db.WithContext(ctx).Model(&model.Maintenance{}).
				Where("status = ?", domain.MaintenanceStarted).Count(&d.OpenMaintenance).Error
		}},
	}
	for _, c := range counts {
		if err := c.query(); err != nil {
			return nil, fmt.Errorf("failed to count dashboard kpi: %w", err)
		}
	}

	if err := s.fillMonthlyRevenue(ctx, d, loc); err != nil {
		return nil, err
	}
	if err := s.fillPopularVehicles(ctx, d); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Preload("Rental").Preload("Rental.Client").Preload("Rental.Vehicle").
		Order("issue_date DESC").Limit(5).
		Find(&d.RecentInvoices).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}
	return d, nil
}

func (s *gormStore) fillMonthlyRevenue(ctx context.Context, d *DashboardData, loc *time.Location) error {
	var paid []model.Invoice
	if err := s.db.WithContext(ctx).
		Where("status = ?", domain.InvoicePaid).Find(&paid).Error; err != nil {
		return fmt.Errorf("failed to load paid invoices: %w", err)
	}
	year := time.Now().In(loc).Year()
	for _, inv := range paid {
		issued := report.Normalize(inv.IssueDate, loc)
		if issued.Year() != year {
			continue
		}
		d.MonthlyRevenue[int(issued.Month())-1] += inv.Total
	}
	return nil
}

func (s *gormStore) fillPopularVehicles(ctx context.Context, d *DashboardData) error {
	var rentals []model.Rental
	if err := s.db.WithContext(ctx).Preload("Vehicle").
		Where("status <> ?", domain.RentalCancelled).Find(&rentals).Error; err != nil {
		return fmt.Errorf("failed to load rentals for leaderboard: %w", err)
	}

	byVehicle := make(map[uint]*PopularVehicle)
	for _, r := range rentals {
		p, ok := byVehicle[r.VehicleID]
		if !ok {
			p = &PopularVehicle{
				VehicleID: r.VehicleID,
				Name:      r.Vehicle.Brand + " " + r.Vehicle.Model,
			}
			byVehicle[r.VehicleID] = p
		}
		p.Rentals++
	}

	ranked := make([]PopularVehicle, 0, len(byVehicle))
	for _, p := range byVehicle {
		ranked = append(ranked, *p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rentals != ranked[j].Rentals {
			return ranked[i].Rentals > ranked[j].Rentals
		}
		return ranked[i].VehicleID < ranked[j].VehicleID
	})

	const top = 3
	if len(ranked) <= top {
		d.PopularVehicles = ranked
		return nil
	}
	d.PopularVehicles = ranked[:top]
	other := PopularVehicle{Name: "other"}
	for _, p := range ranked[top:] {
		other.Rentals += p.Rentals
	}
	d.PopularVehicles = append(d.PopularVehicles, other)
	return nil
}

// FinishedRentalRows flattens finished rentals with their client, vehicle
// and invoice total into the report package's row shape.
func (s *gormStore) FinishedRentalRows(ctx context.Context) ([]report.Row, error) {
	var rentals []model.Rental
	if err := s.db.WithContext(ctx).
		Preload("Client").Preload("Vehicle").
		Where("status = ?", domain.RentalFinished).
		Order("end_time").Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("failed to load finished rentals: %w", err)
	}

	var invoices []model.Invoice
	if err := s.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	totals := make(map[uint]float64, len(invoices))
	for _, inv := range invoices {
		if inv.Status != domain.InvoiceVoided {
			totals[inv.RentalID] = inv.Total
		}
	}

	rows := make([]report.Row, 0, len(rentals))
	for _, r := range rentals {
		total, ok := totals[r.ID]
		if !ok {
			total = r.Amount
		}
		rows = append(rows, report.Row{
			RentalID:    r.ID,
			ClientID:    r.ClientID,
			ClientName:  r.Client.Name,
			VehicleID:   r.VehicleID,
			VehicleName: r.Vehicle.Brand + " " + r.Vehicle.Model,
			StartTime:   r.StartTime,
			EndTime:     r.EndTime,
			Total:       total,
		})
	}
	return rows, nil
}
