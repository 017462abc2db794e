package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"vehicle-rental-backend/internal/db"
	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
)

func newTestStore(t *testing.T) (Store, *gorm.DB) {
	t.Helper()
	// One named shared-cache database per test keeps gorm's connection pool
	// on the same in-memory instance without leaking state across tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return NewGormStore(gormDB), gormDB
}

// seedFleet creates one vehicle, one active client and one employee.
func seedFleet(t *testing.T, s Store) (*model.Vehicle, *model.Client, *model.Employee) {
	t.Helper()
	ctx := context.Background()

	v := &model.Vehicle{
		Brand:      "Toyota",
		Model:      "Corolla",
		Plate:      "AB123CD",
		Year:       2022,
		DailyRate:  1000,
		OdometerKm: 10000,
	}
	require.NoError(t, s.CreateVehicle(ctx, v))

	c := &model.Client{Name: "Juan Pérez", NationalID: "30111222", Email: "juan@example.com"}
	require.NoError(t, s.CreateClient(ctx, c))

	e := &model.Employee{Name: "Ana Gómez", NationalID: "27999888", Role: "agent"}
	require.NoError(t, s.CreateEmployee(ctx, e))

	return v, c, e
}

func newRental(v *model.Vehicle, c *model.Client, e *model.Employee) *model.Rental {
	return &model.Rental{
		ClientID:   c.ID,
		VehicleID:  v.ID,
		EmployeeID: e.ID,
		StartTime:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestRentalLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	assert.Equal(t, domain.RentalCreated, r.Status)
	assert.Equal(t, 10000, r.StartKm)
	// 50 hours round up to 3 billable days at 1000/day.
	assert.Equal(t, 3000.0, r.Amount)

	r, err := s.ReserveRental(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalReserved, r.Status)

	r, err = s.StartRental(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStarted, r.Status)
	require.NotNil(t, r.ConfirmedOn)

	// A damage incident logged mid-rental lands on the invoice.
	inc := &model.Incident{
		RentalID:    r.ID,
		EmployeeID:  e.ID,
		Type:        domain.IncidentDamage,
		Description: "scratched rear bumper",
		Cost:        500,
		Date:        time.Now(),
	}
	require.NoError(t, s.CreateIncident(ctx, inc))

	r, inv, err := s.FinishRental(ctx, r.ID, 10800)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalFinished, r.Status)
	require.NotNil(t, r.EndKm)
	assert.Equal(t, 10800, *r.EndKm)

	require.NotNil(t, inv)
	assert.Equal(t, domain.InvoicePending, inv.Status)
	assert.Equal(t, 3000.0, inv.BaseAmount)
	assert.Equal(t, 500.0, inv.IncidentsTotal)
	assert.Equal(t, 3500.0, inv.Total)

	got, err := s.GetVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 10800, got.OdometerKm)
}

func TestCreateRentalGuards(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	t.Run("end before start", func(t *testing.T) {
		r := newRental(v, c, e)
		r.EndTime = r.StartTime.Add(-time.Hour)
		err := s.CreateRental(ctx, r)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("inactive client", func(t *testing.T) {
		_, err := s.UpdateClientStatus(ctx, c.ID, domain.ClientInactive)
		require.NoError(t, err)
		err = s.CreateRental(ctx, newRental(v, c, e))
		assert.ErrorIs(t, err, domain.ErrConflict)
		_, err = s.UpdateClientStatus(ctx, c.ID, domain.ClientActive)
		require.NoError(t, err)
	})

	t.Run("double booking", func(t *testing.T) {
		require.NoError(t, s.CreateRental(ctx, newRental(v, c, e)))
		err := s.CreateRental(ctx, newRental(v, c, e))
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		r := newRental(v, c, e)
		r.VehicleID = 999
		err := s.CreateRental(ctx, r)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFinishRentalRejectsBadMileage(t *testing.T) {
	s, gormDB := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.StartRental(ctx, r.ID)
	require.NoError(t, err)

	_, _, err = s.FinishRental(ctx, r.ID, 9000)
	assert.ErrorIs(t, err, domain.ErrInvalidMileage)

	// The failed finish must not leave anything behind.
	got, err := s.GetRental(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalStarted, got.Status)
	assert.Nil(t, got.EndKm)
	var invoices int64
	require.NoError(t, gormDB.Model(&model.Invoice{}).Count(&invoices).Error)
	assert.Zero(t, invoices)
}

func TestRentalTransitionRules(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))

	// Finishing before starting is illegal.
	_, _, err := s.FinishRental(ctx, r.ID, 10500)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	r, err = s.CancelRental(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RentalCancelled, r.Status)
	require.NotNil(t, r.CancelledOn)

	// Terminal states accept nothing.
	_, err = s.StartRental(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = s.CancelRental(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// The cancelled rental released the vehicle.
	require.NoError(t, s.CreateRental(ctx, newRental(v, c, e)))
}

func TestMaintenanceLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	m := &model.Maintenance{
		VehicleID:   v.ID,
		EmployeeID:  &e.ID,
		Type:        domain.MaintenancePreventive,
		Description: "oil change",
		Cost:        120,
	}
	require.NoError(t, s.CreateMaintenance(ctx, m))
	assert.Equal(t, domain.MaintenanceStarted, m.Status)

	got, err := s.GetVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleInMaintenance, got.Status)

	// One open job per vehicle.
	err = s.CreateMaintenance(ctx, &model.Maintenance{VehicleID: v.ID, Type: domain.MaintenanceCorrective})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// The vehicle cannot be booked while in the shop.
	err = s.CreateRental(ctx, newRental(v, c, e))
	assert.ErrorIs(t, err, domain.ErrConflict)

	km := 10050
	m, err = s.FinishMaintenance(ctx, m.ID, &km)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceFinished, m.Status)
	require.NotNil(t, m.EndDate)

	got, err = s.GetVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleAvailable, got.Status)
	assert.Equal(t, 10050, got.OdometerKm)

	_, err = s.FinishMaintenance(ctx, m.ID, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestMaintenanceBlockedWhileRented(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))

	err := s.CreateMaintenance(ctx, &model.Maintenance{VehicleID: v.ID, Type: domain.MaintenanceCorrective})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestInvoicePaymentAndIncidentFreeze(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.StartRental(ctx, r.ID)
	require.NoError(t, err)
	_, inv, err := s.FinishRental(ctx, r.ID, 10500)
	require.NoError(t, err)

	// A late fine on a pending invoice reprices it.
	fine := &model.Incident{RentalID: r.ID, Type: domain.IncidentFine, Cost: 200, Date: time.Now()}
	require.NoError(t, s.CreateIncident(ctx, fine))
	inv, err = s.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, inv.IncidentsTotal)
	assert.Equal(t, inv.BaseAmount+200, inv.Total)

	inv, err = s.MarkInvoicePaid(ctx, inv.ID, "card")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, inv.Status)
	assert.Equal(t, "card", inv.PaymentMethod)

	// Paid invoices freeze their incidents and accept no further changes.
	fine.Cost = 300
	assert.ErrorIs(t, s.UpdateIncident(ctx, fine), domain.ErrConflict)
	assert.ErrorIs(t, s.DeleteIncident(ctx, fine.ID), domain.ErrConflict)
	err = s.CreateIncident(ctx, &model.Incident{RentalID: r.ID, Type: domain.IncidentDamage, Cost: 50, Date: time.Now()})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.MarkInvoicePaid(ctx, inv.ID, "cash")
	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceState)
	_, err = s.VoidInvoice(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceState)
}

func TestVoidInvoice(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.StartRental(ctx, r.ID)
	require.NoError(t, err)
	_, inv, err := s.FinishRental(ctx, r.ID, 10500)
	require.NoError(t, err)

	inv, err = s.VoidInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceVoided, inv.Status)

	_, err = s.MarkInvoicePaid(ctx, inv.ID, "cash")
	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceState)
}

func TestUniquenessConflicts(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedFleet(t, s)

	err := s.CreateVehicle(ctx, &model.Vehicle{Brand: "Fiat", Model: "Cronos", Plate: "AB123CD", DailyRate: 800})
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = s.CreateClient(ctx, &model.Client{Name: "Other", NationalID: "30111222"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = s.CreateEmployee(ctx, &model.Employee{Name: "Other", NationalID: "27999888"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteClientWithHistory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	require.NoError(t, s.CreateRental(ctx, newRental(v, c, e)))
	assert.ErrorIs(t, s.DeleteClient(ctx, c.ID), domain.ErrConflict)

	fresh := &model.Client{Name: "No History", NationalID: "11222333"}
	require.NoError(t, s.CreateClient(ctx, fresh))
	require.NoError(t, s.DeleteClient(ctx, fresh.ID))
	_, err := s.GetClient(ctx, fresh.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecommissionVehicle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.DecommissionVehicle(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.CancelRental(ctx, r.ID)
	require.NoError(t, err)

	got, err := s.DecommissionVehicle(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleDecommissioned, got.Status)

	// Retired vehicles cannot be booked or revived by a status edit.
	err = s.CreateRental(ctx, newRental(v, c, e))
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = s.UpdateVehicleStatus(ctx, v.ID, domain.VehicleAvailable)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserPasswordAndImmutableUsername(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	u := &model.User{Username: "operator", PasswordHash: "hash-one"}
	require.NoError(t, s.CreateUser(ctx, u))

	err := s.CreateUser(ctx, &model.User{Username: "operator", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	require.NoError(t, s.UpdateUserPassword(ctx, u.ID, "hash-two"))
	got, err := s.GetUserByUsername(ctx, "operator")
	require.NoError(t, err)
	assert.Equal(t, "hash-two", got.PasswordHash)

	assert.ErrorIs(t, s.UpdateUserPassword(ctx, 999, "x"), domain.ErrNotFound)
}

func TestDeleteEmployeeWithUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	_, _, e := seedFleet(t, s)

	u := &model.User{Username: "ana", PasswordHash: "h", EmployeeID: &e.ID}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.ErrorIs(t, s.DeleteEmployee(ctx, e.ID), domain.ErrConflict)

	require.NoError(t, s.DeleteUser(ctx, u.ID))
	require.NoError(t, s.DeleteEmployee(ctx, e.ID))
}

func TestFinishedRentalRows(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.StartRental(ctx, r.ID)
	require.NoError(t, err)
	_, _, err = s.FinishRental(ctx, r.ID, 10500)
	require.NoError(t, err)

	// Open rentals never show up in the report.
	second := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, second))

	rows, err := s.FinishedRentalRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, r.ID, rows[0].RentalID)
	assert.Equal(t, "Juan Pérez", rows[0].ClientName)
	assert.Equal(t, "Toyota Corolla", rows[0].VehicleName)
	assert.Equal(t, 3000.0, rows[0].Total)
}

func TestDashboard(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	v, c, e := seedFleet(t, s)

	r := newRental(v, c, e)
	require.NoError(t, s.CreateRental(ctx, r))
	_, err := s.StartRental(ctx, r.ID)
	require.NoError(t, err)
	_, inv, err := s.FinishRental(ctx, r.ID, 10500)
	require.NoError(t, err)
	_, err = s.MarkInvoicePaid(ctx, inv.ID, "cash")
	require.NoError(t, err)

	d, err := s.Dashboard(ctx, time.UTC)
	require.NoError(t, err)
	assert.EqualValues(t, 1, d.VehiclesTotal)
	assert.EqualValues(t, 1, d.VehiclesAvailable)
	assert.EqualValues(t, 0, d.ActiveRentals)
	assert.EqualValues(t, 1, d.ActiveClients)
	assert.EqualValues(t, 0, d.PendingInvoices)

	require.Len(t, d.MonthlyRevenue, 12)
	var revenue float64
	for _, m := range d.MonthlyRevenue {
		revenue += m
	}
	if time.Now().UTC().Year() == inv.IssueDate.UTC().Year() {
		assert.Equal(t, 3000.0, revenue)
	}

	require.Len(t, d.PopularVehicles, 1)
	assert.Equal(t, "Toyota Corolla", d.PopularVehicles[0].Name)
	assert.Equal(t, 1, d.PopularVehicles[0].Rentals)

	require.Len(t, d.RecentInvoices, 1)
}
