package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/model"
	"vehicle-rental-backend/internal/report"
)

// Store defines the interface for all database operations. Lifecycle
// operations (rental start/finish/cancel, maintenance completion, invoice
// payment) run inside single transactions so a failure never leaves
// partial state behind.
type Store interface {
	// Vehicles
	ListVehicles(ctx context.Context, f VehicleFilter) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*model.Vehicle, error)
	CreateVehicle(ctx context.Context, v *model.Vehicle) error
	UpdateVehicle(ctx context.Context, v *model.Vehicle) error
	UpdateVehicleStatus(ctx context.Context, id uint, status domain.VehicleStatus) (*model.Vehicle, error)
	DecommissionVehicle(ctx context.Context, id uint) (*model.Vehicle, error)

	// Clients
	ListClients(ctx context.Context, status *domain.ClientStatus) ([]model.Client, error)
	GetClient(ctx context.Context, id uint) (*model.Client, error)
	CreateClient(ctx context.Context, c *model.Client) error
	UpdateClient(ctx context.Context, c *model.Client) error
	UpdateClientStatus(ctx context.Context, id uint, status domain.ClientStatus) (*model.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	// Employees
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	CreateEmployee(ctx context.Context, e *model.Employee) error
	UpdateEmployee(ctx context.Context, e *model.Employee) error
	DeleteEmployee(ctx context.Context, id uint) error

	// Users
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
	UpdateUserPassword(ctx context.Context, id uint, passwordHash string) error
	DeleteUser(ctx context.Context, id uint) error

	// Rentals
	ListRentals(ctx context.Context, f RentalFilter) ([]model.Rental, error)
	GetRental(ctx context.Context, id uint) (*model.Rental, error)
	CreateRental(ctx context.Context, r *model.Rental) error
	UpdateRental(ctx context.Context, r *model.Rental) error
	ReserveRental(ctx context.Context, id uint) (*model.Rental, error)
	StartRental(ctx context.Context, id uint) (*model.Rental, error)
	FinishRental(ctx context.Context, id uint, endKm float64) (*model.Rental, *model.Invoice, error)
	CancelRental(ctx context.Context, id uint) (*model.Rental, error)
	DeleteRental(ctx context.Context, id uint) error

	// Incidents
	ListIncidents(ctx context.Context, f IncidentFilter) ([]model.Incident, error)
	GetIncident(ctx context.Context, id uint) (*model.Incident, error)
	CreateIncident(ctx context.Context, i *model.Incident) error
	UpdateIncident(ctx context.Context, i *model.Incident) error
	DeleteIncident(ctx context.Context, id uint) error

	// Invoices
	ListInvoices(ctx context.Context, f InvoiceFilter) ([]model.Invoice, error)
	GetInvoice(ctx context.Context, id uint) (*model.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id uint, paymentMethod string) (*model.Invoice, error)
	VoidInvoice(ctx context.Context, id uint) (*model.Invoice, error)

	// Maintenance
	ListMaintenance(ctx context.Context, f MaintenanceFilter) ([]model.Maintenance, error)
	GetMaintenance(ctx context.Context, id uint) (*model.Maintenance, error)
	CreateMaintenance(ctx context.Context, m *model.Maintenance) error
	FinishMaintenance(ctx context.Context, id uint, odometerKm *int) (*model.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id uint) error

	// Reporting
	FinishedRentalRows(ctx context.Context) ([]report.Row, error)
	Dashboard(ctx context.Context, loc *time.Location) (*DashboardData, error)
}

// VehicleFilter narrows ListVehicles.
type VehicleFilter struct {
	Status *domain.VehicleStatus
	Brand  string
	Model  string
	Year   int
	Fuel   string
}

// RentalFilter narrows ListRentals.
type RentalFilter struct {
	ClientID  uint
	VehicleID uint
	Status    *domain.RentalStatus
}

// IncidentFilter narrows ListIncidents.
type IncidentFilter struct {
	RentalID uint
	Type     *domain.IncidentType
}

// InvoiceFilter narrows ListInvoices.
type InvoiceFilter struct {
	Status        *domain.InvoiceStatus
	PaymentMethod string
}

// MaintenanceFilter narrows ListMaintenance.
type MaintenanceFilter struct {
	VehicleID uint
	Status    *domain.MaintenanceStatus
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// notFound translates gorm's record-not-found into the domain error kind.
func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError(entity, id)
	}
	return err
}
