package domain

// RentalStatus is the authoritative lifecycle field of a rental record.
// A "reservation" is simply a rental that has not started yet.
type RentalStatus string

const (
	RentalCreated   RentalStatus = "created"
	RentalReserved  RentalStatus = "reserved"
	RentalStarted   RentalStatus = "started"
	RentalFinished  RentalStatus = "finished"
	RentalCancelled RentalStatus = "cancelled"
)

// VehicleStatus describes fleet availability. Vehicles are never deleted,
// only decommissioned.
type VehicleStatus string

const (
	VehicleAvailable      VehicleStatus = "available"
	VehicleInMaintenance  VehicleStatus = "in_maintenance"
	VehicleUnavailable    VehicleStatus = "unavailable"
	VehicleDecommissioned VehicleStatus = "decommissioned"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceVoided  InvoiceStatus = "voided"
)

type MaintenanceStatus string

const (
	MaintenanceStarted  MaintenanceStatus = "started"
	MaintenanceFinished MaintenanceStatus = "finished"
)

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
)

type IncidentType string

const (
	IncidentDamage IncidentType = "damage"
	IncidentFine   IncidentType = "fine"
)

// Terminal reports whether no further lifecycle event can be applied.
func (s RentalStatus) Terminal() bool {
	return s == RentalFinished || s == RentalCancelled
}
