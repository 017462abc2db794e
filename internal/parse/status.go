package parse

import (
	"strings"

	"vehicle-rental-backend/internal/domain"
)

// The fleet was previously managed through a Spanish-language system, so
// imported rows and some client payloads still carry legacy status strings
// in inconsistent casing ("en curso" and "iniciado" both meaning started).
// Everything is normalized to the closed enums here, at the boundary; raw
// strings are never compared elsewhere.

var rentalStatuses = map[string]domain.RentalStatus{
	"created":    domain.RentalCreated,
	"creado":     domain.RentalCreated,
	"reserved":   domain.RentalReserved,
	"reservado":  domain.RentalReserved,
	"confirmado": domain.RentalReserved,
	"started":    domain.RentalStarted,
	"iniciado":   domain.RentalStarted,
	"en curso":   domain.RentalStarted,
	"alquilado":  domain.RentalStarted,
	"finished":   domain.RentalFinished,
	"finalizado": domain.RentalFinished,
	"cancelled":  domain.RentalCancelled,
	"cancelado":  domain.RentalCancelled,
}

var vehicleStatuses = map[string]domain.VehicleStatus{
	"available":      domain.VehicleAvailable,
	"disponible":     domain.VehicleAvailable,
	"in_maintenance": domain.VehicleInMaintenance,
	"mantenimiento":  domain.VehicleInMaintenance,
	"unavailable":    domain.VehicleUnavailable,
	"no disponible":  domain.VehicleUnavailable,
	"alquilado":      domain.VehicleUnavailable,
	"decommissioned": domain.VehicleDecommissioned,
	"baja":           domain.VehicleDecommissioned,
}

var clientStatuses = map[string]domain.ClientStatus{
	"active":   domain.ClientActive,
	"activo":   domain.ClientActive,
	"inactive": domain.ClientInactive,
	"inactivo": domain.ClientInactive,
}

var invoiceStatuses = map[string]domain.InvoiceStatus{
	"pending":   domain.InvoicePending,
	"pendiente": domain.InvoicePending,
	"paid":      domain.InvoicePaid,
	"pagada":    domain.InvoicePaid,
	"voided":    domain.InvoiceVoided,
	"anulada":   domain.InvoiceVoided,
}

var maintenanceTypes = map[string]domain.MaintenanceType{
	"preventive": domain.MaintenancePreventive,
	"preventivo": domain.MaintenancePreventive,
	"corrective": domain.MaintenanceCorrective,
	"correctivo": domain.MaintenanceCorrective,
}

var incidentTypes = map[string]domain.IncidentType{
	"damage": domain.IncidentDamage,
	"daño":   domain.IncidentDamage,
	"dano":   domain.IncidentDamage,
	"fine":   domain.IncidentFine,
	"multa":  domain.IncidentFine,
}

var maintenanceStatuses = map[string]domain.MaintenanceStatus{
	"started":    domain.MaintenanceStarted,
	"iniciado":   domain.MaintenanceStarted,
	"finished":   domain.MaintenanceFinished,
	"finalizado": domain.MaintenanceFinished,
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// RentalStatus normalizes a raw rental status string to its enum value.
// Unknown strings are an error, never passed through.
func RentalStatus(raw string) (domain.RentalStatus, error) {
	if s, ok := rentalStatuses[normalize(raw)]; ok {
		return s, nil
	}
	return "", domain.ValidationError("unknown rental status: %q", raw)
}

// VehicleStatus normalizes a raw vehicle status string.
func VehicleStatus(raw string) (domain.VehicleStatus, error) {
	if s, ok := vehicleStatuses[normalize(raw)]; ok {
		return s, nil
	}
	return "", domain.ValidationError("unknown vehicle status: %q", raw)
}

// ClientStatus normalizes a raw client status string.
func ClientStatus(raw string) (domain.ClientStatus, error) {
	if s, ok := clientStatuses[normalize(raw)]; ok {
		return s, nil
	}
	return "", domain.ValidationError("unknown client status: %q", raw)
}

// InvoiceStatus normalizes a raw invoice status string.
func InvoiceStatus(raw string) (domain.InvoiceStatus, error) {
	if s, ok := invoiceStatuses[normalize(raw)]; ok {
		return s, nil
	}
	return "", domain.ValidationError("unknown invoice status: %q", raw)
}

// MaintenanceType normalizes a raw maintenance type string.
func MaintenanceType(raw string) (domain.MaintenanceType, error) {
	if t, ok := maintenanceTypes[normalize(raw)]; ok {
		return t, nil
	}
	return "", domain.ValidationError("unknown maintenance type: %q", raw)
}

// IncidentType normalizes a raw incident type string.
func IncidentType(raw string) (domain.IncidentType, error) {
	if t, ok := incidentTypes[normalize(raw)]; ok {
		return t, nil
	}
	return "", domain.ValidationError("unknown incident type: %q", raw)
}

// MaintenanceStatus normalizes a raw maintenance status string.
func MaintenanceStatus(raw string) (domain.MaintenanceStatus, error) {
	if s, ok := maintenanceStatuses[normalize(raw)]; ok {
		return s, nil
	}
	return "", domain.ValidationError("unknown maintenance status: %q", raw)
}
