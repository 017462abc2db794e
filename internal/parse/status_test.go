package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vehicle-rental-backend/internal/domain"
)

func TestRentalStatus(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  domain.RentalStatus
		expectErr bool
	}{
		{name: "canonical", raw: "started", expected: domain.RentalStarted},
		{name: "legacy en curso", raw: "en curso", expected: domain.RentalStarted},
		{name: "legacy iniciado", raw: "iniciado", expected: domain.RentalStarted},
		{name: "mixed casing", raw: "EN Curso", expected: domain.RentalStarted},
		{name: "surrounding whitespace", raw: "  finalizado ", expected: domain.RentalFinished},
		{name: "legacy confirmado maps to reserved", raw: "confirmado", expected: domain.RentalReserved},
		{name: "unknown string", raw: "pendiente de algo", expectErr: true},
		{name: "empty", raw: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RentalStatus(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestVehicleStatus(t *testing.T) {
	testCases := []struct {
		raw      string
		expected domain.VehicleStatus
	}{
		{raw: "disponible", expected: domain.VehicleAvailable},
		{raw: "Mantenimiento", expected: domain.VehicleInMaintenance},
		{raw: "no disponible", expected: domain.VehicleUnavailable},
		{raw: "alquilado", expected: domain.VehicleUnavailable},
		{raw: "baja", expected: domain.VehicleDecommissioned},
	}

	for _, tc := range testCases {
		got, err := VehicleStatus(tc.raw)
		assert.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, got)
	}

	_, err := VehicleStatus("desconocido")
	assert.Error(t, err)
}

func TestInvoiceStatus(t *testing.T) {
	got, err := InvoiceStatus("PAGADA")
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, got)

	got, err = InvoiceStatus("anulada")
	assert.NoError(t, err)
	assert.Equal(t, domain.InvoiceVoided, got)

	_, err = InvoiceStatus("abonada")
	assert.Error(t, err)
}
