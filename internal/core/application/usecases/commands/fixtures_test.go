package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "Acme Logistics", "12 rue Didouche", "+213 555 0101")
	require.NoError(t, err)
	return c
}

func newTariff(t *testing.T) (*tariff.Destination, *tariff.ServiceTier) {
	t.Helper()
	destination, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "Algeria", dec("50.00"))
	require.NoError(t, err)
	tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Standard", dec("0.50"), dec("10.00"))
	require.NoError(t, err)
	return destination, tier
}

func newShipment(t *testing.T, clientID kernel.UUID, amount string) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewTrackingCode(), clientID, kernel.NewUUID(),
		kernel.NewUUID(), dec("10"), dec("2"), "", dec(amount), fixedNow)
	require.NoError(t, err)
	return s
}

func newRound(t *testing.T) *round.Round {
	t.Helper()
	r, err := round.NewRound(kernel.NewUUID(), round.NewRoundCode(), fixedNow, "", fixedNow)
	require.NoError(t, err)
	return r
}

func newDraftInvoice(t *testing.T, clientID kernel.UUID) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.NewInvoiceCode(), clientID, fixedNow,
		fixedNow.AddDate(0, 0, 30), invoice.DefaultTaxRate, fixedNow)
	require.NoError(t, err)
	return inv
}
