package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewTrackingCode(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), dec("1"), dec("1"), "", dec("10"), paidAt)
	require.NoError(t, err)
	return s
}

func newIncident(t *testing.T, kind cases.IncidentType, shipmentID kernel.UUID) *cases.Incident {
	t.Helper()
	incident, err := cases.NewIncident(kernel.NewUUID(), kind, "reported by driver", &shipmentID, nil, paidAt)
	require.NoError(t, err)
	return incident
}

func TestIncidentPolicy_Apply(t *testing.T) {
	policy := services.NewIncidentPolicy()
	at := paidAt.Add(time.Hour)

	t.Run("loss fails the shipment", func(t *testing.T) {
		s := newShipment(t)

		changed, err := policy.Apply(newIncident(t, cases.IncidentLoss, s.ID()), s, at)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, shipment.Failed, s.Status())
		assert.Equal(t, services.IncidentLocation, s.TrackingHistory()[0].Location())
	})

	t.Run("delay leaves the lifecycle untouched", func(t *testing.T) {
		s := newShipment(t)

		changed, err := policy.Apply(newIncident(t, cases.IncidentDelay, s.ID()), s, at)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, shipment.InTransit, s.Status())
	})

	t.Run("delivered shipments are not reopened", func(t *testing.T) {
		s := newShipment(t)
		_, err := s.ChangeStatus(shipment.Delivered, "Oran", "", at)
		require.NoError(t, err)

		changed, err := policy.Apply(newIncident(t, cases.IncidentLoss, s.ID()), s, at)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, shipment.Delivered, s.Status())
	})
}
