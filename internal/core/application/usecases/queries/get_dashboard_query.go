package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const dashboardTopN = 5

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery collects the headline figures of the back office. Recent
// shipments are those created in the 30 days before now.
type GetDashboardQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(now time.Time) (GetDashboardQuery, error) {
	if now.IsZero() {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetDashboardQuery{now: now.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Now() time.Time { return q.now }

type DashboardResponse struct {
	TotalShipments      int64
	PendingShipments    int64
	DeliveredShipments  int64
	RecentShipments     int64
	DeliveredRevenue    decimal.Decimal
	UnpaidInvoicesTotal decimal.Decimal
	OpenIncidents       int64
	NewClaims           int64
	TopClients          []RankedClient
	TopDestinations     []RankedDestination
}

type RankedClient struct {
	ID            kernel.UUID
	Name          string
	ShipmentCount int64
}

type RankedDestination struct {
	ID            kernel.UUID
	City          string
	Country       string
	ShipmentCount int64
}
