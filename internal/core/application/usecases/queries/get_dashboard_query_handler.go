package queries

import (
	"context"

	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const recentShipmentsWindowDays = 30

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle runs every aggregate concurrently. Each goroutine writes its own
// field of the response.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	var response DashboardResponse
	delivered := shipment.Delivered.String()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return h.count(gctx, "shipments", &response.TotalShipments, "")
	})
	g.Go(func() error {
		return h.count(gctx, "shipments", &response.PendingShipments, "status <> ?", delivered)
	})
	g.Go(func() error {
		return h.count(gctx, "shipments", &response.DeliveredShipments, "status = ?", delivered)
	})
	g.Go(func() error {
		since := query.Now().AddDate(0, 0, -recentShipmentsWindowDays)
		return h.count(gctx, "shipments", &response.RecentShipments, "created_at >= ?", since)
	})
	g.Go(func() error {
		return h.count(gctx, "incidents", &response.OpenIncidents, "status <> ?", cases.IncidentClosed.String())
	})
	g.Go(func() error {
		return h.count(gctx, "claims", &response.NewClaims, "status = ?", cases.ClaimNew.String())
	})
	g.Go(func() error {
		revenue, err := h.sum(gctx, "shipments", "total_amount", "status = ?", delivered)
		response.DeliveredRevenue = revenue
		return err
	})
	g.Go(func() error {
		unpaid, err := h.sum(gctx, "invoices", "amount_incl_tax", "status IN ?",
			[]string{invoice.Draft.String(), invoice.Issued.String()})
		response.UnpaidInvoicesTotal = unpaid
		return err
	})
	g.Go(func() error {
		top, err := h.topClients(gctx)
		response.TopClients = top
		return err
	})
	g.Go(func() error {
		top, err := h.topDestinations(gctx)
		response.TopDestinations = top
		return err
	})

	if err := g.Wait(); err != nil {
		return DashboardResponse{}, err
	}
	return response, nil
}

func (h GetDashboardQueryHandler) count(ctx context.Context, table string, dest *int64, where string, args ...any) error {
	stmt := h.db.WithContext(ctx).Table(table)
	if where != "" {
		stmt = stmt.Where(where, args...)
	}
	return stmt.Count(dest).Error
}

func (h GetDashboardQueryHandler) sum(
	ctx context.Context,
	table, column, where string,
	args ...any,
) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := h.db.WithContext(ctx).Table(table).
		Select("SUM("+column+")").
		Where(where, args...).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal.Round(2), nil
}

func (h GetDashboardQueryHandler) topClients(ctx context.Context) ([]RankedClient, error) {
	var rows []struct {
		ID            uuid.UUID
		Name          string
		ShipmentCount int64
	}
	err := h.db.WithContext(ctx).Table("shipments AS s").
		Select("c.id, c.name, COUNT(*) AS shipment_count").
		Joins("JOIN clients c ON c.id = s.client_id").
		Group("c.id, c.name").
		Order("shipment_count DESC, c.name").
		Limit(dashboardTopN).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedClient, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		ranked = append(ranked, RankedClient{ID: id, Name: row.Name, ShipmentCount: row.ShipmentCount})
	}
	return ranked, nil
}

func (h GetDashboardQueryHandler) topDestinations(ctx context.Context) ([]RankedDestination, error) {
	var rows []struct {
		ID            uuid.UUID
		City          string
		Country       string
		ShipmentCount int64
	}
	err := h.db.WithContext(ctx).Table("shipments AS s").
		Select("d.id, d.city, d.country, COUNT(*) AS shipment_count").
		Joins("JOIN destinations d ON d.id = s.destination_id").
		Group("d.id, d.city, d.country").
		Order("shipment_count DESC, d.city").
		Limit(dashboardTopN).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedDestination, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		ranked = append(ranked, RankedDestination{
			ID:            id,
			City:          row.City,
			Country:       row.Country,
			ShipmentCount: row.ShipmentCount,
		})
	}
	return ranked, nil
}
