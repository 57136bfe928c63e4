package http

import (
	"net/http"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetDashboard handles GET /api/v1/reports/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query, err := queries.NewGetDashboardQuery(s.now())
	if err != nil {
		return problem(ctx, err)
	}
	dashboard, err := s.queries.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := servers.Dashboard{
		TotalShipments:      int(dashboard.TotalShipments),
		PendingShipments:    int(dashboard.PendingShipments),
		DeliveredShipments:  int(dashboard.DeliveredShipments),
		RecentShipments:     int(dashboard.RecentShipments),
		DeliveredRevenue:    money(dashboard.DeliveredRevenue),
		UnpaidInvoicesTotal: money(dashboard.UnpaidInvoicesTotal),
		OpenIncidents:       int(dashboard.OpenIncidents),
		NewClaims:           int(dashboard.NewClaims),
		TopClients:          make([]servers.RankedClient, 0, len(dashboard.TopClients)),
		TopDestinations:     make([]servers.RankedDestination, 0, len(dashboard.TopDestinations)),
	}
	for _, c := range dashboard.TopClients {
		response.TopClients = append(response.TopClients, servers.RankedClient{
			Id:            apiUUID(c.ID),
			Name:          c.Name,
			ShipmentCount: int(c.ShipmentCount),
		})
	}
	for _, d := range dashboard.TopDestinations {
		response.TopDestinations = append(response.TopDestinations, servers.RankedDestination{
			Id:            apiUUID(d.ID),
			City:          d.City,
			Country:       d.Country,
			ShipmentCount: int(d.ShipmentCount),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentTrend handles GET /api/v1/reports/shipment-trend.
func (s *Server) GetShipmentTrend(ctx echo.Context, params servers.GetShipmentTrendParams) error {
	query, err := queries.NewGetShipmentTrendQuery(valueOr(params.Months, 0), s.now())
	if err != nil {
		return problem(ctx, err)
	}
	trend, err := s.queries.GetShipmentTrend.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.MonthlyCount, len(trend))
	for i, bucket := range trend {
		response[i] = servers.MonthlyCount{
			Month: bucket.Month.Format("2006-01"),
			Count: int(bucket.Count),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusDistribution handles GET /api/v1/reports/status-distribution.
func (s *Server) GetStatusDistribution(ctx echo.Context) error {
	distribution, err := s.queries.GetStatusDistribution.Handle(ctx.Request().Context(),
		queries.NewGetStatusDistributionQuery())
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.StatusCount, len(distribution))
	for i, c := range distribution {
		response[i] = servers.StatusCount{
			Status: servers.ShipmentStatus(c.Status),
			Count:  int(c.Count),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
