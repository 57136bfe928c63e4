package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	var status *shipment.Status
	if params.Status != nil {
		parsed, err := shipment.ParseStatus(string(*params.Status))
		if err != nil {
			return problem(ctx, err)
		}
		status = &parsed
	}
	clientID, err := toOptionalUUID("client_id", params.ClientId)
	if err != nil {
		return problem(ctx, err)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewListShipmentsQuery(status, clientID, page)
	if err != nil {
		return problem(ctx, err)
	}
	shipments, err := s.queries.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Shipment, len(shipments))
	for i, sh := range shipments {
		response[i] = toShipment(sh)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments - prices the shipment and
// issues its tracking code.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req servers.NewShipment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := toUUID("client_id", req.ClientId)
	if err != nil {
		return problem(ctx, err)
	}
	destinationID, err := toUUID("destination_id", req.DestinationId)
	if err != nil {
		return problem(ctx, err)
	}
	tierID, err := toUUID("service_tier_id", req.ServiceTierId)
	if err != nil {
		return problem(ctx, err)
	}
	weight, err := toDecimal("weight", req.Weight)
	if err != nil {
		return problem(ctx, err)
	}
	volume, err := toDecimal("volume", req.Volume)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), clientID, destinationID, tierID, weight, volume, valueOr(req.Description, ""),
	)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return s.respondShipment(ctx, http.StatusCreated, created.TrackingCode())
}

// GetShipment handles GET /api/v1/shipments/{trackingCode}.
func (s *Server) GetShipment(ctx echo.Context, trackingCode servers.TrackingCode) error {
	code, err := toCode("trackingCode", trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	return s.respondShipment(ctx, http.StatusOK, code)
}

func (s *Server) respondShipment(ctx echo.Context, status int, code kernel.Code) error {
	query, err := queries.NewGetShipmentQuery(code)
	if err != nil {
		return problem(ctx, err)
	}
	found, err := s.queries.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(status, toShipment(found))
}

// ChangeShipmentStatus handles POST /api/v1/shipments/{trackingCode}/status -
// appends a tracking event.
func (s *Server) ChangeShipmentStatus(ctx echo.Context, trackingCode servers.TrackingCode) error {
	var req servers.ShipmentStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("trackingCode", trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	status, err := shipment.ParseStatus(string(req.Status))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeShipmentStatusCommand(code, status, req.Location, valueOr(req.Comment, ""))
	if err != nil {
		return problem(ctx, err)
	}
	event, err := s.commands.ChangeShipmentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TrackingEvent{
		Location:   event.Location(),
		Status:     servers.ShipmentStatus(event.Status().String()),
		Comment:    optional(event.Comment()),
		OccurredAt: event.OccurredAt(),
	})
}
