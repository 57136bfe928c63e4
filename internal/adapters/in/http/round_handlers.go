package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListRounds handles GET /api/v1/rounds.
func (s *Server) ListRounds(ctx echo.Context, params servers.ListRoundsParams) error {
	var status *round.Status
	if params.Status != nil {
		parsed, err := round.ParseStatus(string(*params.Status))
		if err != nil {
			return problem(ctx, err)
		}
		status = &parsed
	}
	driverID, err := toOptionalUUID("driver_id", params.DriverId)
	if err != nil {
		return problem(ctx, err)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	var date *time.Time
	if params.Date != nil {
		date = &params.Date.Time
	}

	query, err := queries.NewListRoundsQuery(status, driverID, date, page)
	if err != nil {
		return problem(ctx, err)
	}
	rounds, err := s.queries.ListRounds.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Round, len(rounds))
	for i, r := range rounds {
		response[i] = toRound(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateRound handles POST /api/v1/rounds.
func (s *Server) CreateRound(ctx echo.Context) error {
	var req servers.NewRound
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := toOptionalUUID("driver_id", req.DriverId)
	if err != nil {
		return problem(ctx, err)
	}
	vehicleID, err := toOptionalUUID("vehicle_id", req.VehicleId)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewCreateRoundCommand(kernel.NewUUID(), req.Date.Time, driverID, vehicleID, valueOr(req.Comment, ""))
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateRound.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return s.respondRound(ctx, http.StatusCreated, created.Code())
}

// GetRound handles GET /api/v1/rounds/{roundCode}.
func (s *Server) GetRound(ctx echo.Context, roundCode servers.RoundCode) error {
	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	return s.respondRound(ctx, http.StatusOK, code)
}

func (s *Server) respondRound(ctx echo.Context, status int, code kernel.Code) error {
	query, err := queries.NewGetRoundQuery(code)
	if err != nil {
		return problem(ctx, err)
	}
	found, err := s.queries.GetRound.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(status, toRound(found))
}

// DeleteRound handles DELETE /api/v1/rounds/{roundCode}.
func (s *Server) DeleteRound(ctx echo.Context, roundCode servers.RoundCode) error {
	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewDeleteRoundCommand(code)
	if err != nil {
		return problem(ctx, err)
	}
	if err := s.commands.DeleteRound.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignRoundCrew handles PUT /api/v1/rounds/{roundCode}/crew. A null or
// missing id unassigns that crew member.
func (s *Server) AssignRoundCrew(ctx echo.Context, roundCode servers.RoundCode) error {
	var req servers.RoundCrew
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	driverID, err := toOptionalUUID("driver_id", req.DriverId)
	if err != nil {
		return problem(ctx, err)
	}
	vehicleID, err := toOptionalUUID("vehicle_id", req.VehicleId)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewAssignRoundCrewCommand(code, driverID, vehicleID)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.AssignRoundCrew.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondRound(ctx, http.StatusOK, code)
}

// ChangeRoundStatus handles POST /api/v1/rounds/{roundCode}/status.
func (s *Server) ChangeRoundStatus(ctx echo.Context, roundCode servers.RoundCode) error {
	var req servers.RoundStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	status, err := round.ParseStatus(string(req.Status))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeRoundStatusCommand(code, status)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.ChangeRoundStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondRound(ctx, http.StatusOK, code)
}

// AddShipmentToRound handles POST /api/v1/rounds/{roundCode}/shipments.
func (s *Server) AddShipmentToRound(ctx echo.Context, roundCode servers.RoundCode) error {
	var req servers.ShipmentReference
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	trackingCode, err := toCode("tracking_code", req.TrackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewAddShipmentToRoundCommand(code, trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	membership, err := s.commands.AddShipmentToRound.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	member := servers.RoundMember{
		Position:     membership.Position(),
		ShipmentId:   apiUUID(membership.ShipmentID()),
		TrackingCode: optional(trackingCode.String()),
		AddedAt:      membership.AddedAt(),
	}
	if found, err := s.findShipment(ctx, trackingCode); err == nil {
		member.ShipmentStatus = optional(found.Status)
	}
	return ctx.JSON(http.StatusCreated, member)
}

// RemoveShipmentFromRound handles DELETE
// /api/v1/rounds/{roundCode}/shipments/{trackingCode}.
func (s *Server) RemoveShipmentFromRound(
	ctx echo.Context,
	roundCode servers.RoundCode,
	trackingCode servers.TrackingCode,
) error {
	code, err := toCode("roundCode", roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	shipmentCode, err := toCode("trackingCode", trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewRemoveShipmentFromRoundCommand(code, shipmentCode)
	if err != nil {
		return problem(ctx, err)
	}
	if err := s.commands.RemoveShipmentFromRound.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) findShipment(ctx echo.Context, code kernel.Code) (queries.ShipmentResponse, error) {
	query, err := queries.NewGetShipmentQuery(code)
	if err != nil {
		return queries.ShipmentResponse{}, err
	}
	return s.queries.GetShipment.Handle(ctx.Request().Context(), query)
}
