package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListIncidents handles GET /api/v1/incidents.
func (s *Server) ListIncidents(ctx echo.Context, params servers.ListIncidentsParams) error {
	var status *cases.IncidentStatus
	if params.Status != nil {
		parsed, err := cases.ParseIncidentStatus(string(*params.Status))
		if err != nil {
			return problem(ctx, err)
		}
		status = &parsed
	}
	var kind *cases.IncidentType
	if params.Type != nil {
		parsed, err := cases.ParseIncidentType(string(*params.Type))
		if err != nil {
			return problem(ctx, err)
		}
		kind = &parsed
	}
	shipmentID, err := toOptionalUUID("shipment_id", params.ShipmentId)
	if err != nil {
		return problem(ctx, err)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewListIncidentsQuery(status, kind, shipmentID, page)
	if err != nil {
		return problem(ctx, err)
	}
	incidents, err := s.queries.ListIncidents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Incident, len(incidents))
	for i, incident := range incidents {
		response[i] = incidentFromResponse(incident)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReportIncident handles POST /api/v1/incidents. Reporting a LOSS marks the
// shipment FAILED.
func (s *Server) ReportIncident(ctx echo.Context) error {
	var req servers.NewIncident
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := cases.ParseIncidentType(string(req.Type))
	if err != nil {
		return problem(ctx, err)
	}
	trackingCode, err := toOptionalCode("tracking_code", req.TrackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	roundCode, err := toOptionalCode("round_code", req.RoundCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewReportIncidentCommand(kernel.NewUUID(), kind, req.Description, trackingCode, roundCode)
	if err != nil {
		return problem(ctx, err)
	}
	incident, err := s.commands.ReportIncident.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	response := toIncident(incident)
	if trackingCode != nil {
		response.TrackingCode = optional(trackingCode.String())
	}
	if roundCode != nil {
		response.RoundCode = optional(roundCode.String())
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ChangeIncidentStatus handles POST /api/v1/incidents/{incidentId}/status.
func (s *Server) ChangeIncidentStatus(ctx echo.Context, incidentId openapi_types.UUID) error {
	var req servers.IncidentStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID("incidentId", incidentId)
	if err != nil {
		return problem(ctx, err)
	}
	status, err := cases.ParseIncidentStatus(string(req.Status))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeIncidentStatusCommand(id, status, valueOr(req.Resolution, ""))
	if err != nil {
		return problem(ctx, err)
	}
	incident, err := s.commands.ChangeIncidentStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toIncident(incident))
}

// ListClaims handles GET /api/v1/claims.
func (s *Server) ListClaims(ctx echo.Context, params servers.ListClaimsParams) error {
	var filter queries.ClaimFilter
	if params.Status != nil {
		parsed, err := cases.ParseClaimStatus(string(*params.Status))
		if err != nil {
			return problem(ctx, err)
		}
		filter.Status = &parsed
	}
	if params.Type != nil {
		parsed, err := cases.ParseClaimType(string(*params.Type))
		if err != nil {
			return problem(ctx, err)
		}
		filter.Type = &parsed
	}
	var err error
	if filter.ShipmentID, err = toOptionalUUID("shipment_id", params.ShipmentId); err != nil {
		return problem(ctx, err)
	}
	if filter.ClientID, err = toOptionalUUID("client_id", params.ClientId); err != nil {
		return problem(ctx, err)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewListClaimsQuery(filter, page)
	if err != nil {
		return problem(ctx, err)
	}
	claims, err := s.queries.ListClaims.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Claim, len(claims))
	for i, claim := range claims {
		response[i] = claimFromResponse(claim)
	}
	return ctx.JSON(http.StatusOK, response)
}

// FileClaim handles POST /api/v1/claims.
func (s *Server) FileClaim(ctx echo.Context) error {
	var req servers.NewClaim
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := toUUID("client_id", req.ClientId)
	if err != nil {
		return problem(ctx, err)
	}
	kind, err := cases.ParseClaimType(string(req.Type))
	if err != nil {
		return problem(ctx, err)
	}
	trackingCode, err := toOptionalCode("tracking_code", req.TrackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	invoiceCode, err := toOptionalCode("invoice_code", req.InvoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewFileClaimCommand(kernel.NewUUID(), clientID, kind, req.Description, trackingCode, invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	claim, err := s.commands.FileClaim.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	response := toClaim(claim)
	if trackingCode != nil {
		response.TrackingCode = optional(trackingCode.String())
	}
	if invoiceCode != nil {
		response.InvoiceCode = optional(invoiceCode.String())
	}
	return ctx.JSON(http.StatusCreated, response)
}

// ChangeClaimStatus handles POST /api/v1/claims/{claimCode}/status.
func (s *Server) ChangeClaimStatus(ctx echo.Context, claimCode servers.Code) error {
	var req servers.ClaimStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("claimCode", claimCode)
	if err != nil {
		return problem(ctx, err)
	}
	status, err := cases.ParseClaimStatus(string(req.Status))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeClaimStatusCommand(code, status, valueOr(req.Response, ""))
	if err != nil {
		return problem(ctx, err)
	}
	claim, err := s.commands.ChangeClaimStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toClaim(claim))
}
