package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Login handles POST /api/v1/auth/login - checks operator credentials.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	query, err := queries.NewAuthenticateOperatorQuery(req.Email, req.Password)
	if err != nil {
		return problem(ctx, err)
	}
	identity, err := s.queries.AuthenticateOperator.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Identity{
		Id:          apiUUID(identity.ID),
		Username:    identity.Username,
		Email:       identity.Email,
		IsStaff:     identity.IsStaff,
		IsSuperuser: identity.IsSuperuser,
	})
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context, params servers.ListClientsParams) error {
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	clients, err := s.queries.ListClients.Handle(ctx.Request().Context(),
		queries.NewListClientsQuery(valueOr(params.Search, ""), page))
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Client, len(clients))
	for i, c := range clients {
		response[i] = toClient(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req servers.NewClient
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(kernel.NewUUID(), req.Name, valueOr(req.Address, ""), valueOr(req.Phone, ""))
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return s.respondClient(ctx, http.StatusCreated, created.ID())
}

// GetClient handles GET /api/v1/clients/{clientId}.
func (s *Server) GetClient(ctx echo.Context, clientId servers.ClientId) error {
	id, err := toUUID("clientId", clientId)
	if err != nil {
		return problem(ctx, err)
	}
	return s.respondClient(ctx, http.StatusOK, id)
}

func (s *Server) respondClient(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetClientQuery(id)
	if err != nil {
		return problem(ctx, err)
	}
	found, err := s.queries.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(status, toClient(found))
}

// ListTariffs handles GET /api/v1/tariffs.
func (s *Server) ListTariffs(ctx echo.Context) error {
	tariffs, err := s.queries.ListTariffs.Handle(ctx.Request().Context(), queries.NewListTariffsQuery())
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTariffs(tariffs))
}

// CreateDestination handles POST /api/v1/destinations.
func (s *Server) CreateDestination(ctx echo.Context) error {
	var req servers.NewDestination
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	rate, err := toDecimal("base_rate", req.BaseRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewCreateDestinationCommand(kernel.NewUUID(), req.City, req.Country, rate)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateDestination.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDestination(created))
}

// ChangeDestinationRate handles PUT /api/v1/destinations/{destinationId}/rate.
// Existing shipments keep the price they were created with.
func (s *Server) ChangeDestinationRate(ctx echo.Context, destinationId servers.DestinationId) error {
	var req servers.DestinationRate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID("destinationId", destinationId)
	if err != nil {
		return problem(ctx, err)
	}
	rate, err := toDecimal("base_rate", req.BaseRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeDestinationRateCommand(id, rate)
	if err != nil {
		return problem(ctx, err)
	}
	updated, err := s.commands.ChangeDestinationRate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDestination(updated))
}

// DeleteDestination handles DELETE /api/v1/destinations/{destinationId}.
func (s *Server) DeleteDestination(ctx echo.Context, destinationId servers.DestinationId) error {
	return s.deleteReference(ctx, commands.DestinationReference, "destinationId", destinationId)
}

// CreateServiceTier handles POST /api/v1/service-tiers.
func (s *Server) CreateServiceTier(ctx echo.Context) error {
	var req servers.NewServiceTier
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	weightRate, err := toDecimal("weight_rate", req.WeightRate)
	if err != nil {
		return problem(ctx, err)
	}
	volumeRate, err := toDecimal("volume_rate", req.VolumeRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewCreateServiceTierCommand(kernel.NewUUID(), req.Name, weightRate, volumeRate)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateServiceTier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toServiceTier(created))
}

// ChangeServiceTierRates handles PUT /api/v1/service-tiers/{serviceTierId}/rates.
func (s *Server) ChangeServiceTierRates(ctx echo.Context, serviceTierId servers.ServiceTierId) error {
	var req servers.ServiceTierRates
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := toUUID("serviceTierId", serviceTierId)
	if err != nil {
		return problem(ctx, err)
	}
	weightRate, err := toDecimal("weight_rate", req.WeightRate)
	if err != nil {
		return problem(ctx, err)
	}
	volumeRate, err := toDecimal("volume_rate", req.VolumeRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeServiceTierRatesCommand(id, weightRate, volumeRate)
	if err != nil {
		return problem(ctx, err)
	}
	updated, err := s.commands.ChangeServiceTierRates.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toServiceTier(updated))
}

// DeleteServiceTier handles DELETE /api/v1/service-tiers/{serviceTierId}.
func (s *Server) DeleteServiceTier(ctx echo.Context, serviceTierId servers.ServiceTierId) error {
	return s.deleteReference(ctx, commands.ServiceTierReference, "serviceTierId", serviceTierId)
}

// ListFleet handles GET /api/v1/fleet.
func (s *Server) ListFleet(ctx echo.Context, params servers.ListFleetParams) error {
	fleet, err := s.queries.ListFleet.Handle(ctx.Request().Context(),
		queries.NewListFleetQuery(valueOr(params.Available, false)))
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toFleet(fleet))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req servers.NewDriver
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), req.Name, req.LicenseNumber)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDriver(created))
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId}.
func (s *Server) DeleteDriver(ctx echo.Context, driverId servers.DriverId) error {
	return s.deleteReference(ctx, commands.DriverReference, "driverId", driverId)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req servers.NewVehicle
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	capacity, err := toDecimal("capacity", req.Capacity)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), req.Registration, valueOr(req.Kind, ""), capacity)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toVehicle(created))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId}.
func (s *Server) DeleteVehicle(ctx echo.Context, vehicleId servers.VehicleId) error {
	return s.deleteReference(ctx, commands.VehicleReference, "vehicleId", vehicleId)
}

func (s *Server) deleteReference(
	ctx echo.Context,
	kind commands.ReferenceKind,
	field string,
	rawID openapi_types.UUID,
) error {
	id, err := toUUID(field, rawID)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewDeleteReferenceCommand(kind, id)
	if err != nil {
		return problem(ctx, err)
	}
	if err := s.commands.DeleteReference.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
