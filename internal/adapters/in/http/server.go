package http

import (
	"io"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandlers groups the write use cases exposed over HTTP.
type CommandHandlers struct {
	CreateClient           commands.CreateClientCommandHandler
	CreateDestination      commands.CreateDestinationCommandHandler
	ChangeDestinationRate  commands.ChangeDestinationRateCommandHandler
	CreateServiceTier      commands.CreateServiceTierCommandHandler
	ChangeServiceTierRates commands.ChangeServiceTierRatesCommandHandler
	CreateDriver           commands.CreateDriverCommandHandler
	CreateVehicle          commands.CreateVehicleCommandHandler
	DeleteReference        commands.DeleteReferenceCommandHandler

	CreateShipment       commands.CreateShipmentCommandHandler
	ChangeShipmentStatus commands.ChangeShipmentStatusCommandHandler

	CreateRound             commands.CreateRoundCommandHandler
	AssignRoundCrew         commands.AssignRoundCrewCommandHandler
	ChangeRoundStatus       commands.ChangeRoundStatusCommandHandler
	DeleteRound             commands.DeleteRoundCommandHandler
	AddShipmentToRound      commands.AddShipmentToRoundCommandHandler
	RemoveShipmentFromRound commands.RemoveShipmentFromRoundCommandHandler

	CreateInvoice        commands.CreateInvoiceCommandHandler
	ChangeInvoiceTaxRate commands.ChangeInvoiceTaxRateCommandHandler
	ChangeInvoiceStatus  commands.ChangeInvoiceStatusCommandHandler
	AttachShipment       commands.AttachShipmentCommandHandler
	DetachShipment       commands.DetachShipmentCommandHandler
	RecordPayment        commands.RecordPaymentCommandHandler

	ReportIncident       commands.ReportIncidentCommandHandler
	ChangeIncidentStatus commands.ChangeIncidentStatusCommandHandler
	FileClaim            commands.FileClaimCommandHandler
	ChangeClaimStatus    commands.ChangeClaimStatusCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
type QueryHandlers struct {
	AuthenticateOperator queries.AuthenticateOperatorQueryHandler

	ListClients queries.ListClientsQueryHandler
	GetClient   queries.GetClientQueryHandler
	ListTariffs queries.ListTariffsQueryHandler
	ListFleet   queries.ListFleetQueryHandler

	ListShipments queries.ListShipmentsQueryHandler
	GetShipment   queries.GetShipmentQueryHandler
	ListRounds    queries.ListRoundsQueryHandler
	GetRound      queries.GetRoundQueryHandler
	ListInvoices  queries.ListInvoicesQueryHandler
	GetInvoice    queries.GetInvoiceQueryHandler
	ListIncidents queries.ListIncidentsQueryHandler
	ListClaims    queries.ListClaimsQueryHandler

	GetDashboard          queries.GetDashboardQueryHandler
	GetShipmentTrend      queries.GetShipmentTrendQueryHandler
	GetStatusDistribution queries.GetStatusDistributionQueryHandler
}

// InvoiceRenderer writes a printable invoice document.
type InvoiceRenderer interface {
	Render(w io.Writer, inv queries.InvoiceResponse) error
}

// Server implements servers.ServerInterface on top of the application use
// cases. Write endpoints answer with the freshly read state of what they
// changed.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	renderer InvoiceRenderer
	now      func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands CommandHandlers, queries QueryHandlers, renderer InvoiceRenderer) *Server {
	return &Server{
		commands: commands,
		queries:  queries,
		renderer: renderer,
		now:      time.Now,
	}
}
