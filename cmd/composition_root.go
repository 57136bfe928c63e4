package cmd

import (
	"fmt"
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/kafka"
	"freight/internal/adapters/out/pdf"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/rabbitmq"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) referenceUoWFactory() commands.ReferenceUoWFactory {
	return FuncReferenceUoWFactory(func() commands.ReferenceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) roundUoWFactory() commands.RoundUoWFactory {
	return FuncRoundUoWFactory(func() commands.RoundUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) caseUoWFactory() commands.CaseUoWFactory {
	return FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterOperatorCommandHandler() commands.RegisterOperatorCommandHandler {
	var f commands.OperatorUoWFactory = FuncOperatorUoWFactory(func() commands.OperatorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOperatorCommandHandler(f)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.EventPublisher) commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, publisher)
}

// CreateCommandHandlers wires every write use case served over HTTP.
func (c *CompositionRoot) CreateCommandHandlers() httpin.CommandHandlers {
	reference := c.referenceUoWFactory()
	shipments := c.shipmentUoWFactory()
	rounds := c.roundUoWFactory()
	billing := c.billingUoWFactory()
	cases := c.caseUoWFactory()

	return httpin.CommandHandlers{
		CreateClient:           commands.NewCreateClientCommandHandler(reference),
		CreateDestination:      commands.NewCreateDestinationCommandHandler(reference),
		ChangeDestinationRate:  commands.NewChangeDestinationRateCommandHandler(reference),
		CreateServiceTier:      commands.NewCreateServiceTierCommandHandler(reference),
		ChangeServiceTierRates: commands.NewChangeServiceTierRatesCommandHandler(reference),
		CreateDriver:           commands.NewCreateDriverCommandHandler(reference),
		CreateVehicle:          commands.NewCreateVehicleCommandHandler(reference),
		DeleteReference:        commands.NewDeleteReferenceCommandHandler(reference),

		CreateShipment:       commands.NewCreateShipmentCommandHandler(shipments),
		ChangeShipmentStatus: commands.NewChangeShipmentStatusCommandHandler(shipments),

		CreateRound:             commands.NewCreateRoundCommandHandler(rounds),
		AssignRoundCrew:         commands.NewAssignRoundCrewCommandHandler(rounds),
		ChangeRoundStatus:       commands.NewChangeRoundStatusCommandHandler(rounds),
		DeleteRound:             commands.NewDeleteRoundCommandHandler(rounds),
		AddShipmentToRound:      commands.NewAddShipmentToRoundCommandHandler(rounds),
		RemoveShipmentFromRound: commands.NewRemoveShipmentFromRoundCommandHandler(rounds),

		CreateInvoice:        commands.NewCreateInvoiceCommandHandler(billing, c.configs.DefaultTaxRate),
		ChangeInvoiceTaxRate: commands.NewChangeInvoiceTaxRateCommandHandler(billing),
		ChangeInvoiceStatus:  commands.NewChangeInvoiceStatusCommandHandler(billing),
		AttachShipment:       commands.NewAttachShipmentCommandHandler(billing),
		DetachShipment:       commands.NewDetachShipmentCommandHandler(billing),
		RecordPayment:        commands.NewRecordPaymentCommandHandler(billing),

		ReportIncident:       commands.NewReportIncidentCommandHandler(cases),
		ChangeIncidentStatus: commands.NewChangeIncidentStatusCommandHandler(cases),
		FileClaim:            commands.NewFileClaimCommandHandler(cases),
		ChangeClaimStatus:    commands.NewChangeClaimStatusCommandHandler(cases),
	}
}

// CreateQueryHandlers wires every read use case served over HTTP.
func (c *CompositionRoot) CreateQueryHandlers() httpin.QueryHandlers {
	return httpin.QueryHandlers{
		AuthenticateOperator: queries.NewAuthenticateOperatorQueryHandler(c.gormDB),

		ListClients: queries.NewListClientsQueryHandler(c.gormDB),
		GetClient:   queries.NewGetClientQueryHandler(c.gormDB),
		ListTariffs: queries.NewListTariffsQueryHandler(c.gormDB),
		ListFleet:   queries.NewListFleetQueryHandler(c.gormDB),

		ListShipments: queries.NewListShipmentsQueryHandler(c.gormDB),
		GetShipment:   queries.NewGetShipmentQueryHandler(c.gormDB),
		ListRounds:    queries.NewListRoundsQueryHandler(c.gormDB),
		GetRound:      queries.NewGetRoundQueryHandler(c.gormDB),
		ListInvoices:  queries.NewListInvoicesQueryHandler(c.gormDB),
		GetInvoice:    queries.NewGetInvoiceQueryHandler(c.gormDB),
		ListIncidents: queries.NewListIncidentsQueryHandler(c.gormDB),
		ListClaims:    queries.NewListClaimsQueryHandler(c.gormDB),

		GetDashboard:          c.CreateGetDashboardQueryHandler(),
		GetShipmentTrend:      queries.NewGetShipmentTrendQueryHandler(c.gormDB),
		GetStatusDistribution: queries.NewGetStatusDistributionQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateInvoiceRenderer() *pdf.InvoiceRenderer {
	return pdf.NewInvoiceRenderer(c.configs.InvoiceIssuer, c.configs.InvoiceCurrency)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.CreateInvoiceRenderer())
}

// CreateEventPublisher connects the configured broker. It returns nil when
// event publishing is disabled.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, error) {
	switch c.configs.EventBroker {
	case BrokerKafka:
		return kafka.NewPublisher(c.configs.KafkaBrokers, c.configs.KafkaTopic), nil
	case BrokerRabbitMQ:
		publisher, err := rabbitmq.Dial(c.configs.RabbitMQURL, c.configs.RabbitMQQueue)
		if err != nil {
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		return publisher, nil
	case BrokerNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported event broker %q", c.configs.EventBroker)
	}
}

// CreateJobManager schedules the background jobs. Without a publisher there
// is nothing to run and the manager is empty.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher, logger *slog.Logger) *jobs.JobManager {
	if publisher == nil {
		return jobs.NewJobManager()
	}
	relay := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.configs.OutboxSchedule,
		c.configs.OutboxBatchSize,
		logger,
	)
	return jobs.NewJobManager(relay)
}

type FuncReferenceUoWFactory func() commands.ReferenceUoW

func (f FuncReferenceUoWFactory) Create() commands.ReferenceUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncRoundUoWFactory func() commands.RoundUoW

func (f FuncRoundUoWFactory) Create() commands.RoundUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncCaseUoWFactory func() commands.CaseUoW

func (f FuncCaseUoWFactory) Create() commands.CaseUoW {
	return f()
}

type FuncOperatorUoWFactory func() commands.OperatorUoW

func (f FuncOperatorUoWFactory) Create() commands.OperatorUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
