package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/invoicerepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/roundrepo"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/round"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var seedTime = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite runs the unit of work, the repositories and
// the command handlers against a real PostgreSQL with the production schema.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(ctx, postgres_adapter.ConnectionConfig{
		Driver:       postgres_adapter.DriverPostgres,
		DSN:          dsn,
		MaxOpenConns: 20,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(`TRUNCATE TABLE outbox_messages, operators, claims, incidents,
		payments, invoice_lines, invoices, round_shipments, rounds, tracking_events, shipments,
		vehicles, drivers, service_tiers, destinations, clients CASCADE`).Error)
}

// billingFactory, roundFactory and outboxFactory narrow the shared factory to
// what each handler depends on.
type billingFactory struct{ ports.UnitOfWorkFactory }

func (f billingFactory) Create() commands.BillingUoW { return f.UnitOfWorkFactory.Create() }

type roundFactory struct{ ports.UnitOfWorkFactory }

func (f roundFactory) Create() commands.RoundUoW { return f.UnitOfWorkFactory.Create() }

type outboxFactory struct{ ports.UnitOfWorkFactory }

func (f outboxFactory) Create() commands.OutboxUoW { return f.UnitOfWorkFactory.Create() }

type recordingPublisher struct {
	published []ports.OutboxMessage
}

func (p *recordingPublisher) Publish(_ context.Context, messages ...ports.OutboxMessage) error {
	p.published = append(p.published, messages...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type seeded struct {
	client      *client.Client
	destination *tariff.Destination
	tier        *tariff.ServiceTier
}

// seed commits a client and one tariff pair.
func (suite *UnitOfWorkIntegrationTestSuite) seed() seeded {
	ctx := context.Background()

	owner, err := client.NewClient(kernel.NewUUID(), "Acme Logistics", "12 rue Didouche", "+213 555 0101")
	suite.Require().NoError(err)
	destination, err := tariff.NewDestination(kernel.NewUUID(), "Oran", "Algeria", decimal.RequireFromString("50.00"))
	suite.Require().NoError(err)
	tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Standard", decimal.RequireFromString("0.50"),
		decimal.RequireFromString("10.00"))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ClientRepository().Add(ctx, owner))
	suite.Require().NoError(uow.DestinationRepository().Add(ctx, destination))
	suite.Require().NoError(uow.ServiceTierRepository().Add(ctx, tier))
	suite.Require().NoError(uow.Commit(ctx))

	return seeded{client: owner, destination: destination, tier: tier}
}

func (suite *UnitOfWorkIntegrationTestSuite) addShipment(s seeded, amount string) *shipment.Shipment {
	ctx := context.Background()

	created, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewTrackingCode(), s.client.ID(),
		s.destination.ID(), s.tier.ID(), decimal.RequireFromString("10"), decimal.RequireFromString("2"),
		"pallets", decimal.RequireFromString(amount), seedTime)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, created))
	suite.Require().NoError(uow.Commit(ctx))
	return created
}

func (suite *UnitOfWorkIntegrationTestSuite) addIssuedInvoice(s seeded, shipments ...*shipment.Shipment) *invoice.Invoice {
	ctx := context.Background()

	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.NewInvoiceCode(), s.client.ID(), seedTime,
		seedTime.AddDate(0, 0, 30), invoice.DefaultTaxRate, seedTime)
	suite.Require().NoError(err)
	for _, billed := range shipments {
		_, err = inv.AttachShipment(billed.ID(), billed.TotalAmount(), seedTime)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(inv.ChangeStatus(invoice.Issued, seedTime))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))
	suite.Require().NoError(uow.Commit(ctx))
	return inv
}

func (suite *UnitOfWorkIntegrationTestSuite) addDraftInvoice(s seeded) *invoice.Invoice {
	ctx := context.Background()

	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.NewInvoiceCode(), s.client.ID(), seedTime,
		seedTime.AddDate(0, 0, 30), invoice.DefaultTaxRate, seedTime)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))
	suite.Require().NoError(uow.Commit(ctx))
	return inv
}

func (suite *UnitOfWorkIntegrationTestSuite) addRound() *round.Round {
	ctx := context.Background()

	created, err := round.NewRound(kernel.NewUUID(), round.NewRoundCode(), seedTime, "", seedTime)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RoundRepository().Add(ctx, created))
	suite.Require().NoError(uow.Commit(ctx))
	return created
}

func (suite *UnitOfWorkIntegrationTestSuite) countOutbox(eventName string) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&outboxrepo.MessageDTO{}).
		Where("event_name = ?", eventName).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesIndependentUnits() {
	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.NotSame(first, second)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWritesShipmentEventsToOutbox() {
	s := suite.seed()

	created := suite.addShipment(s, "160.00")

	suite.Empty(created.DomainEvents())
	suite.Equal(int64(1), suite.countOutbox(shipment.EventCreated))

	var message outboxrepo.MessageDTO
	suite.Require().NoError(suite.db.Where("event_name = ?", shipment.EventCreated).Take(&message).Error)
	suite.Equal(created.ID().Bytes(), message.AggregateID)
	suite.Nil(message.PublishedAt)
	suite.Contains(string(message.Payload), created.TrackingCode().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsRowsAndEvents() {
	ctx := context.Background()
	s := suite.seed()

	created, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewTrackingCode(), s.client.ID(),
		s.destination.ID(), s.tier.ID(), decimal.RequireFromString("1"), decimal.Zero, "",
		decimal.RequireFromString("10.50"), seedTime)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, created))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().ShipmentRepository().GetByTrackingCode(ctx, created.TrackingCode())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Zero(suite.countOutbox(shipment.EventCreated))
	suite.Len(created.DomainEvents(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateTrackingCodeIsConflict() {
	ctx := context.Background()
	s := suite.seed()
	existing := suite.addShipment(s, "20.00")

	duplicate, err := shipment.NewShipment(kernel.NewUUID(), existing.TrackingCode(), s.client.ID(),
		s.destination.ID(), s.tier.ID(), decimal.RequireFromString("1"), decimal.Zero, "",
		decimal.RequireFromString("10.50"), seedTime)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err = uow.ShipmentRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Equal("tracking_code", errs.ParamName(err))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReferencedDestinationCannotBeDeleted() {
	ctx := context.Background()
	s := suite.seed()
	suite.addShipment(s, "20.00")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := uow.DestinationRepository().Delete(ctx, s.destination.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)

	err = uow.ServiceTierRepository().Delete(ctx, s.tier.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeletingDriverKeepsRoundWithoutCrew() {
	ctx := context.Background()

	driver, err := fleet.NewDriver(kernel.NewUUID(), "Karim B.", "DZ-449120")
	suite.Require().NoError(err)
	planned := suite.addRound()
	driverID := driver.ID()
	suite.Require().NoError(planned.AssignCrew(&driverID, nil))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Add(ctx, driver))
	suite.Require().NoError(uow.RoundRepository().Update(ctx, planned))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DriverRepository().Delete(ctx, driver.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	var stored roundrepo.RoundDTO
	suite.Require().NoError(suite.db.Where("id = ?", planned.ID().Bytes()).Take(&stored).Error)
	suite.Nil(stored.DriverID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentPaymentsKeepBalanceExact() {
	ctx := context.Background()
	s := suite.seed()
	inv := suite.addIssuedInvoice(s, suite.addShipment(s, "1000.00"))
	handler := commands.NewRecordPaymentCommandHandler(billingFactory{suite.factory})

	const payers = 10
	group, groupCtx := errgroup.WithContext(ctx)
	for range payers {
		group.Go(func() error {
			cmd, err := commands.NewRecordPaymentCommand(inv.Code(), kernel.NewUUID(),
				decimal.RequireFromString("119.00"), invoice.Wire, "", "")
			if err != nil {
				return err
			}
			_, err = handler.Handle(groupCtx, cmd)
			return err
		})
	}
	suite.Require().NoError(group.Wait())

	uow := suite.factory.Create()
	stored, err := uow.InvoiceRepository().GetByCode(ctx, inv.Code())
	suite.Require().NoError(err)
	suite.Equal(invoice.Paid, stored.Status())
	suite.Len(stored.Payments(), payers)
	suite.Equal("1190", stored.PaidTotal().String())

	owner, err := uow.ClientRepository().Get(ctx, s.client.ID())
	suite.Require().NoError(err)
	suite.Equal("-1190", owner.Balance().String())

	suite.Equal(int64(payers), suite.countOutbox(invoice.EventPaymentRecorded))
	suite.Equal(int64(1), suite.countOutbox(invoice.EventPaid))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentRoundAssignmentAdmitsOneRound() {
	ctx := context.Background()
	s := suite.seed()
	member := suite.addShipment(s, "20.00")
	rounds := []*round.Round{suite.addRound(), suite.addRound()}
	handler := commands.NewAddShipmentToRoundCommandHandler(roundFactory{suite.factory})

	results := make([]error, len(rounds))
	group := errgroup.Group{}
	for i, target := range rounds {
		group.Go(func() error {
			cmd, err := commands.NewAddShipmentToRoundCommand(target.Code(), member.TrackingCode())
			if err != nil {
				return err
			}
			_, results[i] = handler.Handle(ctx, cmd)
			return nil
		})
	}
	suite.Require().NoError(group.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict)
	}
	suite.Equal(1, succeeded)

	var memberships int64
	suite.Require().NoError(suite.db.Model(&roundrepo.MembershipDTO{}).
		Where("shipment_id = ?", member.ID().Bytes()).Count(&memberships).Error)
	suite.Equal(int64(1), memberships)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentAttachBillsShipmentOnce() {
	ctx := context.Background()
	s := suite.seed()
	billed := suite.addShipment(s, "75.00")
	drafts := []*invoice.Invoice{suite.addDraftInvoice(s), suite.addDraftInvoice(s)}
	handler := commands.NewAttachShipmentCommandHandler(billingFactory{suite.factory})

	results := make([]error, len(drafts))
	group := errgroup.Group{}
	for i, target := range drafts {
		group.Go(func() error {
			cmd, err := commands.NewAttachShipmentCommand(target.Code(), billed.TrackingCode())
			if err != nil {
				return err
			}
			_, results[i] = handler.Handle(ctx, cmd)
			return nil
		})
	}
	suite.Require().NoError(group.Wait())

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrConflict)
	}
	suite.Equal(1, succeeded)

	var lines int64
	suite.Require().NoError(suite.db.Model(&invoicerepo.LineDTO{}).
		Where("shipment_id = ?", billed.ID().Bytes()).Count(&lines).Error)
	suite.Equal(int64(1), lines)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPaymentIDReuseRollsBackBalance() {
	ctx := context.Background()
	s := suite.seed()
	first := suite.addIssuedInvoice(s, suite.addShipment(s, "100.00"))
	second := suite.addIssuedInvoice(s, suite.addShipment(s, "100.00"))
	handler := commands.NewRecordPaymentCommandHandler(billingFactory{suite.factory})
	paymentID := kernel.NewUUID()

	for i, target := range []*invoice.Invoice{first, second} {
		cmd, err := commands.NewRecordPaymentCommand(target.Code(), paymentID,
			decimal.RequireFromString("50.00"), invoice.Cash, "", "")
		suite.Require().NoError(err)
		_, err = handler.Handle(ctx, cmd)
		if i == 0 {
			suite.Require().NoError(err)
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrConflict)
	}

	uow := suite.factory.Create()
	owner, err := uow.ClientRepository().Get(ctx, s.client.ID())
	suite.Require().NoError(err)
	suite.Equal("-50", owner.Balance().String())

	untouched, err := uow.InvoiceRepository().GetByCode(ctx, second.Code())
	suite.Require().NoError(err)
	suite.Empty(untouched.Payments())
	suite.Equal(int64(1), suite.countOutbox(invoice.EventPaymentRecorded))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRelayPublishesEachMessageOnce() {
	ctx := context.Background()
	s := suite.seed()
	suite.addShipment(s, "20.00")
	suite.addShipment(s, "30.00")

	publisher := &recordingPublisher{}
	handler := commands.NewRelayOutboxCommandHandler(outboxFactory{suite.factory}, publisher)
	cmd, err := commands.NewRelayOutboxCommand(100)
	suite.Require().NoError(err)

	published, err := handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Equal(2, published)

	published, err = handler.Handle(ctx, cmd)
	suite.Require().NoError(err)
	suite.Zero(published)
	suite.Len(publisher.published, 2)

	var pending int64
	suite.Require().NoError(suite.db.Model(&outboxrepo.MessageDTO{}).
		Where("published_at IS NULL").Count(&pending).Error)
	suite.Zero(pending)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRolledBackStatusChangeIsNotPersisted() {
	ctx := context.Background()
	s := suite.seed()
	existing := suite.addShipment(s, "20.00")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ShipmentRepository().GetByTrackingCodeForUpdate(ctx, existing.TrackingCode())
	suite.Require().NoError(err)
	_, err = loaded.ChangeStatus(shipment.Delivered, "Oran", "", seedTime.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ShipmentRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().ShipmentRepository().GetByTrackingCode(ctx, existing.TrackingCode())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, stored.Status())
	suite.Len(stored.Events(), len(existing.Events()))
	suite.Zero(suite.countOutbox(shipment.EventStatusChanged))
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
