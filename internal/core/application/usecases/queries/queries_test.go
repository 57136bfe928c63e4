package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/operator"
	"freight/internal/core/domain/model/round"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var now = time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

// fixture holds what the suite seeds:
//
//	acme: delivered (Oct 1, Oran, 75.00), in transit (Sep 10, Oran, 100.00),
//	      sorting (Jun 5, Algiers, 40.00)
//	beta: failed (Mar 1, Algiers, 60.00)
//	invoices: acme DRAFT over the in-transit shipment, acme PAID over the
//	          delivered one, beta CANCELLED
type fixture struct {
	acme, beta           *client.Client
	oran, algiers        *tariff.Destination
	express              *tariff.ServiceTier
	driver               *fleet.Driver
	delivered, inTransit *shipment.Shipment
	sorting, failed      *shipment.Shipment
	draft, paid          *invoice.Invoice
	cancelled            *invoice.Invoice
	trip                 *round.Round
	openIncident         *cases.Incident
	newClaim             *cases.Claim
}

type QueriesTestSuite struct {
	suite.Suite
	db  *gorm.DB
	uow ports.UnitOfWork
	f   fixture
}

func (suite *QueriesTestSuite) SetupTest() {
	db, err := postgres_adapter.Open(context.Background(), postgres_adapter.ConnectionConfig{
		Driver:       postgres_adapter.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", kernel.NewUUID()),
		MaxOpenConns: 1,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.db = db
	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(db).Create()
	suite.seed()
}

func (suite *QueriesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *QueriesTestSuite) seed() {
	ctx := context.Background()
	f := &suite.f
	var err error

	f.acme, err = client.NewClient(kernel.NewUUID(), "Acme Logistics", "12 rue Larbi Ben M'hidi, Oran", "+213 41 00 00 01")
	suite.Require().NoError(err)
	f.beta, err = client.NewClient(kernel.NewUUID(), "Beta Textiles", "3 avenue Pasteur, Algiers", "+213 21 00 00 02")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ClientRepository().Add(ctx, f.acme))
	suite.Require().NoError(suite.uow.ClientRepository().Add(ctx, f.beta))

	f.oran, err = tariff.NewDestination(kernel.NewUUID(), "Oran", "Algeria", decimal.RequireFromString("50.00"))
	suite.Require().NoError(err)
	f.algiers, err = tariff.NewDestination(kernel.NewUUID(), "Algiers", "Algeria", decimal.RequireFromString("30.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.DestinationRepository().Add(ctx, f.oran))
	suite.Require().NoError(suite.uow.DestinationRepository().Add(ctx, f.algiers))

	f.express, err = tariff.NewServiceTier(kernel.NewUUID(), "Express",
		decimal.RequireFromString("0.50"), decimal.RequireFromString("10.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ServiceTierRepository().Add(ctx, f.express))

	f.driver, err = fleet.NewDriver(kernel.NewUUID(), "Karim B.", "DZ-4471")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.DriverRepository().Add(ctx, f.driver))

	f.delivered = suite.addShipment(f.acme, f.oran, "75.00", time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC))
	f.inTransit = suite.addShipment(f.acme, f.oran, "100.00", time.Date(2024, 9, 10, 8, 0, 0, 0, time.UTC))
	f.sorting = suite.addShipment(f.acme, f.algiers, "40.00", time.Date(2024, 6, 5, 8, 0, 0, 0, time.UTC))
	f.failed = suite.addShipment(f.beta, f.algiers, "60.00", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))

	suite.moveShipment(f.sorting, shipment.SortingCenter, "Algiers hub", time.Date(2024, 6, 6, 8, 0, 0, 0, time.UTC))
	suite.moveShipment(f.failed, shipment.Failed, "Algiers", time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC))
	suite.moveShipment(f.delivered, shipment.OutForDelivery, "Oran", time.Date(2024, 10, 2, 8, 0, 0, 0, time.UTC))
	suite.moveShipment(f.delivered, shipment.Delivered, "Oran", time.Date(2024, 10, 2, 15, 0, 0, 0, time.UTC))

	f.draft = suite.addInvoice(f.acme, f.inTransit)
	f.paid = suite.addInvoice(f.acme, f.delivered)
	suite.Require().NoError(f.paid.ChangeStatus(invoice.Issued, now))
	payment, err := invoice.NewPayment(kernel.NewUUID(), decimal.RequireFromString("89.25"), invoice.Wire,
		"VIR-0042", "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(f.paid.RecordPayment(payment))
	suite.Require().NoError(suite.uow.InvoiceRepository().Update(ctx, f.paid))
	f.cancelled = suite.addInvoice(f.beta, f.failed)
	suite.Require().NoError(f.cancelled.ChangeStatus(invoice.Cancelled, now))
	suite.Require().NoError(suite.uow.InvoiceRepository().Update(ctx, f.cancelled))

	f.trip, err = round.NewRound(kernel.NewUUID(), round.NewRoundCode(), time.Date(2024, 10, 16, 0, 0, 0, 0, time.UTC),
		"west", now)
	suite.Require().NoError(err)
	_, err = f.trip.AddShipment(f.inTransit.ID(), now)
	suite.Require().NoError(err)
	_, err = f.trip.AddShipment(f.sorting.ID(), now.Add(time.Minute))
	suite.Require().NoError(err)
	driverID := f.driver.ID()
	suite.Require().NoError(f.trip.AssignCrew(&driverID, nil))
	suite.Require().NoError(suite.uow.RoundRepository().Add(ctx, f.trip))

	shipmentID := f.inTransit.ID()
	f.openIncident, err = cases.NewIncident(kernel.NewUUID(), cases.IncidentDelay, "stuck at the Oran depot",
		&shipmentID, nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.IncidentRepository().Add(ctx, f.openIncident))

	closed, err := cases.NewIncident(kernel.NewUUID(), cases.IncidentDamage, "torn packaging", nil, nil,
		now.Add(-48*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(closed.ChangeStatus(cases.IncidentInProgress, "", now))
	suite.Require().NoError(closed.ChangeStatus(cases.IncidentResolved, "repacked", now))
	suite.Require().NoError(closed.ChangeStatus(cases.IncidentClosed, "", now))
	suite.Require().NoError(suite.uow.IncidentRepository().Add(ctx, closed))

	deliveredID := f.delivered.ID()
	f.newClaim, err = cases.NewClaim(kernel.NewUUID(), cases.NewClaimCode(), f.acme.ID(), cases.ClaimQuality,
		"box arrived wet", &deliveredID, nil, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ClaimRepository().Add(ctx, f.newClaim))

	invoiceID := f.cancelled.ID()
	handled, err := cases.NewClaim(kernel.NewUUID(), cases.NewClaimCode(), f.beta.ID(), cases.ClaimBilling,
		"charged twice", nil, &invoiceID, now.Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(handled.ChangeStatus(cases.ClaimInProgress, "checking", now))
	suite.Require().NoError(suite.uow.ClaimRepository().Add(ctx, handled))

	op, err := operator.NewOperator(kernel.NewUUID(), "Ops@Example.com", "ops", "s3cret-passw0rd", true, false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.OperatorRepository().Add(ctx, op))
}

func (suite *QueriesTestSuite) addShipment(
	owner *client.Client,
	destination *tariff.Destination,
	amount string,
	createdAt time.Time,
) *shipment.Shipment {
	created, err := shipment.NewShipment(kernel.NewUUID(), shipment.NewTrackingCode(), owner.ID(), destination.ID(),
		suite.f.express.ID(), decimal.NewFromInt(10), decimal.NewFromInt(1), "pallet",
		decimal.RequireFromString(amount), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ShipmentRepository().Add(context.Background(), created))
	return created
}

func (suite *QueriesTestSuite) moveShipment(s *shipment.Shipment, to shipment.Status, location string, at time.Time) {
	_, err := s.ChangeStatus(to, location, "", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.ShipmentRepository().Update(context.Background(), s))
}

func (suite *QueriesTestSuite) addInvoice(owner *client.Client, lines ...*shipment.Shipment) *invoice.Invoice {
	created, err := invoice.NewInvoice(kernel.NewUUID(), invoice.NewInvoiceCode(), owner.ID(), now,
		now.AddDate(0, 0, 30), invoice.DefaultTaxRate, now)
	suite.Require().NoError(err)
	for _, line := range lines {
		_, err = created.AttachShipment(line.ID(), line.TotalAmount(), now)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.uow.InvoiceRepository().Add(context.Background(), created))
	return created
}

func (suite *QueriesTestSuite) TestGetShipmentReturnsHistoryNewestFirst() {
	query, err := queries.NewGetShipmentQuery(suite.f.delivered.TrackingCode())
	suite.Require().NoError(err)

	response, err := queries.NewGetShipmentQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("Acme Logistics", response.ClientName)
	suite.Equal("Oran", response.DestinationCity)
	suite.Equal("Express", response.ServiceTierName)
	suite.Equal("75.00", response.TotalAmount.StringFixed(2))
	suite.Equal(shipment.Delivered.String(), response.Status)
	suite.Require().Len(response.History, 2)
	suite.Equal(shipment.Delivered.String(), response.History[0].Status)
	suite.Equal(shipment.OutForDelivery.String(), response.History[1].Status)
}

func (suite *QueriesTestSuite) TestGetUnknownShipmentIsNotFound() {
	query, err := queries.NewGetShipmentQuery(shipment.NewTrackingCode())
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestListShipmentsFiltersByStatusAndClient() {
	handler := queries.NewListShipmentsQueryHandler(suite.db)
	ctx := context.Background()

	acmeID := suite.f.acme.ID()
	query, err := queries.NewListShipmentsQuery(nil, &acmeID, queries.DefaultPage())
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal(suite.f.delivered.TrackingCode().String(), all[0].TrackingCode)
	suite.Equal(suite.f.sorting.TrackingCode().String(), all[2].TrackingCode)

	failed := shipment.Failed
	query, err = queries.NewListShipmentsQuery(&failed, nil, queries.DefaultPage())
	suite.Require().NoError(err)
	onlyFailed, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(onlyFailed, 1)
	suite.Equal("Beta Textiles", onlyFailed[0].ClientName)

	page, err := queries.NewPage(2, 2)
	suite.Require().NoError(err)
	query, err = queries.NewListShipmentsQuery(nil, nil, page)
	suite.Require().NoError(err)
	paged, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(paged, 2)
	suite.Equal(suite.f.sorting.TrackingCode().String(), paged[0].TrackingCode)
}

func (suite *QueriesTestSuite) TestGetRoundListsMembersInPositionOrder() {
	query, err := queries.NewGetRoundQuery(suite.f.trip.Code())
	suite.Require().NoError(err)

	response, err := queries.NewGetRoundQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("Karim B.", response.DriverName)
	suite.Equal(2, response.ShipmentCount)
	suite.Require().Len(response.Members, 2)
	suite.Equal(1, response.Members[0].Position)
	suite.Equal(suite.f.inTransit.TrackingCode().String(), response.Members[0].TrackingCode)
	suite.Equal(shipment.SortingCenter.String(), response.Members[1].ShipmentStatus)
}

func (suite *QueriesTestSuite) TestListRoundsFiltersByDriverAndDate() {
	handler := queries.NewListRoundsQueryHandler(suite.db)
	ctx := context.Background()
	driverID := suite.f.driver.ID()

	day := time.Date(2024, 10, 16, 0, 0, 0, 0, time.UTC)
	query, err := queries.NewListRoundsQuery(nil, &driverID, &day, queries.DefaultPage())
	suite.Require().NoError(err)
	rounds, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rounds, 1)
	suite.Equal(suite.f.trip.Code().String(), rounds[0].Code)

	otherDay := day.AddDate(0, 0, 1)
	query, err = queries.NewListRoundsQuery(nil, &driverID, &otherDay, queries.DefaultPage())
	suite.Require().NoError(err)
	rounds, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(rounds)
}

func (suite *QueriesTestSuite) TestGetInvoiceIncludesLinesAndPayments() {
	query, err := queries.NewGetInvoiceQuery(suite.f.paid.Code())
	suite.Require().NoError(err)

	response, err := queries.NewGetInvoiceQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(invoice.Paid.String(), response.Status)
	suite.Equal("89.25", response.AmountInclTax.StringFixed(2))
	suite.Equal("89.25", response.PaidTotal.StringFixed(2))
	suite.True(response.Outstanding().IsZero())
	suite.Require().Len(response.Lines, 1)
	suite.Equal(suite.f.delivered.TrackingCode().String(), response.Lines[0].TrackingCode)
	suite.Require().Len(response.Payments, 1)
	suite.Equal(invoice.Wire.String(), response.Payments[0].Method)
}

func (suite *QueriesTestSuite) TestListInvoicesFiltersByStatus() {
	draft := invoice.Draft
	query, err := queries.NewListInvoicesQuery(&draft, nil, queries.DefaultPage())
	suite.Require().NoError(err)

	invoices, err := queries.NewListInvoicesQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.Equal(suite.f.draft.Code().String(), invoices[0].Code)
	suite.Equal("119.00", invoices[0].AmountInclTax.StringFixed(2))
}

func (suite *QueriesTestSuite) TestListIncidentsByShipment() {
	shipmentID := suite.f.inTransit.ID()
	query, err := queries.NewListIncidentsQuery(nil, nil, &shipmentID, queries.DefaultPage())
	suite.Require().NoError(err)

	incidents, err := queries.NewListIncidentsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(incidents, 1)
	suite.Equal(suite.f.openIncident.ID(), incidents[0].ID)
	suite.Equal(suite.f.inTransit.TrackingCode().String(), incidents[0].TrackingCode)
	suite.Equal(cases.IncidentOpen.String(), incidents[0].Status)
}

func (suite *QueriesTestSuite) TestListClaimsByClient() {
	acmeID := suite.f.acme.ID()
	query, err := queries.NewListClaimsQuery(queries.ClaimFilter{ClientID: &acmeID}, queries.DefaultPage())
	suite.Require().NoError(err)

	claims, err := queries.NewListClaimsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(claims, 1)
	suite.Equal(suite.f.newClaim.Code().String(), claims[0].Code)
	suite.Equal("Acme Logistics", claims[0].ClientName)
}

func (suite *QueriesTestSuite) TestClientsCarryActivityCounters() {
	ctx := context.Background()

	query := queries.NewListClientsQuery("acme", queries.DefaultPage())
	clients, err := queries.NewListClientsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(clients, 1)
	suite.Equal(3, clients[0].ShipmentCount)
	suite.Equal(2, clients[0].InvoiceCount)

	get, err := queries.NewGetClientQuery(suite.f.beta.ID())
	suite.Require().NoError(err)
	beta, err := queries.NewGetClientQueryHandler(suite.db).Handle(ctx, get)
	suite.Require().NoError(err)
	suite.Equal("Beta Textiles", beta.Name)

	missing, err := queries.NewGetClientQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetClientQueryHandler(suite.db).Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestReferenceDataLists() {
	ctx := context.Background()

	tariffs, err := queries.NewListTariffsQueryHandler(suite.db).Handle(ctx, queries.NewListTariffsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(tariffs.Destinations, 2)
	suite.Equal("Algiers", tariffs.Destinations[0].City)
	suite.Require().Len(tariffs.ServiceTiers, 1)
	suite.Equal("10", tariffs.ServiceTiers[0].VolumeRate.String())

	fleetResponse, err := queries.NewListFleetQueryHandler(suite.db).Handle(ctx, queries.NewListFleetQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(fleetResponse.Drivers, 1)
	suite.Equal("DZ-4471", fleetResponse.Drivers[0].LicenseNumber)
	suite.Empty(fleetResponse.Vehicles)
}

func (suite *QueriesTestSuite) TestAuthenticateOperator() {
	handler := queries.NewAuthenticateOperatorQueryHandler(suite.db)
	ctx := context.Background()

	query, err := queries.NewAuthenticateOperatorQuery("  ops@example.COM ", "s3cret-passw0rd")
	suite.Require().NoError(err)
	identity, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("ops", identity.Username)
	suite.Equal("ops@example.com", identity.Email)
	suite.True(identity.IsStaff)
	suite.False(identity.IsSuperuser)

	query, err = queries.NewAuthenticateOperatorQuery("ops@example.com", "wrong-password")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, operator.ErrInvalidCredentials)

	query, err = queries.NewAuthenticateOperatorQuery("nobody@example.com", "s3cret-passw0rd")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, operator.ErrInvalidCredentials)

	_, err = queries.NewAuthenticateOperatorQuery("ops@example.com", "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *QueriesTestSuite) TestDashboard() {
	query, err := queries.NewGetDashboardQuery(now)
	suite.Require().NoError(err)

	dashboard, err := queries.NewGetDashboardQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(int64(4), dashboard.TotalShipments)
	suite.Equal(int64(3), dashboard.PendingShipments)
	suite.Equal(int64(1), dashboard.DeliveredShipments)
	suite.Equal(int64(1), dashboard.RecentShipments)
	suite.Equal("75.00", dashboard.DeliveredRevenue.StringFixed(2))
	suite.Equal("119.00", dashboard.UnpaidInvoicesTotal.StringFixed(2))
	suite.Equal(int64(1), dashboard.OpenIncidents)
	suite.Equal(int64(1), dashboard.NewClaims)

	suite.Require().Len(dashboard.TopClients, 2)
	suite.Equal("Acme Logistics", dashboard.TopClients[0].Name)
	suite.Equal(int64(3), dashboard.TopClients[0].ShipmentCount)
	suite.Require().Len(dashboard.TopDestinations, 2)
	suite.Equal(suite.f.algiers.ID(), dashboard.TopDestinations[0].ID)
	suite.Equal(int64(2), dashboard.TopDestinations[0].ShipmentCount)
}

func (suite *QueriesTestSuite) TestShipmentTrendIsZeroFilled() {
	query, err := queries.NewGetShipmentTrendQuery(0, now)
	suite.Require().NoError(err)

	trend, err := queries.NewGetShipmentTrendQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(trend, queries.DefaultTrendMonths)
	suite.True(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Equal(trend[0].Month))
	counts := make([]int64, 0, len(trend))
	for _, bucket := range trend {
		counts = append(counts, bucket.Count)
	}
	suite.Equal([]int64{0, 1, 0, 0, 1, 1}, counts)
}

func (suite *QueriesTestSuite) TestShipmentTrendRejectsOutOfRangeMonths() {
	_, err := queries.NewGetShipmentTrendQuery(queries.MaxTrendMonths+1, now)

	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
	suite.Equal("months", errs.ParamName(err))
}

func (suite *QueriesTestSuite) TestStatusDistributionListsEveryStatus() {
	distribution, err := queries.NewGetStatusDistributionQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetStatusDistributionQuery())
	suite.Require().NoError(err)

	got := make(map[string]int64, len(distribution))
	for _, entry := range distribution {
		got[entry.Status] = entry.Count
	}
	suite.Equal(map[string]int64{
		"IN_TRANSIT":       1,
		"SORTING_CENTER":   1,
		"OUT_FOR_DELIVERY": 0,
		"DELIVERED":        1,
		"FAILED":           1,
	}, got)
	suite.Equal("IN_TRANSIT", distribution[0].Status)
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
