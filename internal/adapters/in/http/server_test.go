package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight/cmd"
	httpin "freight/internal/adapters/in/http"
	postgres_adapter "freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(w io.Writer, inv queries.InvoiceResponse) error {
	args := m.Called(w, inv)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "%PDF-1.3 "+inv.Code)
	return err
}

// ServerTestSuite drives the echo router end to end over an in-memory
// SQLite store wired through the composition root.
type ServerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	root     cmd.CompositionRoot
	renderer *MockInvoiceRenderer
	e        *echo.Echo
}

func (suite *ServerTestSuite) SetupTest() {
	db, err := postgres_adapter.Open(context.Background(), postgres_adapter.ConnectionConfig{
		Driver:       postgres_adapter.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", kernel.NewUUID()),
		MaxOpenConns: 1,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.db = db
	suite.root = cmd.NewCompositionRoot(cmd.Config{DefaultTaxRate: invoice.DefaultTaxRate}, db)
	suite.renderer = new(MockInvoiceRenderer)

	server := httpin.NewServer(suite.root.CreateCommandHandlers(), suite.root.CreateQueryHandlers(), suite.renderer)
	e, err := httpin.NewRouter(server, slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.Require().NoError(err)
	suite.e = e
}

func (suite *ServerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())
}

func (suite *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](suite *ServerTestSuite, rec *httptest.ResponseRecorder) T {
	var value T
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &value), rec.Body.String())
	return value
}

func (suite *ServerTestSuite) requireStatus(rec *httptest.ResponseRecorder, status int) {
	suite.Require().Equal(status, rec.Code, rec.Body.String())
}

func (suite *ServerTestSuite) requireError(rec *httptest.ResponseRecorder, status int, field string) servers.Error {
	suite.requireStatus(rec, status)
	body := decode[servers.Error](suite, rec)
	suite.Equal(status, body.Code)
	if field != "" {
		suite.Require().NotNil(body.Field, body.Message)
		suite.Equal(field, *body.Field)
	}
	return body
}

func (suite *ServerTestSuite) createClient(name string) servers.Client {
	rec := suite.do(http.MethodPost, "/api/v1/clients", map[string]any{"name": name, "address": "1 Quay Street"})
	suite.requireStatus(rec, http.StatusCreated)
	return decode[servers.Client](suite, rec)
}

// createShipment prices 10 kg and 2 m3 to Oran: 50.00 + 10*0.50 + 2*10.00 = 75.00.
func (suite *ServerTestSuite) createShipment(clientID string) servers.Shipment {
	rec := suite.do(http.MethodPost, "/api/v1/destinations",
		map[string]any{"city": "Oran", "country": "Algeria", "base_rate": "50.00"})
	suite.requireStatus(rec, http.StatusCreated)
	destination := decode[servers.Destination](suite, rec)

	rec = suite.do(http.MethodPost, "/api/v1/service-tiers",
		map[string]any{"name": "Express", "weight_rate": "0.50", "volume_rate": "10.00"})
	suite.requireStatus(rec, http.StatusCreated)
	tier := decode[servers.ServiceTier](suite, rec)

	rec = suite.do(http.MethodPost, "/api/v1/shipments", map[string]any{
		"client_id":       clientID,
		"destination_id":  destination.Id.String(),
		"service_tier_id": tier.Id.String(),
		"weight":          "10",
		"volume":          "2",
		"description":     "pallet of tiles",
	})
	suite.requireStatus(rec, http.StatusCreated)
	return decode[servers.Shipment](suite, rec)
}

func (suite *ServerTestSuite) createInvoice(clientID string) servers.Invoice {
	rec := suite.do(http.MethodPost, "/api/v1/invoices", map[string]any{
		"client_id":  clientID,
		"issue_date": "2024-10-01",
		"due_date":   "2024-10-31",
	})
	suite.requireStatus(rec, http.StatusCreated)
	return decode[servers.Invoice](suite, rec)
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil)

	suite.requireStatus(rec, http.StatusOK)
	suite.Equal("Healthy", rec.Body.String())
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	rec := suite.do(http.MethodGet, "/api/v1/unknown", nil)

	suite.requireError(rec, http.StatusNotFound, "")
}

func (suite *ServerTestSuite) TestCreateClient_ThenGet() {
	created := suite.createClient("Acme Logistics")

	suite.Equal("Acme Logistics", created.Name)
	suite.Equal("0.00", created.Balance)
	suite.Zero(created.ShipmentCount)

	rec := suite.do(http.MethodGet, "/api/v1/clients/"+created.Id.String(), nil)
	suite.requireStatus(rec, http.StatusOK)
	suite.Equal(created, decode[servers.Client](suite, rec))
}

func (suite *ServerTestSuite) TestCreateClient_EmptyNameIsRejectedWithField() {
	rec := suite.do(http.MethodPost, "/api/v1/clients", map[string]any{"name": ""})

	suite.requireError(rec, http.StatusBadRequest, "name")
}

func (suite *ServerTestSuite) TestGetClient_Unknown() {
	rec := suite.do(http.MethodGet, "/api/v1/clients/"+kernel.NewUUID().String(), nil)

	suite.requireError(rec, http.StatusNotFound, "")
}

func (suite *ServerTestSuite) TestGetClient_MalformedID() {
	rec := suite.do(http.MethodGet, "/api/v1/clients/not-a-uuid", nil)

	suite.requireError(rec, http.StatusBadRequest, "clientId")
}

func (suite *ServerTestSuite) TestCreateShipment_PricesAtCreation() {
	owner := suite.createClient("Acme Logistics")

	created := suite.createShipment(owner.Id.String())

	suite.Equal("75.00", created.TotalAmount)
	suite.Equal(servers.ShipmentStatus("IN_TRANSIT"), created.Status)
	suite.Len(created.TrackingCode, 10)
	suite.Require().NotNil(created.Destination)
	suite.Equal("Oran, Algeria", *created.Destination)

	rec := suite.do(http.MethodGet, "/api/v1/shipments/"+created.TrackingCode, nil)
	suite.requireStatus(rec, http.StatusOK)
	suite.Equal(created.Id, decode[servers.Shipment](suite, rec).Id)
}

func (suite *ServerTestSuite) TestCreateShipment_MalformedWeightIsRejectedBeforeTheHandler() {
	rec := suite.do(http.MethodPost, "/api/v1/shipments", map[string]any{
		"client_id":       kernel.NewUUID().String(),
		"destination_id":  kernel.NewUUID().String(),
		"service_tier_id": kernel.NewUUID().String(),
		"weight":          "ten",
		"volume":          "2",
	})

	suite.requireError(rec, http.StatusBadRequest, "weight")
}

func (suite *ServerTestSuite) TestExcessDecimalPlacesAreRejected() {
	owner := suite.createClient("Acme Logistics")
	created := suite.createShipment(owner.Id.String())

	rec := suite.do(http.MethodPost, "/api/v1/shipments", map[string]any{
		"client_id":       owner.Id.String(),
		"destination_id":  created.DestinationId.String(),
		"service_tier_id": created.ServiceTierId.String(),
		"weight":          "1.2345",
		"volume":          "1",
	})
	suite.requireError(rec, http.StatusBadRequest, "weight")

	rec = suite.do(http.MethodPut, "/api/v1/service-tiers/"+created.ServiceTierId.String()+"/rates",
		map[string]any{"weight_rate": "0.3333", "volume_rate": "0.33333"})
	suite.requireError(rec, http.StatusBadRequest, "volume_rate")

	rec = suite.do(http.MethodPut, "/api/v1/destinations/"+created.DestinationId.String()+"/rate",
		map[string]any{"base_rate": "50.005"})
	suite.requireError(rec, http.StatusBadRequest, "base_rate")

	draft := suite.createInvoice(owner.Id.String())
	base := "/api/v1/invoices/" + draft.Code
	rec = suite.do(http.MethodPost, base+"/lines", map[string]any{"tracking_code": created.TrackingCode})
	suite.requireStatus(rec, http.StatusCreated)
	rec = suite.do(http.MethodPost, base+"/status", map[string]any{"status": "ISSUED"})
	suite.requireStatus(rec, http.StatusOK)

	rec = suite.do(http.MethodPost, base+"/payments", map[string]any{"amount": "89.245", "method": "CASH"})
	suite.requireError(rec, http.StatusBadRequest, "amount")

	rec = suite.do(http.MethodGet, base, nil)
	suite.requireStatus(rec, http.StatusOK)
	fetched := decode[servers.Invoice](suite, rec)
	suite.Equal(servers.InvoiceStatus("ISSUED"), fetched.Status)
	suite.Equal("89.25", fetched.Outstanding)
}

func (suite *ServerTestSuite) TestShipmentTotalSurvivesTariffChanges() {
	owner := suite.createClient("Acme Logistics")
	created := suite.createShipment(owner.Id.String())
	suite.Require().Equal("75.00", created.TotalAmount)

	rec := suite.do(http.MethodPut, "/api/v1/destinations/"+created.DestinationId.String()+"/rate",
		map[string]any{"base_rate": "80.00"})
	suite.requireStatus(rec, http.StatusOK)
	rec = suite.do(http.MethodPut, "/api/v1/service-tiers/"+created.ServiceTierId.String()+"/rates",
		map[string]any{"weight_rate": "2.0000", "volume_rate": "25.00"})
	suite.requireStatus(rec, http.StatusOK)

	rec = suite.do(http.MethodGet, "/api/v1/shipments/"+created.TrackingCode, nil)
	suite.requireStatus(rec, http.StatusOK)
	suite.Equal("75.00", decode[servers.Shipment](suite, rec).TotalAmount)

	draft := suite.createInvoice(owner.Id.String())
	rec = suite.do(http.MethodPost, "/api/v1/invoices/"+draft.Code+"/lines",
		map[string]any{"tracking_code": created.TrackingCode})
	suite.requireStatus(rec, http.StatusCreated)
	suite.Equal("75.00", decode[servers.Invoice](suite, rec).AmountExclTax)

	rec = suite.do(http.MethodGet, "/api/v1/invoices/"+draft.Code, nil)
	suite.requireStatus(rec, http.StatusOK)
	fetched := decode[servers.Invoice](suite, rec)
	suite.Require().NotNil(fetched.Lines)
	suite.Require().Len(*fetched.Lines, 1)
	suite.Equal("75.00", (*fetched.Lines)[0].Amount)
}

func (suite *ServerTestSuite) TestCreateShipment_UnknownClientIsInvalidInput() {
	rec := suite.do(http.MethodPost, "/api/v1/shipments", map[string]any{
		"client_id":       kernel.NewUUID().String(),
		"destination_id":  kernel.NewUUID().String(),
		"service_tier_id": kernel.NewUUID().String(),
		"weight":          "1",
		"volume":          "1",
	})

	suite.requireError(rec, http.StatusBadRequest, "client_id")
}

func (suite *ServerTestSuite) TestChangeShipmentStatus_ForwardThenBackwards() {
	owner := suite.createClient("Acme Logistics")
	created := suite.createShipment(owner.Id.String())
	path := "/api/v1/shipments/" + created.TrackingCode + "/status"

	rec := suite.do(http.MethodPost, path, map[string]any{"status": "DELIVERED", "location": "Oran"})
	suite.requireStatus(rec, http.StatusCreated)
	suite.Equal(servers.ShipmentStatus("DELIVERED"), decode[servers.TrackingEvent](suite, rec).Status)

	rec = suite.do(http.MethodPost, path, map[string]any{"status": "IN_TRANSIT", "location": "Algiers"})
	suite.requireError(rec, http.StatusUnprocessableEntity, "")

	rec = suite.do(http.MethodGet, "/api/v1/shipments/"+created.TrackingCode, nil)
	suite.requireStatus(rec, http.StatusOK)
	fetched := decode[servers.Shipment](suite, rec)
	suite.Equal(servers.ShipmentStatus("DELIVERED"), fetched.Status)
	suite.Require().NotNil(fetched.History)
	suite.Len(*fetched.History, 1)
}

func (suite *ServerTestSuite) TestInvoice_AttachPayAndLock() {
	owner := suite.createClient("Acme Logistics")
	created := suite.createShipment(owner.Id.String())
	draft := suite.createInvoice(owner.Id.String())
	base := "/api/v1/invoices/" + draft.Code

	suite.Equal(servers.InvoiceStatus("DRAFT"), draft.Status)
	suite.Equal("19.00", draft.TaxRate)

	rec := suite.do(http.MethodPost, base+"/lines", map[string]any{"tracking_code": created.TrackingCode})
	suite.requireStatus(rec, http.StatusCreated)
	attached := decode[servers.Invoice](suite, rec)
	suite.Equal("75.00", attached.AmountExclTax)
	suite.Equal("14.25", attached.TaxAmount)
	suite.Equal("89.25", attached.AmountInclTax)

	rec = suite.do(http.MethodPost, base+"/lines", map[string]any{"tracking_code": created.TrackingCode})
	suite.requireError(rec, http.StatusConflict, "")

	rec = suite.do(http.MethodPost, base+"/payments", map[string]any{"amount": "89.25", "method": "WIRE"})
	suite.requireStatus(rec, http.StatusCreated)
	paid := decode[servers.Invoice](suite, rec)
	suite.Equal(servers.InvoiceStatus("PAID"), paid.Status)
	suite.Equal("0.00", paid.Outstanding)

	rec = suite.do(http.MethodDelete, base+"/lines/"+created.TrackingCode, nil)
	suite.requireError(rec, http.StatusUnprocessableEntity, "")

	rec = suite.do(http.MethodGet, "/api/v1/clients/"+owner.Id.String(), nil)
	suite.requireStatus(rec, http.StatusOK)
	suite.Equal("-89.25", decode[servers.Client](suite, rec).Balance)
}

func (suite *ServerTestSuite) TestGetInvoice_Unknown() {
	rec := suite.do(http.MethodGet, "/api/v1/invoices/FDEADBEEF", nil)

	suite.requireError(rec, http.StatusNotFound, "")
}

func (suite *ServerTestSuite) TestGetInvoicePdf() {
	owner := suite.createClient("Acme Logistics")
	draft := suite.createInvoice(owner.Id.String())
	suite.renderer.On("Render", mock.Anything, mock.MatchedBy(func(inv queries.InvoiceResponse) bool {
		return inv.Code == draft.Code
	})).Return(nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/invoices/"+draft.Code+"/pdf", nil)

	suite.requireStatus(rec, http.StatusOK)
	suite.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	suite.Contains(rec.Header().Get(echo.HeaderContentDisposition), "invoice-"+draft.Code+".pdf")
	suite.Equal("%PDF-1.3 "+draft.Code, rec.Body.String())
	suite.renderer.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestLogin() {
	register, err := commands.NewRegisterOperatorCommand(kernel.NewUUID(), "ops@example.com", "ops", "correct horse", true, false)
	suite.Require().NoError(err)
	_, err = suite.root.CreateRegisterOperatorCommandHandler().Handle(context.Background(), register)
	suite.Require().NoError(err)

	rec := suite.do(http.MethodPost, "/api/v1/auth/login",
		map[string]any{"email": "ops@example.com", "password": "correct horse"})
	suite.requireStatus(rec, http.StatusOK)
	identity := decode[servers.Identity](suite, rec)
	suite.Equal("ops", identity.Username)
	suite.True(identity.IsStaff)
	suite.False(identity.IsSuperuser)

	rec = suite.do(http.MethodPost, "/api/v1/auth/login",
		map[string]any{"email": "ops@example.com", "password": "wrong horse"})
	body := suite.requireError(rec, http.StatusUnauthorized, "")
	suite.Equal("invalid email or password", body.Message)

	rec = suite.do(http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "ops@example.com", "password": ""})
	suite.requireError(rec, http.StatusBadRequest, "password")
}

func (suite *ServerTestSuite) TestReports() {
	owner := suite.createClient("Acme Logistics")
	suite.createShipment(owner.Id.String())

	rec := suite.do(http.MethodGet, "/api/v1/reports/dashboard", nil)
	suite.requireStatus(rec, http.StatusOK)
	dashboard := decode[servers.Dashboard](suite, rec)
	suite.Equal(1, dashboard.TotalShipments)
	suite.Equal(1, dashboard.PendingShipments)
	suite.Require().Len(dashboard.TopClients, 1)
	suite.Equal(owner.Id, dashboard.TopClients[0].Id)

	rec = suite.do(http.MethodGet, "/api/v1/reports/shipment-trend?months=3", nil)
	suite.requireStatus(rec, http.StatusOK)
	suite.Len(decode[[]servers.MonthlyCount](suite, rec), 3)

	rec = suite.do(http.MethodGet, "/api/v1/reports/status-distribution", nil)
	suite.requireStatus(rec, http.StatusOK)
	distribution := decode[[]servers.StatusCount](suite, rec)
	suite.Len(distribution, 5)
	for _, c := range distribution {
		if c.Status == "IN_TRANSIT" {
			suite.Equal(1, c.Count)
		}
	}
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
