package commands_test

import (
	"context"
	"time"

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

	"github.com/stretchr/testify/mock"
)

// MockUoW satisfies every unit-of-work interface the handlers depend on.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	return m.Called().Get(0).(ports.ClientRepository)
}

func (m *MockUoW) DestinationRepository() ports.DestinationRepository {
	return m.Called().Get(0).(ports.DestinationRepository)
}

func (m *MockUoW) ServiceTierRepository() ports.ServiceTierRepository {
	return m.Called().Get(0).(ports.ServiceTierRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) RoundRepository() ports.RoundRepository {
	return m.Called().Get(0).(ports.RoundRepository)
}

func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	return m.Called().Get(0).(ports.InvoiceRepository)
}

func (m *MockUoW) IncidentRepository() ports.IncidentRepository {
	return m.Called().Get(0).(ports.IncidentRepository)
}

func (m *MockUoW) ClaimRepository() ports.ClaimRepository {
	return m.Called().Get(0).(ports.ClaimRepository)
}

func (m *MockUoW) OperatorRepository() ports.OperatorRepository {
	return m.Called().Get(0).(ports.OperatorRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

// MockUoWFactory hands out the unit of work registered with On("Create").
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	return result[*client.Client](m.Called(ctx, id))
}

func (m *MockClientRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	return result[*client.Client](m.Called(ctx, id))
}

type MockDestinationRepository struct{ mock.Mock }

func (m *MockDestinationRepository) Add(ctx context.Context, d *tariff.Destination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, d *tariff.Destination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.Destination, error) {
	return result[*tariff.Destination](m.Called(ctx, id))
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockServiceTierRepository struct{ mock.Mock }

func (m *MockServiceTierRepository) Add(ctx context.Context, s *tariff.ServiceTier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceTierRepository) Update(ctx context.Context, s *tariff.ServiceTier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockServiceTierRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.ServiceTier, error) {
	return result[*tariff.ServiceTier](m.Called(ctx, id))
}

func (m *MockServiceTierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *fleet.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Driver, error) {
	return result[*fleet.Driver](m.Called(ctx, id))
}

func (m *MockDriverRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	return result[*fleet.Vehicle](m.Called(ctx, id))
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	return result[*shipment.Shipment](m.Called(ctx, id))
}

func (m *MockShipmentRepository) GetByTrackingCode(ctx context.Context, code kernel.Code) (*shipment.Shipment, error) {
	return result[*shipment.Shipment](m.Called(ctx, code))
}

func (m *MockShipmentRepository) GetByTrackingCodeForUpdate(
	ctx context.Context,
	code kernel.Code,
) (*shipment.Shipment, error) {
	return result[*shipment.Shipment](m.Called(ctx, code))
}

type MockRoundRepository struct{ mock.Mock }

func (m *MockRoundRepository) Add(ctx context.Context, r *round.Round) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRoundRepository) Update(ctx context.Context, r *round.Round) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRoundRepository) GetByCode(ctx context.Context, code kernel.Code) (*round.Round, error) {
	return result[*round.Round](m.Called(ctx, code))
}

func (m *MockRoundRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*round.Round, error) {
	return result[*round.Round](m.Called(ctx, code))
}

func (m *MockRoundRepository) FindActiveByShipment(ctx context.Context, id kernel.UUID) (*round.Round, error) {
	return result[*round.Round](m.Called(ctx, id))
}

func (m *MockRoundRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *MockInvoiceRepository) GetByCode(ctx context.Context, code kernel.Code) (*invoice.Invoice, error) {
	return result[*invoice.Invoice](m.Called(ctx, code))
}

func (m *MockInvoiceRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*invoice.Invoice, error) {
	return result[*invoice.Invoice](m.Called(ctx, code))
}

func (m *MockInvoiceRepository) FindActiveByShipment(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	return result[*invoice.Invoice](m.Called(ctx, id))
}

type MockIncidentRepository struct{ mock.Mock }

func (m *MockIncidentRepository) Add(ctx context.Context, i *cases.Incident) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, i *cases.Incident) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*cases.Incident, error) {
	return result[*cases.Incident](m.Called(ctx, id))
}

func (m *MockIncidentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*cases.Incident, error) {
	return result[*cases.Incident](m.Called(ctx, id))
}

type MockClaimRepository struct{ mock.Mock }

func (m *MockClaimRepository) Add(ctx context.Context, c *cases.Claim) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClaimRepository) Update(ctx context.Context, c *cases.Claim) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClaimRepository) GetByCode(ctx context.Context, code kernel.Code) (*cases.Claim, error) {
	return result[*cases.Claim](m.Called(ctx, code))
}

func (m *MockClaimRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*cases.Claim, error) {
	return result[*cases.Claim](m.Called(ctx, code))
}

type MockOperatorRepository struct{ mock.Mock }

func (m *MockOperatorRepository) Add(ctx context.Context, o *operator.Operator) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOperatorRepository) GetByEmail(ctx context.Context, email string) (*operator.Operator, error) {
	return result[*operator.Operator](m.Called(ctx, email))
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	return result[[]ports.OutboxMessage](m.Called(ctx, limit))
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}
