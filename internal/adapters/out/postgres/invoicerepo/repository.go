package invoicerepo

import (
	"context"

	"freight/internal/adapters/out/postgres/dberrs"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines, payments := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return dberrs.Translate(err, "invoice_code", dto.Code)
	}
	if err := syncLines(db, dto.ID, lines); err != nil {
		return err
	}
	if err := appendPayments(db, dto.ID, payments); err != nil {
		return dberrs.Translate(err, "payment", aggregate.Code().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lines, payments := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	result := db.Model(&InvoiceDTO{}).Where("id = ?", dto.ID).
		Select("amount_excl_tax", "tax_rate", "tax_amount", "amount_incl_tax", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", aggregate.Code().String())
	}
	if err := syncLines(db, dto.ID, lines); err != nil {
		return err
	}
	if err := appendPayments(db, dto.ID, payments); err != nil {
		return dberrs.Translate(err, "payment", aggregate.Code().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormInvoiceRepository) GetByCode(ctx context.Context, code kernel.Code) (*invoice.Invoice, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	return r.load(ctx, r.db.WithContext(ctx).Where("code = ?", code.String()), code.String())
}

func (r *GormInvoiceRepository) GetByCodeForUpdate(ctx context.Context, code kernel.Code) (*invoice.Invoice, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("code = ?", code.String())
	return r.load(ctx, locked, code.String())
}

func (r *GormInvoiceRepository) FindActiveByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*invoice.Invoice, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Joins("JOIN invoice_lines ON invoice_lines.invoice_id = invoices.id").
		Where("invoice_lines.shipment_id = ? AND invoices.status <> ?", shipmentID.Bytes(), invoice.Cancelled.String()).
		Order("invoices.created_at DESC")
	return r.load(ctx, query, "shipment "+shipmentID.String())
}

func (r *GormInvoiceRepository) load(ctx context.Context, query *gorm.DB, ref string) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := query.Take(&dto).Error; err != nil {
		return nil, dberrs.NotFound(err, "invoice", ref)
	}

	db := r.db.WithContext(ctx)
	var lines []LineDTO
	if err := db.Where("invoice_id = ?", dto.ID).Order("added_at").Find(&lines).Error; err != nil {
		return nil, err
	}
	var payments []PaymentDTO
	if err := db.Where("invoice_id = ?", dto.ID).Order("paid_at").Find(&payments).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, lines, payments)
}

func syncLines(db *gorm.DB, invoiceID uuid.UUID, lines []LineDTO) error {
	stale := db.Where("invoice_id = ?", invoiceID)
	if len(lines) > 0 {
		kept := make([]uuid.UUID, 0, len(lines))
		for _, l := range lines {
			kept = append(kept, l.ShipmentID)
		}
		stale = stale.Where("shipment_id NOT IN ?", kept)
	}
	if err := stale.Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&lines).Error
}

// appendPayments inserts the payments of invoiceID not stored yet. Stored
// payments are immutable. An id already taken by another invoice fails the
// insert.
func appendPayments(db *gorm.DB, invoiceID uuid.UUID, payments []PaymentDTO) error {
	if len(payments) == 0 {
		return nil
	}

	var stored []uuid.UUID
	if err := db.Model(&PaymentDTO{}).Where("invoice_id = ?", invoiceID).Pluck("id", &stored).Error; err != nil {
		return err
	}
	known := make(map[uuid.UUID]struct{}, len(stored))
	for _, id := range stored {
		known[id] = struct{}{}
	}

	fresh := make([]PaymentDTO, 0, len(payments))
	for _, p := range payments {
		if _, ok := known[p.ID]; !ok {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	return db.Create(&fresh).Error
}
