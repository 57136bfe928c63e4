package postgres

import (
	"fmt"

	"freight/internal/adapters/out/postgres/caserepo"
	"freight/internal/adapters/out/postgres/clientrepo"
	"freight/internal/adapters/out/postgres/fleetrepo"
	"freight/internal/adapters/out/postgres/invoicerepo"
	"freight/internal/adapters/out/postgres/operatorrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/roundrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/tariffrepo"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&clientrepo.ClientDTO{},
		&tariffrepo.DestinationDTO{},
		&tariffrepo.ServiceTierDTO{},
		&fleetrepo.DriverDTO{},
		&fleetrepo.VehicleDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&roundrepo.RoundDTO{},
		&roundrepo.MembershipDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.LineDTO{},
		&invoicerepo.PaymentDTO{},
		&caserepo.IncidentDTO{},
		&caserepo.ClaimDTO{},
		&operatorrepo.OperatorDTO{},
		&outboxrepo.MessageDTO{},
	}
}

type constraint struct {
	table string
	name  string
	ddl   string
}

// constraints encodes the ownership rules: tariffs and clients are protected
// while referenced, crew and incident links are nulled, owned children go
// with their owner.
func constraints() []constraint {
	return []constraint{
		{"shipments", "fk_shipments_client",
			"FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT"},
		{"shipments", "fk_shipments_destination",
			"FOREIGN KEY (destination_id) REFERENCES destinations(id) ON DELETE RESTRICT"},
		{"shipments", "fk_shipments_service_tier",
			"FOREIGN KEY (service_tier_id) REFERENCES service_tiers(id) ON DELETE RESTRICT"},
		{"shipments", "chk_shipments_measures", "CHECK (weight >= 0 AND volume >= 0 AND total_amount >= 0)"},
		{"tracking_events", "fk_tracking_events_shipment",
			"FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE CASCADE"},
		{"rounds", "fk_rounds_driver", "FOREIGN KEY (driver_id) REFERENCES drivers(id) ON DELETE SET NULL"},
		{"rounds", "fk_rounds_vehicle", "FOREIGN KEY (vehicle_id) REFERENCES vehicles(id) ON DELETE SET NULL"},
		{"round_shipments", "fk_round_shipments_round",
			"FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE CASCADE"},
		{"round_shipments", "fk_round_shipments_shipment",
			"FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE CASCADE"},
		{"invoices", "fk_invoices_client", "FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE"},
		{"invoices", "chk_invoices_dates", "CHECK (due_date >= issue_date)"},
		{"invoice_lines", "fk_invoice_lines_invoice",
			"FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE"},
		{"invoice_lines", "fk_invoice_lines_shipment",
			"FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE RESTRICT"},
		{"payments", "fk_payments_invoice", "FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE"},
		{"payments", "chk_payments_amount", "CHECK (amount > 0)"},
		{"incidents", "fk_incidents_shipment",
			"FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE SET NULL"},
		{"incidents", "fk_incidents_round", "FOREIGN KEY (round_id) REFERENCES rounds(id) ON DELETE SET NULL"},
		{"claims", "fk_claims_client", "FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE"},
		{"claims", "fk_claims_shipment", "FOREIGN KEY (shipment_id) REFERENCES shipments(id) ON DELETE SET NULL"},
		{"claims", "fk_claims_invoice", "FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE SET NULL"},
	}
}

// Migrate creates or updates all tables. On PostgreSQL it also installs the
// foreign keys and checks; SQLite cannot add constraints to existing tables,
// so there the repositories' own checks are all that applies.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Dialector.Name() != DriverPostgres {
		return nil
	}

	for _, c := range constraints() {
		var exists bool
		err := db.Raw(
			"SELECT EXISTS (SELECT 1 FROM information_schema.table_constraints WHERE table_name = ? AND constraint_name = ?)",
			c.table, c.name,
		).Scan(&exists).Error
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err = db.Exec(fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", c.table, c.name, c.ddl)).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}

	return nil
}
