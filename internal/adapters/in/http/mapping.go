package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/cases"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/tariff"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request side: wire values into domain values. Failures are reported on the
// JSON field they came from.

func toUUID(field string, id openapi_types.UUID) (kernel.UUID, error) {
	value, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	if err := value.Validate(); err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredError(field)
	}
	return value, nil
}

func toOptionalUUID(field string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	value, err := toUUID(field, *id)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func toCode(field, value string) (kernel.Code, error) {
	code, err := kernel.NewCode(value)
	if err != nil {
		return kernel.Code{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return code, nil
}

func toOptionalCode(field string, value *string) (*kernel.Code, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	code, err := toCode(field, *value)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func toDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return d, nil
}

func toOptionalDecimal(field string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	d, err := toDecimal(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func toPage(limit, offset *int) (queries.Page, error) {
	return queries.NewPage(valueOr(limit, 0), valueOr(offset, 0))
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Response side.

func money(d decimal.Decimal) servers.Money {
	return d.StringFixed(2)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func apiUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func apiDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func toClient(c queries.ClientResponse) servers.Client {
	return servers.Client{
		Id:            apiUUID(c.ID),
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Balance:       money(c.Balance),
		ShipmentCount: c.ShipmentCount,
		InvoiceCount:  c.InvoiceCount,
	}
}

func toDestination(d *tariff.Destination) servers.Destination {
	return servers.Destination{
		Id:       apiUUID(d.ID()),
		City:     d.City(),
		Country:  d.Country(),
		BaseRate: money(d.BaseRate()),
	}
}

func toServiceTier(t *tariff.ServiceTier) servers.ServiceTier {
	return servers.ServiceTier{
		Id:         apiUUID(t.ID()),
		Name:       t.Name(),
		WeightRate: t.WeightRate().String(),
		VolumeRate: t.VolumeRate().String(),
	}
}

func toDriver(d *fleet.Driver) servers.Driver {
	return servers.Driver{
		Id:            apiUUID(d.ID()),
		Name:          d.Name(),
		LicenseNumber: d.LicenseNumber(),
		Available:     d.Available(),
	}
}

func toVehicle(v *fleet.Vehicle) servers.Vehicle {
	return servers.Vehicle{
		Id:           apiUUID(v.ID()),
		Registration: v.Registration(),
		Kind:         v.Kind(),
		Capacity:     v.Capacity().String(),
	}
}

func toTariffs(t queries.TariffsResponse) servers.Tariffs {
	out := servers.Tariffs{
		Destinations: make([]servers.Destination, 0, len(t.Destinations)),
		ServiceTiers: make([]servers.ServiceTier, 0, len(t.ServiceTiers)),
	}
	for _, d := range t.Destinations {
		out.Destinations = append(out.Destinations, servers.Destination{
			Id:       apiUUID(d.ID),
			City:     d.City,
			Country:  d.Country,
			BaseRate: money(d.BaseRate),
		})
	}
	for _, st := range t.ServiceTiers {
		out.ServiceTiers = append(out.ServiceTiers, servers.ServiceTier{
			Id:         apiUUID(st.ID),
			Name:       st.Name,
			WeightRate: st.WeightRate.String(),
			VolumeRate: st.VolumeRate.String(),
		})
	}
	return out
}

func toFleet(f queries.FleetResponse) servers.Fleet {
	out := servers.Fleet{
		Drivers:  make([]servers.Driver, 0, len(f.Drivers)),
		Vehicles: make([]servers.Vehicle, 0, len(f.Vehicles)),
	}
	for _, d := range f.Drivers {
		out.Drivers = append(out.Drivers, servers.Driver{
			Id:            apiUUID(d.ID),
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			Available:     d.Available,
		})
	}
	for _, v := range f.Vehicles {
		out.Vehicles = append(out.Vehicles, servers.Vehicle{
			Id:           apiUUID(v.ID),
			Registration: v.Registration,
			Kind:         v.Kind,
			Capacity:     v.Capacity.String(),
		})
	}
	return out
}

func toShipment(s queries.ShipmentResponse) servers.Shipment {
	out := servers.Shipment{
		Id:            apiUUID(s.ID),
		TrackingCode:  s.TrackingCode,
		ClientId:      apiUUID(s.ClientID),
		ClientName:    optional(s.ClientName),
		DestinationId: apiUUID(s.DestinationID),
		ServiceTierId: apiUUID(s.ServiceTierID),
		ServiceTier:   optional(s.ServiceTierName),
		Weight:        s.Weight.String(),
		Volume:        s.Volume.String(),
		Description:   optional(s.Description),
		TotalAmount:   money(s.TotalAmount),
		Status:        servers.ShipmentStatus(s.Status),
		CreatedAt:     s.CreatedAt,
	}
	if s.DestinationCity != "" {
		destination := s.DestinationCity + ", " + s.DestinationCountry
		out.Destination = &destination
	}
	if s.History != nil {
		history := make([]servers.TrackingEvent, 0, len(s.History))
		for _, e := range s.History {
			history = append(history, servers.TrackingEvent{
				Location:   e.Location,
				Status:     servers.ShipmentStatus(e.Status),
				Comment:    optional(e.Comment),
				OccurredAt: e.OccurredAt,
			})
		}
		out.History = &history
	}
	return out
}

func toRound(r queries.RoundResponse) servers.Round {
	out := servers.Round{
		Id:                  apiUUID(r.ID),
		Code:                r.Code,
		Date:                apiDate(r.Date),
		DriverId:            kernel.OptionalBytes(r.DriverID),
		DriverName:          optional(r.DriverName),
		VehicleId:           kernel.OptionalBytes(r.VehicleID),
		VehicleRegistration: optional(r.VehicleRegistration),
		Status:              servers.RoundStatus(r.Status),
		Comment:             optional(r.Comment),
		ShipmentCount:       r.ShipmentCount,
		CreatedAt:           r.CreatedAt,
	}
	if r.Members != nil {
		members := make([]servers.RoundMember, 0, len(r.Members))
		for _, m := range r.Members {
			members = append(members, servers.RoundMember{
				Position:       m.Position,
				ShipmentId:     apiUUID(m.ShipmentID),
				TrackingCode:   optional(m.TrackingCode),
				ShipmentStatus: optional(m.ShipmentStatus),
				AddedAt:        m.AddedAt,
			})
		}
		out.Members = &members
	}
	return out
}

func toInvoice(inv queries.InvoiceResponse) servers.Invoice {
	out := servers.Invoice{
		Id:            apiUUID(inv.ID),
		Code:          inv.Code,
		ClientId:      apiUUID(inv.ClientID),
		ClientName:    optional(inv.ClientName),
		IssueDate:     apiDate(inv.IssueDate),
		DueDate:       apiDate(inv.DueDate),
		AmountExclTax: money(inv.AmountExclTax),
		TaxRate:       money(inv.TaxRate),
		TaxAmount:     money(inv.TaxAmount),
		AmountInclTax: money(inv.AmountInclTax),
		PaidTotal:     money(inv.PaidTotal),
		Outstanding:   money(inv.Outstanding()),
		Status:        servers.InvoiceStatus(inv.Status),
		CreatedAt:     inv.CreatedAt,
	}
	if inv.Lines != nil {
		lines := make([]servers.InvoiceLine, 0, len(inv.Lines))
		for _, l := range inv.Lines {
			lines = append(lines, servers.InvoiceLine{
				ShipmentId:   apiUUID(l.ShipmentID),
				TrackingCode: optional(l.TrackingCode),
				Destination:  optional(l.Destination),
				Amount:       money(l.Amount),
				AddedAt:      l.AddedAt,
			})
		}
		out.Lines = &lines
	}
	if inv.Payments != nil {
		payments := make([]servers.Payment, 0, len(inv.Payments))
		for _, p := range inv.Payments {
			payments = append(payments, servers.Payment{
				Id:        apiUUID(p.ID),
				Amount:    money(p.Amount),
				Method:    servers.PaymentMethod(p.Method),
				Reference: optional(p.Reference),
				Comment:   optional(p.Comment),
				PaidAt:    p.PaidAt,
			})
		}
		out.Payments = &payments
	}
	return out
}

func incidentFromResponse(i queries.IncidentResponse) servers.Incident {
	return servers.Incident{
		Id:           apiUUID(i.ID),
		Type:         servers.IncidentType(i.Type),
		Description:  i.Description,
		Status:       servers.IncidentStatus(i.Status),
		Resolution:   optional(i.Resolution),
		ResolvedAt:   i.ResolvedAt,
		ShipmentId:   kernel.OptionalBytes(i.ShipmentID),
		TrackingCode: optional(i.TrackingCode),
		RoundId:      kernel.OptionalBytes(i.RoundID),
		RoundCode:    optional(i.RoundCode),
		ReportedAt:   i.ReportedAt,
	}
}

func toIncident(i *cases.Incident) servers.Incident {
	return servers.Incident{
		Id:          apiUUID(i.ID()),
		Type:        servers.IncidentType(i.Type().String()),
		Description: i.Description(),
		Status:      servers.IncidentStatus(i.Status().String()),
		Resolution:  optional(i.Resolution()),
		ResolvedAt:  i.ResolvedAt(),
		ShipmentId:  kernel.OptionalBytes(i.ShipmentID()),
		RoundId:     kernel.OptionalBytes(i.RoundID()),
		ReportedAt:  i.ReportedAt(),
	}
}

func claimFromResponse(c queries.ClaimResponse) servers.Claim {
	return servers.Claim{
		Id:           apiUUID(c.ID),
		Code:         c.Code,
		ClientId:     apiUUID(c.ClientID),
		ClientName:   optional(c.ClientName),
		Type:         servers.ClaimType(c.Type),
		Description:  c.Description,
		Status:       servers.ClaimStatus(c.Status),
		Response:     optional(c.Response),
		ResolvedAt:   c.ResolvedAt,
		ShipmentId:   kernel.OptionalBytes(c.ShipmentID),
		TrackingCode: optional(c.TrackingCode),
		InvoiceId:    kernel.OptionalBytes(c.InvoiceID),
		InvoiceCode:  optional(c.InvoiceCode),
		FiledAt:      c.FiledAt,
	}
}

func toClaim(c *cases.Claim) servers.Claim {
	return servers.Claim{
		Id:          apiUUID(c.ID()),
		Code:        c.Code().String(),
		ClientId:    apiUUID(c.ClientID()),
		Type:        servers.ClaimType(c.Type().String()),
		Description: c.Description(),
		Status:      servers.ClaimStatus(c.Status().String()),
		Response:    optional(c.Response()),
		ResolvedAt:  c.ResolvedAt(),
		ShipmentId:  kernel.OptionalBytes(c.ShipmentID()),
		InvoiceId:   kernel.OptionalBytes(c.InvoiceID()),
		FiledAt:     c.FiledAt(),
	}
}
