// Package services holds stateless domain services for rules that span more
// than one aggregate or that must stay free of persistence:
//   - PricingEngine: the pure shipment price function
//   - PaymentReconciler: applies a payment to an invoice and its client together
//   - IncidentPolicy: the effect of a reported incident on the linked shipment
//
// Callers load the aggregates, invoke the service, then persist the results in
// one unit of work.
package services
