// Package tariff holds the reference data used to price shipments: destinations
// with their base rate and service tiers with their weight and volume rates.
//
// Rates may be changed at any time. Shipments freeze their price at creation,
// so a rate change never affects an existing shipment. A destination or tier
// referenced by a shipment cannot be deleted.
package tariff
