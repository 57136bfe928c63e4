// Package invoice implements the billing ledger aggregate.
//
// An invoice starts as DRAFT; while in draft its shipment lines and tax rate
// may change and totals are recomputed on every change with ComputeTotals.
// Operators may issue a draft and cancel a draft or issued invoice. PAID is
// never requested: RecordPayment reaches it once payments cover the gross
// amount, and it does not revert.
package invoice
