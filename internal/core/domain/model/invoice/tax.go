package invoice

import "github.com/shopspring/decimal"

// DefaultTaxRate is the VAT percentage applied when none is specified.
var DefaultTaxRate = decimal.RequireFromString("19.00")

var (
	hundred       = decimal.NewFromInt(100)
	maxTaxRate    = hundred
	moneyDecimals = int32(2)
)

// Totals are the derived amounts of an invoice.
type Totals struct {
	AmountExclTax decimal.Decimal
	TaxRate       decimal.Decimal
	TaxAmount     decimal.Decimal
	AmountInclTax decimal.Decimal
}

// ComputeTotals derives tax and gross amounts from the net amount and a
// percentage rate. Tax is rounded half away from zero to cents; the result
// depends only on the inputs.
func ComputeTotals(amountExclTax, taxRate decimal.Decimal) Totals {
	taxAmount := amountExclTax.Mul(taxRate).Div(hundred).Round(moneyDecimals)
	return Totals{
		AmountExclTax: amountExclTax,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		AmountInclTax: amountExclTax.Add(taxAmount),
	}
}
