// Package pdf renders invoice documents.
package pdf

import (
	"fmt"
	"io"

	"freight/internal/core/application/usecases/queries"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "02/01/2006"
	lineHeight = 7.0
)

var lineColumns = []struct {
	title string
	width float64
	align string
}{
	{"Tracking code", 40, "L"},
	{"Destination", 70, "L"},
	{"Added", 35, "C"},
	{"Amount", 35, "R"},
}

// InvoiceRenderer lays out an invoice on A4 pages: header, client block,
// shipment lines, totals and recorded payments.
type InvoiceRenderer struct {
	issuer   string
	currency string
}

func NewInvoiceRenderer(issuer, currency string) *InvoiceRenderer {
	return &InvoiceRenderer{issuer: issuer, currency: currency}
}

func (r *InvoiceRenderer) Render(w io.Writer, inv queries.InvoiceResponse) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Invoice "+inv.Code), false)
	doc.SetCreator(tr(r.issuer), false)
	doc.SetAutoPageBreak(true, 20)
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.CellFormat(0, 10, fmt.Sprintf("%s - page %d", inv.Code, doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.CellFormat(120, 10, tr(r.issuer), "", 0, "L", false, 0, "")
	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 10, "INVOICE "+inv.Code, "", 1, "R", false, 0, "")

	doc.SetFont("Arial", "", 10)
	doc.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, "Issued: "+inv.IssueDate.Format(dateLayout), "", 1, "R", false, 0, "")
	doc.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, "Due: "+inv.DueDate.Format(dateLayout), "", 1, "R", false, 0, "")
	doc.CellFormat(120, 6, "", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, "Status: "+inv.Status, "", 1, "R", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(0, 6, "Bill to", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, tr(inv.ClientName), "", 1, "L", false, 0, "")
	if inv.ClientAddress != "" {
		doc.MultiCell(90, 5, tr(inv.ClientAddress), "", "L", false)
	}
	doc.Ln(6)

	r.lines(doc, tr, inv)
	r.totals(doc, inv)
	if len(inv.Payments) > 0 {
		r.payments(doc, tr, inv)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render invoice %s: %w", inv.Code, err)
	}
	return nil
}

func (r *InvoiceRenderer) lines(doc *gofpdf.Fpdf, tr func(string) string, inv queries.InvoiceResponse) {
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	for _, col := range lineColumns {
		doc.CellFormat(col.width, lineHeight, col.title, "1", 0, col.align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	for _, line := range inv.Lines {
		cells := []string{
			line.TrackingCode,
			tr(line.Destination),
			line.AddedAt.Format(dateLayout),
			r.money(line.Amount),
		}
		for i, col := range lineColumns {
			doc.CellFormat(col.width, lineHeight, cells[i], "1", 0, col.align, false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(4)
}

func (r *InvoiceRenderer) totals(doc *gofpdf.Fpdf, inv queries.InvoiceResponse) {
	rows := []struct {
		label  string
		amount decimal.Decimal
		bold   bool
	}{
		{"Total excl. tax", inv.AmountExclTax, false},
		{fmt.Sprintf("Tax (%s%%)", inv.TaxRate.StringFixed(2)), inv.TaxAmount, false},
		{"Total incl. tax", inv.AmountInclTax, true},
		{"Paid", inv.PaidTotal, false},
		{"Outstanding", inv.Outstanding(), true},
	}
	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		doc.SetFont("Arial", style, 10)
		doc.CellFormat(110, lineHeight, "", "", 0, "L", false, 0, "")
		doc.CellFormat(35, lineHeight, row.label, "", 0, "L", false, 0, "")
		doc.CellFormat(35, lineHeight, r.money(row.amount), "", 1, "R", false, 0, "")
	}
	doc.Ln(4)
}

func (r *InvoiceRenderer) payments(doc *gofpdf.Fpdf, tr func(string) string, inv queries.InvoiceResponse) {
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(0, 6, "Payments", "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 10)
	for _, p := range inv.Payments {
		label := p.PaidAt.Format(dateLayout) + "  " + p.Method
		if p.Reference != "" {
			label += "  " + p.Reference
		}
		doc.CellFormat(145, lineHeight, tr(label), "B", 0, "L", false, 0, "")
		doc.CellFormat(35, lineHeight, r.money(p.Amount), "B", 1, "R", false, 0, "")
	}
}

func (r *InvoiceRenderer) money(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " " + r.currency
}
