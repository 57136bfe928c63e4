package http

import (
	"bytes"
	"fmt"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context, params servers.ListInvoicesParams) error {
	var status *invoice.Status
	if params.Status != nil {
		parsed, err := invoice.ParseStatus(string(*params.Status))
		if err != nil {
			return problem(ctx, err)
		}
		status = &parsed
	}
	clientID, err := toOptionalUUID("client_id", params.ClientId)
	if err != nil {
		return problem(ctx, err)
	}
	page, err := toPage(params.Limit, params.Offset)
	if err != nil {
		return problem(ctx, err)
	}

	query, err := queries.NewListInvoicesQuery(status, clientID, page)
	if err != nil {
		return problem(ctx, err)
	}
	invoices, err := s.queries.ListInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]servers.Invoice, len(invoices))
	for i, inv := range invoices {
		response[i] = toInvoice(inv)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateInvoice handles POST /api/v1/invoices - opens a draft for a client.
// Without tax_rate the configured default applies.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req servers.NewInvoice
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := toUUID("client_id", req.ClientId)
	if err != nil {
		return problem(ctx, err)
	}
	taxRate, err := toOptionalDecimal("tax_rate", req.TaxRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), clientID, req.IssueDate.Time, req.DueDate.Time, taxRate)
	if err != nil {
		return problem(ctx, err)
	}
	created, err := s.commands.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusCreated, created.Code())
}

// GetInvoice handles GET /api/v1/invoices/{invoiceCode}.
func (s *Server) GetInvoice(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	return s.respondInvoice(ctx, http.StatusOK, code)
}

// GetInvoicePdf handles GET /api/v1/invoices/{invoiceCode}/pdf.
func (s *Server) GetInvoicePdf(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	inv, err := s.findInvoice(ctx, code)
	if err != nil {
		return problem(ctx, err)
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, inv); err != nil {
		return problem(ctx, fmt.Errorf("render invoice %s: %w", inv.Code, err))
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="invoice-%s.pdf"`, inv.Code))
	return ctx.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// ChangeInvoiceStatus handles POST /api/v1/invoices/{invoiceCode}/status.
// Only ISSUED and CANCELLED can be requested; PAID follows from payments.
func (s *Server) ChangeInvoiceStatus(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	var req servers.InvoiceStatusChange
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	status, err := invoice.ParseStatus(string(req.Status))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeInvoiceStatusCommand(code, status)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.ChangeInvoiceStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusOK, code)
}

// ChangeInvoiceTaxRate handles PUT /api/v1/invoices/{invoiceCode}/tax-rate.
func (s *Server) ChangeInvoiceTaxRate(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	var req servers.InvoiceTaxRate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	rate, err := toDecimal("tax_rate", req.TaxRate)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewChangeInvoiceTaxRateCommand(code, rate)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.ChangeInvoiceTaxRate.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusOK, code)
}

// AttachShipment handles POST /api/v1/invoices/{invoiceCode}/lines.
func (s *Server) AttachShipment(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	var req servers.ShipmentReference
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	trackingCode, err := toCode("tracking_code", req.TrackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewAttachShipmentCommand(code, trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.AttachShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusCreated, code)
}

// DetachShipment handles DELETE /api/v1/invoices/{invoiceCode}/lines/{trackingCode}.
func (s *Server) DetachShipment(
	ctx echo.Context,
	invoiceCode servers.InvoiceCode,
	trackingCode servers.TrackingCode,
) error {
	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	shipmentCode, err := toCode("trackingCode", trackingCode)
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewDetachShipmentCommand(code, shipmentCode)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.DetachShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusOK, code)
}

// RecordPayment handles POST /api/v1/invoices/{invoiceCode}/payments.
// The payment, the invoice settlement and the client balance change commit
// together.
func (s *Server) RecordPayment(ctx echo.Context, invoiceCode servers.InvoiceCode) error {
	var req servers.NewPayment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	code, err := toCode("invoiceCode", invoiceCode)
	if err != nil {
		return problem(ctx, err)
	}
	amount, err := toDecimal("amount", req.Amount)
	if err != nil {
		return problem(ctx, err)
	}
	method, err := invoice.ParseMethod(string(req.Method))
	if err != nil {
		return problem(ctx, err)
	}
	cmd, err := commands.NewRecordPaymentCommand(
		code, kernel.NewUUID(), amount, method, valueOr(req.Reference, ""), valueOr(req.Comment, ""),
	)
	if err != nil {
		return problem(ctx, err)
	}
	if _, err := s.commands.RecordPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return s.respondInvoice(ctx, http.StatusCreated, code)
}

func (s *Server) respondInvoice(ctx echo.Context, status int, code kernel.Code) error {
	inv, err := s.findInvoice(ctx, code)
	if err != nil {
		return problem(ctx, err)
	}
	return ctx.JSON(status, toInvoice(inv))
}

func (s *Server) findInvoice(ctx echo.Context, code kernel.Code) (queries.InvoiceResponse, error) {
	query, err := queries.NewGetInvoiceQuery(code)
	if err != nil {
		return queries.InvoiceResponse{}, err
	}
	return s.queries.GetInvoice.Handle(ctx.Request().Context(), query)
}
