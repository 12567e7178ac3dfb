package render

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/limetreebower/invoicegen/internal/config"
	"github.com/limetreebower/invoicegen/internal/order"
)

const (
	pageMargin  = 15.0
	lineHeight  = 6.0
	tableRowPad = 8.0

	colDescription = 110.0
	colQuantity    = 25.0
	colPrice       = 45.0
)

// Renderer produces the fixed-layout printable tax invoice for an assembled
// order record. The business identity block and brand color are static
// configuration, never derived from the uploaded document.
type Renderer struct {
	business config.Business
	brand    config.Color
}

// NewRenderer creates a renderer for the given business identity.
func NewRenderer(business config.Business, brand config.Color) *Renderer {
	return &Renderer{
		business: business,
		brand:    brand,
	}
}

// OutputFileName returns the invoice file name for an order number.
func OutputFileName(orderNumber string) string {
	return fmt.Sprintf("Invoice_%s.pdf", orderNumber)
}

// RenderFile writes the invoice PDF into outputDir and returns its path.
func (r *Renderer) RenderFile(rec order.OrderRecord, billed config.BilledTo, outputDir string) (string, error) {
	path := filepath.Join(outputDir, OutputFileName(rec.OrderNumber))

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()

	r.writeHeader(doc, rec)
	r.writeBilledTo(doc, billed)
	r.writeLineItems(doc, rec)

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write invoice %s: %w", path, err)
	}

	return path, nil
}

// writeHeader draws the title, the business identity block on the left and
// the invoice metadata on the right.
func (r *Renderer) writeHeader(doc *fpdf.Fpdf, rec order.OrderRecord) {
	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "TAX INVOICE", "", 1, "L", false, 0, "")
	doc.Ln(4)

	top := doc.GetY()

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(colDescription, lineHeight, r.business.Name, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(colDescription, lineHeight, r.business.Address, "", 1, "L", false, 0, "")
	doc.CellFormat(colDescription, lineHeight, "ABN "+r.business.ABN, "", 1, "L", false, 0, "")
	doc.CellFormat(colDescription, lineHeight, r.business.Email, "", 1, "L", false, 0, "")
	bottom := doc.GetY()

	doc.SetY(top)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, lineHeight, rec.Date, "", 1, "R", false, 0, "")
	doc.CellFormat(0, lineHeight, "Invoice #"+rec.OrderNumber, "", 1, "R", false, 0, "")

	doc.SetY(bottom)
	doc.Ln(6)
}

// writeBilledTo draws the optional billing block. Nothing is drawn when
// every billing field is empty.
func (r *Renderer) writeBilledTo(doc *fpdf.Fpdf, billed config.BilledTo) {
	lines := make([]string, 0, 3)
	for _, line := range []string{billed.CompanyName, billed.ContactName, billed.Email} {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, lineHeight, "BILLED TO:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		doc.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(6)
}

// writeLineItems draws the four-row line-item table.
func (r *Renderer) writeLineItems(doc *fpdf.Fpdf, rec order.OrderRecord) {
	doc.SetFillColor(r.brand.R, r.brand.G, r.brand.B)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(colDescription, tableRowPad, "Description", "", 0, "L", true, 0, "")
	doc.CellFormat(colQuantity, tableRowPad, "Qty", "", 0, "L", true, 0, "")
	doc.CellFormat(colPrice, tableRowPad, "Price", "", 1, "R", true, 0, "")

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	r.writeRow(doc, rec.Description, strconv.Itoa(rec.Quantity), rec.UnitPrice)
	r.writeRow(doc, rec.ShippingLabel, "1", rec.ShippingCost)
	r.writeRow(doc, "GST (10% included)", "", rec.TaxAmount)

	doc.SetFont("Helvetica", "B", 10)
	r.writeRow(doc, "Total (GST inclusive)", "", rec.TotalAmount)
}

func (r *Renderer) writeRow(doc *fpdf.Fpdf, description, quantity, amount string) {
	doc.CellFormat(colDescription, tableRowPad, description, "B", 0, "L", false, 0, "")
	doc.CellFormat(colQuantity, tableRowPad, quantity, "B", 0, "L", false, 0, "")
	doc.CellFormat(colPrice, tableRowPad, "$"+amount, "B", 1, "R", false, 0, "")
}
