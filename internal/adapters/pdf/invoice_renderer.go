// Package pdf renders invoice documents with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"github.com/SscSPs/freelance_books/internal/core/domain"
	"github.com/SscSPs/freelance_books/internal/utils"
	"github.com/jung-kurt/gofpdf/v2"
	"golang.org/x/text/encoding/charmap"
)

// Page geometry in millimetres on A4 portrait.
const (
	marginLeft  = 20.0
	marginRight = 190.0
	metaColumnX = 120.0
	footerY     = 280.0
	fontFamily  = "Helvetica"
	producer    = "freelance_books"
)

// InvoiceRenderer lays out a single page invoice.
type InvoiceRenderer struct {
	compress bool
}

// Option configures an InvoiceRenderer.
type Option func(*InvoiceRenderer)

// WithCompression toggles page stream compression. Enabled by default.
func WithCompression(enabled bool) Option {
	return func(r *InvoiceRenderer) {
		r.compress = enabled
	}
}

// NewInvoiceRenderer creates a renderer.
func NewInvoiceRenderer(opts ...Option) *InvoiceRenderer {
	r := &InvoiceRenderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// page wraps the document with the cursor and text translator used while drawing.
type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(fontFamily, style, size)
}

func (p *page) text(x, y float64, s string) {
	p.pdf.Text(x, y, p.tr(s))
}

// textRight draws s so that it ends at x.
func (p *page) textRight(x, y float64, s string) {
	s = p.tr(s)
	p.pdf.Text(x-p.pdf.GetStringWidth(s), y, s)
}

func (p *page) rule(y float64) {
	p.pdf.SetDrawColor(180, 180, 180)
	p.pdf.Line(marginLeft, y, marginRight, y)
}

// RenderInvoice draws doc and returns the PDF bytes. The document dates are
// pinned to the issue date so equal input gives byte identical output.
func (r *InvoiceRenderer) RenderInvoice(doc domain.InvoiceDocument) ([]byte, error) {
	if err := checkPrintable(doc); err != nil {
		return nil, err
	}
	inv := doc.Invoice
	pinned := time.Date(inv.IssueDate.Year(), inv.IssueDate.Month(), inv.IssueDate.Day(), 0, 0, 0, 0, time.UTC)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pinned)
	pdf.SetModificationDate(pinned)
	pdf.SetCreator(producer, false)
	pdf.SetTitle("Invoice "+inv.InvoiceNumber, true)
	pdf.SetAuthor(doc.Seller.Name, true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	y := drawHeader(p, doc)
	y = drawBuyer(p, doc.Buyer, y)
	drawSummary(p, doc, y)

	p.font("", 8)
	pdf.SetTextColor(150, 150, 150)
	p.text(marginLeft, footerY, "Thank you for your business!")

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out invoice %s: %w", inv.InvoiceNumber, err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.Bytes(), nil
}

// drawHeader prints the title, the seller block on the left and the
// metadata column on the right. It returns the y below both.
func drawHeader(p *page, doc domain.InvoiceDocument) float64 {
	inv := doc.Invoice
	y := 20.0

	p.font("B", 22)
	p.textRight(marginRight, y, "INVOICE")

	p.font("B", 11)
	p.text(marginLeft, y, doc.Seller.Name)
	y += 6

	p.font("", 10)
	if doc.Seller.Address != nil {
		p.text(marginLeft, y, *doc.Seller.Address)
		y += 5
	}
	if doc.Seller.Email != nil {
		p.text(marginLeft, y, *doc.Seller.Email)
		y += 5
	}
	if doc.Seller.BusinessID != nil {
		p.text(marginLeft, y, "Business ID: "+*doc.Seller.BusinessID)
		y += 5
	}
	if doc.Seller.IBAN != nil {
		p.text(marginLeft, y, "Bank account: "+*doc.Seller.IBAN)
		y += 5
	}

	metaY := 26.0
	p.font("", 10)
	p.text(metaColumnX, metaY, "Invoice number:")
	p.font("B", 10)
	p.textRight(marginRight, metaY, inv.InvoiceNumber)
	metaY += 6

	p.font("", 10)
	p.text(metaColumnX, metaY, "Issue date:")
	p.textRight(marginRight, metaY, domain.FormatCalendarDate(inv.IssueDate))
	metaY += 6

	p.text(metaColumnX, metaY, "Due date:")
	p.font("B", 10)
	p.textRight(marginRight, metaY, domain.FormatCalendarDate(inv.DueDate))

	y = max(y, metaY) + 10
	p.rule(y)
	return y + 8
}

func drawBuyer(p *page, buyer domain.InvoiceParty, y float64) float64 {
	p.font("B", 9)
	p.text(marginLeft, y, "BILL TO")
	y += 5

	p.font("", 11)
	p.text(marginLeft, y, buyer.Name)
	y += 5
	if buyer.Address != nil {
		p.text(marginLeft, y, *buyer.Address)
		y += 5
	}
	if buyer.Email != nil {
		p.text(marginLeft, y, *buyer.Email)
		y += 5
	}
	return y
}

func drawSummary(p *page, doc domain.InvoiceDocument, y float64) {
	inv := doc.Invoice
	y += 20
	p.rule(y)
	y += 7

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		p.font(style, 10)
		p.text(marginLeft, y, label)
		p.textRight(marginRight, y, value)
		y += 6
	}

	row("Subtotal (excl. VAT)", utils.FormatMoney(inv.Subtotal, doc.CurrencySymbol), false)
	row("VAT "+utils.FormatPercent(inv.VATRate)+" %", utils.FormatMoney(inv.VATAmount, doc.CurrencySymbol), false)

	if inv.Discount != nil {
		p.font("I", 9)
		p.text(marginLeft, y, inv.Discount.Describe())
		y += 5
	}

	p.rule(y)
	y += 6
	row("Total", utils.FormatMoney(inv.TotalAmount, doc.CurrencySymbol), true)
}

// checkPrintable rejects party text outside Windows-1252, the only code page the
// core fonts cover. The translator would otherwise print those runes as dots.
func checkPrintable(doc domain.InvoiceDocument) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"seller name", &doc.Seller.Name},
		{"seller address", doc.Seller.Address},
		{"seller email", doc.Seller.Email},
		{"seller business ID", doc.Seller.BusinessID},
		{"seller bank account", doc.Seller.IBAN},
		{"client name", &doc.Buyer.Name},
		{"client address", doc.Buyer.Address},
		{"client email", doc.Buyer.Email},
		{"currency symbol", &doc.CurrencySymbol},
	}
	enc := charmap.Windows1252.NewEncoder()
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if _, err := enc.String(*f.value); err != nil {
			return apperrors.NewValidationError("%s %q contains characters the invoice PDF cannot print", f.name, *f.value)
		}
	}
	return nil
}
