package gofpdf

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/jung-kurt/gofpdf"

	"cotiza-jara/go_backend/internal/domain/quotation"
	"cotiza-jara/go_backend/internal/domain/quotation/pdf"
)

// Page geometry in millimeters, A4 portrait.
const (
	margin = 15.0

	tableRowH    = 8.0
	tableTopY    = 35.0 // y where the table restarts after a page break
	footerOffset = 25.0 // footer rule sits this far above the page bottom
	bankOffset   = 35.0 // bank panel sits this far above the footer rule
	bankPanelH   = 25.0
)

// Neutral gray palette, matching the issued documents.
var (
	colorPrimary   = rgb{80, 80, 80}
	colorSecondary = rgb{130, 130, 130}
	colorAccent    = rgb{50, 50, 50}
	colorBand      = rgb{248, 248, 248}
	colorTerms     = rgb{180, 180, 180}
)

type rgb struct{ r, g, b int }

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(doc pdf.Document) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Cotización", true)
	p.SetAutoPageBreak(false, 0)
	tr := p.UnicodeTranslatorFromDescriptor("")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	d := &drawer{p: p, tr: tr, pageW: pageW, pageH: pageH}

	d.header(doc)
	y := d.clientBlock(doc, 55)
	y = d.itemTable(doc, y+20)
	d.totalsBlock(doc, y)
	if doc.ShowBankDetails {
		d.bankBlock(doc)
	}
	d.footer(doc)

	if err := p.Error(); err != nil {
		slog.Error("quotation pdf: draw failed", "reference", doc.Reference, "error", err)
		return nil, fmt.Errorf("draw quotation pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		slog.Error("quotation pdf: output failed", "reference", doc.Reference, "error", err)
		return nil, fmt.Errorf("write quotation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawer keeps the shared state of one render pass.
type drawer struct {
	p     *gofpdf.Fpdf
	tr    func(string) string
	pageW float64
	pageH float64
}

func (d *drawer) header(doc pdf.Document) {
	d.setDraw(colorPrimary)
	d.p.SetLineWidth(0.5)
	d.p.Line(margin, 20, d.pageW-margin, 20)

	d.setText(colorPrimary)
	d.p.SetFont("Helvetica", "", 10)
	d.textRight(d.pageW-margin, 12, doc.Issuer.Name)
	d.p.SetFontSize(8)
	d.textRight(d.pageW-margin, 16, doc.Issuer.Location)

	d.p.SetFont("Helvetica", "B", 14)
	d.setText(colorAccent)
	d.text(margin, 35, "COTIZACIÓN")

	d.p.SetFont("Helvetica", "", 9)
	d.setText(colorSecondary)
	refLine := fmt.Sprintf("REF: %s  |  Fecha: %s", doc.Reference, doc.IssuedAt.Format("02/01/2006"))
	d.textRight(d.pageW-margin, 35, refLine)
}

// clientBlock returns the y it finished at so the table can flow below it.
func (d *drawer) clientBlock(doc pdf.Document, y float64) float64 {
	d.sectionTitle("INFORMACIÓN DEL CLIENTE", y, 60)
	y += 10

	d.setText(colorPrimary)
	d.p.SetFont("Helvetica", "B", 9)
	d.text(margin, y, "Cliente:")
	d.p.SetFont("Helvetica", "", 9)
	d.text(margin+30, y, doc.ClientName)

	issuerNoteY := y
	if doc.CompanyName != "" {
		y += 6
		d.p.SetFont("Helvetica", "B", 9)
		d.text(margin, y, "Empresa:")
		d.p.SetFont("Helvetica", "", 9)
		d.text(margin+30, y, doc.CompanyName)
		issuerNoteY = y
	}

	d.p.SetFontSize(8)
	d.setText(colorSecondary)
	d.textRight(d.pageW-margin, issuerNoteY, "Documento emitido por: "+doc.Issuer.SignedBy)
	return y
}

// itemTable draws the product rows with a header band and alternating row
// tint, breaking to a new page when a row would collide with the bank and
// footer area. Returns the y just under the last row.
func (d *drawer) itemTable(doc pdf.Document, y float64) float64 {
	col1 := d.pageW - margin*2 - 90
	col2, col3, col4 := 20.0, 35.0, 35.0
	rightEdge := margin + col1 + col2 + col3 + col4 - 5
	// Leave room under the last row for the totals block.
	maxY := d.pageH - footerOffset - bankOffset - 22

	d.sectionTitle("DETALLE DE PRODUCTOS", y, 60)
	y += 10
	y = d.tableHeadBand(y, col1, col2, col3)

	d.p.SetFont("Helvetica", "", 8)
	for i, it := range doc.Items {
		if y+tableRowH > maxY {
			d.p.AddPage()
			y = d.tableHeadBand(tableTopY, col1, col2, col3)
			d.p.SetFont("Helvetica", "", 8)
		}

		if i%2 == 0 {
			d.p.SetFillColor(255, 255, 255)
		} else {
			d.setFill(colorBand)
		}
		d.p.Rect(margin, y, d.pageW-margin*2, tableRowH, "F")

		d.setText(colorPrimary)
		d.text(margin+5, y+5, it.Name)
		d.textRight(margin+col1+col2-5, y+5, fmt.Sprintf("%d", it.Quantity))
		d.textRight(margin+col1+col2+col3-5, y+5, money(it.UnitPrice))
		d.textRight(rightEdge, y+5, money(it.LineSubtotal()))
		y += tableRowH
	}

	d.setDraw(colorPrimary)
	d.p.SetLineWidth(0.2)
	d.p.Line(margin, y+1, d.pageW-margin, y+1)
	return y + 6
}

func (d *drawer) tableHeadBand(y, col1, col2, col3 float64) float64 {
	d.setFill(colorBand)
	d.p.Rect(margin, y, d.pageW-margin*2, tableRowH, "F")

	d.p.SetFont("Helvetica", "B", 8)
	d.setText(colorPrimary)
	d.text(margin+5, y+5, "PRODUCTO")
	d.text(margin+col1+5, y+5, "CANT.")
	d.text(margin+col1+col2+5, y+5, "PRECIO")
	d.text(margin+col1+col2+col3+5, y+5, "TOTAL")
	return y + tableRowH
}

func (d *drawer) totalsBlock(doc pdf.Document, y float64) {
	labelX := d.pageW - margin - 40 - 5
	valueX := d.pageW - margin - 5

	d.setText(colorPrimary)
	d.p.SetFont("Helvetica", "B", 8)
	d.text(labelX-35, y, "SUBTOTAL:")
	d.textRight(valueX, y, money(quotation.Subtotal(doc.Items)))

	if doc.ApplyTax {
		y += 6
		d.text(labelX-35, y, "IVA (8%):")
		d.textRight(valueX, y, money(quotation.Tax(doc.Items)))
	}

	y += 6
	d.p.SetFontSize(10)
	d.text(labelX-35, y, "TOTAL:")
	d.textRight(valueX, y, money(quotation.Total(doc.Items, doc.ApplyTax)))
}

func (d *drawer) bankBlock(doc pdf.Document) {
	top := d.pageH - footerOffset - bankOffset

	d.p.SetFont("Helvetica", "B", 9)
	d.setText(colorAccent)
	d.text(margin, top, "DATOS BANCARIOS")
	d.setDraw(colorSecondary)
	d.p.SetLineWidth(0.2)
	d.p.Line(margin, top+2, margin+40, top+2)

	d.p.SetFillColor(250, 250, 250)
	d.setDraw(colorTerms)
	d.p.RoundedRect(margin, top+6, d.pageW-margin*2, bankPanelH, 2, "1234", "FD")

	d.setText(colorPrimary)
	d.p.SetFont("Helvetica", "", 8)
	d.text(margin+5, top+11, "Banco: "+doc.Bank.Bank)
	d.text(margin+5, top+16, "Titular: "+doc.Bank.Holder)
	d.text(margin+5, top+21, "Cuenta: "+doc.Bank.Account)
	d.text(margin+5, top+26, "CLABE: "+doc.Bank.CLABE)
}

func (d *drawer) footer(doc pdf.Document) {
	footerY := d.pageH - footerOffset

	d.setDraw(colorPrimary)
	d.p.SetLineWidth(0.5)
	d.p.Line(margin, footerY, d.pageW-margin, footerY)

	d.p.SetFont("Helvetica", "", 9)
	d.setText(colorTerms)
	d.textCenter(d.pageW/2, footerY+5,
		"Cotización válida por 30 días • Precios sujetos a cambio sin previo aviso • Se requiere 50% de anticipo")
	taxNote := "Los precios no incluyen IVA"
	if doc.ApplyTax {
		taxNote = "Los precios incluyen IVA (8%)"
	}
	d.textCenter(d.pageW/2, footerY+10, "Tiempo de entrega según disponibilidad • "+taxNote)

	contactY := d.pageH - 10
	d.p.SetFontSize(7)
	d.setText(colorSecondary)
	d.text(margin, contactY, "Tel: "+doc.Issuer.Phone)
	d.textCenter(d.pageW/2, contactY, doc.Issuer.Email)
	d.textRight(d.pageW-margin, contactY, "REF: "+doc.Reference)
}

func (d *drawer) sectionTitle(title string, y, ruleW float64) {
	d.p.SetFont("Helvetica", "B", 10)
	d.setText(colorAccent)
	d.text(margin, y, title)
	d.setDraw(colorSecondary)
	d.p.SetLineWidth(0.2)
	d.p.Line(margin, y+2, margin+ruleW, y+2)
}

func (d *drawer) text(x, y float64, s string) {
	d.p.Text(x, y, d.tr(s))
}

func (d *drawer) textRight(x, y float64, s string) {
	t := d.tr(s)
	d.p.Text(x-d.p.GetStringWidth(t), y, t)
}

func (d *drawer) textCenter(x, y float64, s string) {
	t := d.tr(s)
	d.p.Text(x-d.p.GetStringWidth(t)/2, y, t)
}

func (d *drawer) setText(c rgb) { d.p.SetTextColor(c.r, c.g, c.b) }
func (d *drawer) setDraw(c rgb) { d.p.SetDrawColor(c.r, c.g, c.b) }
func (d *drawer) setFill(c rgb) { d.p.SetFillColor(c.r, c.g, c.b) }
