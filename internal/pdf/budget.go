// Package pdf renders the budget document for a moto project: a fixed
// layout with a header, identity box, estimated-vs-real cost table, and
// profitability footer.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rmotos/internal/models"
)

const (
	pageLeft   = 14.0
	boxWidth   = 182.0
	colConcept = 102.0
	colAmount  = 40.0
)

// es-CO grouping: dot thousands separators, no decimals.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// formatCOP renders an amount as currency the way the original budget
// shows it, e.g. $1.234.567.
func formatCOP(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

// builder wraps the document with the cp1252 translator needed for the
// accented Spanish labels under the core Helvetica font.
type builder struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// BuildBudget lays out the budget document for the given moto and
// returns the rendered PDF bytes.
func BuildBudget(moto *models.Moto) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	b := &builder{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	b.writeHeader()
	b.writeIdentityBox(moto)

	totalInv := moto.TotalInvestment()
	b.writeFinancialLine(totalInv, moto.SalePriceEstimated)
	y := b.writeCostTable(moto, totalInv)
	b.writeProfitability(moto, y)
	b.writeDisclaimer()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render budget pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *builder) text(x, y float64, s string) {
	b.doc.Text(x, y, b.tr(s))
}

func (b *builder) writeHeader() {
	b.doc.SetFont("Helvetica", "B", 26)
	b.doc.SetTextColor(250, 204, 20)
	b.text(pageLeft, 20, "R-MOTOS")

	b.doc.SetFont("Helvetica", "", 10)
	b.doc.SetTextColor(100, 100, 100)
	b.text(pageLeft, 26, "Taller y Compraventa de Motocicletas")
	b.text(pageLeft, 31, fmt.Sprintf("Fecha: %s", time.Now().Format("02/01/2006")))
}

func (b *builder) writeIdentityBox(moto *models.Moto) {
	b.doc.SetDrawColor(200, 200, 200)
	b.doc.SetFillColor(245, 245, 245)
	b.doc.RoundedRect(pageLeft, 38, boxWidth, 35, 3, "1234", "F")

	b.doc.SetFont("Helvetica", "B", 16)
	b.doc.SetTextColor(39, 39, 42)
	b.text(20, 50, fmt.Sprintf("%s %s (%d)", moto.Brand, moto.Model, moto.Year))

	b.doc.SetFont("Helvetica", "B", 11)
	b.doc.SetTextColor(80, 80, 80)
	b.text(20, 60, "Placa:")
	b.doc.SetFont("Helvetica", "", 11)
	plate := moto.Plate
	if plate == "" {
		plate = "N/A"
	}
	b.text(35, 60, plate)

	b.doc.SetFont("Helvetica", "B", 11)
	b.text(80, 60, "Estado:")
	b.doc.SetFont("Helvetica", "", 11)
	b.doc.SetTextColor(250, 204, 20)
	b.text(100, 60, strings.ReplaceAll(string(moto.Status), "_", " "))
	b.doc.SetTextColor(80, 80, 80)
}

func (b *builder) writeFinancialLine(totalInv, projected float64) {
	b.doc.SetFont("Helvetica", "", 11)
	b.text(20, 68, "Inversión Total:")
	b.doc.SetFont("Helvetica", "B", 11)
	b.text(55, 68, formatCOP(totalInv))

	b.doc.SetFont("Helvetica", "", 11)
	b.text(100, 68, "Venta Sugerida:")
	b.doc.SetFont("Helvetica", "B", 11)
	b.text(135, 68, formatCOP(projected))
}

// tableRow writes one three-column body row.
func (b *builder) tableRow(concept, estimated, real string, fill bool) {
	b.doc.SetFont("Helvetica", "", 10)
	b.doc.CellFormat(colConcept, 8, b.tr(concept), "1", 0, "L", fill, 0, "")
	b.doc.CellFormat(colAmount, 8, b.tr(estimated), "1", 0, "R", fill, 0, "")
	b.doc.CellFormat(colAmount, 8, b.tr(real), "1", 1, "R", fill, 0, "")
}

// sectionRow writes a full-width section header row.
func (b *builder) sectionRow(title string) {
	b.doc.SetFont("Helvetica", "B", 10)
	b.doc.SetFillColor(240, 240, 240)
	b.doc.CellFormat(colConcept+2*colAmount, 8, b.tr(title), "1", 1, "L", true, 0, "")
}

func (b *builder) writeCostTable(moto *models.Moto, totalInv float64) float64 {
	b.doc.SetY(85)
	b.doc.SetX(pageLeft)

	// Head row
	b.doc.SetFont("Helvetica", "B", 10)
	b.doc.SetFillColor(39, 39, 42)
	b.doc.SetTextColor(255, 255, 255)
	b.doc.SetDrawColor(200, 200, 200)
	b.doc.CellFormat(colConcept, 8, "Concepto / Item", "1", 0, "L", true, 0, "")
	b.doc.CellFormat(colAmount, 8, "Costo Estimado", "1", 0, "R", true, 0, "")
	b.doc.CellFormat(colAmount, 8, "Costo Real", "1", 1, "R", true, 0, "")

	b.doc.SetTextColor(39, 39, 42)
	b.doc.SetX(pageLeft)
	b.sectionRow("Costos Base")

	base := []struct {
		name            string
		estimated, real float64
	}{
		{"Compra de la Moto", moto.PurchaseCostEstimated, moto.PurchaseCostReal},
		{"Trámites y Papeleo", moto.PaperworkCostEstimated, moto.PaperworkCostReal},
		{"Mano de Obra General", moto.LaborCostEstimated, moto.LaborCostReal},
	}
	b.doc.SetFillColor(252, 252, 252)
	for i, row := range base {
		b.doc.SetX(pageLeft)
		b.tableRow(row.name, formatCOP(row.estimated), formatCOP(row.real), i%2 == 1)
	}

	b.doc.SetX(pageLeft)
	b.sectionRow("Repuestos y Ajustes")

	if len(moto.SpareParts) == 0 {
		b.doc.SetX(pageLeft)
		b.doc.SetFont("Helvetica", "I", 10)
		b.doc.CellFormat(colConcept+2*colAmount, 8, "No hay repuestos registrados", "1", 1, "C", false, 0, "")
	} else {
		b.doc.SetFillColor(252, 252, 252)
		for i := range moto.SpareParts {
			p := &moto.SpareParts[i]
			name := p.Name
			if name == "" {
				name = "Repuesto sin nombre"
			}
			b.doc.SetX(pageLeft)
			b.tableRow(name, formatCOP(p.CostEstimated), formatCOP(p.CostReal), i%2 == 1)
		}
	}

	// Totals row
	b.doc.SetX(pageLeft)
	b.doc.SetFont("Helvetica", "B", 10)
	b.doc.SetFillColor(250, 204, 20)
	b.doc.CellFormat(colConcept, 8, "TOTALES", "1", 0, "L", true, 0, "")
	b.doc.CellFormat(colAmount, 8, "", "1", 0, "R", true, 0, "")
	b.doc.CellFormat(colAmount, 8, b.tr(formatCOP(totalInv)), "1", 1, "R", true, 0, "")

	return b.doc.GetY()
}

func (b *builder) writeProfitability(moto *models.Moto, tableEnd float64) {
	y := tableEnd + 10

	b.doc.SetFillColor(240, 253, 244)
	b.doc.SetDrawColor(22, 163, 74)
	b.doc.RoundedRect(pageLeft, y, boxWidth, 25, 3, "1234", "FD")

	b.doc.SetFont("Helvetica", "B", 12)
	b.doc.SetTextColor(22, 101, 52)
	b.text(20, y+10, "Rentabilidad del Proyecto")

	b.doc.SetFont("Helvetica", "", 10)
	b.text(20, y+18, fmt.Sprintf("Ganancia Neta Esperada: %s", formatCOP(moto.NetProfit())))
	b.text(120, y+18, fmt.Sprintf("Margen de Ganancia: %d%%", moto.Margin()))
}

func (b *builder) writeDisclaimer() {
	b.doc.SetFont("Helvetica", "", 8)
	b.doc.SetTextColor(150, 150, 150)
	b.text(pageLeft, 285, "Este documento es un estimado presupuestal sujeto a cambios según imprevistos mecánicos o de mercado.")
}
