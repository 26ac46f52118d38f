package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"debt-payoff/domain"
)

const (
	pdfMarginLeft   = 20.0
	pdfMarginTop    = 20.0
	pdfMarginRight  = 20.0
	pdfMarginBottom = 20.0
	pdfPageWidth    = 210.0 // A4
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFReport is the content of the printable payoff plan. Plan is optional.
type PDFReport struct {
	Debts     domain.DebtList
	Plan      *domain.MultiDebtResult
	Generated time.Time
}

// WritePDF renders the payoff plan as a one-document A4 PDF.
func WritePDF(w io.Writer, report PDFReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, "Credit Card Payoff Plan", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(pdfContentWidth, 6, "Generated: "+report.Generated.Format("2 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeDebtTable(pdf, report.Debts)

	if report.Plan != nil {
		pdf.Ln(6)
		writePlan(pdf, report.Plan)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func writeDebtTable(pdf *fpdf.Fpdf, debts domain.DebtList) {
	widths := []float64{70, 35, 30, 35}
	headers := []string{"Debt", "Balance", "APR", "Min Payment"}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(0, 51, 102)
	pdf.SetDrawColor(200, 200, 200)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for i, d := range debts {
		fill := i%2 == 1
		pdf.SetFillColor(245, 247, 250)
		pdf.CellFormat(widths[0], 7, d.DisplayName(), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 7, FormatMoney(d.Balance), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[2], 7, FormatPercent(d.APR), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(widths[3], 7, FormatMoney(d.MinPayment), "1", 0, "R", fill, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0], 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[1], 7, FormatMoney(debts.TotalBalance()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2]+widths[3], 7, "", "1", 1, "R", false, 0, "")
}

func writePlan(pdf *fpdf.Fpdf, plan *domain.MultiDebtResult) {
	title := "Snowball order (smallest balance first)"
	if plan.Strategy == domain.Avalanche {
		title = "Avalanche order (highest APR first)"
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, d := range plan.Debts {
		pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("%s cleared in %d months.", d.Name, d.Months), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf("Total payoff time: %d months", plan.TotalMonths), "", 1, "L", false, 0, "")
}
