// Package pdf renders the employee roster as a printable PDF table.
// Rows flow onto as many Letter pages as needed; each page repeats the
// header bar and the column headings.
package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/employee-manager/internal/domain"
)

type column struct {
	label string
	width float64 // fraction of content width
	value func(e *domain.Employee) string
}

var columns = []column{
	{"Name", 0.22, func(e *domain.Employee) string { return e.Name }},
	{"Email", 0.28, func(e *domain.Employee) string { return e.Email }},
	{"Department", 0.17, func(e *domain.Employee) string { return e.Department }},
	{"Company", 0.17, func(e *domain.Employee) string { return e.Company }},
	{"City", 0.16, func(e *domain.Employee) string { return e.City }},
}

// Generator implements ports.RosterExporter.
type Generator struct {
	Title string
	now   func() time.Time
}

func New(title string) *Generator {
	if title == "" {
		title = "EMPLOYEE ROSTER"
	}
	return &Generator{Title: title, now: time.Now}
}

func (g *Generator) ContentType() string { return "application/pdf" }
func (g *Generator) Extension() string   { return "pdf" }

// Export writes the roster to w.
func (g *Generator) Export(ctx context.Context, employees []domain.Employee, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	generated := g.now().Format("2006-01-02 15:04")

	pdf.SetHeaderFunc(func() { g.drawHeader(pdf, len(employees)) })
	pdf.SetFooterFunc(func() {
		pageW, pageH := pdf.GetPageSize()
		marginL, _, marginR, marginB := pdf.GetMargins()
		contentW := pageW - marginL - marginR
		pdf.SetXY(marginL, pageH-marginB+4)
		pdf.SetFont("Helvetica", "I", 7.5)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(contentW/2, 5, "Generated by Employee Manager", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, generated, "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	if len(employees) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No employees on record.", "1", 1, "C", false, 0, "")
	}

	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR
	rowH := 6.5
	for i := range employees {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := &employees[i]
		// Alternating row background
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.SetX(marginL)
		for j, c := range columns {
			ln := 0
			if j == len(columns)-1 {
				ln = 1
			}
			pdf.CellFormat(contentW*c.width, rowH, fit(pdf, c.value(e), contentW*c.width-2), "1", ln, "L", true, 0, "")
		}
	}

	if pdf.Err() {
		return fmt.Errorf("render roster pdf: %w", pdf.Error())
	}
	return pdf.Output(w)
}

func (g *Generator) drawHeader(pdf *fpdf.Fpdf, total int) {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW/2, 7, g.Title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2-4, 7, fmt.Sprintf("%d employees  |  Page %d of {nb}", total, pdf.PageNo()), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Column headings ──────────────────────────────────────────────────────
	pdf.SetXY(marginL, marginT+13)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	for j, c := range columns {
		ln := 0
		if j == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(contentW*c.width, 7, c.label, "1", ln, "L", true, 0, "")
	}
}

// fit truncates s with an ellipsis so it renders within width mm.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
