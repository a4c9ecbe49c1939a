// Package pdfgen draws one merged payroll record onto the fixed payslip
// template. Rendering is deterministic for a given record and template.
package pdfgen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Renderer owns the template byte cache: the file is read once and reused
// for the process lifetime, read-only after first load.
//
// Each Renderer carries its own importer because the contrib package's
// default Importer is not thread safe; importMu serializes the import
// section so concurrent Render calls do not race on the importer's
// internal maps. Drawing stays concurrent.
type Renderer struct {
	templatePath string

	once     sync.Once
	template []byte
	loadErr  error

	importMu sync.Mutex
	importer *gofpdi.Importer
}

func NewRenderer(templatePath string) *Renderer {
	return &Renderer{
		templatePath: templatePath,
		importer:     gofpdi.NewImporter(),
	}
}

func (r *Renderer) templateBytes() ([]byte, error) {
	r.once.Do(func() {
		r.template, r.loadErr = os.ReadFile(r.templatePath)
	})
	if r.loadErr != nil {
		return nil, fmt.Errorf("failed to load payslip template %s: %w", r.templatePath, r.loadErr)
	}
	return r.template, nil
}

// A4 in points; the template is a single A4 page.
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	fontSize   = 9
)

// importTemplate stamps the template page onto the first page of pdf. The
// importer library reports unparseable templates by panicking; that is
// converted to an error here so one bad template cannot take down a batch.
func (r *Renderer) importTemplate(pdf *gofpdf.Fpdf, template []byte) (err error) {
	r.importMu.Lock()
	defer r.importMu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("failed to import payslip template: %v", p)
		}
	}()

	rs := io.ReadSeeker(bytes.NewReader(template))
	tplId := r.importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	r.importer.UseImportedTemplate(pdf, tplId, 0, 0, pageWidth, pageHeight)
	if pdf.Err() {
		return fmt.Errorf("failed to import payslip template: %v", pdf.Error())
	}
	return nil
}

// Render produces the payslip PDF for one record. Every field is optional:
// blanks are skipped, and a month label that fails to parse only drops the
// days-in-month figure, never the document.
func (r *Renderer) Render(rec models.MergedPayrollRecord) ([]byte, error) {
	template, err := r.templateBytes()
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	if err := r.importTemplate(pdf, template); err != nil {
		return nil, err
	}

	draw := func(text string, x, y float64, bold bool) {
		if text == "" {
			return
		}
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, fontSize)
		pdf.Text(x, y, text)
	}
	// monetary values are right-aligned on their column edge
	drawAmount := func(text string, x, y float64, bold bool) {
		if text == "" {
			return
		}
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, fontSize)
		pdf.Text(x-pdf.GetStringWidth(text), y, text)
	}

	// header month, after "Salary Slip for "
	draw(rec.Month, 313, 172, false)

	// employee details
	draw(rec.Name, 130, 206, true)
	draw(rec.Type, 382, 206, true)
	draw(rec.Code, 526, 206, true)
	draw(rec.Designation, 108, 227, true)
	draw(rec.Department, 108, 248, true)
	if days, ok := daysInMonthLabel(rec.Month); ok {
		draw(strconv.Itoa(days), 405, 248, true)
	}
	draw(rec.DateOfJoining, 124, 272, true)
	draw(strconv.Itoa(rec.WorkingDays), 377, 271, true)
	draw(rec.ProvidentFund, 123, 293, true)
	draw(rec.ESICNo, 360, 293, true)
	draw(intOrBlank(rec.TotalArrearDays), 392, 315, true)
	draw(intOrBlank(rec.LOP), 481, 315, true)

	// bank details
	draw(rec.BankName, 106, 336, true)
	draw(rec.AccountNo, 240, 336, true)
	draw(rec.IFSCCode, 368, 336, true)
	draw(rec.BranchName, 518, 336, true)
	uan := rec.UANNo
	if uan == "" {
		uan = "NA"
	}
	draw(uan, 96, 357, true)
	draw(rec.PANNo, 354, 357, true)

	// earnings column
	const earningsX = 305
	drawAmount(rec.BasicSalary.String(), earningsX, 423, false)
	drawAmount(rec.HRA.String(), earningsX, 446, false)
	drawAmount(rec.LTA.String(), earningsX, 469, false)
	drawAmount(rec.SpecialAllowance.String(), earningsX, 492, false)
	drawAmount(rec.GrossEarning.String(), earningsX, 516, true)

	// deductions column
	const deductionsX = 575
	drawAmount(rec.ProfessionalTax.String(), deductionsX, 423, false)
	drawAmount(rec.TDS.String(), deductionsX, 446, false)
	drawAmount(rec.TotalDeductions.String(), deductionsX, 516, true)

	// net pay appears twice on this template
	drawAmount(rec.NetPay.String(), earningsX, 539, true)
	drawAmount(rec.NetPay.String(), earningsX, 562, true)

	if rec.NetPayWords != "" {
		amountWords := strings.TrimSuffix(rec.NetPayWords, " Rupees Only.")
		draw(amountWords, 338, 562, true)
		draw("Rupees Only.", 515, 572, true)
	}

	draw(time.Now().Format("2 Jan 2006"), 525, 606, false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip for %s: %w", rec.Code, err)
	}
	return buf.Bytes(), nil
}

// daysInMonthLabel derives the calendar day count from the display label
// ("July - 2025"). Unknown formats report !ok so the caller can skip the
// figure.
func daysInMonthLabel(label string) (int, bool) {
	parts := strings.SplitN(label, "-", 2)
	if len(parts) != 2 {
		return 0, false
	}
	t, err := time.Parse("January 2006", strings.TrimSpace(parts[0])+" "+strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return t.AddDate(0, 1, -1).Day(), true
}

func intOrBlank(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
