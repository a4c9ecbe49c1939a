package workflow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/sirupsen/logrus"
)

// Collaborators of the fan-out, one interface per external step. Production
// wiring adapts pdfgen, GCS, SMTP and the sheet store; tests inject fakes.
type Renderer interface {
	Render(rec models.MergedPayrollRecord) ([]byte, error)
}

type Uploader interface {
	Upload(ctx context.Context, data []byte, fileName string, folderPath string) (string, error)
}

type Mailer interface {
	Send(rec models.MergedPayrollRecord, pdf []byte) error
}

type StatusWriter interface {
	UpdatePayslipData(ctx context.Context, month string, updates map[string]models.StatusUpdate) error
}

// PDFFetcher downloads a previously uploaded payslip for resend flows.
type PDFFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

const defaultConcurrency = 5

// PayslipPipeline runs render -> upload -> email -> persist per employee.
// One pipeline value serves all requests; it holds no per-batch state.
type PayslipPipeline struct {
	Renderer Renderer
	Uploader Uploader
	Mailer   Mailer
	Status   StatusWriter
	Fetcher  PDFFetcher
	Logger   *logrus.Logger

	// Concurrency is a hard ceiling on in-flight per-employee chains,
	// there to respect third-party rate limits. Zero means the default
	// of 5.
	Concurrency int
}

func (p *PayslipPipeline) limit() int {
	if p.Concurrency <= 0 {
		return defaultConcurrency
	}
	return p.Concurrency
}

// GenerateAll fans out payslip generation for a whole month. Per-record
// failures are captured in the result, never escalated: one bad record must
// not block the rest. After all tasks settle, delivery status is written
// back in a single batched call.
//
// Result order is completion order, not submission order.
func (p *PayslipPipeline) GenerateAll(ctx context.Context, records []models.MergedPayrollRecord, month string) models.BatchResult {
	sem := make(chan struct{}, p.limit())
	generatedDate := time.Now().Format("02/01/2006")

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		result  models.BatchResult
		updates = make(map[string]models.StatusUpdate)
	)

	for _, rec := range records {
		wg.Add(1)
		go func(rec models.MergedPayrollRecord) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome, update := p.generateOne(ctx, rec, generatedDate)

			mu.Lock()
			result.Add(outcome)
			if update != nil {
				updates[rec.Code] = *update
			}
			mu.Unlock()
		}(rec)
	}
	wg.Wait()

	p.writeStatus(ctx, month, updates)
	return result
}

// GenerateOne is the single-employee variant: same render -> upload ->
// persist sequence, no limiter, outcome returned synchronously. Email is not
// part of on-demand regeneration; the resend flow covers it.
func (p *PayslipPipeline) GenerateOne(ctx context.Context, rec models.MergedPayrollRecord, month string) (outcome models.DeliveryOutcome) {
	outcome = models.DeliveryOutcome{EmployeeCode: rec.Code}
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Errorf("payslip task panicked for %s: %v", rec.Code, r)
			outcome = models.DeliveryOutcome{
				EmployeeCode: rec.Code,
				Error:        fmt.Sprintf("payslip task panicked: %v", r),
			}
		}
	}()

	pdf, err := p.Renderer.Render(rec)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	url, err := p.Uploader.Upload(ctx, pdf, rec.Code+"_Payslip.pdf", payslipFolder(rec.Month))
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	generatedDate := time.Now().Format("02/01/2006")
	err = p.Status.UpdatePayslipData(ctx, month, map[string]models.StatusUpdate{
		rec.Code: {Link: &url, GeneratedDate: &generatedDate},
	})
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.URL = url
	return outcome
}

// generateOne is one fan-out task. Any step failing or panicking turns into
// a failed outcome at this boundary; the email step alone degrades to a
// tri-state flag instead of failing the task, since the document itself made
// it out.
func (p *PayslipPipeline) generateOne(ctx context.Context, rec models.MergedPayrollRecord, generatedDate string) (outcome models.DeliveryOutcome, update *models.StatusUpdate) {
	outcome = models.DeliveryOutcome{EmployeeCode: rec.Code}
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Errorf("payslip task panicked for %s: %v", rec.Code, r)
			outcome = models.DeliveryOutcome{
				EmployeeCode: rec.Code,
				Error:        fmt.Sprintf("payslip task panicked: %v", r),
			}
			update = nil
		}
	}()

	pdf, err := p.Renderer.Render(rec)
	if err != nil {
		p.Logger.Errorf("payslip render failed for %s: %v", rec.Code, err)
		outcome.Error = err.Error()
		return outcome, nil
	}

	url, err := p.Uploader.Upload(ctx, pdf, rec.Code+"_Payslip.pdf", payslipFolder(rec.Month))
	if err != nil {
		p.Logger.Errorf("payslip upload failed for %s: %v", rec.Code, err)
		outcome.Error = err.Error()
		return outcome, nil
	}

	emailStatus := models.EmailStatusSkipped
	if rec.Email == "" {
		p.Logger.Warnf("no email address for %s, skipping notification", rec.Code)
	} else if err := p.Mailer.Send(rec, pdf); err != nil {
		p.Logger.Errorf("payslip email failed for %s: %v", rec.Code, err)
		emailStatus = models.EmailStatusFailed
	} else {
		emailStatus = models.EmailStatusSent
	}

	outcome.Success = true
	outcome.URL = url
	outcome.EmailStatus = emailStatus

	sent := emailStatus == models.EmailStatusSent
	return outcome, &models.StatusUpdate{
		Link:          &url,
		GeneratedDate: &generatedDate,
		EmailSent:     &sent,
	}
}

// SendAllEmails mails previously generated payslips for a month, bounded by
// the same concurrency cap. Only the Email Sent flag is written back, so
// existing links and generated dates survive.
func (p *PayslipPipeline) SendAllEmails(ctx context.Context, records []models.MergedPayrollRecord, links []models.PayslipLinkRef, month string) models.BatchResult {
	recordByCode := make(map[string]models.MergedPayrollRecord, len(records))
	for _, rec := range records {
		recordByCode[rec.Code] = rec
	}

	sem := make(chan struct{}, p.limit())
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		result  models.BatchResult
		updates = make(map[string]models.StatusUpdate)
	)

	for _, link := range links {
		wg.Add(1)
		go func(link models.PayslipLinkRef) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome := p.sendOne(ctx, recordByCode, link)

			sent := outcome.Success
			mu.Lock()
			result.Add(outcome)
			updates[link.EmployeeCode] = models.StatusUpdate{EmailSent: &sent}
			mu.Unlock()
		}(link)
	}
	wg.Wait()

	p.writeStatus(ctx, month, updates)
	return result
}

func (p *PayslipPipeline) sendOne(ctx context.Context, recordByCode map[string]models.MergedPayrollRecord, link models.PayslipLinkRef) (outcome models.DeliveryOutcome) {
	outcome = models.DeliveryOutcome{EmployeeCode: link.EmployeeCode}
	defer func() {
		if r := recover(); r != nil {
			p.Logger.Errorf("email task panicked for %s: %v", link.EmployeeCode, r)
			outcome = models.DeliveryOutcome{
				EmployeeCode: link.EmployeeCode,
				Error:        fmt.Sprintf("email task panicked: %v", r),
			}
		}
	}()

	rec, ok := recordByCode[link.EmployeeCode]
	if !ok {
		outcome.Error = "no employee record for payslip link"
		return outcome
	}
	if rec.Email == "" {
		outcome.EmailStatus = models.EmailStatusSkipped
		outcome.Error = "no email address on file"
		p.Logger.Warnf("no email address for %s, skipping resend", rec.Code)
		return outcome
	}

	pdf, err := p.Fetcher.Fetch(ctx, link.Link)
	if err != nil {
		p.Logger.Errorf("payslip download failed for %s: %v", rec.Code, err)
		outcome.Error = err.Error()
		return outcome
	}
	if err := p.Mailer.Send(rec, pdf); err != nil {
		p.Logger.Errorf("payslip email failed for %s: %v", rec.Code, err)
		outcome.EmailStatus = models.EmailStatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.EmailStatus = models.EmailStatusSent
	return outcome
}

// ResendEmail re-mails one stored payslip and patches only the Email Sent
// flag for that employee.
func (p *PayslipPipeline) ResendEmail(ctx context.Context, rec models.MergedPayrollRecord, link string, month string) models.DeliveryOutcome {
	outcome := p.sendOne(ctx, map[string]models.MergedPayrollRecord{rec.Code: rec},
		models.PayslipLinkRef{EmployeeCode: rec.Code, Link: link})

	sent := outcome.Success
	p.writeStatus(ctx, month, map[string]models.StatusUpdate{
		rec.Code: {EmailSent: &sent},
	})
	return outcome
}

func (p *PayslipPipeline) writeStatus(ctx context.Context, month string, updates map[string]models.StatusUpdate) {
	if len(updates) == 0 {
		return
	}
	if err := p.Status.UpdatePayslipData(ctx, month, updates); err != nil {
		// status write failure does not retroactively fail delivered
		// payslips; it is logged for manual follow-up
		p.Logger.Errorf("failed to write payslip status for %s: %v", month, err)
	}
}

func payslipFolder(monthLabel string) string {
	return "Payslips/" + strings.ReplaceAll(monthLabel, " ", "_")
}
