package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/pdfgen"
	"github.com/Sanchit24s/payslip-backend/sheetstore"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/Sanchit24s/payslip-backend/workflow"
	"github.com/gin-gonic/gin"
)

// Production adapters behind the pipeline interfaces.

type gcsUploader struct{}

func (gcsUploader) Upload(ctx context.Context, data []byte, fileName string, folderPath string) (string, error) {
	return utils.UploadPayslipPDF(ctx, data, fileName, folderPath)
}

type smtpMailer struct{}

func (smtpMailer) Send(rec models.MergedPayrollRecord, pdf []byte) error {
	return utils.SendPayslipEmail(rec, pdf)
}

type httpFetcher struct{}

func (httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payslip download returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

var payslipRenderer = pdfgen.NewRenderer(config.GetPayslipTemplatePath())

func getStore(c *gin.Context) (*sheetstore.Store, bool) {
	store, err := sheetstore.NewDefault(c.Request.Context())
	if err != nil {
		config.LogError(config.GetLogger(), "handlers_payslip.go", "getStore", "NewDefault", nil, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sheet service unavailable"})
		return nil, false
	}
	return store, true
}

func newPipeline(store *sheetstore.Store) *workflow.PayslipPipeline {
	return &workflow.PayslipPipeline{
		Renderer:    payslipRenderer,
		Uploader:    gcsUploader{},
		Mailer:      smtpMailer{},
		Status:      store,
		Fetcher:     httpFetcher{},
		Logger:      config.GetLogger(),
		Concurrency: config.GetPayslipConcurrency(),
	}
}

// respondError maps domain errors onto status codes shared by all handlers.
func respondError(c *gin.Context, err error) {
	var schemaErr *utils.SchemaError
	switch {
	case errors.Is(err, utils.ErrorNoAttendanceData),
		errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type monthRequest struct {
	Month string `json:"month"`
}

type employeeMonthRequest struct {
	Month        string `json:"month"`
	EmployeeCode string `json:"employeeCode"`
}

// bindMonth reads and validates the YYYY-MM month from a JSON body and
// returns it in the sheet's M/YYYY form.
func bindMonth(c *gin.Context) (string, bool) {
	var req monthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return "", false
	}
	if err := utils.ValidateMonth(req.Month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return utils.FormatMonth(req.Month), true
}

func bindEmployeeMonth(c *gin.Context) (employeeMonthRequest, string, bool) {
	var req employeeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return req, "", false
	}
	if req.EmployeeCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeCode is required"})
		return req, "", false
	}
	if err := utils.ValidateMonth(req.Month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, "", false
	}
	return req, utils.FormatMonth(req.Month), true
}

// activeRecords drops employees who verifiably joined after the month ended.
// Records with an unparseable join date stay in: payroll must never be
// silently incomplete over a malformed cell.
func activeRecords(records []models.MergedPayrollRecord, month string) []models.MergedPayrollRecord {
	monthStart, err := utils.MonthTime(month)
	if err != nil {
		return records
	}
	cutoff := monthStart.AddDate(0, 1, 0)
	out := make([]models.MergedPayrollRecord, 0, len(records))
	for _, rec := range records {
		joined, err := utils.ParseJoinDate(rec.DateOfJoining)
		if err == nil && !joined.Before(cutoff) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// generateSlipHandler runs the whole-month fan-out: merge, render, upload,
// email and a single batched status write-back.
func generateSlipHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month, ok := bindMonth(c)
		if !ok {
			return
		}
		store, ok := getStore(c)
		if !ok {
			return
		}

		records, err := workflow.MergeEmployeeAttendance(c.Request.Context(), store, month)
		if err != nil {
			respondError(c, err)
			return
		}
		records = activeRecords(records, month)

		result := newPipeline(store).GenerateAll(c.Request.Context(), records, month)
		c.JSON(http.StatusOK, result)
	}
}

func generateSlipByIdHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, month, ok := bindEmployeeMonth(c)
		if !ok {
			return
		}
		store, ok := getStore(c)
		if !ok {
			return
		}

		rec, err := workflow.MergeOne(c.Request.Context(), store, req.EmployeeCode, month)
		if err != nil {
			respondError(c, err)
			return
		}

		outcome := newPipeline(store).GenerateOne(c.Request.Context(), rec, month)
		if !outcome.Success {
			c.JSON(http.StatusInternalServerError, outcome)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

func sendAllEmailHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month, ok := bindMonth(c)
		if !ok {
			return
		}
		store, ok := getStore(c)
		if !ok {
			return
		}

		records, err := workflow.MergeEmployeeAttendance(c.Request.Context(), store, month)
		if err != nil {
			respondError(c, err)
			return
		}
		links, err := store.GetAllPayslipLinks(c.Request.Context(), month)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(links) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no generated payslips found for the requested month"})
			return
		}

		result := newPipeline(store).SendAllEmails(c.Request.Context(), records, links, month)
		c.JSON(http.StatusOK, result)
	}
}

func resendEmailHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, month, ok := bindEmployeeMonth(c)
		if !ok {
			return
		}
		store, ok := getStore(c)
		if !ok {
			return
		}

		rec, err := workflow.MergeOne(c.Request.Context(), store, req.EmployeeCode, month)
		if err != nil {
			respondError(c, err)
			return
		}
		link, err := store.GetPayslipLink(c.Request.Context(), req.EmployeeCode, month)
		if err != nil {
			respondError(c, err)
			return
		}

		outcome := newPipeline(store).ResendEmail(c.Request.Context(), rec, link, month)
		if !outcome.Success {
			c.JSON(http.StatusInternalServerError, outcome)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// downloadAllHandler lists the stored payslip links for a month so the
// client can fetch the documents directly.
func downloadAllHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month, ok := bindMonth(c)
		if !ok {
			return
		}
		store, ok := getStore(c)
		if !ok {
			return
		}

		links, err := store.GetAllPayslipLinks(c.Request.Context(), month)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(links) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "no generated payslips found for the requested month"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"month": utils.MonthName(month),
			"total": len(links),
			"links": links,
		})
	}
}
