package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Sanchit24s/payslip-backend/reports"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/Sanchit24s/payslip-backend/workflow"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the monthly dashboard counts, cached briefly when the
// report cache is enabled.
func statsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if err := utils.ValidateMonth(month); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key := reports.CacheKey("stats", month, "")
		var cached reports.MonthlyStats
		if reports.CacheGet(key, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		store, ok := getStore(c)
		if !ok {
			return
		}
		employees, err := store.GetEmployees(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		attendance, err := store.GetMonthlyAttendance(c.Request.Context(), utils.FormatMonth(month))
		if err != nil {
			respondError(c, err)
			return
		}
		endOfMonth, err := utils.EndOfMonth(month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		stats := reports.BuildMonthlyStats(employees, attendance, endOfMonth)
		reports.CacheSet(key, stats)
		c.JSON(http.StatusOK, stats)
	}
}

// salaryReportHandler aggregates net pay, professional tax and TDS for
// active employees with attendance. An empty month reads as zero stats, not
// an error.
func salaryReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if err := utils.ValidateMonth(month); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		department := strings.TrimSpace(c.Query("department"))

		key := reports.CacheKey("salary", month, department)
		var cached utils.SalaryStats
		if reports.CacheGet(key, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		store, ok := getStore(c)
		if !ok {
			return
		}
		employees, err := store.GetEmployees(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		attendance, err := store.GetMonthlyAttendance(c.Request.Context(), utils.FormatMonth(month))
		if err != nil {
			respondError(c, err)
			return
		}
		endOfMonth, err := utils.EndOfMonth(month)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		stats := reports.BuildSalaryReport(employees, attendance, endOfMonth, department)
		reports.CacheSet(key, stats)
		c.JSON(http.StatusOK, stats)
	}
}

// payrollRegisterHandler streams the month's payroll register as an XLSX
// download.
func payrollRegisterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if err := utils.ValidateMonth(month); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		department := strings.TrimSpace(c.Query("department"))
		sheetMonth := utils.FormatMonth(month)

		store, ok := getStore(c)
		if !ok {
			return
		}
		records, err := workflow.MergeEmployeeAttendance(c.Request.Context(), store, sheetMonth)
		if err != nil {
			respondError(c, err)
			return
		}
		records = activeRecords(records, sheetMonth)
		if department != "" && !strings.EqualFold(department, "All") {
			filtered := records[:0]
			for _, rec := range records {
				if strings.EqualFold(rec.Department, department) {
					filtered = append(filtered, rec)
				}
			}
			records = filtered
		}

		fileName := fmt.Sprintf("Payroll_Register_%s.xlsx", strings.ReplaceAll(utils.MonthName(month), " ", "_"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename=`+fileName)
		if err := reports.WritePayrollRegister(c.Writer, records); err != nil {
			respondError(c, err)
		}
	}
}
