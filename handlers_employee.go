package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Sanchit24s/payslip-backend/models"
	"github.com/Sanchit24s/payslip-backend/utils"
	"github.com/gin-gonic/gin"
)

func queryInt(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func matchesSearch(emp models.EmployeeRecord, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(emp.Code), search) ||
		strings.Contains(strings.ToLower(emp.Name), search) ||
		strings.Contains(strings.ToLower(emp.Email), search)
}

// employeesHandler lists the employee master with pagination and the
// search/department/status filters the directory page offers.
func employeesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := getStore(c)
		if !ok {
			return
		}
		employees, err := store.GetEmployees(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		search := strings.TrimSpace(c.Query("search"))
		department := strings.TrimSpace(c.Query("department"))
		status := strings.TrimSpace(c.Query("status"))

		filtered := make([]models.EmployeeRecord, 0, len(employees))
		for _, emp := range employees {
			if !matchesSearch(emp, search) {
				continue
			}
			if department != "" && !strings.EqualFold(department, "All") &&
				!strings.EqualFold(emp.Department, department) {
				continue
			}
			if status != "" && !strings.EqualFold(status, "All") &&
				!strings.EqualFold(emp.Status, status) {
				continue
			}
			filtered = append(filtered, emp)
		}

		page := queryInt(c, "page", 1)
		pageSize := queryInt(c, "pageSize", 10)
		pagination := models.Paginate(len(filtered), page, pageSize)
		start, end := pagination.Bounds()

		c.JSON(http.StatusOK, gin.H{
			"employees":  filtered[start:end],
			"pagination": pagination,
		})
	}
}

// employeeDetailHandler returns one employee's master data plus the payslip
// delivery history. An optional ?month=YYYY-MM fills in that month's leaves.
func employeeDetailHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("empId")
		store, ok := getStore(c)
		if !ok {
			return
		}

		emp, err := store.GetEmployeeByCode(c.Request.Context(), code)
		if err != nil {
			respondError(c, err)
			return
		}
		history, err := store.GetEmployeeAttendance(c.Request.Context(), code)
		if err != nil {
			respondError(c, err)
			return
		}

		detail := models.BuildEmployeeDetail(*emp, models.BuildPayslipHistory(history))
		if month := c.Query("month"); month != "" {
			if err := utils.ValidateMonth(month); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			target := utils.FormatMonth(month)
			for _, row := range history {
				if utils.NormalizeMonth(row.Month) == target {
					detail.Leaves = row.LeavesTaken
					break
				}
			}
		}
		c.JSON(http.StatusOK, detail)
	}
}

func departmentsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := getStore(c)
		if !ok {
			return
		}
		departments, err := store.GetDepartments(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"departments": departments})
	}
}

// employeeMonthlyStatus is one row of the monthly status table.
type employeeMonthlyStatus struct {
	EmployeeCode    string `json:"employeeCode"`
	Name            string `json:"name"`
	Department      string `json:"department"`
	Email           string `json:"email"`
	Leaves          int    `json:"leaves"`
	IsSlipGenerated bool   `json:"isSlipGenerated"`
	IsEmailSent     bool   `json:"isEmailSent"`
	PayslipLink     string `json:"payslipLink,omitempty"`
	GeneratedDate   string `json:"generatedDate,omitempty"`
}

// monthlyStatusHandler reports per-employee generation and delivery state
// for one month, paginated. Employees joined after the month are excluded.
func monthlyStatusHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if err := utils.ValidateMonth(month); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
		active := utils.FilterActiveEmployees(employees, endOfMonth)

		attendanceByCode := make(map[string]models.AttendanceRecord, len(attendance))
		for _, row := range attendance {
			attendanceByCode[row.EmployeeCode] = row
		}

		rows := make([]employeeMonthlyStatus, 0, len(active))
		for _, emp := range active {
			att := attendanceByCode[emp.Code]
			rows = append(rows, employeeMonthlyStatus{
				EmployeeCode:    emp.Code,
				Name:            emp.Name,
				Department:      emp.Department,
				Email:           emp.Email,
				Leaves:          att.LeavesTaken,
				IsSlipGenerated: att.PayslipLink != "",
				IsEmailSent:     att.EmailSent,
				PayslipLink:     att.PayslipLink,
				GeneratedDate:   att.GeneratedDate,
			})
		}

		page := queryInt(c, "page", 1)
		pageSize := queryInt(c, "pageSize", 10)
		pagination := models.Paginate(len(rows), page, pageSize)
		start, end := pagination.Bounds()

		c.JSON(http.StatusOK, gin.H{
			"month":      utils.MonthName(month),
			"employees":  rows[start:end],
			"pagination": pagination,
		})
	}
}
