package models

import "github.com/shopspring/decimal"

// Column names of the Employee_Details range. The mapping from sheet headers
// to typed fields lives here and nowhere else.
const (
	ColEmployeeCode     = "Employee Code"
	ColEmployeeName     = "Employee Name"
	ColEmployeeType     = "Employee Type"
	ColEmail            = "Email"
	ColDesignation      = "Designation"
	ColDepartment       = "Department"
	ColDateOfJoining    = "Date of Joining"
	ColStatus           = "Status"
	ColProvidentFund    = "Provident Fund"
	ColESICNo           = "ESIC No."
	ColBankName         = "Bank Name"
	ColAccountNo        = "Account No"
	ColIFSCCode         = "IFSC Code"
	ColBranchName       = "Branch Name"
	ColUANNo            = "UAN No"
	ColPANNo            = "PAN No"
	ColTotalArrearDays  = "Total Arrear Days"
	ColLOP              = "LOP"
	ColBasicSalary      = "Basic Salary"
	ColHRA              = "HRA"
	ColLTA              = "LTA"
	ColSpecialAllowance = "Special Allowance"
	ColGrossEarning     = "Gross Earning"
	ColProfessionalTax  = "Professional Tax"
	ColTDS              = "TDS"
	ColTotalDeductions  = "Total Deductions"
	ColNetPay           = "Net Pay"
)

// EmployeeRecord is one employee's master data, read fresh from the sheet on
// every request and immutable once read.
type EmployeeRecord struct {
	Code          string `json:"employeeCode"`
	Name          string `json:"name"`
	Type          string `json:"employeeType"`
	Email         string `json:"email"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	Status        string `json:"status"`

	ProvidentFund string `json:"providentFund"`
	ESICNo        string `json:"esicNo"`
	BankName      string `json:"bankName"`
	AccountNo     string `json:"accountNo"`
	IFSCCode      string `json:"ifscCode"`
	BranchName    string `json:"branchName"`
	UANNo         string `json:"uanNo"`
	PANNo         string `json:"panNo"`

	TotalArrearDays int `json:"totalArrearDays"`
	LOP             int `json:"lop"`

	BasicSalary      decimal.Decimal `json:"basicSalary"`
	HRA              decimal.Decimal `json:"hra"`
	LTA              decimal.Decimal `json:"lta"`
	SpecialAllowance decimal.Decimal `json:"specialAllowance"`
	GrossEarning     decimal.Decimal `json:"grossEarning"`
	ProfessionalTax  decimal.Decimal `json:"professionalTax"`
	TDS              decimal.Decimal `json:"tds"`
	TotalDeductions  decimal.Decimal `json:"totalDeductions"`
	NetPay           decimal.Decimal `json:"netPay"`
}

// EmployeeFromRow maps a sheet row to a typed record. Missing cells default
// to empty/zero; nothing here fails.
func EmployeeFromRow(row Row) EmployeeRecord {
	return EmployeeRecord{
		Code:          row[ColEmployeeCode],
		Name:          row[ColEmployeeName],
		Type:          row[ColEmployeeType],
		Email:         row[ColEmail],
		Designation:   row[ColDesignation],
		Department:    row[ColDepartment],
		DateOfJoining: row[ColDateOfJoining],
		Status:        row[ColStatus],

		ProvidentFund: row[ColProvidentFund],
		ESICNo:        row[ColESICNo],
		BankName:      row[ColBankName],
		AccountNo:     row[ColAccountNo],
		IFSCCode:      row[ColIFSCCode],
		BranchName:    row[ColBranchName],
		UANNo:         row[ColUANNo],
		PANNo:         row[ColPANNo],

		TotalArrearDays: row.Int(ColTotalArrearDays),
		LOP:             row.Int(ColLOP),

		BasicSalary:      row.Decimal(ColBasicSalary),
		HRA:              row.Decimal(ColHRA),
		LTA:              row.Decimal(ColLTA),
		SpecialAllowance: row.Decimal(ColSpecialAllowance),
		GrossEarning:     row.Decimal(ColGrossEarning),
		ProfessionalTax:  row.Decimal(ColProfessionalTax),
		TDS:              row.Decimal(ColTDS),
		TotalDeductions:  row.Decimal(ColTotalDeductions),
		NetPay:           row.Decimal(ColNetPay),
	}
}
