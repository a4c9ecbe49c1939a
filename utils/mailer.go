package utils

import (
	"fmt"
	"io"

	"github.com/Sanchit24s/payslip-backend/config"
	"github.com/Sanchit24s/payslip-backend/models"
	"gopkg.in/gomail.v2"
)

// SendPayslipEmail mails one rendered payslip to the employee. The caller
// decides what a failure means; absence of an address is checked upstream.
func SendPayslipEmail(rec models.MergedPayrollRecord, pdfData []byte) error {
	cfg := config.GetSMTPConfig()
	if cfg.Host == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.User, "HR Department")
	m.SetHeader("To", rec.Email)
	m.SetHeader("Subject", "Payslip for "+rec.Month)
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nPlease find attached your payslip for %s.\n\nRegards,\nHR Department",
		rec.Name, rec.Month,
	))
	m.Attach(
		rec.Code+"_Payslip.pdf",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdfData)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure
	return d.DialAndSend(m)
}
