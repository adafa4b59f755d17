package notify

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/secscan/internal/ai"
	"github.com/shanehull/secscan/internal/types"
)

// EmailConfig holds SMTP configuration for sending the report.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// EmailReport sends the rendered HTML report with a plain text fallback.
func EmailReport(cfg EmailConfig, result *types.ScanResult, analyses map[string]*ai.Analysis, reportHTML string) error {
	if !cfg.Enabled {
		return nil
	}
	log.Printf("Emailing report (SMTP: %s:%d).", cfg.SMTPServer, cfg.SMTPPort)

	subject := fmt.Sprintf("SEC Filings %s: %d matches", result.Date.Format("2006-01-02"), len(result.Entries))

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.FromEmail)
	m.SetHeader("To", cfg.ToEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", renderPlainText(result, analyses))
	m.AddAlternative("text/html", reportHTML)

	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.Timeout = 10 * time.Second

	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("Email error: failed to send to %s (Subject: %s): %v", cfg.ToEmail, subject, err)
		return err
	}

	log.Printf("Email sent: %s", subject)
	return nil
}
