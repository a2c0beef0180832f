package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/santimarro/figuras-api/initializers"
)

type EmailData struct {
	Name      string
	Message   string
	ActionURL string
	SiteName  string
}

// SendEmail renders the template and delivers it through the transport
// selected at startup (SMTP relay or HTTP mail API).
func SendEmail(emailTo string, emailSubject string, data EmailData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	if data.SiteName == "" {
		data.SiteName = initializers.Config.SiteName
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	if initializers.Config.MailTransport == "api" {
		return sendViaAPI(emailTo, emailSubject, body.String())
	}
	return sendViaSMTP(emailTo, emailSubject, body.String())
}

func sendViaSMTP(emailTo, emailSubject, html string) error {
	from := initializers.Config.FromEmail

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		from,
		emailSubject,
		html,
	)

	auth := smtp.PlainAuth(
		"",
		from,
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, from, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func sendViaAPI(emailTo, emailSubject, html string) error {
	client := resty.New().SetTimeout(15 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+initializers.Config.MailAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"from":    initializers.Config.FromEmail,
			"to":      []string{emailTo},
			"subject": emailSubject,
			"html":    html,
		}).
		Post(initializers.Config.MailAPIURL)

	if err != nil {
		return fmt.Errorf("mail API request failed: %w", err)
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("mail API returned status %d: %s", resp.StatusCode(), resp.Body())
	}

	return nil
}
