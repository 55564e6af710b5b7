package utils

import (
	"bytes"
	"errors"
	"log"
	"os"
	"text/template"

	config "storelink/config/database"

	brevo "github.com/sendinblue/APIv3-go-library/v2/lib"
)

func newBrevoClient() (*brevo.APIClient, error) {
	apiKey := config.Cfg.BrevoAPIKey
	if apiKey == "" {
		return nil, errors.New("brevo API Key not found in environment")
	}

	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	return brevo.NewAPIClient(cfg), nil
}

func renderEmailTemplate(path string, data map[string]interface{}) (string, error) {
	emailTemplate, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading HTML file: %v", err)
		return "", err
	}

	tmpl, err := template.New("emailTemplate").Parse(string(emailTemplate))
	if err != nil {
		log.Printf("Error parsing HTML template: %v", err)
		return "", err
	}

	var bodyContent bytes.Buffer
	if err := tmpl.Execute(&bodyContent, data); err != nil {
		log.Printf("Error executing template: %v", err)
		return "", err
	}
	return bodyContent.String(), nil
}

// SendWelcomeEmail greets a newly registered store owner.
func SendWelcomeEmail(email, name string) error {
	client, err := newBrevoClient()
	if err != nil {
		return err
	}

	body, err := renderEmailTemplate("utils/html/welcome.html", map[string]interface{}{
		"Name":  name,
		"Email": email,
	})
	if err != nil {
		return err
	}

	sender := &brevo.SendSmtpEmailSender{
		Name:  "Storelink Team",
		Email: "bot.storelink@outlook.com",
	}
	to := []brevo.SendSmtpEmailTo{
		{Name: name, Email: email},
	}

	emailRequest := &brevo.SendSmtpEmail{
		Sender:      sender,
		To:          to,
		Subject:     "Welcome to Storelink!",
		HtmlContent: body,
	}

	_, resp, err := client.TransactionalEmailsApi.SendTransacEmail(nil, *emailRequest)
	if err != nil {
		log.Printf("Error while sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully! Response: %v", resp)
	return nil
}

// SendPasswordResetEmail mails a one-time reset code. Expiry is enforced
// server side; the template only displays the code.
func SendPasswordResetEmail(email, code string) error {
	client, err := newBrevoClient()
	if err != nil {
		return err
	}

	body, err := renderEmailTemplate("utils/html/password_reset.html", map[string]interface{}{
		"Email": email,
		"Code":  code,
	})
	if err != nil {
		return err
	}

	sender := &brevo.SendSmtpEmailSender{
		Name:  "Storelink Team",
		Email: "bot.storelink@outlook.com",
	}
	to := []brevo.SendSmtpEmailTo{
		{Email: email},
	}

	emailRequest := &brevo.SendSmtpEmail{
		Sender:      sender,
		To:          to,
		Subject:     "Your Storelink password reset code",
		HtmlContent: body,
	}

	_, resp, err := client.TransactionalEmailsApi.SendTransacEmail(nil, *emailRequest)
	if err != nil {
		log.Printf("Error while sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully! Response: %v", resp)
	return nil
}
