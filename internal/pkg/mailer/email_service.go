package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendEscalationAlert(toEmail, caseRef, reason, query string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendEscalationAlert(toEmail, caseRef, reason, query string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Escalated support case %s", caseRef))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Support case escalated to human review</h2>
			<p><strong>Case Reference:</strong> %s</p>
			<p><strong>Reason:</strong> %s</p>
			<p><strong>Original query:</strong></p>
			<blockquote style="border-left: 3px solid #ccc; padding-left: 10px; color: #555;">%s</blockquote>
			<p>Please pick this case up in the support console.</p>
		</div>
	`, caseRef, reason, query)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send escalation alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Escalation alert sent to %s (case %s)\n", toEmail, caseRef)
	return nil
}
