package services

import (
	"bakery-shop/config"
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, orderID int, total float64) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d - The Bakery Shop", orderID))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Thank you for your order!</h2>
    <p><strong>Order Number:</strong> #%d</p>
    <p><strong>Total:</strong> £%.2f</p>
    <p>Your order has been received and is being prepared. We'll be in touch when it's ready.</p>
    <p>The Bakery Shop Team</p>
</body>
</html>
	`, orderID, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
