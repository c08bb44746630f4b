package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendEmail delivers a plain-text email over SMTP. Callers on the order and
// return paths treat failures as best-effort: log and move on, the state
// mutation already committed stands.
func SendEmail(to, subject, text string) error {
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@quickcart.local"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending email to", to)
	return client.DialAndSend(msg)
}

// SendOTPEmail carries the registration verification code.
func SendOTPEmail(to, otp string) error {
	return SendEmail(to, "Verify Your Email",
		fmt.Sprintf("Your OTP is %s. It expires in 10 minutes.", otp))
}

// SendSellerOrderEmail tells a seller about their share of a new order.
func SendSellerOrderEmail(to, customerName, customerEmail, productList string) error {
	text := fmt.Sprintf("You have received a new order!\n\nCustomer: %s\nEmail: %s\n\nProducts:\n%s\n\nPlease log in to your seller dashboard to manage this order.",
		customerName, customerEmail, productList)
	return SendEmail(to, "New Order Received - QuickCart", text)
}

// SendReturnRequestEmail tells a seller a return/replacement was opened.
func SendReturnRequestEmail(to, returnType, productName, customerName, reason string) error {
	subject := fmt.Sprintf("New %s Request", Capitalize(returnType))
	text := fmt.Sprintf("You have received a new %s request for product %q from customer %s.\n\nReason: %s\n\nPlease log in to your seller dashboard to review and respond to this request.",
		returnType, productName, customerName, reason)
	return SendEmail(to, subject, text)
}

// SendReturnResolvedEmail tells the customer the outcome of their request.
func SendReturnResolvedEmail(to, returnType, productName, status, adminNotes string) error {
	subject := fmt.Sprintf("%s Request %s", Capitalize(returnType), Capitalize(status))
	text := fmt.Sprintf("Your %s request for %q has been %s.", returnType, productName, status)
	if adminNotes != "" {
		text += "\n\nNotes: " + adminNotes
	}
	text += "\n\nThank you for shopping with us."
	return SendEmail(to, subject, text)
}

// SendOrderStatusEmail mirrors the in-app status notification.
func SendOrderStatusEmail(to, message string) error {
	return SendEmail(to, "Order Status Update - QuickCart", message)
}
