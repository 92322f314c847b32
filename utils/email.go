package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers one HTML mail through the configured SMTP relay.
func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// BookingEmail is the snapshot the notification mails are rendered
// from. It is captured at commit time so later edits to the booking
// cannot change what was sent.
type BookingEmail struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BarberName      string
	ServiceName     string
	AppointmentDate string
	AppointmentTime string
}

// SendCustomerConfirmation mails the booking confirmation to the
// customer. Callers skip it when no email was supplied.
func SendCustomerConfirmation(b BookingEmail) error {
	subject := fmt.Sprintf("Appointment Confirmed - %s %s", b.AppointmentDate, b.AppointmentTime)
	body := fmt.Sprintf(`
		<h3>Dear %s,</h3>
		<p>Your appointment has been booked.</p>
		<ul>
			<li><strong>Barber:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Thank you.</p>
	`, b.CustomerName, b.BarberName, b.ServiceName, b.AppointmentDate, b.AppointmentTime)
	return SendEmail(b.CustomerEmail, subject, body)
}

// SendOperatorNotification mails the shop about a new booking.
func SendOperatorNotification(b BookingEmail) error {
	operator := os.Getenv("ADMIN_EMAIL")
	if operator == "" {
		operator = os.Getenv("EMAIL_USER")
	}
	subject := "New Appointment - " + b.CustomerName
	body := fmt.Sprintf(`
		<h3>New appointment received</h3>
		<ul>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Phone:</strong> %s</li>
			<li><strong>Barber:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
	`, b.CustomerName, b.CustomerPhone, b.BarberName, b.ServiceName, b.AppointmentDate, b.AppointmentTime)
	return SendEmail(operator, subject, body)
}

// SendReminder mails the customer one hour before the appointment.
func SendReminder(b BookingEmail) error {
	subject := fmt.Sprintf("Reminder: Appointment at %s", b.AppointmentTime)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment.</p>
		<ul>
			<li><strong>Barber:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to cancel, contact us as soon as possible.</p>
	`, b.CustomerName, b.BarberName, b.ServiceName, b.AppointmentDate, b.AppointmentTime)
	return SendEmail(b.CustomerEmail, subject, body)
}
