package mailer

import (
	"fmt"
	"log"
	"strconv"
	"time"

	gomail "gopkg.in/gomail.v2"

	"gymku_backend/internals/configs"
)

var dialer *gomail.Dialer

// Init builds the SMTP dialer from env config. Safe to skip when SMTP_USER
// is empty; every Send* becomes a logged no-op.
func Init() {
	if configs.SMTPUser == "" {
		log.Println("⚠️ mailer disabled (SMTP_USER empty)")
		return
	}
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}
	dialer = gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass)
	log.Println("✅ mailer ready:", configs.SMTPHost)
}

// send delivers one message. Failures are logged, never returned: email is
// best-effort everywhere in this app.
func send(to, subject, htmlBody string) {
	if dialer == nil {
		log.Printf("[INFO] mailer disabled, skip mail to=%s subject=%q", to, subject)
		return
	}
	m := gomail.NewMessage()
	m.SetHeader("From", configs.SMTPUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := dialer.DialAndSend(m); err != nil {
		log.Printf("[ERROR] send mail to=%s subject=%q err=%v", to, subject, err)
	}
}

// SendAsync fires the mail on a goroutine; callers never wait on SMTP.
func sendAsync(to, subject, htmlBody string) {
	go send(to, subject, htmlBody)
}

// Welcome email after registration
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<h1>Welcome %s!</h1>
		<p>Thank you for joining our gym. We're excited to have you as a member.</p>
		<p>You can now:</p>
		<ul>
			<li>Book training sessions</li>
			<li>Track your attendance</li>
			<li>Record equipment usage</li>
		</ul>`, name)
	sendAsync(email, "Welcome to Our Gym!", body)
}

// Session booking confirmation
func SendSessionConfirmation(email, name, sessionName string, schedule time.Time, trainerName string) {
	body := fmt.Sprintf(`
		<h1>Booking Confirmed, %s!</h1>
		<p>You are registered for <b>%s</b> with %s.</p>
		<p>Scheduled at: %s</p>`,
		name, sessionName, trainerName, schedule.Format("Mon, 02 Jan 2006 15:04"))
	sendAsync(email, "Session Booking Confirmation", body)
}

// Membership expiry reminder
func SendExpiryReminder(email, name string, expiry time.Time) {
	body := fmt.Sprintf(`
		<h1>Hello %s,</h1>
		<p>Your gym membership is expiring on %s.</p>
		<p>Please renew your membership to continue enjoying our services.</p>`,
		name, expiry.Format("02 Jan 2006"))
	sendAsync(email, "Membership Expiry Reminder", body)
}

// Verification code for email ownership check
func SendVerificationCode(email, code string) {
	body := fmt.Sprintf(`
		<h1>Your Verification Code</h1>
		<p>Please use this code to complete your registration:</p>
		<h2 style="color: #007bff; font-size: 24px;">%s</h2>
		<p>This code will expire in 5 minutes.</p>`, code)
	sendAsync(email, "Gym Registration Verification Code", body)
}
