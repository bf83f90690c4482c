package mail

import (
	"fmt"
	"html"
)

// Subject lines and HTML bodies for every notifiable event. Bodies escape all
// user-supplied values before interpolation.

func ContactAdminMail(name, email, message string) (subject, body string) {
	subject = "New Contact Form Submission - Vanta Scaling"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #000;">New Contact Form Submission</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">%s</p>
  </div>
</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))
	return subject, body
}

func AppointmentAdminMail(name, email, website, date, timeSlot, notes string) (subject, body string) {
	if website == "" {
		website = "Not provided"
	}
	if notes == "" {
		notes = "None"
	}
	subject = "New Strategy Call Scheduled - Vanta Scaling"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #000;">New Strategy Call Scheduled</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Website:</strong> %s</p>
    <p><strong>Date:</strong> %s</p>
    <p><strong>Time:</strong> %s</p>
    <p><strong>Notes:</strong> %s</p>
  </div>
</div>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(website),
		html.EscapeString(date), html.EscapeString(timeSlot), html.EscapeString(notes))
	return subject, body
}

func AppointmentCustomerMail(name, date, timeSlot string) (subject, body string) {
	subject = "Strategy Call Confirmed - Vanta Scaling"
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #000; color: #fff; padding: 40px;">
  <h1 style="color: #fff; text-align: center; font-size: 48px; margin-bottom: 20px;">VANTA SCALING</h1>
  <h2 style="color: #00d4ff; text-align: center;">Your Strategy Call is Confirmed</h2>
  <div style="background: #111; padding: 30px; border-radius: 8px; margin: 20px 0;">
    <p style="font-size: 18px;">Hi %s,</p>
    <p>Your strategy call has been scheduled for:</p>
    <p style="font-size: 20px; color: #00d4ff;"><strong>%s at %s</strong></p>
    <p>We'll send you a calendar invite and meeting link 24 hours before the call.</p>
    <p>In the meantime, think about:</p>
    <ul>
      <li>Your current monthly revenue</li>
      <li>Your growth goals for the next 6 months</li>
      <li>Your biggest marketing challenges</li>
    </ul>
    <p>Looking forward to helping you scale!</p>
    <p style="margin-top: 30px;">Best regards,<br>The Vanta Scaling Team</p>
  </div>
</div>`,
		html.EscapeString(name), html.EscapeString(date), html.EscapeString(timeSlot))
	return subject, body
}

func PurchaseAdminMail(customerEmail, planName string, amount int64, sessionID string) (subject, body string) {
	subject = fmt.Sprintf("New %s Purchase - Vanta Scaling", planName)
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #000;">New Purchase Completed</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Customer:</strong> %s</p>
    <p><strong>Package:</strong> %s</p>
    <p><strong>Amount:</strong> %s</p>
    <p><strong>Session:</strong> %s</p>
  </div>
</div>`,
		html.EscapeString(customerEmail), html.EscapeString(planName),
		FormatAmount(amount), html.EscapeString(sessionID))
	return subject, body
}

func PurchaseCustomerMail() (subject, body string) {
	subject = "Welcome to Trial Surge - Vanta Scaling"
	body = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #000; color: #fff; padding: 40px;">
  <h1 style="color: #fff; text-align: center; font-size: 48px; margin-bottom: 20px;">VANTA SCALING</h1>
  <h2 style="color: #00d4ff; text-align: center;">Welcome to Trial Surge!</h2>
  <div style="background: #111; padding: 30px; border-radius: 8px; margin: 20px 0;">
    <p style="font-size: 18px;">Thank you for your purchase!</p>
    <p>Your Trial Surge package includes:</p>
    <ul style="color: #00d4ff;">
      <li>30-minute strategy call</li>
      <li>Complete ad account or website audit</li>
      <li>3-day micro campaign (paid or organic)</li>
      <li>1 week of dedicated support</li>
      <li>Detailed performance breakdown</li>
    </ul>
    <p>We'll contact you within 24 hours to schedule your strategy call and get started.</p>
    <p style="margin-top: 30px;">Get ready to scale!<br>The Vanta Scaling Team</p>
  </div>
</div>`
	return subject, body
}

// FormatAmount renders currency minor units as a dollar string, e.g. 19700 -> "$197.00".
func FormatAmount(minorUnits int64) string {
	return fmt.Sprintf("$%d.%02d", minorUnits/100, minorUnits%100)
}
