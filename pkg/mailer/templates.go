package mailer

import "fmt"

// OTPEmailSubject is the subject line for password reset codes.
const OTPEmailSubject = "Your Nalam Password Reset Code"

// OTPEmailBody renders the password reset email.
func OTPEmailBody(otp string) string {
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #333;">Password Reset Request</h2>
        <p>Hi,</p>
        <p>Your password reset OTP is:</p>
        <div style="background: #f5f5f5; padding: 20px; text-align: center; margin: 20px 0; border-radius: 8px;">
          <h1 style="color: #4f8ef7; letter-spacing: 10px; margin: 0;">%s</h1>
        </div>
        <p><strong>This code will expire in 5 minutes.</strong></p>
        <p>If you didn't request this, please ignore this email.</p>
        <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
        <p style="color: #888; font-size: 12px;">&copy; 2026 Nalam E-commerce. All rights reserved.</p>
      </div>`, otp)
}
