package constants

// NATS Subjects
const (
	// Notification events consumed by the mailer
	SubjectEmailNotification = "notification.email"

	// Signup lifecycle events
	SubjectSignupCompleted = "signup.completed"
)

// Email templates referenced in notification events
const (
	EmailTemplateVerificationCode = "verification_code"
)
