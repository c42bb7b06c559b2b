package models

import "time"

// Confirmation review states. A record starts pending and is moved to
// verified or rejected by an admin; no transition is defined past that.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// ValidStatusTarget reports whether s is an allowed review outcome.
func ValidStatusTarget(s string) bool {
	return s == StatusVerified || s == StatusRejected
}

// PaymentConfirmation is one submitted claim of course payment.
// The receipt file itself lives in blob storage; ReceiptFileURL is a
// reference, not ownership.
type PaymentConfirmation struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Courses        string    `json:"courses"`
	ReceiptNumber  string    `json:"receipt_number"`
	PaymentAmount  float64   `json:"payment_amount"`
	ReceiptFileURL string    `json:"receipt_file_url"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EmailSettings is the singleton SMTP-style configuration read fresh on
// every dispatch. Absence is a valid state: the email leg then no-ops.
type EmailSettings struct {
	SMTPHost     string    `json:"smtp_host"`
	SMTPPort     int       `json:"smtp_port"`
	SMTPUsername string    `json:"smtp_username"`
	SMTPPassword string    `json:"smtp_password"`
	FromEmail    string    `json:"from_email"`
	FromName     string    `json:"from_name"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmailTemplate is keyed by name; bodies may carry {{placeholder}} tokens.
type EmailTemplate struct {
	Name        string    `json:"name"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	TextContent string    `json:"text_content,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TemplatePaymentConfirmation is the template consumed by the
// acknowledgment email leg.
const TemplatePaymentConfirmation = "payment_confirmation"

// AdminUser is a stored dashboard account. PasswordHash is bcrypt and
// never serialized.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminIdentity is the claim set carried by a valid session token.
type AdminIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
