package domain

import "time"

// Verification statuses a brand can carry.
const (
	VerificationPending  = "Pending"
	VerificationVerified = "Verified"
	VerificationRejected = "Rejected"
)

// Brand represents a seller brand in the marketplace catalog
type Brand struct {
	BrandID            string    `json:"brand_id" db:"brand_id"`
	BrandName          string    `json:"brand_name" db:"brand_name"`
	Email              string    `json:"email" db:"email"`
	PhoneNumber        string    `json:"phone_number" db:"phone_number"`
	BrandLogo          string    `json:"brand_logo,omitempty" db:"brand_logo"`
	BrandDescription   string    `json:"brand_description,omitempty" db:"brand_description"`
	Documents          []string  `json:"documents,omitempty" db:"documents"`
	VerificationStatus string    `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
