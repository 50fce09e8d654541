package schema

import (
	"market-catalog/internal/domain"
)

// BrandInput is the untrusted payload for brand creation.
type BrandInput struct {
	BrandName          string   `json:"brand_name" validate:"required,min=2,max=100"`
	Email              string   `json:"email" validate:"required,email"`
	PhoneNumber        string   `json:"phone_number" validate:"required,min=10,max=15"`
	BrandLogo          string   `json:"brand_logo" validate:"omitempty,url"`
	BrandDescription   string   `json:"brand_description" validate:"omitempty,max=2000"`
	Documents          []string `json:"documents" validate:"omitempty,dive,url"`
	VerificationStatus string   `json:"verification_status" validate:"omitempty,oneof=Pending Verified Rejected"`
}

// BrandPatch carries a partial brand update.
type BrandPatch struct {
	BrandName          *string   `json:"brand_name" validate:"omitempty,min=2,max=100"`
	Email              *string   `json:"email" validate:"omitempty,email"`
	PhoneNumber        *string   `json:"phone_number" validate:"omitempty,min=10,max=15"`
	BrandLogo          *string   `json:"brand_logo" validate:"omitempty,url"`
	BrandDescription   *string   `json:"brand_description" validate:"omitempty,max=2000"`
	Documents          *[]string `json:"documents" validate:"omitempty,dive,url"`
	VerificationStatus *string   `json:"verification_status" validate:"omitempty,oneof=Pending Verified Rejected"`
}

// ValidateBrand validates the full brand input.
func ValidateBrand(in *BrandInput) []FieldError {
	return check(in)
}

// ValidateBrandPatch validates whichever fields the patch carries.
func ValidateBrandPatch(p *BrandPatch) []FieldError {
	return check(p)
}

// ToBrand converts validated input into a brand entity. Identifier,
// timestamps and the Pending default are stamped by the service.
func (in *BrandInput) ToBrand() *domain.Brand {
	return &domain.Brand{
		BrandName:          in.BrandName,
		Email:              in.Email,
		PhoneNumber:        in.PhoneNumber,
		BrandLogo:          in.BrandLogo,
		BrandDescription:   in.BrandDescription,
		Documents:          in.Documents,
		VerificationStatus: in.VerificationStatus,
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *BrandPatch) IsEmpty() bool {
	return p.BrandName == nil && p.Email == nil && p.PhoneNumber == nil &&
		p.BrandLogo == nil && p.BrandDescription == nil &&
		p.Documents == nil && p.VerificationStatus == nil
}
