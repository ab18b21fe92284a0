package domain

import "context"

// Service categories offered on the marketing site. The contact form's
// workType must be one of these.
const (
	WorkKitchenRemodeling  = "Kitchen Remodeling"
	WorkBathroomRemodeling = "Bathroom Remodeling"
	WorkWindowsDoors       = "Windows & Doors"
	WorkRoofing            = "Roofing"
	WorkSiding             = "Siding"
	WorkExteriorPainting   = "Exterior Painting"
)

// WorkTypes lists every accepted service category.
var WorkTypes = []string{
	WorkKitchenRemodeling,
	WorkBathroomRemodeling,
	WorkWindowsDoors,
	WorkRoofing,
	WorkSiding,
	WorkExteriorPainting,
}

// Submission represents a quote request submitted through the contact form.
// A submission is either wholly valid or rejected as a whole; nothing past
// the binding layer ever sees a partially valid payload.
type Submission struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Phone    string `json:"phone" binding:"omitempty,min=7,valid_phone"`
	Zip      string `json:"zip" binding:"required,us_zip"`
	WorkType string `json:"workType" binding:"required,oneof='Kitchen Remodeling' 'Bathroom Remodeling' 'Windows & Doors' 'Roofing' 'Siding' 'Exterior Painting'"`
	Message  string `json:"message" binding:"required,min=10,max=3000"`
	Consent  bool   `json:"consent" binding:"required"`
	// Company is a honeypot. The rendered form hides it; a non-empty value
	// signals automated traffic.
	Company string `json:"company"`
}

// IsHoneypotTripped reports whether the hidden trap field was filled in.
func (s *Submission) IsHoneypotTripped() bool {
	return s.Company != ""
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitLead dispatches the lead notice and customer receipt for a
	// validated submission. A tripped honeypot returns nil without sending.
	SubmitLead(ctx context.Context, sub *Submission) error
}
