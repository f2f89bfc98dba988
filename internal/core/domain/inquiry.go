package domain

import "time"

// InquiryStatus tracks the handling state of a contact-form submission.
type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in_progress"
	InquiryResolved   InquiryStatus = "resolved"
	InquiryClosed     InquiryStatus = "closed"
)

// InquiryStatuses lists every valid status, in dashboard display order.
var InquiryStatuses = []InquiryStatus{InquiryNew, InquiryInProgress, InquiryResolved, InquiryClosed}

// Inquiry is a contact-form submission from the public site.
type Inquiry struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	FullName        string        `json:"full_name" bson:"full_name"`
	Email           string        `json:"email" bson:"email"`
	Phone           string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject         string        `json:"subject,omitempty" bson:"subject,omitempty"`
	Message         string        `json:"message" bson:"message"`
	ProjectInterest string        `json:"project_interest,omitempty" bson:"project_interest,omitempty"`
	BudgetRange     string        `json:"budget_range,omitempty" bson:"budget_range,omitempty"`
	Status          InquiryStatus `json:"status" bson:"status"`
	AssignedTo      string        `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	Notes           string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
