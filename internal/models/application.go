package models

import "time"

type ApplicationStatus string

const (
	ApplicationNew       ApplicationStatus = "NEW"
	ApplicationContacted ApplicationStatus = "CONTACTED"
	ApplicationConfirmed ApplicationStatus = "CONFIRMED"
	ApplicationCancelled ApplicationStatus = "CANCELLED"
	ApplicationCompleted ApplicationStatus = "COMPLETED"
)

type ApplicantRole string

const (
	RoleStudent ApplicantRole = "STUDENT"
	RoleParent  ApplicantRole = "PARENT"
	RoleSchool  ApplicantRole = "SCHOOL"
	RoleOther   ApplicantRole = "OTHER"
)

type ApplicationType string

const (
	ApplicationTour    ApplicationType = "TOUR"
	ApplicationB2B     ApplicationType = "B2B"
	ApplicationContact ApplicationType = "CONTACT"
)

type Application struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	City      string            `json:"city,omitempty"`
	Grade     string            `json:"grade,omitempty"`
	Role      ApplicantRole     `json:"role"`
	OtherRole string            `json:"other_role,omitempty"`
	Type      ApplicationType   `json:"type"`
	TourID    string            `json:"tour_id,omitempty"`
	Status    ApplicationStatus `json:"status"`
	Message   string            `json:"message,omitempty"`
	Source    string            `json:"source,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Tour      *TourRef          `json:"tour,omitempty"`
}

// HoldsSeat reports whether an application in the given status is still
// counted against its tour's capacity. A seat is released exactly once, on
// the first transition into CANCELLED or COMPLETED, or on deletion.
func HoldsSeat(status ApplicationStatus) bool {
	return status != ApplicationCancelled && status != ApplicationCompleted
}
