package models

type UniversityType string

const (
	UniversityState      UniversityType = "STATE"
	UniversityPrivate    UniversityType = "PRIVATE"
	UniversityAutonomous UniversityType = "AUTONOMOUS"
	UniversityBranch     UniversityType = "BRANCH"
)

type University struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	City        string         `json:"city"`
	Type        UniversityType `json:"type"`
	Description string         `json:"description"`
	Grants      bool           `json:"grants"`
	Paid        bool           `json:"paid"`
	Website     string         `json:"website,omitempty"`
}

// TourUniversity is one stop on a tour's itinerary, ordered by VisitOrder.
type TourUniversity struct {
	UniversityID string      `json:"university_id"`
	VisitOrder   int         `json:"visit_order"`
	University   *University `json:"university,omitempty"`
}
