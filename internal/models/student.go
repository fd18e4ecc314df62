package models

import "time"

type StudentStatus string

const (
	StudentRegistered StudentStatus = "REGISTERED"
	StudentConfirmed  StudentStatus = "CONFIRMED"
	StudentPaid       StudentStatus = "PAID"
	StudentCompleted  StudentStatus = "COMPLETED"
	StudentCancelled  StudentStatus = "CANCELLED"
)

type ContactParent string

const (
	ContactMother   ContactParent = "MOTHER"
	ContactFather   ContactParent = "FATHER"
	ContactGuardian ContactParent = "GUARDIAN"
	ContactOther    ContactParent = "OTHER"
)

type Student struct {
	ID                string        `json:"id"`
	FullName          string        `json:"full_name"`
	Phone             string        `json:"phone"`
	City              string        `json:"city"`
	School            string        `json:"school"`
	Grade             string        `json:"grade"`
	Age               int           `json:"age"`
	Language          string        `json:"language"`
	Direction         string        `json:"direction"`
	PreferredUnis     string        `json:"preferred_unis,omitempty"`
	ParentName        string        `json:"parent_name"`
	ParentPhone       string        `json:"parent_phone"`
	ParentPhoneBackup string        `json:"parent_phone_backup,omitempty"`
	ContactParent     ContactParent `json:"contact_parent"`
	Allergies         string        `json:"allergies,omitempty"`
	TravelExperience  bool          `json:"travel_experience"`
	TourID            string        `json:"tour_id,omitempty"`
	Status            StudentStatus `json:"status"`
	Notes             string        `json:"notes,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

var studentStage = map[StudentStatus]int{
	StudentRegistered: 0,
	StudentConfirmed:  1,
	StudentPaid:       2,
	StudentCompleted:  3,
}

// StudentPipeline lists the kanban columns in board order.
var StudentPipeline = []StudentStatus{
	StudentRegistered,
	StudentConfirmed,
	StudentPaid,
	StudentCompleted,
	StudentCancelled,
}

// CanTransitionStudent validates a move on the student pipeline: forward
// moves only along REGISTERED -> CONFIRMED -> PAID -> COMPLETED, with
// CANCELLED as a side exit from any non-terminal stage. COMPLETED and
// CANCELLED are terminal.
func CanTransitionStudent(from, to StudentStatus) bool {
	if from == to {
		return true
	}
	if from == StudentCompleted || from == StudentCancelled {
		return false
	}
	if to == StudentCancelled {
		return true
	}
	fromStage, ok := studentStage[from]
	if !ok {
		return false
	}
	toStage, ok := studentStage[to]
	if !ok {
		return false
	}
	return toStage > fromStage
}
