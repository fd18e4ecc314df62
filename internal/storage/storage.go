package storage

import (
	"errors"
	"time"

	"github.com/bekmanvision/uniqer/internal/models"
)

var (
	ErrTourNotFound        = errors.New("tour not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrUniversityNotFound  = errors.New("university not found")
	ErrAdminNotFound       = errors.New("admin not found")

	ErrTourClosed       = errors.New("tour registration is closed")
	ErrNoSeatsAvailable = errors.New("no seats available")

	ErrInvalidTransition = errors.New("invalid status transition")
)

// TourFilter narrows GetAllTours. Zero values mean "no filter".
type TourFilter struct {
	City     string
	Grade    string
	Status   models.TourStatus
	Featured *bool
	Limit    int
}

// TourUpdate is a partial tour edit; nil fields are left untouched.
type TourUpdate struct {
	Title         *string
	City          *string
	StartDate     *time.Time
	EndDate       *time.Time
	Price         *int64
	Seats         *int
	SeatsLeft     *int
	Grade         *string
	Status        *models.TourStatus
	Description   *string
	Featured      *bool
	UniversityIDs []string
}

// ApplicationFilter narrows GetAllApplications; Page is 1-based.
type ApplicationFilter struct {
	Status   models.ApplicationStatus
	Role     models.ApplicantRole
	Type     models.ApplicationType
	TourID   string
	Page     int
	PageSize int
}

// ApplicationExportFilter narrows ExportApplications.
type ApplicationExportFilter struct {
	Status models.ApplicationStatus
	Role   models.ApplicantRole
	Type   models.ApplicationType
	TourID string
	From   *time.Time
	To     *time.Time
}

// ApplicationPatch is a partial application edit; nil fields are left
// untouched. Status changes drive the seat ledger side effects.
type ApplicationPatch struct {
	Status  *models.ApplicationStatus
	Message *string
}

// StudentFilter narrows GetAllStudents; Search matches name, phone,
// parent name and school.
type StudentFilter struct {
	Status   models.StudentStatus
	TourID   string
	City     string
	Grade    string
	Search   string
	Page     int
	PageSize int
}

// StudentUpdate is a partial student edit; nil fields are left untouched.
type StudentUpdate struct {
	FullName          *string
	Phone             *string
	City              *string
	School            *string
	Grade             *string
	Age               *int
	Language          *string
	Direction         *string
	PreferredUnis     *string
	ParentName        *string
	ParentPhone       *string
	ParentPhoneBackup *string
	ContactParent     *models.ContactParent
	Allergies         *string
	TravelExperience  *bool
	TourID            *string
	Status            *models.StudentStatus
	Notes             *string
}

// UniversityFilter narrows GetAllUniversities.
type UniversityFilter struct {
	City string
	Type models.UniversityType
}

// StudentBoardColumn is one kanban column: all students in a status.
type StudentBoardColumn struct {
	Status   models.StudentStatus `json:"status"`
	Count    int                  `json:"count"`
	Students []models.Student     `json:"students"`
}
