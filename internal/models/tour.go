package models

import "time"

type TourStatus string

const (
	TourOpen      TourStatus = "OPEN"
	TourClosed    TourStatus = "CLOSED"
	TourCancelled TourStatus = "CANCELLED"
)

type Tour struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	City         string           `json:"city"`
	StartDate    time.Time        `json:"start_date"`
	EndDate      time.Time        `json:"end_date"`
	Price        int64            `json:"price"`
	Seats        int              `json:"seats"`
	SeatsLeft    int              `json:"seats_left"`
	Grade        string           `json:"grade"`
	Status       TourStatus       `json:"status"`
	Description  string           `json:"description"`
	Featured     bool             `json:"featured"`
	CreatedAt    time.Time        `json:"created_at"`
	Universities []TourUniversity `json:"universities,omitempty"`
}

// TourRef is the short tour projection attached to applications.
type TourRef struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	StartDate time.Time `json:"start_date"`
}
