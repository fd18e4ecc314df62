package models

// Stats is the admin dashboard summary.
type Stats struct {
	TotalTours        int   `json:"total_tours"`
	ActiveTours       int   `json:"active_tours"`
	TotalApplications int   `json:"total_applications"`
	NewApplications   int   `json:"new_applications"`
	TotalUniversities int   `json:"total_universities"`
	TotalSeats        int   `json:"total_seats"`
	TotalRevenue      int64 `json:"total_revenue"`
}
