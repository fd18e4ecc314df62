package postgres

import (
	"fmt"

	"github.com/bekmanvision/uniqer/internal/models"
)

// GetStats collects the dashboard counters. Revenue sums the price of
// tours behind CONFIRMED applications.
func (s *Storage) GetStats() (*models.Stats, error) {
	var stats models.Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM tours`, &stats.TotalTours},
		{`SELECT COUNT(*) FROM tours WHERE status = 'OPEN'`, &stats.ActiveTours},
		{`SELECT COUNT(*) FROM applications`, &stats.TotalApplications},
		{`SELECT COUNT(*) FROM applications WHERE status = 'NEW'`, &stats.NewApplications},
		{`SELECT COUNT(*) FROM universities`, &stats.TotalUniversities},
		{`SELECT COALESCE(SUM(seats), 0) FROM tours`, &stats.TotalSeats},
	}

	for _, c := range counts {
		if err := s.DB.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to get stats: %w", err)
		}
	}

	revenueQuery := `
		SELECT COALESCE(SUM(t.price), 0)
		FROM applications a
		JOIN tours t ON t.id = a.tour_id
		WHERE a.status = 'CONFIRMED'`

	if err := s.DB.QueryRow(revenueQuery).Scan(&stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &stats, nil
}
