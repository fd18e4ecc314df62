package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/bekmanvision/uniqer/internal/lib/slug"
	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/google/uuid"
)

// CreateTour inserts a tour with seats_left = seats and a slug derived from
// the title; on slug collision a timestamp suffix is appended.
func (s *Storage) CreateTour(tour models.Tour, universityIDs []string) (*models.Tour, error) {
	tour.ID = uuid.NewString()
	tour.SeatsLeft = tour.Seats
	if tour.Status == "" {
		tour.Status = models.TourOpen
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tour.Slug, err = uniqueSlug(tx, tour.Title, "")
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO tours (id, slug, title, city, start_date, end_date, price, seats, seats_left, grade, status, description, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`

	err = tx.QueryRow(query,
		tour.ID,
		tour.Slug,
		tour.Title,
		tour.City,
		tour.StartDate,
		tour.EndDate,
		tour.Price,
		tour.Seats,
		tour.SeatsLeft,
		tour.Grade,
		tour.Status,
		tour.Description,
		tour.Featured,
	).Scan(&tour.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	if err = replaceItinerary(tx, tour.ID, universityIDs); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetTour(tour.ID)
}

// GetTour resolves a tour by id or slug and attaches its ordered itinerary.
func (s *Storage) GetTour(idOrSlug string) (*models.Tour, error) {
	query := `
		SELECT id, slug, title, city, start_date, end_date, price, seats, seats_left, grade, status, description, featured, created_at
		FROM tours
		WHERE id::text = $1 OR slug = $1`

	var tour models.Tour
	err := s.DB.QueryRow(query, idOrSlug).Scan(
		&tour.ID,
		&tour.Slug,
		&tour.Title,
		&tour.City,
		&tour.StartDate,
		&tour.EndDate,
		&tour.Price,
		&tour.Seats,
		&tour.SeatsLeft,
		&tour.Grade,
		&tour.Status,
		&tour.Description,
		&tour.Featured,
		&tour.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	tour.Universities, err = s.itinerary(tour.ID)
	if err != nil {
		return nil, err
	}

	return &tour, nil
}

func (s *Storage) GetAllTours(filter storage.TourFilter) ([]models.Tour, error) {
	query := `
		SELECT id, slug, title, city, start_date, end_date, price, seats, seats_left, grade, status, description, featured, created_at
		FROM tours`

	var (
		clauses []string
		args    []any
	)

	if filter.City != "" {
		args = append(args, filter.City)
		clauses = append(clauses, "city = $"+strconv.Itoa(len(args)))
	}
	if filter.Grade != "" {
		args = append(args, "%"+filter.Grade+"%")
		clauses = append(clauses, "grade LIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		clauses = append(clauses, "featured = $"+strconv.Itoa(len(args)))
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}

	query += " ORDER BY start_date ASC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tours: %w", err)
	}
	defer rows.Close()

	var tours []models.Tour
	for rows.Next() {
		var tour models.Tour
		err = rows.Scan(
			&tour.ID,
			&tour.Slug,
			&tour.Title,
			&tour.City,
			&tour.StartDate,
			&tour.EndDate,
			&tour.Price,
			&tour.Seats,
			&tour.SeatsLeft,
			&tour.Grade,
			&tour.Status,
			&tour.Description,
			&tour.Featured,
			&tour.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, tour)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tours: %w", err)
	}

	return tours, nil
}

// UpdateTour applies a partial edit. A title change regenerates the slug.
// Direct seats/seats_left edits stay subject to the capacity check
// constraint; all other seat mutation goes through the application ledger.
func (s *Storage) UpdateTour(id string, upd storage.TourUpdate) (*models.Tour, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, storage.ErrTourNotFound
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if upd.Title != nil {
		newSlug, slugErr := uniqueSlug(tx, *upd.Title, id)
		if slugErr != nil {
			return nil, slugErr
		}
		set("title", *upd.Title)
		set("slug", newSlug)
	}
	if upd.City != nil {
		set("city", *upd.City)
	}
	if upd.StartDate != nil {
		set("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		set("end_date", *upd.EndDate)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Seats != nil {
		set("seats", *upd.Seats)
	}
	if upd.SeatsLeft != nil {
		set("seats_left", *upd.SeatsLeft)
	}
	if upd.Grade != nil {
		set("grade", *upd.Grade)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Featured != nil {
		set("featured", *upd.Featured)
	}

	if len(sets) > 0 {
		query := "UPDATE tours SET " + sets[0]
		for _, clause := range sets[1:] {
			query += ", " + clause
		}
		args = append(args, id)
		query += " WHERE id = $" + strconv.Itoa(len(args))

		res, execErr := tx.Exec(query, args...)
		if execErr != nil {
			return nil, fmt.Errorf("failed to update tour: %w", execErr)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return nil, storage.ErrTourNotFound
		}
	}

	if upd.UniversityIDs != nil {
		if err = replaceItinerary(tx, id, upd.UniversityIDs); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetTour(id)
}

func (s *Storage) DeleteTour(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return storage.ErrTourNotFound
	}

	res, err := s.DB.Exec(`DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}
	if affected == 0 {
		return storage.ErrTourNotFound
	}

	return nil
}

func (s *Storage) itinerary(tourID string) ([]models.TourUniversity, error) {
	query := `
		SELECT tu.university_id, tu.visit_order,
		       u.id, u.slug, u.name, u.city, u.type, u.description, u.grants, u.paid, u.website
		FROM tour_universities tu
		JOIN universities u ON u.id = tu.university_id
		WHERE tu.tour_id = $1
		ORDER BY tu.visit_order ASC`

	rows, err := s.DB.Query(query, tourID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour universities: %w", err)
	}
	defer rows.Close()

	var stops []models.TourUniversity
	for rows.Next() {
		var (
			stop models.TourUniversity
			uni  models.University
		)
		err = rows.Scan(
			&stop.UniversityID,
			&stop.VisitOrder,
			&uni.ID,
			&uni.Slug,
			&uni.Name,
			&uni.City,
			&uni.Type,
			&uni.Description,
			&uni.Grants,
			&uni.Paid,
			&uni.Website,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tour university: %w", err)
		}
		stop.University = &uni
		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tour universities: %w", err)
	}

	return stops, nil
}

func replaceItinerary(tx *sql.Tx, tourID string, universityIDs []string) error {
	if _, err := tx.Exec(`DELETE FROM tour_universities WHERE tour_id = $1`, tourID); err != nil {
		return fmt.Errorf("failed to clear tour universities: %w", err)
	}

	for i, universityID := range universityIDs {
		_, err := tx.Exec(`
			INSERT INTO tour_universities (tour_id, university_id, visit_order)
			VALUES ($1, $2, $3)`,
			tourID, universityID, i)
		if err != nil {
			return fmt.Errorf("failed to add tour university: %w", err)
		}
	}

	return nil
}

// uniqueSlug derives a slug from the title and appends a timestamp suffix
// when another tour already owns it. The unique index on tours.slug is the
// backstop for a lost race.
func uniqueSlug(tx *sql.Tx, title, excludeID string) (string, error) {
	candidate := slug.Make(title)

	var taken bool
	err := tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM tours WHERE slug = $1 AND id::text <> $2
		)`,
		candidate, excludeID).Scan(&taken)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}

	if taken {
		candidate = slug.WithTimestamp(candidate)
	}

	return candidate, nil
}
