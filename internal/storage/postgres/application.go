package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/google/uuid"
)

// CreateApplication admits an application. When a tour is referenced, the
// seat decrement and the insert run in one transaction, and the decrement
// is conditional on the tour being OPEN with seats left so that concurrent
// admissions for the last seat cannot both succeed.
func (s *Storage) CreateApplication(app models.Application) (*models.Application, error) {
	if app.TourID != "" {
		if _, err := uuid.Parse(app.TourID); err != nil {
			return nil, storage.ErrTourNotFound
		}
	}

	app.ID = uuid.NewString()
	app.Status = models.ApplicationNew

	if app.Type == "" {
		if app.TourID != "" {
			app.Type = models.ApplicationTour
		} else {
			app.Type = models.ApplicationContact
		}
	}
	if app.Role != models.RoleOther {
		app.OtherRole = ""
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if app.TourID != "" {
		if err = takeSeat(tx, app.TourID); err != nil {
			return nil, err
		}
	}

	insertQuery := `
		INSERT INTO applications (id, name, phone, email, city, grade, role, other_role, type, tour_id, status, message, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at`

	err = tx.QueryRow(insertQuery,
		app.ID,
		app.Name,
		app.Phone,
		app.Email,
		app.City,
		app.Grade,
		app.Role,
		app.OtherRole,
		app.Type,
		nullableID(app.TourID),
		app.Status,
		app.Message,
		app.Source,
	).Scan(&app.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if app.TourID != "" {
		app.Tour, err = tourRef(tx, app.TourID)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &app, nil
}

func (s *Storage) GetApplication(id string) (*models.Application, error) {
	query := selectApplications + ` WHERE a.id::text = $1`

	app, err := scanApplication(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// GetAllApplications returns a page of applications plus the total count
// for the filter.
func (s *Storage) GetAllApplications(filter storage.ApplicationFilter) ([]models.Application, int, error) {
	where, args := applicationWhere(filter.Status, filter.Role, filter.Type, filter.TourID)

	var total int
	countQuery := `SELECT COUNT(*) FROM applications a` + where
	if err := s.DB.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := selectApplications + where +
		` ORDER BY a.created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get applications: %w", err)
	}
	defer rows.Close()

	apps, err := collectApplications(rows)
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// ExportApplications returns all applications for the filter, newest first,
// without pagination.
func (s *Storage) ExportApplications(filter storage.ApplicationExportFilter) ([]models.Application, error) {
	where, args := applicationWhere(filter.Status, filter.Role, filter.Type, filter.TourID)

	joiner := " WHERE "
	if where != "" {
		joiner = " AND "
	}
	if filter.From != nil {
		where += joiner + "a.created_at >= $" + strconv.Itoa(len(args)+1)
		args = append(args, *filter.From)
		joiner = " AND "
	}
	if filter.To != nil {
		where += joiner + "a.created_at <= $" + strconv.Itoa(len(args)+1)
		args = append(args, *filter.To)
	}

	query := selectApplications + where + ` ORDER BY a.created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to export applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// UpdateApplication patches status and/or message. Entering CANCELLED from
// a seat-holding status restores the seat; leaving a released status back
// into an active one re-runs the admission check against the tour and fails
// if the seat cannot be re-reserved.
func (s *Storage) UpdateApplication(id string, patch storage.ApplicationPatch) (*models.Application, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		current models.ApplicationStatus
		tourID  sql.NullString
	)
	err = tx.QueryRow(`SELECT status, tour_id FROM applications WHERE id::text = $1 FOR UPDATE`, id).
		Scan(&current, &tourID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if patch.Status != nil && *patch.Status != current {
		next := *patch.Status

		if tourID.Valid {
			switch {
			case models.HoldsSeat(current) && next == models.ApplicationCancelled:
				if err = restoreSeat(tx, tourID.String); err != nil {
					return nil, err
				}
			case !models.HoldsSeat(current) && models.HoldsSeat(next):
				if err = takeSeat(tx, tourID.String); err != nil {
					return nil, err
				}
			}
		}

		if _, err = tx.Exec(`UPDATE applications SET status = $1 WHERE id = $2`, next, id); err != nil {
			return nil, fmt.Errorf("failed to update application status: %w", err)
		}
	}

	if patch.Message != nil {
		if _, err = tx.Exec(`UPDATE applications SET message = $1 WHERE id = $2`, *patch.Message, id); err != nil {
			return nil, fmt.Errorf("failed to update application message: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetApplication(id)
}

// DeleteApplication removes an application, restoring the tour seat when
// the row was still holding one.
func (s *Storage) DeleteApplication(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		current models.ApplicationStatus
		tourID  sql.NullString
	)
	err = tx.QueryRow(`SELECT status, tour_id FROM applications WHERE id::text = $1 FOR UPDATE`, id).
		Scan(&current, &tourID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrApplicationNotFound
		}
		return fmt.Errorf("failed to get application: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	if tourID.Valid && models.HoldsSeat(current) {
		if err = restoreSeat(tx, tourID.String); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// takeSeat performs the atomic conditional decrement. Zero rows affected
// means the admission must be refused; the tour row is re-read to tell
// "missing" from "closed" from "sold out".
func takeSeat(tx *sql.Tx, tourID string) error {
	res, err := tx.Exec(`
		UPDATE tours
		SET seats_left = seats_left - 1
		WHERE id = $1 AND status = $2 AND seats_left > 0`,
		tourID, models.TourOpen)
	if err != nil {
		return fmt.Errorf("failed to take seat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to take seat: %w", err)
	}
	if affected == 1 {
		return nil
	}

	var (
		status    models.TourStatus
		seatsLeft int
	)
	err = tx.QueryRow(`SELECT status, seats_left FROM tours WHERE id = $1`, tourID).
		Scan(&status, &seatsLeft)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrTourNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get tour: %w", err)
	}

	if status != models.TourOpen {
		return storage.ErrTourClosed
	}

	return storage.ErrNoSeatsAvailable
}

// restoreSeat increments seats_left, capped at the tour's capacity so admin
// seat edits can never push the counter above seats.
func restoreSeat(tx *sql.Tx, tourID string) error {
	_, err := tx.Exec(`
		UPDATE tours
		SET seats_left = LEAST(seats, seats_left + 1)
		WHERE id = $1`,
		tourID)
	if err != nil {
		return fmt.Errorf("failed to restore seat: %w", err)
	}

	return nil
}

func tourRef(tx *sql.Tx, tourID string) (*models.TourRef, error) {
	var ref models.TourRef
	err := tx.QueryRow(`SELECT id, title, city, start_date FROM tours WHERE id = $1`, tourID).
		Scan(&ref.ID, &ref.Title, &ref.City, &ref.StartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	return &ref, nil
}

const selectApplications = `
	SELECT a.id, a.name, a.phone, a.email, a.city, a.grade, a.role, a.other_role,
	       a.type, a.tour_id, a.status, a.message, a.source, a.created_at,
	       t.id, t.title, t.city, t.start_date
	FROM applications a
	LEFT JOIN tours t ON t.id = a.tour_id`

func applicationWhere(status models.ApplicationStatus, role models.ApplicantRole, appType models.ApplicationType, tourID string) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if status != "" {
		add("a.status", status)
	}
	if role != "" {
		add("a.role", role)
	}
	if appType != "" {
		add("a.type", appType)
	}
	if tourID != "" {
		add("a.tour_id::text", tourID)
	}

	if len(clauses) == 0 {
		return "", nil
	}

	where := " WHERE " + clauses[0]
	for _, clause := range clauses[1:] {
		where += " AND " + clause
	}

	return where, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		app      models.Application
		tourID   sql.NullString
		refID    sql.NullString
		refTitle sql.NullString
		refCity  sql.NullString
		refStart sql.NullTime
	)

	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Phone,
		&app.Email,
		&app.City,
		&app.Grade,
		&app.Role,
		&app.OtherRole,
		&app.Type,
		&tourID,
		&app.Status,
		&app.Message,
		&app.Source,
		&app.CreatedAt,
		&refID,
		&refTitle,
		&refCity,
		&refStart,
	)
	if err != nil {
		return nil, err
	}

	app.TourID = tourID.String
	if refID.Valid {
		app.Tour = &models.TourRef{
			ID:        refID.String,
			Title:     refTitle.String,
			City:      refCity.String,
			StartDate: refStart.Time,
		}
	}

	return &app, nil
}

func collectApplications(rows *sql.Rows) ([]models.Application, error) {
	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}

	return apps, nil
}

func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
