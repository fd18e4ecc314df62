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

func (s *Storage) CreateStudent(student models.Student) (*models.Student, error) {
	if student.TourID != "" {
		if _, err := uuid.Parse(student.TourID); err != nil {
			return nil, storage.ErrTourNotFound
		}
	}

	student.ID = uuid.NewString()
	student.Status = models.StudentRegistered

	query := `
		INSERT INTO students (id, full_name, phone, city, school, grade, age, language, direction, preferred_unis,
		                      parent_name, parent_phone, parent_phone_backup, contact_parent, allergies,
		                      travel_experience, tour_id, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at`

	err := s.DB.QueryRow(query,
		student.ID,
		student.FullName,
		student.Phone,
		student.City,
		student.School,
		student.Grade,
		student.Age,
		student.Language,
		student.Direction,
		student.PreferredUnis,
		student.ParentName,
		student.ParentPhone,
		student.ParentPhoneBackup,
		student.ContactParent,
		student.Allergies,
		student.TravelExperience,
		nullableID(student.TourID),
		student.Status,
		student.Notes,
	).Scan(&student.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return &student, nil
}

func (s *Storage) GetStudent(id string) (*models.Student, error) {
	row := s.DB.QueryRow(selectStudents+` WHERE id::text = $1`, id)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return student, nil
}

// GetAllStudents returns a page of students plus the total count. Search
// matches full name, phone, parent name and school, case-insensitively.
func (s *Storage) GetAllStudents(filter storage.StudentFilter) ([]models.Student, int, error) {
	var (
		clauses []string
		args    []any
	)

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, column+" = $"+strconv.Itoa(len(args)))
	}

	if filter.Status != "" {
		add("status", filter.Status)
	}
	if filter.TourID != "" {
		add("tour_id::text", filter.TourID)
	}
	if filter.City != "" {
		add("city", filter.City)
	}
	if filter.Grade != "" {
		add("grade", filter.Grade)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		clauses = append(clauses,
			"(full_name ILIKE $"+n+" OR phone LIKE $"+n+" OR parent_name ILIKE $"+n+" OR school ILIKE $"+n+")")
	}

	where := ""
	for i, clause := range clauses {
		if i == 0 {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	var total int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	query := selectStudents + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get students: %w", err)
	}
	defer rows.Close()

	students, err := collectStudents(rows)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetStudentBoard groups students into kanban columns, one per pipeline
// status, newest first within a column. An empty tourID means all tours.
func (s *Storage) GetStudentBoard(tourID string) ([]storage.StudentBoardColumn, error) {
	query := selectStudents
	var args []any
	if tourID != "" {
		query += ` WHERE tour_id::text = $1`
		args = append(args, tourID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	defer rows.Close()

	students, err := collectStudents(rows)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.StudentStatus][]models.Student)
	for _, student := range students {
		byStatus[student.Status] = append(byStatus[student.Status], student)
	}

	columns := make([]storage.StudentBoardColumn, 0, len(models.StudentPipeline))
	for _, status := range models.StudentPipeline {
		inStatus := byStatus[status]
		if inStatus == nil {
			inStatus = []models.Student{}
		}
		columns = append(columns, storage.StudentBoardColumn{
			Status:   status,
			Count:    len(inStatus),
			Students: inStatus,
		})
	}

	return columns, nil
}

// UpdateStudent applies a partial edit. Status changes are validated
// against the pipeline order; no seat accounting is attached to students.
func (s *Storage) UpdateStudent(id string, upd storage.StudentUpdate) (*models.Student, error) {
	if upd.TourID != nil && *upd.TourID != "" {
		if _, err := uuid.Parse(*upd.TourID); err != nil {
			return nil, storage.ErrTourNotFound
		}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current models.StudentStatus
	err = tx.QueryRow(`SELECT status FROM students WHERE id::text = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if upd.Status != nil && !models.CanTransitionStudent(current, *upd.Status) {
		return nil, storage.ErrInvalidTransition
	}

	var (
		sets []string
		args []any
	)

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if upd.FullName != nil {
		set("full_name", *upd.FullName)
	}
	if upd.Phone != nil {
		set("phone", *upd.Phone)
	}
	if upd.City != nil {
		set("city", *upd.City)
	}
	if upd.School != nil {
		set("school", *upd.School)
	}
	if upd.Grade != nil {
		set("grade", *upd.Grade)
	}
	if upd.Age != nil {
		set("age", *upd.Age)
	}
	if upd.Language != nil {
		set("language", *upd.Language)
	}
	if upd.Direction != nil {
		set("direction", *upd.Direction)
	}
	if upd.PreferredUnis != nil {
		set("preferred_unis", *upd.PreferredUnis)
	}
	if upd.ParentName != nil {
		set("parent_name", *upd.ParentName)
	}
	if upd.ParentPhone != nil {
		set("parent_phone", *upd.ParentPhone)
	}
	if upd.ParentPhoneBackup != nil {
		set("parent_phone_backup", *upd.ParentPhoneBackup)
	}
	if upd.ContactParent != nil {
		set("contact_parent", *upd.ContactParent)
	}
	if upd.Allergies != nil {
		set("allergies", *upd.Allergies)
	}
	if upd.TravelExperience != nil {
		set("travel_experience", *upd.TravelExperience)
	}
	if upd.TourID != nil {
		set("tour_id", nullableID(*upd.TourID))
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Notes != nil {
		set("notes", *upd.Notes)
	}

	if len(sets) > 0 {
		query := "UPDATE students SET " + sets[0]
		for _, clause := range sets[1:] {
			query += ", " + clause
		}
		args = append(args, id)
		query += " WHERE id = $" + strconv.Itoa(len(args))

		if _, err = tx.Exec(query, args...); err != nil {
			return nil, fmt.Errorf("failed to update student: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.GetStudent(id)
}

func (s *Storage) DeleteStudent(id string) error {
	res, err := s.DB.Exec(`DELETE FROM students WHERE id::text = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if affected == 0 {
		return storage.ErrStudentNotFound
	}

	return nil
}

const selectStudents = `
	SELECT id, full_name, phone, city, school, grade, age, language, direction, preferred_unis,
	       parent_name, parent_phone, parent_phone_backup, contact_parent, allergies,
	       travel_experience, tour_id, status, notes, created_at
	FROM students`

func scanStudent(row rowScanner) (*models.Student, error) {
	var (
		student models.Student
		tourID  sql.NullString
	)

	err := row.Scan(
		&student.ID,
		&student.FullName,
		&student.Phone,
		&student.City,
		&student.School,
		&student.Grade,
		&student.Age,
		&student.Language,
		&student.Direction,
		&student.PreferredUnis,
		&student.ParentName,
		&student.ParentPhone,
		&student.ParentPhoneBackup,
		&student.ContactParent,
		&student.Allergies,
		&student.TravelExperience,
		&tourID,
		&student.Status,
		&student.Notes,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	student.TourID = tourID.String

	return &student, nil
}

func collectStudents(rows *sql.Rows) ([]models.Student, error) {
	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}
