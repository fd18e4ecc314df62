package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"
)

func (s *Storage) GetUniversity(idOrSlug string) (*models.University, error) {
	query := `
		SELECT id, slug, name, city, type, description, grants, paid, website
		FROM universities
		WHERE id::text = $1 OR slug = $1`

	var uni models.University
	err := s.DB.QueryRow(query, idOrSlug).Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("failed to get university: %w", err)
	}

	return &uni, nil
}

func (s *Storage) GetAllUniversities(filter storage.UniversityFilter) ([]models.University, error) {
	query := `
		SELECT id, slug, name, city, type, description, grants, paid, website
		FROM universities`

	var args []any

	if filter.City != "" {
		args = append(args, filter.City)
		query += " WHERE city = $" + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		if len(args) == 1 {
			query += " WHERE "
		} else {
			query += " AND "
		}
		query += "type = $" + strconv.Itoa(len(args))
	}

	query += " ORDER BY name ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get universities: %w", err)
	}
	defer rows.Close()

	var unis []models.University
	for rows.Next() {
		var uni models.University
		err = rows.Scan(
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
			return nil, fmt.Errorf("failed to scan university: %w", err)
		}
		unis = append(unis, uni)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating universities: %w", err)
	}

	return unis, nil
}
