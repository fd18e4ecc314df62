package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bekmanvision/uniqer/internal/models"
	"github.com/bekmanvision/uniqer/internal/storage"

	"github.com/google/uuid"
)

func (s *Storage) GetAdminByEmail(email string) (*models.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, role, created_at
		FROM admins
		WHERE email = $1`

	var admin models.Admin
	err := s.DB.QueryRow(query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.Role,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return &admin, nil
}

func (s *Storage) CountAdmins() (int, error) {
	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateAdmin(email, name, passwordHash string, role models.AdminRole) (string, error) {
	id := uuid.NewString()

	_, err := s.DB.Exec(`
		INSERT INTO admins (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`,
		id, email, name, passwordHash, role)
	if err != nil {
		return "", fmt.Errorf("failed to create admin: %w", err)
	}

	return id, nil
}
