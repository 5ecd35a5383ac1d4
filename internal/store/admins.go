package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// GetAdminByEmail retrieves an admin user by email
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.GetContext(ctx, &admin, "SELECT * FROM admins WHERE email = $1", email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetAdminByUID retrieves an admin user by auth subject id
func (s *Store) GetAdminByUID(ctx context.Context, uid string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.db.GetContext(ctx, &admin, "SELECT * FROM admins WHERE uid = $1", uid)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin %s: %w", uid, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListAdmins retrieves all admin users
func (s *Store) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	var admins []models.AdminUser
	err := s.db.SelectContext(ctx, &admins, "SELECT * FROM admins ORDER BY created_at")
	return admins, err
}

// CreateAdmin inserts a new admin. The role is decided inside the insert
// statement itself: super_admin when the directory is empty, admin otherwise.
// A single statement keeps the emptiness check and the write atomic.
func (s *Store) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admins (uid, email, role, password_hash)
		VALUES ($1, $2,
			CASE WHEN EXISTS (SELECT 1 FROM admins) THEN 'admin' ELSE 'super_admin' END,
			$3)
		RETURNING role, created_at`

	row := s.db.QueryRowxContext(ctx, query, admin.UID, admin.Email, admin.PasswordHash)
	if err := row.Scan(&admin.Role, &admin.CreatedAt); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// CreateSuperAdmin inserts the bootstrap super_admin. Fails when the
// directory already has any user, so the setup command is one-shot.
func (s *Store) CreateSuperAdmin(ctx context.Context, admin *models.AdminUser) error {
	query := `
		INSERT INTO admins (uid, email, role, password_hash)
		SELECT $1, $2, 'super_admin', $3
		WHERE NOT EXISTS (SELECT 1 FROM admins)
		RETURNING role, created_at`

	row := s.db.QueryRowxContext(ctx, query, admin.UID, admin.Email, admin.PasswordHash)
	err := row.Scan(&admin.Role, &admin.CreatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("admin directory is not empty")
	}
	if err != nil {
		return fmt.Errorf("failed to bootstrap super admin: %w", err)
	}
	return nil
}

// UpdateAdminRole changes a user's role
func (s *Store) UpdateAdminRole(ctx context.Context, uid, role string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE admins SET role = $1 WHERE uid = $2", role, uid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("admin %s: %w", uid, models.ErrNotFound)
	}
	return nil
}
