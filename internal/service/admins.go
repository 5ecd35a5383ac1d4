package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tayaudrey222/yumstation/internal/auth"
	"github.com/tayaudrey222/yumstation/internal/authz"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminService is the admin directory: registration, login, role changes.
type AdminService struct {
	admins  AdminStore
	auditor *Auditor
	tokens  *auth.Service
	logger  *zap.Logger
}

func NewAdminService(admins AdminStore, auditor *Auditor, tokens *auth.Service) *AdminService {
	return &AdminService{
		admins:  admins,
		auditor: auditor,
		tokens:  tokens,
		logger:  util.GetLogger(),
	}
}

// Register creates an admin user. The backing store decides the role
// atomically: super_admin when the directory is empty, admin otherwise.
func (s *AdminService) Register(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", models.ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", models.ErrValidation)
	}

	existing, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", models.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.AdminUser{
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.admins.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, models.AuditEntry{
		Type:        models.AuditAdminCreated,
		ActorID:     admin.UID,
		ActorEmail:  admin.Email,
		TargetID:    admin.UID,
		TargetEmail: admin.Email,
		Details:     fmt.Sprintf("registered with role %s", admin.Role),
	})

	s.logger.Info("Admin registered",
		zap.String("uid", admin.UID),
		zap.String("role", admin.Role))
	return admin, nil
}

// Login checks the credentials and issues a signed identity token
func (s *AdminService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if admin == nil {
		return "", nil, auth.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.IssueToken(models.Identity{
		UID:   admin.UID,
		Email: admin.Email,
		Role:  admin.Role,
	})
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Lookup returns the admin for an email, or nil
func (s *AdminService) Lookup(ctx context.Context, email string) (*models.AdminUser, error) {
	return s.admins.GetAdminByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// List returns all admin users
func (s *AdminService) List(ctx context.Context) ([]models.AdminUser, error) {
	return s.admins.ListAdmins(ctx)
}

// SetRole changes another user's role. Only a super_admin may call it and
// never on their own account.
func (s *AdminService) SetRole(ctx context.Context, actor models.Identity, targetUID, role string) error {
	if err := authz.Require(actor.Role, authz.ActionRoleChange); err != nil {
		return err
	}
	if targetUID == actor.UID {
		return fmt.Errorf("cannot change own role: %w", models.ErrForbidden)
	}
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		return fmt.Errorf("unknown role %q: %w", role, models.ErrValidation)
	}

	target, err := s.admins.GetAdminByUID(ctx, targetUID)
	if err != nil {
		return err
	}

	if err := s.admins.UpdateAdminRole(ctx, targetUID, role); err != nil {
		return err
	}

	s.auditor.Record(ctx, models.AuditEntry{
		Type:        models.AuditRoleChanged,
		ActorID:     actor.UID,
		ActorEmail:  actor.Email,
		TargetID:    target.UID,
		TargetEmail: target.Email,
		Details:     fmt.Sprintf("role %s -> %s", target.Role, role),
	})

	s.logger.Info("Admin role changed",
		zap.String("actor", actor.UID),
		zap.String("target", targetUID),
		zap.String("role", role))
	return nil
}
