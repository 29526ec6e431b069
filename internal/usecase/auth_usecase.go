package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/internal/repo/persistent"
	"chaseplus/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*entity.Admin, string, error)
	// GetAdmin loads the signed-in admin and refuses deactivated accounts.
	GetAdmin(ctx context.Context) (*entity.Admin, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	// EnsureAdmin creates the admin account when no admin with email exists.
	EnsureAdmin(ctx context.Context, email, password, name string) (*entity.Admin, bool, error)
}

type authUseCase struct {
	adminRepo persistent.AdminRepository
	tokens    TokenIssuer
	logger    *logger.Logger
}

func NewAuthUseCase(adminRepo persistent.AdminRepository, tokens TokenIssuer, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.Admin, string, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	if !admin.IsActive {
		return nil, "", fmt.Errorf("account is deactivated: %w", entity.ErrUnauthorized)
	}

	token, err := uc.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	uc.logger.Info("Admin logged in: id=%s", admin.ID)
	admin.Password = ""
	return admin, token, nil
}

func (uc *authUseCase) GetAdmin(ctx context.Context) (*entity.Admin, error) {
	principal, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	admin, err := uc.adminRepo.GetByID(ctx, principal.AdminID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrUnauthorized
		}
		return nil, err
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("account is deactivated: %w", entity.ErrUnauthorized)
	}
	admin.Password = ""
	return admin, nil
}

func (uc *authUseCase) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	principal, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return entity.NewValidationError("new_password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	admin, err := uc.adminRepo.GetByID(ctx, principal.AdminID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(currentPassword)); err != nil {
		return fmt.Errorf("invalid credentials: %w", entity.ErrUnauthorized)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return fmt.Errorf("failed to process password")
	}
	return uc.adminRepo.UpdatePassword(ctx, admin.ID, string(hashed))
}

func (uc *authUseCase) EnsureAdmin(ctx context.Context, email, password, name string) (*entity.Admin, bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, false, entity.NewValidationError("email", "is required")
	}

	existing, err := uc.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		existing.Password = ""
		return existing, false, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, false, err
	}

	if len(password) < minPasswordLength {
		return nil, false, entity.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.Admin{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: string(hashed),
		IsActive: true,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, false, err
	}

	uc.logger.Info("Admin account created: id=%s, email=%s", admin.ID, admin.Email)
	admin.Password = ""
	return admin, true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
