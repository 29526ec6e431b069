package persistent

import (
	"context"
	"errors"
	"fmt"

	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if err := r.db.WithContext(ctx).Create(adminModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("admin %q already exists: %w", admin.Email, entity.ErrConflict)
		}
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&adminModel).Error; err != nil {
		return nil, notFound(err, "admin", email)
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&adminModel).Error; err != nil {
		return nil, notFound(err, "admin", id)
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&model.AdminModel{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("admin", id)
	}
	return nil
}
