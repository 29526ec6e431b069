package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ToggleActive(ctx context.Context, id string) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, activeOnly bool) ([]*entity.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := ToCategoryModel(category)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueName(tx, categoryModel.Name, ""); err != nil {
			return err
		}
		return tx.Create(categoryModel).Error
	})
	if err != nil {
		return conflict(err, categoryModel.Name)
	}

	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, notFound(err, "category", id)
	}
	return ToCategoryEntity(&categoryModel), nil
}

// Update renames or re-describes a category. Courses carrying the old name are
// moved to the new one in the same transaction.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	categoryModel.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.CategoryModel
		if err := tx.Where("id = ?", categoryModel.ID).First(&current).Error; err != nil {
			return notFound(err, "category", categoryModel.ID)
		}

		if current.Name != categoryModel.Name {
			if err := ensureUniqueName(tx, categoryModel.Name, categoryModel.ID); err != nil {
				return err
			}
		}

		if err := tx.Model(&current).
			Select("name", "description", "is_active", "updated_at").
			Updates(categoryModel).Error; err != nil {
			return err
		}

		if current.Name != categoryModel.Name {
			return tx.Model(&model.CourseModel{}).
				Where("category = ?", current.Name).
				Updates(map[string]interface{}{
					"category":   categoryModel.Name,
					"updated_at": categoryModel.UpdatedAt,
				}).Error
		}
		return nil
	})
	if err != nil {
		return conflict(err, categoryModel.Name)
	}

	category.UpdatedAt = categoryModel.UpdatedAt
	return nil
}

func (r *categoryRepository) ToggleActive(ctx context.Context, id string) (*entity.Category, error) {
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  gorm.Expr("NOT is_active"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.NotFound("category", id)
	}
	return r.GetByID(ctx, id)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("category", id)
	}
	return nil
}

func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []model.CategoryModel
	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

// ExistsByName reports an exact, case-sensitive name match regardless of the active flag.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return categoryExists(r.db.WithContext(ctx), name)
}

// categoryExists is the single name match behind course writes and ExistsByName.
func categoryExists(tx *gorm.DB, name string) (bool, error) {
	var count int64
	if err := tx.Model(&model.CategoryModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ensureUniqueName(tx *gorm.DB, name, exceptID string) error {
	query := tx.Model(&model.CategoryModel{}).Where("name = ?", name)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func conflict(err error, name string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("category %q already exists: %w", name, entity.ErrConflict)
	}
	return err
}
