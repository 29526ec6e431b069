package usecase

import (
	"context"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/internal/repo/persistent"
	"chaseplus/pkg/logger"
)

type CategoryInput struct {
	Name        string
	Description string
}

type CategoryUseCase interface {
	// ValidateCourseCategory matches name exactly against every category, active or not.
	ValidateCourseCategory(ctx context.Context, name string) error
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, input CategoryInput) (*entity.Category, error)
	ToggleActive(ctx context.Context, id string) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository, logger *logger.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ValidateCourseCategory is the read-side form of the check course writes run inside
// their transaction. Both use the same exact, case-sensitive name match.
func (uc *categoryUseCase) ValidateCourseCategory(ctx context.Context, name string) error {
	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return &entity.CategoryError{Name: name}
	}
	return nil
}

func (uc *categoryUseCase) Create(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	category := &entity.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
	}
	if err := validateStruct(categoryRules{Name: category.Name}); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	uc.logger.Info("Category created: id=%s, name=%s", category.ID, category.Name)
	return category, nil
}

// Update renames or re-describes a category. Courses follow a rename.
func (uc *categoryUseCase) Update(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if err := validateStruct(categoryRules{Name: name}); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousName := category.Name
	category.Name = name
	category.Description = strings.TrimSpace(input.Description)

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	if previousName != category.Name {
		uc.logger.Info("Category renamed: id=%s, %q -> %q", id, previousName, category.Name)
	}
	return category, nil
}

func (uc *categoryUseCase) ToggleActive(ctx context.Context, id string) (*entity.Category, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.categoryRepo.ToggleActive(ctx, id)
}

func (uc *categoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *categoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *categoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx, false)
}

func (uc *categoryUseCase) ListActive(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx, true)
}
