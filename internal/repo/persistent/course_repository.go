package persistent

import (
	"context"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"gorm.io/gorm"
)

// CourseFilter narrows course listings. Search matches title or category.
type CourseFilter struct {
	Search     string
	Category   string
	ActiveOnly bool
}

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	Update(ctx context.Context, course *entity.Course, checkCategory bool) error
	ToggleActive(ctx context.Context, id string) (*entity.Course, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter CourseFilter, limit, offset int) ([]*entity.Course, int64, error)
	ListSummariesByCategory(ctx context.Context, category string) ([]entity.CourseSummary, error)
	ImageKeys(ctx context.Context) ([]string, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create verifies the category and inserts the course in one transaction.
func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseModel := ToCourseModel(course)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCategory(tx, courseModel.Category); err != nil {
			return err
		}
		if err := tx.Create(courseModel).Error; err != nil {
			return err
		}

		*course = *ToCourseEntity(courseModel)
		return nil
	})
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	var courseModel model.CourseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&courseModel).Error; err != nil {
		return nil, notFound(err, "course", id)
	}
	return ToCourseEntity(&courseModel), nil
}

// Update writes every column of course. When checkCategory is set the category
// must exist at write time.
func (r *courseRepository) Update(ctx context.Context, course *entity.Course, checkCategory bool) error {
	courseModel := ToCourseModel(course)
	courseModel.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if checkCategory {
			if err := requireCategory(tx, courseModel.Category); err != nil {
				return err
			}
		}

		result := tx.Model(&model.CourseModel{ID: courseModel.ID}).
			Select("*").
			Omit("id", "created_at").
			Updates(courseModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.NotFound("course", courseModel.ID)
		}

		course.UpdatedAt = courseModel.UpdatedAt
		return nil
	})
}

func (r *courseRepository) ToggleActive(ctx context.Context, id string) (*entity.Course, error) {
	db := r.db.WithContext(ctx)
	result := db.Model(&model.CourseModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  gorm.Expr("NOT is_active"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.NotFound("course", id)
	}
	return r.GetByID(ctx, id)
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("course", id)
	}
	return nil
}

func (r *courseRepository) List(ctx context.Context, filter CourseFilter, limit, offset int) ([]*entity.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CourseModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courseModels []model.CourseModel
	if err := paginate(query.Order("created_at DESC"), limit, offset).Find(&courseModels).Error; err != nil {
		return nil, 0, err
	}

	courses := make([]*entity.Course, len(courseModels))
	for i := range courseModels {
		courses[i] = ToCourseEntity(&courseModels[i])
	}
	return courses, total, nil
}

func (r *courseRepository) ListSummariesByCategory(ctx context.Context, category string) ([]entity.CourseSummary, error) {
	var summaries []entity.CourseSummary
	err := r.db.WithContext(ctx).Model(&model.CourseModel{}).
		Select("id", "title").
		Where("category = ? AND is_active = ?", category, true).
		Order("created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *courseRepository) ImageKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&model.CourseModel{}).
		Where("image_key <> ''").
		Pluck("image_key", &keys).Error
	return keys, err
}

func requireCategory(tx *gorm.DB, name string) error {
	exists, err := categoryExists(tx, name)
	if err != nil {
		return err
	}
	if !exists {
		return &entity.CategoryError{Name: name}
	}
	return nil
}
