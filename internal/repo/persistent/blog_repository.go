package persistent

import (
	"context"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	Update(ctx context.Context, blog *entity.Blog) error
	TogglePublished(ctx context.Context, id string) (*entity.Blog, error)
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, limit, offset int) ([]*entity.Blog, int64, error)
	ListAll(ctx context.Context) ([]*entity.Blog, error)
	IncrementViews(ctx context.Context, id string) error
	ImageKeys(ctx context.Context) ([]string, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	if err := r.db.WithContext(ctx).Create(blogModel).Error; err != nil {
		return err
	}
	*blog = *ToBlogEntity(blogModel)
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	var blogModel model.BlogModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&blogModel).Error; err != nil {
		return nil, notFound(err, "blog", id)
	}
	return ToBlogEntity(&blogModel), nil
}

// Update replaces the editable columns. Views are left to IncrementViews.
func (r *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogModel := ToBlogModel(blog)
	blogModel.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).Model(&model.BlogModel{ID: blogModel.ID}).
		Select("*").
		Omit("id", "views", "created_at").
		Updates(blogModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("blog", blogModel.ID)
	}

	blog.UpdatedAt = blogModel.UpdatedAt
	return nil
}

func (r *blogRepository) TogglePublished(ctx context.Context, id string) (*entity.Blog, error) {
	result := r.db.WithContext(ctx).Model(&model.BlogModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_published": gorm.Expr("NOT is_published"),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, entity.NotFound("blog", id)
	}
	return r.GetByID(ctx, id)
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("blog", id)
	}
	return nil
}

// ListPublished returns published blogs newest first together with the published total.
func (r *blogRepository) ListPublished(ctx context.Context, limit, offset int) ([]*entity.Blog, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.BlogModel{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogModels []model.BlogModel
	if err := paginate(query.Order("created_at DESC"), limit, offset).Find(&blogModels).Error; err != nil {
		return nil, 0, err
	}
	return toBlogEntities(blogModels), total, nil
}

func (r *blogRepository) ListAll(ctx context.Context) ([]*entity.Blog, error) {
	var blogModels []model.BlogModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&blogModels).Error; err != nil {
		return nil, err
	}
	return toBlogEntities(blogModels), nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&model.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.NotFound("blog", id)
	}
	return nil
}

func (r *blogRepository) ImageKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Model(&model.BlogModel{}).
		Where("image_key <> ''").
		Pluck("image_key", &keys).Error
	return keys, err
}

func toBlogEntities(blogModels []model.BlogModel) []*entity.Blog {
	blogs := make([]*entity.Blog, len(blogModels))
	for i := range blogModels {
		blogs[i] = ToBlogEntity(&blogModels[i])
	}
	return blogs
}
