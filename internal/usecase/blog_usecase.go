package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/repo/persistent"
	"chaseplus/pkg/logger"
)

const DefaultRecentBlogs = 3

// BlogInput is the full editable field set of a blog. MetaTitle and MetaDescription
// may be empty on create, where they are derived from Title and Description.
type BlogInput struct {
	Title           string
	Category        string
	Date            time.Time
	Description     string
	Content         string
	MetaTitle       string
	MetaDescription string
	Author          string
	IsPublished     bool
}

func (in BlogInput) applyTo(blog *entity.Blog) {
	blog.Title = strings.TrimSpace(in.Title)
	blog.Category = strings.TrimSpace(in.Category)
	blog.Date = in.Date
	blog.Description = strings.TrimSpace(in.Description)
	blog.Content = in.Content
	blog.MetaTitle = strings.TrimSpace(in.MetaTitle)
	blog.MetaDescription = strings.TrimSpace(in.MetaDescription)
	blog.Author = strings.TrimSpace(in.Author)
	blog.IsPublished = in.IsPublished
}

type BlogUseCase interface {
	Create(ctx context.Context, input BlogInput, image *entity.ImageFile) (*entity.Blog, error)
	Update(ctx context.Context, id string, input BlogInput, image *entity.ImageFile) (*entity.Blog, error)
	TogglePublished(ctx context.Context, id string) (*entity.Blog, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	View(ctx context.Context, id, visitor string) (*entity.Blog, error)
	ListPublishedRecent(ctx context.Context, limit int) ([]*entity.Blog, error)
	ListPaged(ctx context.Context, query ListQuery) (*entity.Page[*entity.Blog], error)
	ListAll(ctx context.Context) ([]*entity.Blog, error)
}

type blogUseCase struct {
	blogRepo    persistent.BlogRepository
	assets      AssetStore
	events      EventPublisher
	views       ViewTracker
	logger      *logger.Logger
	imagePrefix string
}

func NewBlogUseCase(
	blogRepo persistent.BlogRepository,
	assets AssetStore,
	events EventPublisher,
	views ViewTracker,
	logger *logger.Logger,
	imagePrefix string,
) BlogUseCase {
	return &blogUseCase{
		blogRepo:    blogRepo,
		assets:      assets,
		events:      events,
		views:       views,
		logger:      logger,
		imagePrefix: imagePrefix,
	}
}

// Create derives missing meta fields once, validates, uploads the image and persists.
func (uc *blogUseCase) Create(ctx context.Context, input BlogInput, image *entity.ImageFile) (*entity.Blog, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	blog := &entity.Blog{}
	input.applyTo(blog)
	blog.ApplyMetaDefaults()
	if err := validateBlog(blog); err != nil {
		return nil, err
	}
	if !hasImage(image) {
		return nil, entity.ErrMissingImage
	}

	asset, err := uploadImage(ctx, uc.assets, uc.imagePrefix, image)
	if err != nil {
		return nil, err
	}
	blog.ImageURL = asset.URL
	blog.ImageKey = asset.Key

	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		publishEvent(ctx, uc.events, uc.logger, orphanedAsset("", asset.Key, asset.URL, "blog create failed"))
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	uc.logger.Info("Blog created: id=%s, published=%t", blog.ID, blog.IsPublished)
	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventBlogCreated, blog.ID))
	return blog, nil
}

// Update replaces every editable field. Meta fields are never re-derived here.
// A new image is stored before the previous one is removed.
func (uc *blogUseCase) Update(ctx context.Context, id string, input BlogInput, image *entity.ImageFile) (*entity.Blog, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousURL, previousKey := blog.ImageURL, blog.ImageKey
	input.applyTo(blog)
	if err := validateBlog(blog); err != nil {
		return nil, err
	}

	var asset *entity.Asset
	if hasImage(image) {
		asset, err = uploadImage(ctx, uc.assets, uc.imagePrefix, image)
		if err != nil {
			return nil, err
		}
		blog.ImageURL = asset.URL
		blog.ImageKey = asset.Key
	}

	if err := uc.blogRepo.Update(ctx, blog); err != nil {
		if asset != nil {
			publishEvent(ctx, uc.events, uc.logger, orphanedAsset(id, asset.Key, asset.URL, "blog update failed"))
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	if asset != nil {
		uc.deleteAsset(ctx, previousKey, previousURL)
	}
	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventBlogUpdated, blog.ID))
	return blog, nil
}

func (uc *blogUseCase) TogglePublished(ctx context.Context, id string) (*entity.Blog, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	blog, err := uc.blogRepo.TogglePublished(ctx, id)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventBlogUpdated, blog.ID))
	return blog, nil
}

// Delete removes the image best-effort, then the record.
func (uc *blogUseCase) Delete(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	uc.deleteAsset(ctx, blog.ImageKey, blog.ImageURL)

	if err := uc.blogRepo.Delete(ctx, id); err != nil {
		return err
	}

	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventBlogDeleted, id))
	return nil
}

func (uc *blogUseCase) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	return uc.blogRepo.GetByID(ctx, id)
}

// View returns a blog for public display and counts the view once per visitor per window.
// Unpublished blogs are reported as not found.
func (uc *blogUseCase) View(ctx context.Context, id, visitor string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !blog.IsPublished {
		return nil, entity.NotFound("blog", id)
	}
	if uc.views == nil || visitor == "" {
		return blog, nil
	}

	first, err := uc.views.FirstView(ctx, id, visitor)
	if err != nil {
		uc.logger.Warn("Failed to de-duplicate view of blog %s: %v", id, err)
		return blog, nil
	}
	if first {
		if err := uc.blogRepo.IncrementViews(ctx, id); err != nil {
			uc.logger.Warn("Failed to increment views of blog %s: %v", id, err)
			return blog, nil
		}
		blog.Views++
	}
	return blog, nil
}

func (uc *blogUseCase) ListPublishedRecent(ctx context.Context, limit int) ([]*entity.Blog, error) {
	if limit < 1 {
		limit = DefaultRecentBlogs
	}
	blogs, _, err := uc.blogRepo.ListPublished(ctx, limit, 0)
	return blogs, err
}

func (uc *blogUseCase) ListPaged(ctx context.Context, query ListQuery) (*entity.Page[*entity.Blog], error) {
	query = query.normalize(DefaultPageSize)

	blogs, total, err := uc.blogRepo.ListPublished(ctx, query.Limit, entity.Offset(query.Page, query.Limit))
	if err != nil {
		return nil, err
	}
	return entity.NewPage(blogs, query.Page, query.Limit, total), nil
}

func (uc *blogUseCase) ListAll(ctx context.Context) ([]*entity.Blog, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return uc.blogRepo.ListAll(ctx)
}

// deleteAsset removes the blog image from the asset store, logging and swallowing failures.
// Rows without a stored key fall back to the id derived from the URL. Stores key objects
// as <prefix>/<uuid><ext>, so that id usually misses and the store reports no error.
func (uc *blogUseCase) deleteAsset(ctx context.Context, key, url string) {
	if key == "" {
		key = entity.AssetIDFromURL(url)
		if key == "" {
			uc.logger.Warn("Blog image has no usable asset key, skipping delete")
			return
		}
		uc.logger.Warn("Blog image %s has no stored key, deleting legacy id %s; the object may be left behind", url, key)
	}
	if err := uc.assets.Delete(ctx, key); err != nil {
		assetErr := &entity.AssetError{Op: "delete", Key: key, Err: err}
		uc.logger.Error("Failed to delete blog image: %v", assetErr)
	}
}
