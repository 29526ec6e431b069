package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chaseplus/internal/entity"
	"chaseplus/internal/repo/persistent"
	"chaseplus/pkg/logger"
)

const (
	DefaultPageSize      = 9
	DefaultAdminPageSize = 10
	MaxPageSize          = 100
)

// CourseInput carries course fields from a request. Nil fields are absent:
// Create treats them as empty, Update keeps the stored value.
type CourseInput struct {
	Title               *string
	Description         *string
	Category            *string
	Duration            *string
	Highlights          []string
	WhatYoullLearn      []string
	CareerOpportunities []string
	WhyChooseThisCourse []string
	Price               *float64
	OfferPrice          *float64
}

func (in CourseInput) applyTo(course *entity.Course) {
	if v := trimPtr(in.Title); v != nil {
		course.Title = *v
	}
	if v := trimPtr(in.Description); v != nil {
		course.Description = *v
	}
	if v := trimPtr(in.Category); v != nil {
		course.Category = *v
	}
	if v := trimPtr(in.Duration); v != nil {
		course.Duration = *v
	}
	if in.Highlights != nil {
		course.Highlights = in.Highlights
	}
	if in.WhatYoullLearn != nil {
		course.WhatYoullLearn = in.WhatYoullLearn
	}
	if in.CareerOpportunities != nil {
		course.CareerOpportunities = in.CareerOpportunities
	}
	if in.WhyChooseThisCourse != nil {
		course.WhyChooseThisCourse = in.WhyChooseThisCourse
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
	if in.OfferPrice != nil {
		offer := *in.OfferPrice
		course.OfferPrice = &offer
	}
}

// ListQuery selects one page of a listing.
type ListQuery struct {
	Page            int
	Limit           int
	Search          string
	IncludeInactive bool
}

func (q ListQuery) normalize(defaultLimit int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

type CourseUseCase interface {
	Create(ctx context.Context, input CourseInput, image *entity.ImageFile) (*entity.Course, error)
	Update(ctx context.Context, id string, input CourseInput, image *entity.ImageFile) (*entity.Course, error)
	ToggleActive(ctx context.Context, id string) (*entity.Course, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Course, error)
	ListByCategory(ctx context.Context, category string) ([]entity.CourseSummary, error)
	ListPaged(ctx context.Context, query ListQuery) (*entity.Page[*entity.Course], error)
	ListActive(ctx context.Context) ([]*entity.Course, error)
}

type courseUseCase struct {
	courseRepo  persistent.CourseRepository
	assets      AssetStore
	events      EventPublisher
	logger      *logger.Logger
	imagePrefix string
}

func NewCourseUseCase(
	courseRepo persistent.CourseRepository,
	assets AssetStore,
	events EventPublisher,
	logger *logger.Logger,
	imagePrefix string,
) CourseUseCase {
	return &courseUseCase{
		courseRepo:  courseRepo,
		assets:      assets,
		events:      events,
		logger:      logger,
		imagePrefix: imagePrefix,
	}
}

// Create runs the ordered steps: auth, image presence, defaults and structural
// validation, upload, then the transactional category check and insert. An upload
// followed by an unknown category leaves the asset behind.
func (uc *courseUseCase) Create(ctx context.Context, input CourseInput, image *entity.ImageFile) (*entity.Course, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if !hasImage(image) {
		return nil, entity.ErrMissingImage
	}

	course := &entity.Course{IsActive: true}
	input.applyTo(course)
	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if input.Price == nil {
		return nil, entity.NewValidationError("price", "is required")
	}

	asset, err := uploadImage(ctx, uc.assets, uc.imagePrefix, image)
	if err != nil {
		return nil, err
	}
	course.Image = asset.URL
	course.ImageKey = asset.Key

	if err := uc.courseRepo.Create(ctx, course); err != nil {
		uc.logger.Warn("Course image %s left without a course: %v", asset.Key, err)
		publishEvent(ctx, uc.events, uc.logger, orphanedAsset("", asset.Key, asset.URL, "course create failed"))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	uc.logger.Info("Course created: id=%s, category=%s", course.ID, course.Category)
	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventCourseCreated, course.ID))
	return course, nil
}

// Update merges the present fields into the stored course. A replacement image is
// uploaded and the superseded asset is reported as orphaned, not deleted.
func (uc *courseUseCase) Update(ctx context.Context, id string, input CourseInput, image *entity.ImageFile) (*entity.Course, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previousCategory := course.Category
	previousImage, previousKey := course.Image, course.ImageKey

	input.applyTo(course)
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	var asset *entity.Asset
	if hasImage(image) {
		asset, err = uploadImage(ctx, uc.assets, uc.imagePrefix, image)
		if err != nil {
			return nil, err
		}
		course.Image = asset.URL
		course.ImageKey = asset.Key
	}

	if err := uc.courseRepo.Update(ctx, course, course.Category != previousCategory); err != nil {
		if asset != nil {
			publishEvent(ctx, uc.events, uc.logger, orphanedAsset(id, asset.Key, asset.URL, "course update failed"))
		}
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	if asset != nil {
		publishEvent(ctx, uc.events, uc.logger, orphanedAsset(id, assetKey(previousKey, previousImage), previousImage, "course image replaced"))
	}
	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventCourseUpdated, course.ID))
	return course, nil
}

func (uc *courseUseCase) ToggleActive(ctx context.Context, id string) (*entity.Course, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	course, err := uc.courseRepo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventCourseUpdated, course.ID))
	return course, nil
}

// Delete removes the course record. Its image stays in the asset store.
func (uc *courseUseCase) Delete(ctx context.Context, id string) error {
	if _, err := requireAdmin(ctx); err != nil {
		return err
	}

	course, err := uc.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("Course deleted: id=%s, image %s retained", id, assetKey(course.ImageKey, course.Image))
	publishEvent(ctx, uc.events, uc.logger, entity.NewContentEvent(entity.EventCourseDeleted, id))
	publishEvent(ctx, uc.events, uc.logger, orphanedAsset(id, assetKey(course.ImageKey, course.Image), course.Image, "course deleted"))
	return nil
}

func (uc *courseUseCase) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

func (uc *courseUseCase) ListByCategory(ctx context.Context, category string) ([]entity.CourseSummary, error) {
	summaries, err := uc.courseRepo.ListSummariesByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []entity.CourseSummary{}
	}
	return summaries, nil
}

// ListPaged lists newest first. Public queries only see active courses.
func (uc *courseUseCase) ListPaged(ctx context.Context, query ListQuery) (*entity.Page[*entity.Course], error) {
	defaultLimit := DefaultPageSize
	if query.IncludeInactive {
		defaultLimit = DefaultAdminPageSize
	}
	query = query.normalize(defaultLimit)

	filter := persistent.CourseFilter{
		Search:     query.Search,
		ActiveOnly: !query.IncludeInactive,
	}
	courses, total, err := uc.courseRepo.List(ctx, filter, query.Limit, entity.Offset(query.Page, query.Limit))
	if err != nil {
		return nil, err
	}
	return entity.NewPage(courses, query.Page, query.Limit, total), nil
}

func (uc *courseUseCase) ListActive(ctx context.Context) ([]*entity.Course, error) {
	courses, _, err := uc.courseRepo.List(ctx, persistent.CourseFilter{ActiveOnly: true}, 0, 0)
	return courses, err
}
