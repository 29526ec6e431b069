package persistent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.CourseModel{},
		&model.BlogModel{},
		&model.CategoryModel{},
		&model.AdminModel{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestCourse(title, category string) *entity.Course {
	return &entity.Course{
		Title:               title,
		Description:         "Learn " + title,
		Category:            category,
		Image:               "https://cdn.example/course-images/" + title + ".png",
		ImageKey:            "course-images/" + title + ".png",
		Highlights:          []string{"a"},
		WhatYoullLearn:      []string{"b"},
		CareerOpportunities: []string{"c"},
		WhyChooseThisCourse: []string{"d"},
		Price:               100,
		IsActive:            true,
	}
}

func seedCategory(t *testing.T, repo CategoryRepository, name string) *entity.Category {
	t.Helper()
	category := &entity.Category{Name: name, IsActive: true}
	require.NoError(t, repo.Create(context.Background(), category))
	return category
}

func TestCourseRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedCategory(t, NewCategoryRepository(db), "Web Dev")
	repo := NewCourseRepository(db)

	course := newTestCourse("Go", "Web Dev")
	require.NoError(t, repo.Create(ctx, course))
	assert.NotEmpty(t, course.ID)

	stored, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", stored.Title)
	assert.Equal(t, []string{"a"}, stored.Highlights)
	assert.Nil(t, stored.OfferPrice)
	assert.True(t, stored.IsActive)
}

func TestCourseRepository_Create_InvalidCategory(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCourseRepository(db)

	err := repo.Create(ctx, newTestCourse("Go", "Missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)

	var count int64
	require.NoError(t, db.Model(&model.CourseModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCourseRepository_CategoryMatchAgreesWithExistsByName(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	categoryRepo := NewCategoryRepository(db)
	courseRepo := NewCourseRepository(db)

	inactive := seedCategory(t, categoryRepo, "Design")
	_, err := categoryRepo.ToggleActive(ctx, inactive.ID)
	require.NoError(t, err)

	cases := []struct {
		category string
		valid    bool
	}{
		{"Design", true},
		{"design", false},
		{"Design ", false},
	}
	for _, tc := range cases {
		exists, err := categoryRepo.ExistsByName(ctx, tc.category)
		require.NoError(t, err)
		assert.Equal(t, tc.valid, exists, tc.category)

		err = courseRepo.Create(ctx, newTestCourse("Course "+tc.category, tc.category))
		if tc.valid {
			assert.NoError(t, err, tc.category)
		} else {
			assert.ErrorIs(t, err, entity.ErrInvalidCategory, tc.category)
		}
	}
}

func TestCourseRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCourseRepository(setupTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCourseRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedCategory(t, NewCategoryRepository(db), "Web Dev")
	repo := NewCourseRepository(db)

	course := newTestCourse("Go", "Web Dev")
	require.NoError(t, repo.Create(ctx, course))

	course.Price = 150
	require.NoError(t, repo.Update(ctx, course, false))

	stored, err := repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(150), stored.Price)
	assert.Equal(t, "Go", stored.Title)

	course.Category = "Missing"
	err = repo.Update(ctx, course, true)
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)

	stored, err = repo.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Dev", stored.Category)

	missing := newTestCourse("Ghost", "Web Dev")
	missing.ID = "missing"
	assert.ErrorIs(t, repo.Update(ctx, missing, false), entity.ErrNotFound)
}

func TestCourseRepository_ToggleActiveTwice(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedCategory(t, NewCategoryRepository(db), "Web Dev")
	repo := NewCourseRepository(db)

	course := newTestCourse("Go", "Web Dev")
	require.NoError(t, repo.Create(ctx, course))

	toggled, err := repo.ToggleActive(ctx, course.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = repo.ToggleActive(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
	assert.Equal(t, course.Title, toggled.Title)

	_, err = repo.ToggleActive(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCourseRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedCategory(t, NewCategoryRepository(db), "Web Dev")
	repo := NewCourseRepository(db)

	course := newTestCourse("Go", "Web Dev")
	require.NoError(t, repo.Create(ctx, course))

	require.NoError(t, repo.Delete(ctx, course.ID))
	assert.ErrorIs(t, repo.Delete(ctx, course.ID), entity.ErrNotFound)
}

func TestCourseRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	seedCategory(t, NewCategoryRepository(db), "Web Dev")
	repo := NewCourseRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 20; i++ {
		course := newTestCourse(fmt.Sprintf("course-%02d", i), "Web Dev")
		course.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, course))
	}

	courses, total, err := repo.List(ctx, CourseFilter{}, 9, entity.Offset(2, 9))
	require.NoError(t, err)
	assert.Equal(t, int64(20), total)
	require.Len(t, courses, 9)
	assert.Equal(t, "course-10", courses[0].Title)
	assert.Equal(t, "course-02", courses[8].Title)
	assert.Equal(t, 3, entity.TotalPages(total, 9))
}

func TestCourseRepository_ListSearchAndActive(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	seedCategory(t, categories, "Web Dev")
	seedCategory(t, categories, "Data")
	repo := NewCourseRepository(db)

	golang := newTestCourse("Golang Basics", "Web Dev")
	require.NoError(t, repo.Create(ctx, golang))
	sql := newTestCourse("SQL", "Data")
	require.NoError(t, repo.Create(ctx, sql))
	hidden := newTestCourse("Hidden 100%", "Data")
	hidden.IsActive = false
	require.NoError(t, repo.Create(ctx, hidden))

	courses, total, err := repo.List(ctx, CourseFilter{Search: "GOLANG"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, golang.ID, courses[0].ID)

	_, total, err = repo.List(ctx, CourseFilter{Search: "data"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(ctx, CourseFilter{Search: "data", ActiveOnly: true}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	courses, _, err = repo.List(ctx, CourseFilter{Search: "100%"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, hidden.ID, courses[0].ID)

	summaries, err := repo.ListSummariesByCategory(ctx, "Data")
	require.NoError(t, err)
	assert.Equal(t, []entity.CourseSummary{{ID: sql.ID, Title: "SQL"}}, summaries)

	keys, err := repo.ImageKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 3)
}

func TestBlogRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewBlogRepository(db)

	blog := &entity.Blog{
		Title:       "Hello",
		Category:    "news",
		Date:        time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Description: "desc",
		Content:     "content",
		ImageURL:    "https://host/blog-images/abc123.jpg",
		Author:      "Staff",
	}
	blog.ApplyMetaDefaults()
	require.NoError(t, repo.Create(ctx, blog))
	assert.NotEmpty(t, blog.ID)
	assert.False(t, blog.IsPublished)

	require.NoError(t, repo.IncrementViews(ctx, blog.ID))
	blog.Title = "Hello again"
	require.NoError(t, repo.Update(ctx, blog))

	stored, err := repo.GetByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", stored.Title)
	assert.Equal(t, "Hello", stored.MetaTitle)
	assert.Equal(t, 1, stored.Views)

	published, total, err := repo.ListPublished(ctx, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, published)

	toggled, err := repo.TogglePublished(ctx, blog.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	published, total, err = repo.ListPublished(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, published, 1)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, blog.ID))
	_, err = repo.GetByID(ctx, blog.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.ErrorIs(t, repo.IncrementViews(ctx, blog.ID), entity.ErrNotFound)
}

func TestCategoryRepository_UniqueName(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	seedCategory(t, repo, "Web Dev")

	err := repo.Create(ctx, &entity.Category{Name: "Web Dev"})
	assert.ErrorIs(t, err, entity.ErrConflict)

	require.NoError(t, repo.Create(ctx, &entity.Category{Name: "web dev"}))

	exists, err := repo.ExistsByName(ctx, "Web Dev")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "WEB DEV")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCategoryRepository_RenameCascadesToCourses(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	courses := NewCourseRepository(db)

	category := seedCategory(t, categories, "Web Dev")
	seedCategory(t, categories, "Data")

	course := newTestCourse("Go", "Web Dev")
	require.NoError(t, courses.Create(ctx, course))

	category.Name = "Data"
	assert.ErrorIs(t, categories.Update(ctx, category), entity.ErrConflict)

	category.Name = "Web Development"
	require.NoError(t, categories.Update(ctx, category))

	stored, err := courses.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web Development", stored.Category)

	missing := &entity.Category{ID: "missing", Name: "Other"}
	assert.ErrorIs(t, categories.Update(ctx, missing), entity.ErrNotFound)
}

func TestCategoryRepository_ToggleListDelete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	webDev := seedCategory(t, repo, "Web Dev")
	seedCategory(t, repo, "Data")

	toggled, err := repo.ToggleActive(ctx, webDev.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Data", active[0].Name)

	exists, err := repo.ExistsByName(ctx, "Web Dev")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, webDev.ID))
	assert.ErrorIs(t, repo.Delete(ctx, webDev.ID), entity.ErrNotFound)
}

func TestAdminRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewAdminRepository(db)

	admin := &entity.Admin{Email: "admin@example.com", Name: "Admin", Password: "hash", IsActive: true}
	require.NoError(t, repo.Create(ctx, admin))

	stored, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, stored.ID)

	require.NoError(t, repo.UpdatePassword(ctx, admin.ID, "hash2"))
	stored, err = repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash2", stored.Password)

	dup := &entity.Admin{Email: "admin@example.com", Password: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dup), entity.ErrConflict)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
