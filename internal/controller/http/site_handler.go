package http

import (
	"net/http"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the aggregate data the public pages share: the category
// navigation with its courses, and the home page course and blog teasers.
type SiteHandler struct {
	courseUseCase   usecase.CourseUseCase
	blogUseCase     usecase.BlogUseCase
	categoryUseCase usecase.CategoryUseCase
	logger          *logger.Logger
}

func NewSiteHandler(
	courseUseCase usecase.CourseUseCase,
	blogUseCase usecase.BlogUseCase,
	categoryUseCase usecase.CategoryUseCase,
	logger *logger.Logger,
) *SiteHandler {
	return &SiteHandler{
		courseUseCase:   courseUseCase,
		blogUseCase:     blogUseCase,
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

type NavCategory struct {
	Name    string                 `json:"name"`
	Courses []entity.CourseSummary `json:"courses"`
}

// Navigation godoc
// @Summary      Site navigation
// @Description  Active categories with their active courses
// @Tags         site
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /site/navigation [get]
func (h *SiteHandler) Navigation(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.categoryUseCase.ListActive(ctx)
	if err != nil {
		respondError(c, h.logger, "load navigation", err)
		return
	}

	nav := make([]NavCategory, 0, len(categories))
	for _, category := range categories {
		courses, err := h.courseUseCase.ListByCategory(ctx, category.Name)
		if err != nil {
			respondError(c, h.logger, "load navigation", err)
			return
		}
		nav = append(nav, NavCategory{Name: category.Name, Courses: courses})
	}
	c.JSON(http.StatusOK, gin.H{"categories": nav})
}

// Home godoc
// @Summary      Home page data
// @Description  Active courses and the most recent published blogs
// @Tags         site
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /site/home [get]
func (h *SiteHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	courses, err := h.courseUseCase.ListActive(ctx)
	if err != nil {
		respondError(c, h.logger, "load home page", err)
		return
	}
	blogs, err := h.blogUseCase.ListPublishedRecent(ctx, usecase.DefaultRecentBlogs)
	if err != nil {
		respondError(c, h.logger, "load home page", err)
		return
	}
	if courses == nil {
		courses = []*entity.Course{}
	}
	if blogs == nil {
		blogs = []*entity.Blog{}
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses, "blogs": blogs})
}
