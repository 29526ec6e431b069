package http

import (
	"net/http"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUseCase usecase.CourseUseCase
	logger        *logger.Logger
}

func NewCourseHandler(courseUseCase usecase.CourseUseCase, logger *logger.Logger) *CourseHandler {
	return &CourseHandler{
		courseUseCase: courseUseCase,
		logger:        logger,
	}
}

func courseInput(c *gin.Context) (usecase.CourseInput, error) {
	input := usecase.CourseInput{
		Title:       optionalForm(c, "title"),
		Description: optionalForm(c, "description"),
		Category:    optionalForm(c, "category"),
		Duration:    optionalForm(c, "duration"),
	}

	var err error
	if input.Highlights, err = formList(c, "highlights"); err != nil {
		return input, err
	}
	if input.WhatYoullLearn, err = formList(c, "what_youll_learn"); err != nil {
		return input, err
	}
	if input.CareerOpportunities, err = formList(c, "career_opportunities"); err != nil {
		return input, err
	}
	if input.WhyChooseThisCourse, err = formList(c, "why_choose_this_course"); err != nil {
		return input, err
	}
	if input.Price, err = formFloat(c, "price"); err != nil {
		return input, err
	}
	if input.OfferPrice, err = formFloat(c, "offer_price"); err != nil {
		return input, err
	}
	return input, nil
}

// ListCourses godoc
// @Summary      List active courses
// @Description  Paginated public course listing, newest first. Search matches title or category, case-insensitive.
// @Tags         courses
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 9, max 100)"
// @Param        search query string false "Substring of title or category"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /courses [get]
func (h *CourseHandler) ListCourses(c *gin.Context) {
	page, err := h.courseUseCase.ListPaged(c.Request.Context(), listQuery(c))
	if err != nil {
		respondError(c, h.logger, "list courses", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetCourse godoc
// @Summary      Get course by ID
// @Description  Public course detail. Inactive courses are not found.
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  entity.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id := c.Param("id")
	course, err := h.courseUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "get course", err)
		return
	}
	if !course.IsActive {
		respondError(c, h.logger, "get course", entity.NotFound("course", id))
		return
	}
	course.ImageKey = ""
	c.JSON(http.StatusOK, course)
}

// ListCategoryCourses godoc
// @Summary      List courses of a category
// @Description  Active courses in the named category, as id and title pairs
// @Tags         courses
// @Produce      json
// @Param        name path string true "Category name"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /categories/{name}/courses [get]
func (h *CourseHandler) ListCategoryCourses(c *gin.Context) {
	category := c.Param("name")
	courses, err := h.courseUseCase.ListByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.logger, "list category courses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "courses": courses, "count": len(courses)})
}

// AdminListCourses godoc
// @Summary      List all courses
// @Description  Paginated admin listing including inactive courses
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 10, max 100)"
// @Param        search query string false "Substring of title or category"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /admin/courses [get]
func (h *CourseHandler) AdminListCourses(c *gin.Context) {
	query := listQuery(c)
	query.IncludeInactive = true

	page, err := h.courseUseCase.ListPaged(requestContext(c), query)
	if err != nil {
		respondError(c, h.logger, "list courses", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// AdminGetCourse godoc
// @Summary      Get any course by ID
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  entity.Course
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [get]
func (h *CourseHandler) AdminGetCourse(c *gin.Context) {
	course, err := h.courseUseCase.GetByID(requestContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  Creates a course with its image. List fields accept a JSON array or repeated values.
// @Tags         admin-courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string true "Description"
// @Param        category formData string true "Existing category name"
// @Param        duration formData string false "Duration"
// @Param        highlights formData string true "Highlights (JSON array)"
// @Param        what_youll_learn formData string true "What you'll learn (JSON array)"
// @Param        career_opportunities formData string true "Career opportunities (JSON array)"
// @Param        why_choose_this_course formData string true "Why choose this course (JSON array)"
// @Param        price formData number true "Price"
// @Param        offer_price formData number false "Offer price"
// @Param        image formData file true "Course image"
// @Success      201  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /admin/courses [post]
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	input, err := courseInput(c)
	if err != nil {
		respondError(c, h.logger, "create course", err)
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		respondError(c, h.logger, "create course", err)
		return
	}
	defer closeQuietly(closer)

	course, err := h.courseUseCase.Create(requestContext(c), input, image)
	if err != nil {
		respondError(c, h.logger, "create course", err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update a course
// @Description  Present fields replace stored values; absent or blank fields are kept. A new image replaces the old URL.
// @Tags         admin-courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        title formData string false "Title"
// @Param        category formData string false "Existing category name"
// @Param        price formData number false "Price"
// @Param        image formData file false "New course image"
// @Success      200  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [put]
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	input, err := courseInput(c)
	if err != nil {
		respondError(c, h.logger, "update course", err)
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		respondError(c, h.logger, "update course", err)
		return
	}
	defer closeQuietly(closer)

	course, err := h.courseUseCase.Update(requestContext(c), c.Param("id"), input, image)
	if err != nil {
		respondError(c, h.logger, "update course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// ToggleCourse godoc
// @Summary      Toggle course visibility
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  entity.Course
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id}/toggle [patch]
func (h *CourseHandler) ToggleCourse(c *gin.Context) {
	course, err := h.courseUseCase.ToggleActive(requestContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "toggle course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary      Delete a course
// @Tags         admin-courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.courseUseCase.Delete(requestContext(c), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete course", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}
