package http

import (
	"net/http"
	"strconv"

	"chaseplus/internal/usecase"
	"chaseplus/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUseCase usecase.BlogUseCase
	logger      *logger.Logger
}

func NewBlogHandler(blogUseCase usecase.BlogUseCase, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
		logger:      logger,
	}
}

func blogInput(c *gin.Context) (usecase.BlogInput, error) {
	date, err := formDate(c, "date")
	if err != nil {
		return usecase.BlogInput{}, err
	}
	return usecase.BlogInput{
		Title:           c.PostForm("title"),
		Category:        c.PostForm("category"),
		Date:            date,
		Description:     c.PostForm("description"),
		Content:         c.PostForm("content"),
		MetaTitle:       c.PostForm("meta_title"),
		MetaDescription: c.PostForm("meta_description"),
		Author:          c.PostForm("author"),
		IsPublished:     formFlag(c, "is_published"),
	}, nil
}

// ListBlogs godoc
// @Summary      List published blogs
// @Description  Paginated listing of published blogs, newest first
// @Tags         blogs
// @Produce      json
// @Param        page query int false "Page number (default 1)"
// @Param        limit query int false "Page size (default 9, max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	page, err := h.blogUseCase.ListPaged(c.Request.Context(), listQuery(c))
	if err != nil {
		respondError(c, h.logger, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// RecentBlogs godoc
// @Summary      Most recent published blogs
// @Tags         blogs
// @Produce      json
// @Param        limit query int false "Number of blogs (default 3)"
// @Success      200  {object}  map[string]interface{}
// @Router       /blogs/recent [get]
func (h *BlogHandler) RecentBlogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit > usecase.MaxPageSize {
		limit = usecase.MaxPageSize
	}

	blogs, err := h.blogUseCase.ListPublishedRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "list recent blogs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "count": len(blogs)})
}

// GetBlog godoc
// @Summary      Read a published blog
// @Description  Returns the blog and counts one view per reader per day
// @Tags         blogs
// @Produce      json
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      404  {object}  map[string]string
// @Router       /blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogUseCase.View(c.Request.Context(), c.Param("id"), visitorID(c))
	if err != nil {
		respondError(c, h.logger, "get blog", err)
		return
	}
	blog.ImageKey = ""
	c.JSON(http.StatusOK, blog)
}

// AdminListBlogs godoc
// @Summary      List all blogs
// @Description  Every blog, published or not, newest first
// @Tags         admin-blogs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /admin/blogs [get]
func (h *BlogHandler) AdminListBlogs(c *gin.Context) {
	blogs, err := h.blogUseCase.ListAll(requestContext(c))
	if err != nil {
		respondError(c, h.logger, "list blogs", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "count": len(blogs)})
}

// AdminGetBlog godoc
// @Summary      Get any blog by ID
// @Tags         admin-blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      404  {object}  map[string]string
// @Router       /admin/blogs/{id} [get]
func (h *BlogHandler) AdminGetBlog(c *gin.Context) {
	blog, err := h.blogUseCase.GetByID(requestContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// CreateBlog godoc
// @Summary      Create a blog
// @Description  Meta title and description default to the title and the first 160 characters of the description
// @Tags         admin-blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        category formData string true "Category"
// @Param        date formData string true "Date (YYYY-MM-DD)"
// @Param        description formData string true "Description"
// @Param        content formData string true "Content"
// @Param        meta_title formData string false "Meta title"
// @Param        meta_description formData string false "Meta description"
// @Param        author formData string true "Author"
// @Param        is_published formData string false "Publish flag (on)"
// @Param        image formData file true "Cover image"
// @Success      201  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /admin/blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	input, err := blogInput(c)
	if err != nil {
		respondError(c, h.logger, "create blog", err)
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		respondError(c, h.logger, "create blog", err)
		return
	}
	defer closeQuietly(closer)

	blog, err := h.blogUseCase.Create(requestContext(c), input, image)
	if err != nil {
		respondError(c, h.logger, "create blog", err)
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog godoc
// @Summary      Update a blog
// @Description  Replaces every field. A new image replaces the old one, which is then removed from storage.
// @Tags         admin-blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Param        title formData string true "Title"
// @Param        meta_title formData string true "Meta title"
// @Param        meta_description formData string true "Meta description"
// @Param        image formData file false "New cover image"
// @Success      200  {object}  entity.Blog
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	input, err := blogInput(c)
	if err != nil {
		respondError(c, h.logger, "update blog", err)
		return
	}

	image, closer, err := formImage(c)
	if err != nil {
		respondError(c, h.logger, "update blog", err)
		return
	}
	defer closeQuietly(closer)

	blog, err := h.blogUseCase.Update(requestContext(c), c.Param("id"), input, image)
	if err != nil {
		respondError(c, h.logger, "update blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// ToggleBlog godoc
// @Summary      Toggle blog publication
// @Tags         admin-blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  entity.Blog
// @Failure      404  {object}  map[string]string
// @Router       /admin/blogs/{id}/toggle [patch]
func (h *BlogHandler) ToggleBlog(c *gin.Context) {
	blog, err := h.blogUseCase.TogglePublished(requestContext(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "toggle blog", err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// DeleteBlog godoc
// @Summary      Delete a blog
// @Description  Removes the cover image from storage, then the blog
// @Tags         admin-blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Blog ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	if err := h.blogUseCase.Delete(requestContext(c), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete blog", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}
