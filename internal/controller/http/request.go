package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chaseplus/internal/entity"
	"chaseplus/internal/usecase"
	"chaseplus/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const imageField = "image"

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04"}

// requestContext carries the authenticated admin, if any, into the use case layer.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	adminID := c.GetString(middleware.AdminIDKey)
	if adminID == "" {
		return ctx
	}
	return entity.WithPrincipal(ctx, entity.Principal{
		AdminID: adminID,
		Email:   c.GetString(middleware.AdminEmailKey),
	})
}

// optionalForm returns nil for absent or blank form values.
func optionalForm(c *gin.Context, name string) *string {
	v, ok := c.GetPostForm(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

// formList reads a list field sent either as one JSON array or as repeated values.
// It returns nil when the field is absent.
func formList(c *gin.Context, name string) ([]string, error) {
	values, ok := c.GetPostFormArray(name)
	if !ok {
		values, ok = c.GetPostFormArray(name + "[]")
	}
	if !ok || len(values) == 0 {
		return nil, nil
	}

	if len(values) == 1 {
		raw := strings.TrimSpace(values[0])
		if raw == "" {
			return nil, nil
		}
		if strings.HasPrefix(raw, "[") {
			var items []string
			if err := json.Unmarshal([]byte(raw), &items); err != nil {
				return nil, entity.NewValidationError(name, "must be a JSON array of strings")
			}
			return cleanList(items), nil
		}
	}
	return cleanList(values), nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func formFloat(c *gin.Context, name string) (*float64, error) {
	v := optionalForm(c, name)
	if v == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		return nil, entity.NewValidationError(name, "must be a number")
	}
	return &f, nil
}

// formDate accepts a date, an RFC 3339 timestamp or an HTML datetime-local value.
// A blank value yields the zero time.
func formDate(c *gin.Context, name string) (time.Time, error) {
	v := optionalForm(c, name)
	if v == nil {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*v)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, entity.NewValidationError(name, "must be a date (YYYY-MM-DD)")
}

// formFlag treats a checkbox value of "on", "true" or "1" as set; absence is false.
func formFlag(c *gin.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.PostForm(name))) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// formImage opens the uploaded image. It returns a nil file when none was sent.
// The caller closes the returned closer.
func formImage(c *gin.Context) (*entity.ImageFile, io.Closer, error) {
	header, err := c.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, entity.NewValidationError(imageField, "could not be read")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, entity.NewValidationError(imageField, "could not be read")
	}
	return &entity.ImageFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, file, nil
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// listQuery reads page, limit and search from the query string.
func listQuery(c *gin.Context) usecase.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return usecase.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
}

// visitorID identifies a reader for view de-duplication.
func visitorID(c *gin.Context) string {
	return c.ClientIP() + "|" + c.Request.UserAgent()
}
