package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"chaseplus/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Length limits follow the column sizes in migrations/.
type courseRules struct {
	Title               string   `json:"title" validate:"required,max=255"`
	Description         string   `json:"description" validate:"required"`
	Category            string   `json:"category" validate:"required,max=100"`
	Duration            string   `json:"duration" validate:"max=100"`
	Highlights          []string `json:"highlights" validate:"min=1"`
	WhatYoullLearn      []string `json:"what_youll_learn" validate:"min=1"`
	CareerOpportunities []string `json:"career_opportunities" validate:"min=1"`
	WhyChooseThisCourse []string `json:"why_choose_this_course" validate:"min=1"`
	Price               float64  `json:"price" validate:"gte=0"`
	OfferPrice          *float64 `json:"offer_price" validate:"omitempty,gte=0"`
}

func validateCourse(c *entity.Course) error {
	return validateStruct(courseRules{
		Title:               c.Title,
		Description:         c.Description,
		Category:            c.Category,
		Duration:            c.Duration,
		Highlights:          c.Highlights,
		WhatYoullLearn:      c.WhatYoullLearn,
		CareerOpportunities: c.CareerOpportunities,
		WhyChooseThisCourse: c.WhyChooseThisCourse,
		Price:               c.Price,
		OfferPrice:          c.OfferPrice,
	})
}

type blogRules struct {
	Title           string    `json:"title" validate:"required,max=255"`
	Category        string    `json:"category" validate:"required,max=100"`
	Date            time.Time `json:"date" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	Content         string    `json:"content" validate:"required"`
	MetaTitle       string    `json:"meta_title" validate:"required,max=255"`
	MetaDescription string    `json:"meta_description" validate:"required,max=500"`
	Author          string    `json:"author" validate:"required,max=255"`
}

func validateBlog(b *entity.Blog) error {
	return validateStruct(blogRules{
		Title:           b.Title,
		Category:        b.Category,
		Date:            b.Date,
		Description:     b.Description,
		Content:         b.Content,
		MetaTitle:       b.MetaTitle,
		MetaDescription: b.MetaDescription,
		Author:          b.Author,
	})
}

type categoryRules struct {
	Name string `json:"name" validate:"required,max=100"`
}

// validateStruct reports the first failing field as an *entity.ValidationError.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return entity.NewValidationError(fe.Field(), describe(fe))
	}
	return err
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "is invalid"
	}
}

func requireAdmin(ctx context.Context) (entity.Principal, error) {
	p, ok := entity.PrincipalFromContext(ctx)
	if !ok {
		return entity.Principal{}, entity.ErrUnauthorized
	}
	return p, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
