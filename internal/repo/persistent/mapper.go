package persistent

import (
	"chaseplus/internal/entity"
	"chaseplus/internal/model"

	"gorm.io/datatypes"
)

func ToCourseEntity(m *model.CourseModel) *entity.Course {
	if m == nil {
		return nil
	}

	return &entity.Course{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		Category:            m.Category,
		Image:               m.Image,
		ImageKey:            m.ImageKey,
		Duration:            m.Duration,
		Highlights:          copyStrings(m.Highlights),
		WhatYoullLearn:      copyStrings(m.WhatYoullLearn),
		CareerOpportunities: copyStrings(m.CareerOpportunities),
		WhyChooseThisCourse: copyStrings(m.WhyChooseThisCourse),
		Price:               m.Price,
		OfferPrice:          m.OfferPrice,
		IsActive:            m.IsActive,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func ToCourseModel(e *entity.Course) *model.CourseModel {
	if e == nil {
		return nil
	}

	return &model.CourseModel{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Category:            e.Category,
		Image:               e.Image,
		ImageKey:            e.ImageKey,
		Duration:            e.Duration,
		Highlights:          datatypes.NewJSONSlice(copyStrings(e.Highlights)),
		WhatYoullLearn:      datatypes.NewJSONSlice(copyStrings(e.WhatYoullLearn)),
		CareerOpportunities: datatypes.NewJSONSlice(copyStrings(e.CareerOpportunities)),
		WhyChooseThisCourse: datatypes.NewJSONSlice(copyStrings(e.WhyChooseThisCourse)),
		Price:               e.Price,
		OfferPrice:          e.OfferPrice,
		IsActive:            e.IsActive,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func ToBlogEntity(m *model.BlogModel) *entity.Blog {
	if m == nil {
		return nil
	}

	return &entity.Blog{
		ID:              m.ID,
		Title:           m.Title,
		Category:        m.Category,
		Date:            m.Date,
		Description:     m.Description,
		Content:         m.Content,
		ImageURL:        m.ImageURL,
		ImageKey:        m.ImageKey,
		MetaTitle:       m.MetaTitle,
		MetaDescription: m.MetaDescription,
		Author:          m.Author,
		IsPublished:     m.IsPublished,
		Views:           m.Views,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToBlogModel(e *entity.Blog) *model.BlogModel {
	if e == nil {
		return nil
	}

	return &model.BlogModel{
		ID:              e.ID,
		Title:           e.Title,
		Category:        e.Category,
		Date:            e.Date,
		Description:     e.Description,
		Content:         e.Content,
		ImageURL:        e.ImageURL,
		ImageKey:        e.ImageKey,
		MetaTitle:       e.MetaTitle,
		MetaDescription: e.MetaDescription,
		Author:          e.Author,
		IsPublished:     e.IsPublished,
		Views:           e.Views,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Password:  m.Password,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:        e.ID,
		Email:     e.Email,
		Name:      e.Name,
		Password:  e.Password,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
