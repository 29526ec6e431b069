package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CourseModel struct {
	ID                  string                      `gorm:"type:uuid;primary_key" json:"id"`
	Title               string                      `gorm:"type:varchar(255);not null" json:"title"`
	Description         string                      `gorm:"type:text;not null" json:"description"`
	Category            string                      `gorm:"type:varchar(100);not null;index" json:"category"`
	Image               string                      `gorm:"type:varchar(500);not null" json:"image"`
	ImageKey            string                      `gorm:"type:varchar(500)" json:"image_key"`
	Duration            string                      `gorm:"type:varchar(100)" json:"duration"`
	Highlights          datatypes.JSONSlice[string] `gorm:"not null" json:"highlights"`
	WhatYoullLearn      datatypes.JSONSlice[string] `gorm:"not null" json:"what_youll_learn"`
	CareerOpportunities datatypes.JSONSlice[string] `gorm:"not null" json:"career_opportunities"`
	WhyChooseThisCourse datatypes.JSONSlice[string] `gorm:"not null" json:"why_choose_this_course"`
	Price               float64                     `gorm:"not null;check:price >= 0" json:"price"`
	OfferPrice          *float64                    `json:"offer_price"`
	IsActive            bool                        `gorm:"not null;index" json:"is_active"`
	CreatedAt           time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

func (c *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
