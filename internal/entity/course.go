package entity

import "time"

type Course struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	Image               string    `json:"image"`
	ImageKey            string    `json:"image_key,omitempty"`
	Duration            string    `json:"duration,omitempty"`
	Highlights          []string  `json:"highlights"`
	WhatYoullLearn      []string  `json:"what_youll_learn"`
	CareerOpportunities []string  `json:"career_opportunities"`
	WhyChooseThisCourse []string  `json:"why_choose_this_course"`
	Price               float64   `json:"price"`
	OfferPrice          *float64  `json:"offer_price,omitempty"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CourseSummary is the id/title pair the site navigation lists per category.
type CourseSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
