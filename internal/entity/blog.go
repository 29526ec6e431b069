package entity

import "time"

// MetaDescriptionLength bounds the description prefix used when a blog has no meta description.
const MetaDescriptionLength = 160

type Blog struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Date            time.Time `json:"date"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	ImageURL        string    `json:"image_url"`
	ImageKey        string    `json:"image_key,omitempty"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	Author          string    `json:"author"`
	IsPublished     bool      `json:"is_published"`
	Views           int       `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApplyMetaDefaults fills empty meta fields from title and description.
func (b *Blog) ApplyMetaDefaults() {
	if b.MetaTitle == "" {
		b.MetaTitle = b.Title
	}
	if b.MetaDescription == "" {
		runes := []rune(b.Description)
		if len(runes) > MetaDescriptionLength {
			runes = runes[:MetaDescriptionLength]
		}
		b.MetaDescription = string(runes)
	}
}
