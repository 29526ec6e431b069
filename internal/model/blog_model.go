package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Category        string    `gorm:"type:varchar(100);not null" json:"category"`
	Date            time.Time `gorm:"not null" json:"date"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	ImageURL        string    `gorm:"type:varchar(500);not null" json:"image_url"`
	ImageKey        string    `gorm:"type:varchar(500)" json:"image_key"`
	MetaTitle       string    `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string    `gorm:"type:varchar(500)" json:"meta_description"`
	Author          string    `gorm:"type:varchar(255);not null" json:"author"`
	IsPublished     bool      `gorm:"not null;default:false;index" json:"is_published"`
	Views           int       `gorm:"not null;default:0" json:"views"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

func (b *BlogModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
