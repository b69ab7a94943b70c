package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null;index" validate:"required"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage" validate:"ltefield=PageCount"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt" gorm:"not null"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"not null;autoUpdateTime:false"`
}

// NewBookID returns a fresh opaque identifier for a book.
func NewBookID() string {
	return uuid.NewString()
}

// Touch recomputes the derived fields of b and stamps it with now.
// InsertedAt is only set when it is still zero.
func (b *Book) Touch(now time.Time) {
	b.Finished = b.PageCount == b.ReadPage
	if b.InsertedAt.IsZero() {
		b.InsertedAt = now
	}
	b.UpdatedAt = now
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = NewBookID()
	}
	return
}
