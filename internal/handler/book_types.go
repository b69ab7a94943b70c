package handler

import (
	"github.com/snnyvrz/bookshelf-api/internal/model"
)

type CreateBookRequest struct {
	Name      string `json:"name" example:"Buku A"`
	Year      int    `json:"year" example:"2010"`
	Author    string `json:"author" example:"John Doe"`
	Summary   string `json:"summary" example:"Lorem ipsum dolor sit amet"`
	Publisher string `json:"publisher" example:"Dicoding Indonesia"`
	PageCount int    `json:"pageCount" example:"100"`
	ReadPage  int    `json:"readPage" example:"25"`
	Reading   bool   `json:"reading" example:"false"`
}

func (r CreateBookRequest) ToBook() model.Book {
	return model.Book{
		Name:      r.Name,
		Year:      r.Year,
		Author:    r.Author,
		Summary:   r.Summary,
		Publisher: r.Publisher,
		PageCount: r.PageCount,
		ReadPage:  r.ReadPage,
		Reading:   r.Reading,
	}
}

// UpdateBookRequest has the same shape as CreateBookRequest. Name is always
// replaced, so leaving it out fails validation; every other field keeps its
// stored value when absent.
type UpdateBookRequest struct {
	Name      *string `json:"name" example:"Buku A Revisi"`
	Year      *int    `json:"year" example:"2011"`
	Author    *string `json:"author" example:"Jane Doe"`
	Summary   *string `json:"summary"`
	Publisher *string `json:"publisher" example:"Dicoding"`
	PageCount *int    `json:"pageCount" example:"200"`
	ReadPage  *int    `json:"readPage" example:"26"`
	Reading   *bool   `json:"reading" example:"true"`
}

// ApplyTo merges r over b field by field. ID and InsertedAt are never touched.
func (r UpdateBookRequest) ApplyTo(b *model.Book) {
	b.Name = ""
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Year != nil {
		b.Year = *r.Year
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Summary != nil {
		b.Summary = *r.Summary
	}
	if r.Publisher != nil {
		b.Publisher = *r.Publisher
	}
	if r.PageCount != nil {
		b.PageCount = *r.PageCount
	}
	if r.ReadPage != nil {
		b.ReadPage = *r.ReadPage
	}
	if r.Reading != nil {
		b.Reading = *r.Reading
	}
}

type Book struct {
	ID         string          `json:"id" example:"b3c1e0a4-6b1f-4a5e-9d2f-0c6c3f1d9a10"`
	Name       string          `json:"name" example:"Buku A"`
	Year       int             `json:"year" example:"2010"`
	Author     string          `json:"author" example:"John Doe"`
	Summary    string          `json:"summary" example:"Lorem ipsum dolor sit amet"`
	Publisher  string          `json:"publisher" example:"Dicoding Indonesia"`
	PageCount  int             `json:"pageCount" example:"100"`
	ReadPage   int             `json:"readPage" example:"25"`
	Finished   bool            `json:"finished" example:"false"`
	Reading    bool            `json:"reading" example:"false"`
	InsertedAt model.Timestamp `json:"insertedAt" swaggertype:"string" example:"2021-03-04T09:11:44.598Z"`
	UpdatedAt  model.Timestamp `json:"updatedAt" swaggertype:"string" example:"2021-03-04T09:11:44.598Z"`
}

type BookSummary struct {
	ID        string `json:"id" example:"b3c1e0a4-6b1f-4a5e-9d2f-0c6c3f1d9a10"`
	Name      string `json:"name" example:"Buku A"`
	Publisher string `json:"publisher" example:"Dicoding Indonesia"`
}

type CreateBookData struct {
	BookID string `json:"bookId" example:"b3c1e0a4-6b1f-4a5e-9d2f-0c6c3f1d9a10"`
}

type BookData struct {
	Book Book `json:"book"`
}

type ListBooksData struct {
	Books []BookSummary `json:"books"`
}

// The envelopes below only document response shapes for swag.

type CreateBookResponse struct {
	Status  string         `json:"status" example:"success"`
	Message string         `json:"message" example:"book added successfully"`
	Data    CreateBookData `json:"data"`
}

type BookResponse struct {
	Status string   `json:"status" example:"success"`
	Data   BookData `json:"data"`
}

type ListBooksResponse struct {
	Status string        `json:"status" example:"success"`
	Data   ListBooksData `json:"data"`
}

type MessageResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"book updated successfully"`
}

type FailResponse struct {
	Status  string `json:"status" example:"fail"`
	Message string `json:"message" example:"id not found"`
}
