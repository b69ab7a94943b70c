package repository

import (
	"context"
	"errors"

	"github.com/snnyvrz/bookshelf-api/internal/model"
)

var ErrBookNotFound = errors.New("book not found")

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id string) (*model.Book, error)
	List(ctx context.Context, params BookListParams) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// BookListParams narrows a List call. The zero value matches every book.
type BookListParams struct {
	// Name is matched as a case-insensitive substring of the book name.
	Name     string
	Reading  model.TriState
	Finished model.TriState
}
