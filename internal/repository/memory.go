package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/snnyvrz/bookshelf-api/internal/model"
)

// MemoryBookRepository keeps books in insertion order for the lifetime of
// the process. Callers always receive copies of the stored records.
type MemoryBookRepository struct {
	mu    sync.RWMutex
	books []model.Book
}

func NewMemoryBookRepository() *MemoryBookRepository {
	return &MemoryBookRepository{}
}

func (r *MemoryBookRepository) Create(ctx context.Context, book *model.Book) error {
	if book.ID == "" {
		book.ID = model.NewBookID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(book.ID) >= 0 {
		return fmt.Errorf("book %s already exists", book.ID)
	}

	r.books = append(r.books, *book)
	return nil
}

func (r *MemoryBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrBookNotFound
	}

	book := r.books[i]
	return &book, nil
}

func (r *MemoryBookRepository) List(ctx context.Context, params BookListParams) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := strings.ToLower(params.Name)

	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if name != "" && !strings.Contains(strings.ToLower(b.Name), name) {
			continue
		}
		if !params.Reading.Matches(b.Reading) || !params.Finished.Matches(b.Finished) {
			continue
		}
		books = append(books, b)
	}

	return books, nil
}

func (r *MemoryBookRepository) Update(ctx context.Context, book *model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(book.ID)
	if i < 0 {
		return ErrBookNotFound
	}

	r.books[i] = *book
	return nil
}

func (r *MemoryBookRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrBookNotFound
	}

	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

func (r *MemoryBookRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// indexOf must be called with mu held.
func (r *MemoryBookRepository) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
