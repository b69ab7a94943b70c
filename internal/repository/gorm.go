package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/snnyvrz/bookshelf-api/internal/model"
	"gorm.io/gorm"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		First(&book, "id = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, params BookListParams) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if params.Name != "" {
		pattern := "%" + escapeLike(strings.ToLower(params.Name)) + "%"
		q = q.Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern)
	}

	if params.Reading != model.Unset {
		q = q.Where("reading = ?", params.Reading == model.True)
	}

	if params.Finished != model.Unset {
		q = q.Where("finished = ?", params.Finished == model.True)
	}

	books := make([]model.Book, 0)
	if err := q.Order("rowid").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"name":       book.Name,
			"year":       book.Year,
			"author":     book.Author,
			"summary":    book.Summary,
			"publisher":  book.Publisher,
			"page_count": book.PageCount,
			"read_page":  book.ReadPage,
			"finished":   book.Finished,
			"reading":    book.Reading,
			"updated_at": book.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func (r *GormBookRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
