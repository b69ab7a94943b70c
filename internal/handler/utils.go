package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
)

// parseNameQuery returns the name filter. A quoted value such as
// name="Dicoding" is reduced to the text after the first quote.
func parseNameQuery(c *gin.Context) string {
	name := c.Query("name")
	if strings.Contains(name, `"`) {
		name = strings.Split(name, `"`)[1]
	}
	return name
}

func parseListParams(c *gin.Context) repository.BookListParams {
	return repository.BookListParams{
		Name:     parseNameQuery(c),
		Reading:  model.ParseTriState(c.Query("reading")),
		Finished: model.ParseTriState(c.Query("finished")),
	}
}

func toBook(b model.Book) Book {
	return Book{
		ID:         b.ID,
		Name:       b.Name,
		Year:       b.Year,
		Author:     b.Author,
		Summary:    b.Summary,
		Publisher:  b.Publisher,
		PageCount:  b.PageCount,
		ReadPage:   b.ReadPage,
		Finished:   b.Finished,
		Reading:    b.Reading,
		InsertedAt: model.Timestamp{Time: b.InsertedAt},
		UpdatedAt:  model.Timestamp{Time: b.UpdatedAt},
	}
}

func toBookSummary(b model.Book) BookSummary {
	return BookSummary{
		ID:        b.ID,
		Name:      b.Name,
		Publisher: b.Publisher,
	}
}

func toListBooksData(books []model.Book) ListBooksData {
	summaries := make([]BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, toBookSummary(b))
	}
	return ListBooksData{Books: summaries}
}
