package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	"github.com/snnyvrz/bookshelf-api/internal/response"
	"github.com/snnyvrz/bookshelf-api/internal/validation"
)

type BookHandler struct {
	repo   repository.BookRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewBookHandler(repo repository.BookRepository, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Add a book
// @Description  Add a book to the shelf. finished is derived from pageCount and readPage.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest   true  "Book to add"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  FailResponse        "Missing name, readPage > pageCount or malformed body"
// @Failure      500      {object}  FailResponse        "Book could not be stored"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	book := req.ToBook()
	if err := validation.ValidateBook(&book); err != nil {
		writeValidationError(c, h.logger, err, msgAddFailed)
		return
	}

	book.ID = model.NewBookID()
	book.Touch(h.now())

	ctx := c.Request.Context()

	if err := h.repo.Create(ctx, &book); err != nil {
		writeInternalError(c, h.logger, err, msgAddFailed)
		return
	}

	if _, err := h.repo.FindByID(ctx, book.ID); err != nil {
		writeInternalError(c, h.logger, err, msgAddFailed)
		return
	}

	response.Success(c, http.StatusCreated, "book added successfully", CreateBookData{
		BookID: book.ID,
	})
}

// ListBooks godoc
// @Summary      List books
// @Description  List books as {id, name, publisher}, optionally filtered.
// @Tags         books
// @Produce      json
// @Param        name      query     string  false  "Case-insensitive substring of the book name"
// @Param        reading   query     string  false  "1 for books being read, 0 for the rest"  Enums(0, 1)
// @Param        finished  query     string  false  "1 for finished books, 0 for the rest"    Enums(0, 1)
// @Success      200       {object}  ListBooksResponse
// @Failure      500       {object}  FailResponse  "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.repo.List(c.Request.Context(), parseListParams(c))
	if err != nil {
		writeInternalError(c, h.logger, err, msgListFailed)
		return
	}

	response.Success(c, http.StatusOK, "", toListBooksData(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get the full record of a single book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  BookResponse
// @Failure      404  {object}  FailResponse  "Book not found"
// @Failure      500  {object}  FailResponse  "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	book, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, msgBookNotFound)
			return
		}

		writeInternalError(c, h.logger, err, msgFetchFailed)
		return
	}

	response.Success(c, http.StatusOK, "", BookData{Book: toBook(*book)})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace the fields of a book. name is required; other absent fields keep their value.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Book ID"
// @Param        payload  body      UpdateBookRequest  true  "Fields to update"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  FailResponse  "Missing name, readPage > pageCount or malformed body"
// @Failure      404      {object}  FailResponse  "Book not found"
// @Failure      500      {object}  FailResponse  "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, msgIDNotFound)
			return
		}

		writeInternalError(c, h.logger, err, msgUpdateFailed)
		return
	}

	var req UpdateBookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	req.ApplyTo(book)

	if err := validation.ValidateBook(book); err != nil {
		writeValidationError(c, h.logger, err, msgUpdateFailed)
		return
	}

	book.Touch(h.now())

	if err := h.repo.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, msgIDNotFound)
			return
		}

		writeInternalError(c, h.logger, err, msgUpdateFailed)
		return
	}

	response.Success(c, http.StatusOK, "book updated successfully", nil)
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Remove a book from the shelf
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  FailResponse  "Book not found"
// @Failure      500  {object}  FailResponse  "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			writeError(c, http.StatusNotFound, msgIDNotFound)
			return
		}

		writeInternalError(c, h.logger, err, msgDeleteFailed)
		return
	}

	response.Success(c, http.StatusOK, "book deleted successfully", nil)
}
