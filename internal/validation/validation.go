package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/response"
)

var (
	ErrNameRequired             = errors.New("name is required")
	ErrReadPageExceedsPageCount = errors.New("readPage cannot exceed pageCount")
)

const msgInvalidBody = "invalid request body"

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldOrder is the order in which book rule violations are reported.
var fieldOrder = []string{"Name", "ReadPage"}

// BindJSON decodes the request body into dst. On malformed input it writes
// a 400 fail envelope and returns false.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Fail(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// ValidateBook checks the write-time rules of a book and returns the first
// violation as one of the package's sentinel errors.
func ValidateBook(b *model.Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate book: %w", err)
	}

	for _, field := range fieldOrder {
		for _, fe := range verrs {
			if fe.StructField() == field {
				return toSentinel(fe)
			}
		}
	}

	return fmt.Errorf("validate book: %w", err)
}

// IsValidationError reports whether err is a rule violation found by
// ValidateBook.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrReadPageExceedsPageCount)
}

func toSentinel(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Name":
		return ErrNameRequired
	case "ReadPage":
		return ErrReadPageExceedsPageCount
	}
	return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
}
