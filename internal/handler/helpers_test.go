package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/logging"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
	"github.com/snnyvrz/bookshelf-api/internal/response"
)

var fixedNow = time.Date(2021, 3, 4, 9, 11, 44, 598_000_000, time.UTC)

type fakeBookRepo struct {
	CreateFn   func(ctx context.Context, b *model.Book) error
	FindByIDFn func(ctx context.Context, id string) (*model.Book, error)
	ListFn     func(ctx context.Context, params repository.BookListParams) ([]model.Book, error)
	UpdateFn   func(ctx context.Context, b *model.Book) error
	DeleteFn   func(ctx context.Context, id string) error
	PingFn     func(ctx context.Context) error
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrBookNotFound
}

func (f *fakeBookRepo) List(ctx context.Context, params repository.BookListParams) ([]model.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return nil, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return nil
}

func setupBookRouterWithRepo(repo repository.BookRepository) *gin.Engine {
	return setupBookRouterWithClock(repo, fixedNow)
}

func setupBookRouterWithClock(repo repository.BookRepository, now time.Time) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoRoute(NotFound)
	r.NoMethod(MethodNotAllowed)

	h := NewBookHandler(repo, logging.Nop())
	h.now = func() time.Time { return now }
	h.RegisterRoutes(r.Group(""))

	return r
}

func setupMemoryRouter(t *testing.T) (*gin.Engine, *repository.MemoryBookRepository) {
	t.Helper()

	repo := repository.NewMemoryBookRepository()
	return setupBookRouterWithRepo(repo), repo
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope mirrors response.Envelope with a raw data field so tests can
// decode it into the concrete type they expect.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}

	if data != nil {
		if len(env.Data) == 0 {
			t.Fatalf("expected data in response, body=%s", w.Body.String())
		}
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("failed to unmarshal data: %v", err)
		}
	}

	return env
}

func expectFail(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w, nil)
	if env.Status != response.StatusFail {
		t.Errorf("expected status %q, got %q", response.StatusFail, env.Status)
	}
	if env.Message != message {
		t.Errorf("expected message %q, got %q", message, env.Message)
	}
	if len(env.Data) != 0 {
		t.Errorf("expected no data on failure, got %s", env.Data)
	}
}

func seedBook(t *testing.T, repo repository.BookRepository, b model.Book) model.Book {
	t.Helper()

	if b.ID == "" {
		b.ID = model.NewBookID()
	}
	b.Touch(fixedNow)

	if err := repo.Create(context.Background(), &b); err != nil {
		t.Fatalf("failed to seed book %q: %v", b.Name, err)
	}
	return b
}

func countBooks(t *testing.T, repo repository.BookRepository) int {
	t.Helper()

	books, err := repo.List(context.Background(), repository.BookListParams{})
	if err != nil {
		t.Fatalf("failed to list books: %v", err)
	}
	return len(books)
}

func bukuA() CreateBookRequest {
	return CreateBookRequest{
		Name:      "Buku A",
		Year:      2010,
		Author:    "John Doe",
		Summary:   "Lorem ipsum dolor sit amet",
		Publisher: "Dicoding",
		PageCount: 100,
		ReadPage:  100,
		Reading:   false,
	}
}
