package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/perfectbooks/stock-api/internal/books"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
	"github.com/perfectbooks/stock-api/pkg/types"
)

type fakeBookService struct {
	listed    []books.BookDTO
	created   *books.BookDTO
	updated   *books.BookDTO
	failed    error
	lastInput books.Input
	lastID    int64
}

func (f *fakeBookService) List(context.Context) ([]books.BookDTO, error) {
	return f.listed, f.failed
}

func (f *fakeBookService) Create(_ context.Context, input books.Input) (*books.BookDTO, error) {
	f.lastInput = input
	return f.created, f.failed
}

func (f *fakeBookService) Update(_ context.Context, id int64, input books.Input) (*books.BookDTO, error) {
	f.lastID = id
	f.lastInput = input
	return f.updated, f.failed
}

func (f *fakeBookService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.failed
}

func routedRequest(method, target, body string, params map[string]string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if len(params) > 0 {
		routeCtx := chi.NewRouteContext()
		for key, value := range params {
			routeCtx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	}
	return req
}

func decodeErrorEnvelope(t *testing.T, body string) types.ErrorEnvelope {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decoding error envelope: %v (body %q)", err, body)
	}
	return envelope
}

const validBookBody = `{"name":"Dune","category":"Fiction","amount":10,"cost":19.99,"date":"2026-08-01"}`

func TestBooksControllerList(t *testing.T) {
	t.Run("returns a bare array", func(t *testing.T) {
		svc := &fakeBookService{listed: []books.BookDTO{{ID: 1, Name: "Dune"}}}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.List(rec, routedRequest(http.MethodGet, "/api/books", "", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "[") {
			t.Fatalf("expected bare array, got %q", rec.Body.String())
		}
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc := &fakeBookService{failed: pkgerrors.New(pkgerrors.CodeInternal, "listing books")}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.List(rec, routedRequest(http.MethodGet, "/api/books", "", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		envelope := decodeErrorEnvelope(t, rec.Body.String())
		if envelope.Error.Code != string(pkgerrors.CodeInternal) {
			t.Fatalf("unexpected code %q", envelope.Error.Code)
		}
	})
}

func TestBooksControllerCreate(t *testing.T) {
	t.Run("valid body returns 201", func(t *testing.T) {
		svc := &fakeBookService{created: &books.BookDTO{ID: 1, Name: "Dune"}}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/books", validBookBody, nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if svc.lastInput.Quantity != 10 {
			t.Fatalf("expected quantity 10, got %d", svc.lastInput.Quantity)
		}
		if svc.lastInput.Price.String() != "19.99" {
			t.Fatalf("expected price 19.99, got %s", svc.lastInput.Price)
		}
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		svc := &fakeBookService{created: &books.BookDTO{ID: 1}}
		ctrl := NewBooksController(svc, nil)

		body := `{"name":"Dune","category":"Fiction","amount":0,"cost":5,"date":"2026-08-01"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/books", body, nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing fields return 400 with details", func(t *testing.T) {
		ctrl := NewBooksController(&fakeBookService{}, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/books", `{"name":"Dune"}`, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		envelope := decodeErrorEnvelope(t, rec.Body.String())
		details, ok := envelope.Error.Details.(map[string]any)
		if !ok {
			t.Fatalf("expected details map, got %#v", envelope.Error.Details)
		}
		for _, field := range []string{"category", "amount", "cost", "date"} {
			if _, present := details[field]; !present {
				t.Fatalf("expected detail for %q, got %v", field, details)
			}
		}
	})

	t.Run("bad date format returns 400", func(t *testing.T) {
		ctrl := NewBooksController(&fakeBookService{}, nil)

		body := `{"name":"Dune","category":"Fiction","amount":1,"cost":5,"date":"01-08-2026"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/books", body, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("negative amount returns 400", func(t *testing.T) {
		ctrl := NewBooksController(&fakeBookService{}, nil)

		body := `{"name":"Dune","category":"Fiction","amount":-1,"cost":5,"date":"2026-08-01"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/books", body, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBooksControllerUpdate(t *testing.T) {
	t.Run("routes the id to the service", func(t *testing.T) {
		svc := &fakeBookService{updated: &books.BookDTO{ID: 7}}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Update(rec, routedRequest(http.MethodPut, "/api/books/7", validBookBody,
			map[string]string{"bookId": "7"}))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if svc.lastID != 7 {
			t.Fatalf("expected id 7, got %d", svc.lastID)
		}
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		ctrl := NewBooksController(&fakeBookService{}, nil)

		rec := httptest.NewRecorder()
		ctrl.Update(rec, routedRequest(http.MethodPut, "/api/books/abc", validBookBody,
			map[string]string{"bookId": "abc"}))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("missing book returns 404", func(t *testing.T) {
		svc := &fakeBookService{failed: pkgerrors.New(pkgerrors.CodeNotFound, "book not found")}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Update(rec, routedRequest(http.MethodPut, "/api/books/99", validBookBody,
			map[string]string{"bookId": "99"}))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		envelope := decodeErrorEnvelope(t, rec.Body.String())
		if envelope.Error.Message != "book not found" {
			t.Fatalf("unexpected message %q", envelope.Error.Message)
		}
	})
}

func TestBooksControllerDelete(t *testing.T) {
	t.Run("answers 204 with empty body", func(t *testing.T) {
		svc := &fakeBookService{}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, routedRequest(http.MethodDelete, "/api/books/3", "",
			map[string]string{"bookId": "3"}))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}
		if svc.lastID != 3 {
			t.Fatalf("expected id 3, got %d", svc.lastID)
		}
	})

	t.Run("missing book returns 404", func(t *testing.T) {
		svc := &fakeBookService{failed: pkgerrors.New(pkgerrors.CodeNotFound, "book not found")}
		ctrl := NewBooksController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, routedRequest(http.MethodDelete, "/api/books/3", "",
			map[string]string{"bookId": "3"}))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
