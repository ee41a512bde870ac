package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/perfectbooks/stock-api/internal/orders"
	"github.com/perfectbooks/stock-api/pkg/enums"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

type fakeOrderService struct {
	listed    []orders.OrderDTO
	created   *orders.OrderDTO
	updated   *orders.OrderDTO
	failed    error
	lastInput orders.Input
	lastID    int64
}

func (f *fakeOrderService) List(context.Context) ([]orders.OrderDTO, error) {
	return f.listed, f.failed
}

func (f *fakeOrderService) Create(_ context.Context, input orders.Input) (*orders.OrderDTO, error) {
	f.lastInput = input
	return f.created, f.failed
}

func (f *fakeOrderService) Update(_ context.Context, id int64, input orders.Input) (*orders.OrderDTO, error) {
	f.lastID = id
	f.lastInput = input
	return f.updated, f.failed
}

func (f *fakeOrderService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.failed
}

const validOrderBody = `{"bookName":"Dune","quantity":2,"customerName":"Ada Lovelace","category":"Fiction","orderDate":"2026-08-15","status":"pending"}`

func TestOrdersControllerCreate(t *testing.T) {
	t.Run("valid body returns 201", func(t *testing.T) {
		svc := &fakeOrderService{created: &orders.OrderDTO{ID: 1, Status: "pending"}}
		ctrl := NewOrdersController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/orders", validOrderBody, nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if svc.lastInput.Status != enums.OrderStatusPending {
			t.Fatalf("unexpected status %q", svc.lastInput.Status)
		}
	})

	t.Run("omitted status passes through empty", func(t *testing.T) {
		svc := &fakeOrderService{created: &orders.OrderDTO{ID: 1, Status: "pending"}}
		ctrl := NewOrdersController(svc, nil)

		body := `{"bookName":"Dune","quantity":2,"customerName":"Ada Lovelace","category":"Fiction","orderDate":"2026-08-15"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/orders", body, nil))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if svc.lastInput.Status != "" {
			t.Fatalf("expected empty status, got %q", svc.lastInput.Status)
		}
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		ctrl := NewOrdersController(&fakeOrderService{}, nil)

		body := `{"bookName":"Dune","quantity":2,"customerName":"Ada","category":"Fiction","orderDate":"2026-08-15","status":"shipped"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/orders", body, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		envelope := decodeErrorEnvelope(t, rec.Body.String())
		if envelope.Error.Code != string(pkgerrors.CodeValidation) {
			t.Fatalf("unexpected code %q", envelope.Error.Code)
		}
	})

	t.Run("zero quantity returns 400", func(t *testing.T) {
		ctrl := NewOrdersController(&fakeOrderService{}, nil)

		body := `{"bookName":"Dune","quantity":0,"customerName":"Ada","category":"Fiction","orderDate":"2026-08-15"}`
		rec := httptest.NewRecorder()
		ctrl.Create(rec, routedRequest(http.MethodPost, "/api/orders", body, nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestOrdersControllerUpdate(t *testing.T) {
	t.Run("routes the id to the service", func(t *testing.T) {
		svc := &fakeOrderService{updated: &orders.OrderDTO{ID: 5, Status: "completed"}}
		ctrl := NewOrdersController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Update(rec, routedRequest(http.MethodPut, "/api/orders/5", validOrderBody,
			map[string]string{"orderId": "5"}))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body %s)", rec.Code, rec.Body.String())
		}
		if svc.lastID != 5 {
			t.Fatalf("expected id 5, got %d", svc.lastID)
		}
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		ctrl := NewOrdersController(&fakeOrderService{}, nil)

		rec := httptest.NewRecorder()
		ctrl.Update(rec, routedRequest(http.MethodPut, "/api/orders/x", validOrderBody,
			map[string]string{"orderId": "x"}))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestOrdersControllerDelete(t *testing.T) {
	t.Run("answers 204", func(t *testing.T) {
		svc := &fakeOrderService{}
		ctrl := NewOrdersController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, routedRequest(http.MethodDelete, "/api/orders/2", "",
			map[string]string{"orderId": "2"}))

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("missing order returns 404", func(t *testing.T) {
		svc := &fakeOrderService{failed: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
		ctrl := NewOrdersController(svc, nil)

		rec := httptest.NewRecorder()
		ctrl.Delete(rec, routedRequest(http.MethodDelete, "/api/orders/2", "",
			map[string]string{"orderId": "2"}))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
