package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/perfectbooks/stock-api/internal/activity"
	"github.com/perfectbooks/stock-api/pkg/db"
	"github.com/perfectbooks/stock-api/pkg/db/models"
	"github.com/perfectbooks/stock-api/pkg/enums"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

// Input carries the validated fields of a create or update request. A zero
// Status on create falls back to pending.
type Input struct {
	BookName     string
	Quantity     int
	CustomerName string
	Category     string
	OrderDate    string
	Status       enums.OrderStatus
}

// CacheInvalidator drops cached dashboard aggregates after a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service owns order reads and writes plus their side effects on the
// activity feed and the dashboard cache.
type Service interface {
	List(ctx context.Context) ([]OrderDTO, error)
	Create(ctx context.Context, input Input) (*OrderDTO, error)
	Update(ctx context.Context, id int64, input Input) (*OrderDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	recorder activity.Recorder
	cache    CacheInvalidator
}

// NewService wires the order service. cache may be nil when Redis is disabled.
func NewService(repo Repository, recorder activity.Recorder, cache CacheInvalidator) Service {
	return &service{repo: repo, recorder: recorder, cache: cache}
}

func (s *service) List(ctx context.Context) ([]OrderDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders")
	}
	return NewOrderDTOs(found), nil
}

func (s *service) Create(ctx context.Context, input Input) (*OrderDTO, error) {
	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}
	if normalized.Status == "" {
		normalized.Status = enums.OrderStatusPending
	}

	order := &models.Order{
		BookName:     normalized.BookName,
		Quantity:     normalized.Quantity,
		CustomerName: normalized.CustomerName,
		Category:     normalized.Category,
		OrderDate:    normalized.OrderDate,
		Status:       normalized.Status,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting order")
	}

	s.afterMutation(ctx, enums.ActivityOrderReceived,
		fmt.Sprintf("New order received from %s for %s (%s)",
			order.CustomerName, order.BookName, order.Category))
	return NewOrderDTO(order), nil
}

func (s *service) Update(ctx context.Context, id int64, input Input) (*OrderDTO, error) {
	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}
	if !normalized.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]string{"status": "invalid order status"})
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}

	order.BookName = normalized.BookName
	order.Quantity = normalized.Quantity
	order.CustomerName = normalized.CustomerName
	order.Category = normalized.Category
	order.OrderDate = normalized.OrderDate
	order.Status = normalized.Status
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving order")
	}

	s.afterMutation(ctx, enums.ActivityOrderUpdated,
		fmt.Sprintf("Order from %s for %s (%s) updated",
			order.CustomerName, order.BookName, order.Category))
	return NewOrderDTO(order), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading order")
	}

	if err := s.repo.Delete(ctx, order.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting order")
	}

	s.afterMutation(ctx, enums.ActivityOrderDeleted,
		fmt.Sprintf("Order from %s deleted", order.CustomerName))
	return nil
}

func (s *service) afterMutation(ctx context.Context, typ enums.ActivityType, message string) {
	if s.recorder != nil {
		s.recorder.Record(ctx, typ, message)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func normalizeInput(input Input) (Input, error) {
	input.BookName = strings.TrimSpace(input.BookName)
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Category = strings.TrimSpace(input.Category)
	if input.BookName == "" {
		return Input{}, pkgerrors.New(pkgerrors.CodeValidation, "bookName must not be blank").
			WithDetails(map[string]string{"bookName": "bookName must not be blank"})
	}
	if input.CustomerName == "" {
		return Input{}, pkgerrors.New(pkgerrors.CodeValidation, "customerName must not be blank").
			WithDetails(map[string]string{"customerName": "customerName must not be blank"})
	}
	if input.Category == "" {
		return Input{}, pkgerrors.New(pkgerrors.CodeValidation, "category must not be blank").
			WithDetails(map[string]string{"category": "category must not be blank"})
	}
	return input, nil
}
