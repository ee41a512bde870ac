package books

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/perfectbooks/stock-api/internal/activity"
	"github.com/perfectbooks/stock-api/pkg/db"
	"github.com/perfectbooks/stock-api/pkg/db/models"
	"github.com/perfectbooks/stock-api/pkg/enums"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

// Input carries the validated fields of a create or update request.
type Input struct {
	Name      string
	Category  string
	Quantity  int
	Price     decimal.Decimal
	DateAdded string
}

// CacheInvalidator drops cached dashboard aggregates after a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service owns book reads and writes plus their side effects: every
// successful mutation is logged to the activity feed and busts the
// dashboard cache.
type Service interface {
	List(ctx context.Context) ([]BookDTO, error)
	Create(ctx context.Context, input Input) (*BookDTO, error)
	Update(ctx context.Context, id int64, input Input) (*BookDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	recorder activity.Recorder
	cache    CacheInvalidator
}

// NewService wires the book service. cache may be nil when Redis is disabled.
func NewService(repo Repository, recorder activity.Recorder, cache CacheInvalidator) Service {
	return &service{repo: repo, recorder: recorder, cache: cache}
}

func (s *service) List(ctx context.Context) ([]BookDTO, error) {
	found, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing books")
	}
	return NewBookDTOs(found), nil
}

func (s *service) Create(ctx context.Context, input Input) (*BookDTO, error) {
	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Name:      normalized.Name,
		Category:  normalized.Category,
		Quantity:  normalized.Quantity,
		Price:     normalized.Price,
		DateAdded: normalized.DateAdded,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "inserting book")
	}

	s.afterMutation(ctx, enums.ActivityBookAdded,
		fmt.Sprintf("New book %q added to inventory", book.Name))
	return NewBookDTO(book), nil
}

func (s *service) Update(ctx context.Context, id int64, input Input) (*BookDTO, error) {
	normalized, err := normalizeInput(input)
	if err != nil {
		return nil, err
	}

	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading book")
	}

	book.Name = normalized.Name
	book.Category = normalized.Category
	book.Quantity = normalized.Quantity
	book.Price = normalized.Price
	book.DateAdded = normalized.DateAdded
	if err := s.repo.Save(ctx, book); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving book")
	}

	s.afterMutation(ctx, enums.ActivityBookUpdated,
		fmt.Sprintf("Book %q updated", book.Name))
	return NewBookDTO(book), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "book not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading book")
	}

	if err := s.repo.Delete(ctx, book.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting book")
	}

	s.afterMutation(ctx, enums.ActivityBookDeleted,
		fmt.Sprintf("Book %q deleted from inventory", book.Name))
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

// normalizeInput trims free-text fields and rejects values the JSON-level
// validator cannot see, such as names made of whitespace only.
func normalizeInput(input Input) (Input, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" {
		return Input{}, pkgerrors.New(pkgerrors.CodeValidation, "name must not be blank").
			WithDetails(map[string]string{"name": "name must not be blank"})
	}
	if input.Category == "" {
		return Input{}, pkgerrors.New(pkgerrors.CodeValidation, "category must not be blank").
			WithDetails(map[string]string{"category": "category must not be blank"})
	}
	return input, nil
}
