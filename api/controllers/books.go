package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/perfectbooks/stock-api/api/responses"
	"github.com/perfectbooks/stock-api/api/validators"
	"github.com/perfectbooks/stock-api/internal/books"
	"github.com/perfectbooks/stock-api/pkg/logger"
)

// bookRequest is the create/update body. Amount and Cost are pointers so a
// legitimate zero survives the required check.
type bookRequest struct {
	Name     string   `json:"name" validate:"required,min=1,max=255"`
	Category string   `json:"category" validate:"required,min=1,max=255"`
	Amount   *int     `json:"amount" validate:"required,gte=0"`
	Cost     *float64 `json:"cost" validate:"required,gte=0"`
	Date     string   `json:"date" validate:"required,dateformat"`
}

func (req bookRequest) toInput() books.Input {
	return books.Input{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  *req.Amount,
		Price:     decimal.NewFromFloat(*req.Cost),
		DateAdded: req.Date,
	}
}

type BooksController struct {
	svc  books.Service
	logg *logger.Logger
}

func NewBooksController(svc books.Service, logg *logger.Logger) *BooksController {
	return &BooksController{svc: svc, logg: logg}
}

func (c *BooksController) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := c.svc.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, dtos)
}

func (c *BooksController) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	dto, err := c.svc.Create(r.Context(), req.toInput())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusCreated, dto)
}

func (c *BooksController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "bookId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req bookRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	dto, err := c.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, dto)
}

func (c *BooksController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "bookId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.NoContent(w)
}
