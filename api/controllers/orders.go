package controllers

import (
	"net/http"

	"github.com/perfectbooks/stock-api/api/responses"
	"github.com/perfectbooks/stock-api/api/validators"
	"github.com/perfectbooks/stock-api/internal/orders"
	"github.com/perfectbooks/stock-api/pkg/enums"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
	"github.com/perfectbooks/stock-api/pkg/logger"
)

// orderRequest is the create/update body. Status is optional on create and
// defaults to pending.
type orderRequest struct {
	BookName     string `json:"bookName" validate:"required,min=1,max=255"`
	Quantity     *int   `json:"quantity" validate:"required,gte=1"`
	CustomerName string `json:"customerName" validate:"required,min=1,max=255"`
	Category     string `json:"category" validate:"required,min=1,max=255"`
	OrderDate    string `json:"orderDate" validate:"required,dateformat"`
	Status       string `json:"status" validate:"omitempty"`
}

func (req orderRequest) toInput() (orders.Input, error) {
	input := orders.Input{
		BookName:     req.BookName,
		Quantity:     *req.Quantity,
		CustomerName: req.CustomerName,
		Category:     req.Category,
		OrderDate:    req.OrderDate,
	}
	if req.Status != "" {
		status, err := enums.ParseOrderStatus(req.Status)
		if err != nil {
			return orders.Input{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
				WithDetails(map[string]string{"status": "must be one of pending, customs, completed, cancelled"})
		}
		input.Status = status
	}
	return input, nil
}

type OrdersController struct {
	svc  orders.Service
	logg *logger.Logger
}

func NewOrdersController(svc orders.Service, logg *logger.Logger) *OrdersController {
	return &OrdersController{svc: svc, logg: logg}
}

func (c *OrdersController) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := c.svc.List(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, dtos)
}

func (c *OrdersController) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	dto, err := c.svc.Create(r.Context(), input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusCreated, dto)
}

func (c *OrdersController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId")
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	var req orderRequest
	if err := validators.DecodeJSONBody(r, &req); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	dto, err := c.svc.Update(r.Context(), id, input)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, dto)
}

func (c *OrdersController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "orderId")
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
