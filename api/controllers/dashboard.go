package controllers

import (
	"net/http"

	"github.com/perfectbooks/stock-api/api/responses"
	"github.com/perfectbooks/stock-api/internal/dashboard"
	"github.com/perfectbooks/stock-api/pkg/logger"
)

type DashboardController struct {
	svc  dashboard.Service
	logg *logger.Logger
}

func NewDashboardController(svc dashboard.Service, logg *logger.Logger) *DashboardController {
	return &DashboardController{svc: svc, logg: logg}
}

func (c *DashboardController) ChartData(w http.ResponseWriter, r *http.Request) {
	data, err := c.svc.ChartData(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, data)
}

func (c *DashboardController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.svc.Summary(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, summary)
}

func (c *DashboardController) Activities(w http.ResponseWriter, r *http.Request) {
	feed, err := c.svc.Activities(r.Context())
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	responses.WriteJSON(w, http.StatusOK, feed)
}
