package controllers

import (
	"context"
	"net/http"

	"github.com/perfectbooks/stock-api/api/responses"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
	"github.com/perfectbooks/stock-api/pkg/logger"
)

// Pinger is the dependency health surface checked by readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db    Pinger
	cache Pinger
	logg  *logger.Logger
}

// NewHealthController wires the health endpoints. cache may be nil when
// Redis is disabled; readiness then checks the database only.
func NewHealthController(db, cache Pinger, logg *logger.Logger) *HealthController {
	return &HealthController{db: db, cache: cache, logg: logg}
}

func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if c.db != nil {
		if err := c.db.Ping(ctx); err != nil {
			responses.WriteError(ctx, c.logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
	}
	if c.cache != nil {
		if err := c.cache.Ping(ctx); err != nil {
			responses.WriteError(ctx, c.logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
			return
		}
	}

	responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
