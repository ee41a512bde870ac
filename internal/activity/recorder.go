package activity

import (
	"context"
	"time"

	"github.com/perfectbooks/stock-api/pkg/db/models"
	"github.com/perfectbooks/stock-api/pkg/enums"
	"github.com/perfectbooks/stock-api/pkg/logger"
)

const recordTimeout = 5 * time.Second

// Recorder appends one audit entry per successful mutation. Recording is
// best-effort relative to the primary write: a failure here never fails the
// mutation, it only produces a warning log.
type Recorder interface {
	Record(ctx context.Context, typ enums.ActivityType, message string)
}

type recorder struct {
	repo Repository
	logg *logger.Logger
}

// NewRecorder wires the activity recorder.
func NewRecorder(repo Repository, logg *logger.Logger) Recorder {
	return &recorder{repo: repo, logg: logg}
}

// Record runs synchronously so the entry is visible to the next activities
// read, but on a context detached from the request: a caller that goes away
// right after its mutation commits must not lose the log entry.
func (r *recorder) Record(ctx context.Context, typ enums.ActivityType, message string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	entry := &models.Activity{Type: typ, Message: message}
	if err := r.repo.Create(ctx, entry); err != nil {
		if r.logg != nil {
			ctx = r.logg.WithFields(ctx, map[string]any{
				"activity_type": typ.String(),
				"message":       message,
			})
			r.logg.Warn(ctx, "activity.record_failed: "+err.Error())
		}
	}
}
