package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/metrics"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   clock
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		now:   defaultClock(),
	}
}

func (uc *UpdateStatus) WithClock(now func() time.Time) *UpdateStatus {
	uc.now = now
	return uc
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	newStatus string,
) (*models.Booking, error) {

	if !actor.IsAdmin {
		return nil, httperr.ErrForbidden("admin_only")
	}

	to, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	var (
		from    string
		updated models.Booking
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		from = locked.Status
		next, err := domain.Transition(*locked, to, actor, uc.now())
		if err != nil {
			return err
		}

		updated = next
		return tx.UpdateBooking(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}

	metrics.StatusTransition(from, updated.Status)
	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingStatusChanged,
		Entity:   audit.EntityBooking,
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   updated.Status,
		},
	})

	return &updated, nil
}
