package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/metrics"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

type EditBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   clock
}

func NewEditBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditBooking {
	return &EditBooking{
		repo:  repo,
		audit: audit,
		now:   defaultClock(),
	}
}

func (uc *EditBooking) WithClock(now func() time.Time) *EditBooking {
	uc.now = now
	return uc
}

func (uc *EditBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	in SlotInput,
) (*models.Booking, error) {

	// existência e permissão antes da validação dos campos
	current, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanEdit(*current, actor); err != nil {
		return nil, err
	}

	in.Notes = normalizeNotes(in.Notes)

	slot, err := in.validate(timezone.Today(uc.now()))
	if err != nil {
		return nil, err
	}

	var (
		before  models.Booking
		updated models.Booking
	)
	conflictSource := "constraint"

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := domain.CanEdit(*locked, actor); err != nil {
			return err
		}

		studio, err := tx.LockStudio(ctx, in.StudioID)
		if err != nil {
			return err
		}
		if !studio.IsActive {
			return httperr.ErrValidation("studio_id", "studio_inactive")
		}

		if domain.SlotChanged(*locked, studio.ID, slot) {
			free, err := slotIsFree(ctx, tx, studio.ID, slot, &locked.ID)
			if err != nil {
				return err
			}
			if !free {
				conflictSource = "check"
				return errSlotUnavailable
			}
		}

		before = *locked
		updated = domain.Reschedule(*locked, domain.Draft{
			Studio:        *studio,
			Slot:          slot,
			DurationHours: in.DurationHours,
			Notes:         in.Notes,
		})

		return tx.UpdateBooking(ctx, &updated)
	})
	if err != nil {
		if httperr.IsBusiness(err, codeSlotUnavailable) {
			metrics.SlotConflict(conflictSource)
			uc.audit.Dispatch(ctx, audit.Event{
				UserID:   &actor.ID,
				Action:   audit.ActionBookingConflict,
				Entity:   audit.EntityBooking,
				EntityID: &bookingID,
				Metadata: map[string]any{"source": conflictSource},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingUpdated,
		Entity:   audit.EntityBooking,
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"studio_id":       updated.StudioID,
			"booking_date":    updated.BookingDate,
			"start_time":      updated.StartTime,
			"end_time":        updated.EndTime,
			"previous_amount": before.TotalAmount.StringFixed(2),
			"total_amount":    updated.TotalAmount.StringFixed(2),
		},
	})

	return &updated, nil
}
