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

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   clock
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   defaultClock(),
	}
}

func (uc *CreateBooking) WithClock(now func() time.Time) *CreateBooking {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	in SlotInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	in.Notes = normalizeNotes(in.Notes)

	slot, err := in.validate(timezone.Today(uc.now()))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Estúdio travado + disponibilidade + insert (uma transação)
	// --------------------------------------------------
	var created models.Booking
	conflictSource := "constraint"

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		studio, err := tx.LockStudio(ctx, in.StudioID)
		if err != nil {
			return err
		}
		if !studio.IsActive {
			return httperr.ErrValidation("studio_id", "studio_inactive")
		}

		free, err := slotIsFree(ctx, tx, studio.ID, slot, nil)
		if err != nil {
			return err
		}
		if !free {
			conflictSource = "check"
			return errSlotUnavailable
		}

		created = domain.New(domain.Draft{
			UserID:        actor.ID,
			Studio:        *studio,
			Slot:          slot,
			DurationHours: in.DurationHours,
			Notes:         in.Notes,
		})

		return tx.CreateBooking(ctx, &created)
	})
	if err != nil {
		if httperr.IsBusiness(err, codeSlotUnavailable) {
			uc.conflict(ctx, actor, in, conflictSource)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	metrics.BookingCreated()
	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingCreated,
		Entity:   audit.EntityBooking,
		EntityID: &created.ID,
		Metadata: map[string]any{
			"studio_id":    created.StudioID,
			"booking_date": created.BookingDate,
			"start_time":   created.StartTime,
			"end_time":     created.EndTime,
			"total_amount": created.TotalAmount.StringFixed(2),
		},
	})

	return &created, nil
}

func (uc *CreateBooking) conflict(ctx context.Context, actor domain.Actor, in SlotInput, source string) {
	metrics.SlotConflict(source)
	uc.audit.Dispatch(ctx, audit.Event{
		UserID: &actor.ID,
		Action: audit.ActionBookingConflict,
		Entity: audit.EntityBooking,
		Metadata: map[string]any{
			"studio_id":    in.StudioID,
			"booking_date": in.BookingDate,
			"start_time":   in.StartTime,
			"end_time":     in.EndTime,
			"source":       source,
		},
	})
}
