package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/timezone"
)

const codeSlotUnavailable = "slot_unavailable"

var errSlotUnavailable = httperr.ErrValidation("start_time", codeSlotUnavailable)

// ======================================================
// INPUT (create / edit)
// ======================================================

type SlotInput struct {
	StudioID      uint
	BookingDate   string
	StartTime     string
	EndTime       string
	DurationHours int
	Notes         *string
}

func (in SlotInput) validate(today string) (domain.Slot, error) {
	if in.StudioID == 0 {
		return domain.Slot{}, httperr.ErrValidation("studio_id", "studio_not_found")
	}

	slot, err := domain.NewSlot(in.BookingDate, in.StartTime, in.EndTime)
	if err != nil {
		return domain.Slot{}, err
	}
	if err := slot.NotBefore(today); err != nil {
		return domain.Slot{}, err
	}
	if err := domain.ValidateDetails(in.DurationHours, in.Notes); err != nil {
		return domain.Slot{}, err
	}
	return slot, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := strings.TrimSpace(*notes)
	if n == "" {
		return nil
	}
	return &n
}

// ======================================================
// HELPERS
// ======================================================

type clock func() time.Time

func defaultClock() clock {
	return timezone.Now
}

func slotIsFree(
	ctx context.Context,
	repo domain.Repository,
	studioID uint,
	slot domain.Slot,
	excludeID *uint,
) (bool, error) {
	rows, err := repo.ListActiveForDate(ctx, studioID, slot.Date, excludeID)
	if err != nil {
		return false, err
	}
	return domain.IsFree(slot, rows), nil
}
