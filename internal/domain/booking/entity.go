package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 12
	MaxNotesLength   = 1000
)

// ===============================
// Domain Actions
// ===============================
//
// Todas recebem um snapshot por valor e devolvem um novo snapshot.

type Draft struct {
	UserID        uint
	Studio        models.Studio
	Slot          Slot
	DurationHours int
	Notes         *string
}

func ValidateDetails(durationHours int, notes *string) error {
	if durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return httperr.ErrValidation("duration_hours", "invalid_duration")
	}
	if notes != nil && len([]rune(*notes)) > MaxNotesLength {
		return httperr.ErrValidation("notes", "notes_too_long")
	}
	return nil
}

func TotalFor(hourlyRate decimal.Decimal, durationHours int) decimal.Decimal {
	return hourlyRate.Mul(decimal.NewFromInt(int64(durationHours))).Round(2)
}

func New(d Draft) models.Booking {
	return models.Booking{
		UserID:        d.UserID,
		StudioID:      d.Studio.ID,
		BookingDate:   d.Slot.Date,
		StartTime:     d.Slot.Start.String(),
		EndTime:       d.Slot.End.String(),
		DurationHours: d.DurationHours,
		TotalAmount:   TotalFor(d.Studio.HourlyRate, d.DurationHours),
		Status:        string(InitialStatus()),
		Notes:         d.Notes,
	}
}

// SlotChanged indica se a edição mexe em estúdio, data ou horário.
func SlotChanged(b models.Booking, studioID uint, slot Slot) bool {
	return b.StudioID != studioID ||
		b.BookingDate != slot.Date ||
		b.StartTime != slot.Start.String() ||
		b.EndTime != slot.End.String()
}

// Reschedule aplica a edição. O valor só é recalculado quando
// estúdio ou duração mudam.
func Reschedule(b models.Booking, d Draft) models.Booking {
	next := detach(b)

	reprice := b.StudioID != d.Studio.ID || b.DurationHours != d.DurationHours

	next.StudioID = d.Studio.ID
	next.BookingDate = d.Slot.Date
	next.StartTime = d.Slot.Start.String()
	next.EndTime = d.Slot.End.String()
	next.DurationHours = d.DurationHours
	next.Notes = d.Notes

	if reprice {
		next.TotalAmount = TotalFor(d.Studio.HourlyRate, d.DurationHours)
	}
	return next
}

func AttachProof(b models.Booking, path string, method PaymentMethod) models.Booking {
	next := detach(b)
	m := string(method)
	next.PaymentProof = &path
	next.PaymentMethod = &m
	return next
}

func Transition(b models.Booking, to Status, actor Actor, now time.Time) (models.Booking, error) {
	if !actor.IsAdmin {
		return b, httperr.ErrForbidden("admin_only")
	}
	if !Status(b.Status).CanTransitionTo(to) {
		return b, httperr.ErrForbidden("invalid_status_transition")
	}

	next := detach(b)
	next.Status = string(to)

	if to.Verifies() {
		at := now
		by := actor.ID
		next.VerifiedAt = &at
		next.VerifiedBy = &by
	}
	return next, nil
}

// detach descarta associações carregadas para o Save não tocá-las.
func detach(b models.Booking) models.Booking {
	b.User = nil
	b.Studio = nil
	b.Verifier = nil
	return b
}
