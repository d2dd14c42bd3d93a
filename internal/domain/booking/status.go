package booking

import (
	"strings"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// completed e cancelled são terminais.
var transitions = map[Status][]Status{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusCompleted, StatusCancelled},
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusCompleted:
		return s, nil
	}
	return "", httperr.ErrValidation("status", "invalid_status")
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Verifies indica se entrar neste status carimba verified_at/verified_by.
func (s Status) Verifies() bool {
	return s == StatusPaid || s == StatusCompleted
}

// ===============================
// Guards
// ===============================

func CanView(b models.Booking, actor Actor) error {
	if !actor.CanManage(b) {
		return httperr.ErrForbidden("not_booking_owner")
	}
	return nil
}

func CanEdit(b models.Booking, actor Actor) error {
	if !actor.CanManage(b) {
		return httperr.ErrForbidden("not_booking_owner")
	}
	if Status(b.Status) != StatusPending {
		return httperr.ErrForbidden("booking_not_editable")
	}
	return nil
}

// CanUploadProof: só o dono, só enquanto pending. Admin não envia comprovante.
func CanUploadProof(b models.Booking, actor Actor) error {
	if !actor.Owns(b) || Status(b.Status) != StatusPending {
		return httperr.ErrForbidden("proof_not_allowed")
	}
	return nil
}

func CanDelete(b models.Booking, actor Actor) error {
	if !actor.CanManage(b) {
		return httperr.ErrForbidden("not_booking_owner")
	}
	switch Status(b.Status) {
	case StatusPending, StatusCancelled:
		return nil
	}
	return httperr.ErrForbidden("booking_not_deletable")
}
