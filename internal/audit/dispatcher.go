package audit

import (
	"context"
	"log"
)

const (
	ActionBookingCreated       = "booking_created"
	ActionBookingUpdated       = "booking_updated"
	ActionBookingProofUploaded = "booking_proof_uploaded"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionBookingDeleted       = "booking_deleted"
	ActionBookingConflict      = "booking_conflict"

	ActionStudioCreated = "studio_created"
	ActionStudioUpdated = "studio_updated"
	ActionStudioDeleted = "studio_deleted"

	EntityBooking = "booking"
	EntityStudio  = "studio"
)

type Event struct {
	UserID   *uint  `json:"user_id,omitempty"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *uint  `json:"entity_id,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
}

type Sink interface {
	Record(ctx context.Context, ev Event) error
}

// Dispatcher repassa cada evento a todos os sinks, na própria requisição.
// Erro de auditoria é logado e nunca quebra a API.
type Dispatcher struct {
	sinks []Sink
}

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{}
	for _, s := range sinks {
		if s != nil {
			d.sinks = append(d.sinks, s)
		}
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	// a requisição pode ter sido cancelada depois do commit
	ctx = context.WithoutCancel(ctx)

	for _, s := range d.sinks {
		if err := s.Record(ctx, ev); err != nil {
			log.Printf("audit error action=%s entity=%s err=%v", ev.Action, ev.Entity, err)
		}
	}
}
