package booking

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
)

type DeleteBooking struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	st storage.Storage,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:    repo,
		storage: st,
		audit:   audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) error {

	var (
		proof  *string
		status string
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := domain.CanDelete(*locked, actor); err != nil {
			return err
		}

		proof = locked.PaymentProof
		status = locked.Status
		return tx.DeleteBooking(ctx, locked.ID)
	})
	if err != nil {
		return err
	}

	// o registro já não existe; falha aqui só vira log
	if proof != nil {
		storage.Release(ctx, uc.storage, *proof)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingDeleted,
		Entity:   audit.EntityBooking,
		EntityID: &bookingID,
		Metadata: map[string]any{"status": status},
	})

	return nil
}
