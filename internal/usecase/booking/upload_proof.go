package booking

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	"github.com/BruksfildServices01/studio-rental/internal/imaging"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/metrics"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type ProofUpload struct {
	Data   []byte
	Method string
}

type UploadProof struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewUploadProof(
	repo domain.Repository,
	st storage.Storage,
	audit *audit.Dispatcher,
) *UploadProof {
	return &UploadProof{
		repo:    repo,
		storage: st,
		audit:   audit,
	}
}

func (uc *UploadProof) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	in ProofUpload,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Permissão + validação (antes de gravar qualquer arquivo)
	// --------------------------------------------------
	current, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanUploadProof(*current, actor); err != nil {
		return nil, err
	}

	method, err := domain.ParseProofMethod(in.Method)
	if err != nil {
		return nil, err
	}

	info, err := imaging.Inspect(in.Data)
	if err != nil {
		return nil, imaging.AsValidation("payment_proof", err)
	}

	// --------------------------------------------------
	// 2️⃣ Novo arquivo
	// --------------------------------------------------
	key, err := uc.storage.Put(
		ctx,
		storage.FolderPaymentProofs,
		storage.ObjectName(info.Ext),
		info.ContentType,
		in.Data,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Registro (status continua pending)
	// --------------------------------------------------
	var (
		updated  models.Booking
		previous *string
	)

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		locked, err := tx.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := domain.CanUploadProof(*locked, actor); err != nil {
			return err
		}

		previous = locked.PaymentProof
		updated = domain.AttachProof(*locked, key, method)
		return tx.UpdateBooking(ctx, &updated)
	})
	if err != nil {
		storage.Release(ctx, uc.storage, key)
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Arquivo anterior (best-effort)
	// --------------------------------------------------
	if previous != nil && *previous != key {
		storage.Release(ctx, uc.storage, *previous)
	}

	metrics.ProofUploaded(string(method))
	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionBookingProofUploaded,
		Entity:   audit.EntityBooking,
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"payment_method": string(method),
			"payment_proof":  key,
		},
	})

	return &updated, nil
}
