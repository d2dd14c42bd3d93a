package studio

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/audit"
	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/infra/storage"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	Details domain.Details
	// nil: true na criação, valor atual na edição
	Active *bool
	// Image vazio mantém a imagem atual.
	Image []byte
}

func (in Input) details(fallback bool) domain.Details {
	d := in.Details
	d.IsActive = fallback
	if in.Active != nil {
		d.IsActive = *in.Active
	}
	return d
}

// ======================================================
// USE CASE
// ======================================================

type CreateStudio struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewCreateStudio(
	repo domain.Repository,
	st storage.Storage,
	audit *audit.Dispatcher,
) *CreateStudio {
	return &CreateStudio{
		repo:    repo,
		storage: st,
		audit:   audit,
	}
}

func (uc *CreateStudio) Execute(
	ctx context.Context,
	actor booking.Actor,
	in Input,
) (*models.Studio, error) {

	if !actor.IsAdmin {
		return nil, httperr.ErrForbidden("admin_only")
	}
	details := in.details(true)
	if err := details.Validate(); err != nil {
		return nil, err
	}

	s := domain.Apply(models.Studio{}, details)

	var img *storedImage
	if len(in.Image) > 0 {
		stored, err := storeImage(ctx, uc.storage, in.Image)
		if err != nil {
			return nil, err
		}
		img = stored
		s.Image = &img.original
		s.ImageThumb = &img.thumb
	}

	if err := uc.repo.CreateStudio(ctx, &s); err != nil {
		img.release(ctx, uc.storage)
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionStudioCreated,
		Entity:   audit.EntityStudio,
		EntityID: &s.ID,
		Metadata: map[string]any{"name": s.Name, "hourly_rate": s.HourlyRate.StringFixed(2)},
	})

	return &s, nil
}
