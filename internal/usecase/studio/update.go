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

type UpdateStudio struct {
	repo    domain.Repository
	cache   domain.Cache
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewUpdateStudio(
	repo domain.Repository,
	cache domain.Cache,
	st storage.Storage,
	audit *audit.Dispatcher,
) *UpdateStudio {
	return &UpdateStudio{
		repo:    repo,
		cache:   cache,
		storage: st,
		audit:   audit,
	}
}

func (uc *UpdateStudio) Execute(
	ctx context.Context,
	actor booking.Actor,
	id uint,
	in Input,
) (*models.Studio, error) {

	if !actor.IsAdmin {
		return nil, httperr.ErrForbidden("admin_only")
	}

	current, err := uc.repo.GetStudio(ctx, id)
	if err != nil {
		return nil, err
	}
	details := in.details(current.IsActive)
	if err := details.Validate(); err != nil {
		return nil, err
	}

	next := domain.Apply(*current, details)

	var img *storedImage
	if len(in.Image) > 0 {
		stored, err := storeImage(ctx, uc.storage, in.Image)
		if err != nil {
			return nil, err
		}
		img = stored
		next.Image = &img.original
		next.ImageThumb = &img.thumb
	}

	if err := uc.repo.UpdateStudio(ctx, &next); err != nil {
		img.release(ctx, uc.storage)
		return nil, err
	}

	// imagem substituída: libera a anterior
	if img != nil {
		releasePaths(ctx, uc.storage, current.Image, current.ImageThumb)
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   &actor.ID,
		Action:   audit.ActionStudioUpdated,
		Entity:   audit.EntityStudio,
		EntityID: &next.ID,
		Metadata: map[string]any{
			"hourly_rate": next.HourlyRate.StringFixed(2),
			"is_active":   next.IsActive,
		},
	})

	return &next, nil
}
