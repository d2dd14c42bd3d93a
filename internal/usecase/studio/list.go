package studio

import (
	"context"

	"github.com/BruksfildServices01/studio-rental/internal/domain/booking"
	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const PerPage = 12

type ListInput struct {
	Search string
	Status string
	Page   int
}

type ListResult struct {
	Studios []models.Studio
	Total   int64
	Page    int
	PerPage int
}

type ListStudios struct {
	repo domain.Repository
}

func NewListStudios(repo domain.Repository) *ListStudios {
	return &ListStudios{repo: repo}
}

func (uc *ListStudios) Execute(
	ctx context.Context,
	actor booking.Actor,
	in ListInput,
) (*ListResult, error) {

	f := domain.ListFilter{
		Search:  in.Search,
		Page:    in.Page,
		PerPage: PerPage,
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	// cliente só enxerga estúdios ativos
	switch {
	case !actor.IsAdmin:
		f.Status = "active"
	case in.Status == "active" || in.Status == "inactive":
		f.Status = in.Status
	}

	rows, total, err := uc.repo.ListStudios(ctx, f)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Studios: rows,
		Total:   total,
		Page:    f.Page,
		PerPage: f.PerPage,
	}, nil
}
