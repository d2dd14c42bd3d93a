package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/studio-rental/internal/domain/studio"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/httpresp"
	ucstudio "github.com/BruksfildServices01/studio-rental/internal/usecase/studio"
)

type StudioHandler struct {
	create *ucstudio.CreateStudio
	update *ucstudio.UpdateStudio
	remove *ucstudio.DeleteStudio
	list   *ucstudio.ListStudios
	get    *ucstudio.GetStudio
}

type StudioUseCases struct {
	Create *ucstudio.CreateStudio
	Update *ucstudio.UpdateStudio
	Delete *ucstudio.DeleteStudio
	List   *ucstudio.ListStudios
	Get    *ucstudio.GetStudio
}

func NewStudioHandler(uc StudioUseCases) *StudioHandler {
	return &StudioHandler{
		create: uc.Create,
		update: uc.Update,
		remove: uc.Delete,
		list:   uc.List,
		get:    uc.Get,
	}
}

// StudioRequest aceita multipart (com "image") ou JSON.
type StudioRequest struct {
	Name        string  `form:"name" json:"name"`
	Description *string `form:"description" json:"description"`
	HourlyRate  string  `form:"hourly_rate" json:"hourly_rate"`
	Facilities  *string `form:"facilities" json:"facilities"`
	IsActive    *bool   `form:"is_active" json:"is_active"`
}

func (r StudioRequest) input(image []byte) (ucstudio.Input, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(r.HourlyRate))
	if err != nil {
		return ucstudio.Input{}, httperr.ErrValidation("hourly_rate", "invalid_hourly_rate")
	}

	return ucstudio.Input{
		Details: domain.Details{
			Name:        r.Name,
			Description: r.Description,
			HourlyRate:  rate,
			Facilities:  r.Facilities,
		},
		Active: r.IsActive,
		Image:  image,
	}, nil
}

func (h *StudioHandler) bind(c *gin.Context) (ucstudio.Input, bool) {
	var req StudioRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return ucstudio.Input{}, false
	}

	image, err := readUpload(c, "image")
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "Could not read uploaded file.")
		return ucstudio.Input{}, false
	}

	in, err := req.input(image)
	if err != nil {
		httperr.Respond(c, err)
		return ucstudio.Input{}, false
	}
	return in, true
}

func (h *StudioHandler) List(c *gin.Context) {
	res, err := h.list.Execute(c.Request.Context(), actorFrom(c), ucstudio.ListInput{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   queryInt(c, "page", 1),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, res.Studios, res.Total, res.Page, res.PerPage)
}

func (h *StudioHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, d)
}

func (h *StudioHandler) Create(c *gin.Context) {
	in, ok := h.bind(c)
	if !ok {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *StudioHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	in, ok := h.bind(c)
	if !ok {
		return
	}

	s, err := h.update.Execute(c.Request.Context(), actorFrom(c), id, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *StudioHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
