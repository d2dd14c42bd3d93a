package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-rental/internal/dto"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/httpresp"
	ucbooking "github.com/BruksfildServices01/studio-rental/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create  *ucbooking.CreateBooking
	edit    *ucbooking.EditBooking
	upload  *ucbooking.UploadProof
	status  *ucbooking.UpdateStatus
	remove  *ucbooking.DeleteBooking
	get     *ucbooking.GetBooking
	list    *ucbooking.ListBookings
	checker *ucbooking.CheckAvailability
}

type BookingUseCases struct {
	Create       *ucbooking.CreateBooking
	Edit         *ucbooking.EditBooking
	UploadProof  *ucbooking.UploadProof
	UpdateStatus *ucbooking.UpdateStatus
	Delete       *ucbooking.DeleteBooking
	Get          *ucbooking.GetBooking
	List         *ucbooking.ListBookings
	Availability *ucbooking.CheckAvailability
}

func NewBookingHandler(uc BookingUseCases) *BookingHandler {
	return &BookingHandler{
		create:  uc.Create,
		edit:    uc.Edit,
		upload:  uc.UploadProof,
		status:  uc.UpdateStatus,
		remove:  uc.Delete,
		get:     uc.Get,
		list:    uc.List,
		checker: uc.Availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	StudioID      uint    `json:"studio_id" binding:"required"`
	BookingDate   string  `json:"booking_date" binding:"required"`
	StartTime     string  `json:"start_time" binding:"required"`
	EndTime       string  `json:"end_time" binding:"required"`
	DurationHours int     `json:"duration_hours" binding:"required"`
	Notes         *string `json:"notes"`
}

func (r BookingRequest) input() ucbooking.SlotInput {
	return ucbooking.SlotInput{
		StudioID:      r.StudioID,
		BookingDate:   r.BookingDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DurationHours: r.DurationHours,
		Notes:         r.Notes,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE / EDIT
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), actorFrom(c), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.edit.Execute(c.Request.Context(), actorFrom(c), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// READ
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	res, err := h.list.Execute(c.Request.Context(), actorFrom(c), ucbooking.ListInput{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page", 1),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, dto.BookingList(res.Bookings), res.Total, res.Page, res.PerPage)
}

func (h *BookingHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// PAYMENT PROOF
// ======================================================

// UploadProof espera multipart com payment_proof (arquivo) e payment_method.
func (h *BookingHandler) UploadProof(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	data, err := readUpload(c, "payment_proof")
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "Could not read uploaded file.")
		return
	}

	b, err := h.upload.Execute(c.Request.Context(), actorFrom(c), id, ucbooking.ProofUpload{
		Data:   data,
		Method: c.PostForm("payment_method"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// STATUS / DELETE
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.status.Execute(c.Request.Context(), actorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
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

// ======================================================
// AVAILABILITY (público)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	q := ucbooking.AvailabilityQuery{
		StudioID:  id,
		Date:      c.Query("date"),
		StartTime: c.Query("start_time"),
		EndTime:   c.Query("end_time"),
	}
	if ex := queryInt(c, "exclude_id", 0); ex > 0 {
		exclude := uint(ex)
		q.ExcludeID = &exclude
	}

	available, err := h.checker.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"studio_id":  id,
		"date":       q.Date,
		"start_time": q.StartTime,
		"end_time":   q.EndTime,
		"available":  available,
	})
}
