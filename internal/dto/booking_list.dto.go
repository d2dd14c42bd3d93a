package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-rental/internal/models"
)

type BookingListDTO struct {
	ID            uint            `json:"id"`
	BookingDate   string          `json:"booking_date"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	DurationHours int             `json:"duration_hours"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method"`
	HasProof      bool            `json:"has_proof"`
	StudioID      uint            `json:"studio_id"`
	StudioName    string          `json:"studio_name"`
	CustomerName  string          `json:"customer_name"`
}

func BookingList(rows []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(rows))
	for _, b := range rows {
		item := BookingListDTO{
			ID:            b.ID,
			BookingDate:   b.BookingDate,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			DurationHours: b.DurationHours,
			TotalAmount:   b.TotalAmount,
			Status:        b.Status,
			PaymentMethod: b.PaymentMethod,
			HasProof:      b.PaymentProof != nil,
			StudioID:      b.StudioID,
		}
		if b.Studio != nil {
			item.StudioName = b.Studio.Name
		}
		if b.User != nil {
			item.CustomerName = b.User.Name
		}
		out = append(out, item)
	}
	return out
}
