package studio

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const MaxNameLength = 255

// decimal(10,2)
var maxHourlyRate = decimal.RequireFromString("99999999.99")

type Details struct {
	Name        string
	Description *string
	HourlyRate  decimal.Decimal
	Facilities  *string
	IsActive    bool
}

func (d Details) Validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return httperr.ErrValidation("name", "name_required")
	}
	if len([]rune(name)) > MaxNameLength {
		return httperr.ErrValidation("name", "name_too_long")
	}
	if d.HourlyRate.IsNegative() || d.HourlyRate.GreaterThan(maxHourlyRate) {
		return httperr.ErrValidation("hourly_rate", "invalid_hourly_rate")
	}
	return nil
}

func Apply(s models.Studio, d Details) models.Studio {
	s.Name = strings.TrimSpace(d.Name)
	s.Description = d.Description
	s.HourlyRate = d.HourlyRate.Round(2)
	s.Facilities = d.Facilities
	s.IsActive = d.IsActive
	return s
}

// CanDelete recusa enquanto houver reservas pending ou paid.
func CanDelete(activeBookings int64) error {
	if activeBookings > 0 {
		return httperr.ErrValidation("studio", "studio_has_active_bookings")
	}
	return nil
}
