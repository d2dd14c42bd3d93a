package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
)

const DateLayout = "2006-01-02"

// Clock guarda minutos desde 00:00.
type Clock int

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

func ParseClock(raw string) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return Clock(h*60 + mm), true
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseDate normaliza para YYYY-MM-DD.
func ParseDate(raw string) (string, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

type Slot struct {
	Date  string
	Start Clock
	End   Clock
}

func NewSlot(date, start, end string) (Slot, error) {
	d, ok := ParseDate(date)
	if !ok {
		return Slot{}, httperr.ErrValidation("booking_date", "invalid_date")
	}
	s, ok := ParseClock(start)
	if !ok {
		return Slot{}, httperr.ErrValidation("start_time", "invalid_time")
	}
	e, ok := ParseClock(end)
	if !ok {
		return Slot{}, httperr.ErrValidation("end_time", "invalid_time")
	}
	if e <= s {
		return Slot{}, httperr.ErrValidation("end_time", "end_before_start")
	}
	return Slot{Date: d, Start: s, End: e}, nil
}

// SlotOf lê o horário persistido de uma reserva.
func SlotOf(b models.Booking) (Slot, bool) {
	s, ok1 := ParseClock(b.StartTime)
	e, ok2 := ParseClock(b.EndTime)
	if !ok1 || !ok2 {
		return Slot{}, false
	}
	return Slot{Date: b.BookingDate, Start: s, End: e}, true
}

// NotBefore rejeita datas anteriores a today (YYYY-MM-DD).
func (s Slot) NotBefore(today string) error {
	if s.Date < today {
		return httperr.ErrValidation("booking_date", "date_in_past")
	}
	return nil
}
