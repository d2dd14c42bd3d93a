package booking

import "github.com/BruksfildServices01/studio-rental/internal/models"

// Overlaps usa limites inclusivos nas duas pontas: uma reserva que termina
// às 12:00 bloqueia um pedido que começa às 12:00.
func Overlaps(existing, requested Slot) bool {
	if existing.Date != requested.Date {
		return false
	}

	startsInside := requested.Start <= existing.Start && existing.Start <= requested.End
	endsInside := requested.Start <= existing.End && existing.End <= requested.End
	covers := existing.Start <= requested.Start && existing.End >= requested.End

	return startsInside || endsInside || covers
}

// IsFree avalia o pedido contra as reservas já carregadas do mesmo estúdio e dia.
// Canceladas não ocupam horário. Linhas com horário ilegível contam como conflito.
func IsFree(requested Slot, existing []models.Booking) bool {
	for _, b := range existing {
		if Status(b.Status) == StatusCancelled {
			continue
		}
		slot, ok := SlotOf(b)
		if !ok || Overlaps(slot, requested) {
			return false
		}
	}
	return true
}
