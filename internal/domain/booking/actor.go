package booking

import "github.com/BruksfildServices01/studio-rental/internal/models"

// Actor é quem executa a operação, resolvido a partir do token.
type Actor struct {
	ID      uint
	IsAdmin bool
}

func (a Actor) Owns(b models.Booking) bool {
	return a.ID != 0 && b.UserID == a.ID
}

func (a Actor) CanManage(b models.Booking) bool {
	return a.IsAdmin || a.Owns(b)
}
