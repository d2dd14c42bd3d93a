package booking

import (
	"strings"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
)

type PaymentMethod string

const (
	MethodQRIS     PaymentMethod = "qris"
	MethodTransfer PaymentMethod = "transfer"
	MethodCash     PaymentMethod = "cash"
)

// ParseProofMethod aceita apenas métodos que exigem comprovante.
// Dinheiro é acertado no estúdio.
func ParseProofMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case MethodQRIS, MethodTransfer:
		return m, nil
	}
	return "", httperr.ErrValidation("payment_method", "invalid_payment_method")
}
