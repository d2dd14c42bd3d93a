package imaging

import (
	"errors"

	"github.com/BruksfildServices01/studio-rental/internal/httperr"
)

// AsValidation converte erros de Inspect em erro de validação do campo.
func AsValidation(field string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEmpty):
		return httperr.ErrValidation(field, "file_required")
	case errors.Is(err, ErrTooLarge):
		return httperr.ErrValidation(field, "file_too_large")
	case errors.Is(err, ErrUnsupported):
		return httperr.ErrValidation(field, "unsupported_file_type")
	case errors.Is(err, ErrCorrupt):
		return httperr.ErrValidation(field, "invalid_image")
	}
	return err
}
