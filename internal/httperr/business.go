package httperr

import "errors"

type Kind string

const (
	KindBusiness      Kind = "business"
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
)

type BusinessError struct {
	Kind  Kind
	Code  string
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Code
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBusiness, Code: code}
}

// ErrValidation aponta o campo da requisição que falhou.
func ErrValidation(field, code string) error {
	return BusinessError{Kind: KindValidation, Code: code, Field: field}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindAuthorization, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
