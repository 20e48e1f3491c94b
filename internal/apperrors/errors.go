// Package apperrors defines the error taxonomy shared by services and
// handlers. Validation failures carry a field code so clients can map
// them back onto form fields.
package apperrors

import (
	"errors"
	"fmt"
)

// FieldCode identifies the request field a validation error refers to.
// The codes are part of the client contract and must not be renamed.
type FieldCode string

const (
	FieldName         FieldCode = "NOME"
	FieldDescription  FieldCode = "DESCRICAO"
	FieldColor        FieldCode = "COR"
	FieldPrice        FieldCode = "VALOR"
	FieldModel        FieldCode = "MODELO"
	FieldWeight       FieldCode = "PESO"
	FieldHeight       FieldCode = "ALTURA"
	FieldLength       FieldCode = "COMPRIMENTO"
	FieldWidth        FieldCode = "LARGURA"
	FieldManufacturer FieldCode = "FABRICANTE"
	FieldSubCategory  FieldCode = "SUBCATEGORIA"
	FieldMainImage    FieldCode = "IMGPRINCIPAL"
	FieldImages       FieldCode = "IMAGENS"
	FieldDiscount     FieldCode = "DESCONTO"
	FieldGlobal       FieldCode = "GLOBAL"
)

// FieldError is a validation failure on a single request field.
type FieldError struct {
	Field   FieldCode
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError builds a FieldError for the given field code.
func NewFieldError(field FieldCode, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// InvalidDiscountError reports a discount percentage that matches no
// known discount record.
type InvalidDiscountError struct {
	Value string
}

func (e *InvalidDiscountError) Error() string {
	return fmt.Sprintf("invalid discount %q: enter a number between 0 and 99", e.Value)
}

// InvalidRatingError reports a rating value outside [1.0, 5.0].
type InvalidRatingError struct {
	Value float64
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating %.1f: must be between 1.0 and 5.0", e.Value)
}

// Not-found sentinels. Handlers map these to 404.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSupplierNotFound     = errors.New("supplier not found")
	ErrSupplierLinkNotFound = errors.New("supplier link not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
)

// ErrCPFInUse reports a CPF update that would collide with another
// employee record. Handlers map it to 409.
var ErrCPFInUse = errors.New("cpf already in use by another employee")
