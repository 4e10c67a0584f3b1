package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPayload        = errors.New("malformed payload")
	ErrMissingOrWrongTypeField = errors.New("missing or wrong type field")
	ErrEmptyProductList        = errors.New("products list is empty")
	ErrInvalidProductListType  = errors.New("products must be a list of {product, quantity} records")
	ErrDuplicateProduct        = errors.New("product listed more than once")
	ErrUnknownProduct          = errors.New("unknown product")
	ErrInvalidPhoneNumber      = errors.New("invalid phone number")
	ErrOrderCreationFailed     = errors.New("order creation failed")
	ErrNotFound                = errors.New("not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidCatalogEntry     = errors.New("invalid catalog entry")
	ErrOrderTooLarge           = errors.New("order total is too large")
)

// ValidationError scopes a sentinel to the field or product that caused it.
type ValidationError struct {
	Err       error
	Field     string
	ProductID int64
	Detail    string
}

func (e *ValidationError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownProduct), errors.Is(e.Err, ErrDuplicateProduct):
		return fmt.Sprintf("%s: %d", e.Err.Error(), e.ProductID)
	case e.Field != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Err.Error(), e.Detail)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
	default:
		return e.Err.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func FieldError(err error, field string) *ValidationError {
	return &ValidationError{Err: err, Field: field}
}

// OrderTooLarge reports an order whose total does not fit MaxOrderTotal.
func OrderTooLarge() *ValidationError {
	return &ValidationError{Err: ErrOrderTooLarge, Field: "products", Detail: "total must not exceed " + MaxOrderTotal.StringFixed(2)}
}

func ProductError(err error, productID int64) *ValidationError {
	return &ValidationError{Err: err, ProductID: productID}
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMalformedPayload,
		ErrMissingOrWrongTypeField,
		ErrEmptyProductList,
		ErrInvalidProductListType,
		ErrDuplicateProduct,
		ErrUnknownProduct,
		ErrInvalidPhoneNumber,
		ErrInvalidCatalogEntry,
		ErrOrderTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
