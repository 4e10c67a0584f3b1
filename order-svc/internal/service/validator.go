package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"foodcart/order-svc/internal/domain"
)

// maxQuantity bounds a single order line.
const maxQuantity = 1000

var requiredTextFields = []struct {
	name   string
	maxLen int
}{
	{"firstname", 90},
	{"lastname", 100},
	{"address", 100},
}

// Validator checks raw order submissions. Rules run in a fixed order and the
// first failure wins; product existence is checked last so structurally
// invalid input never reaches the database.
type Validator struct {
	products ProductChecker
	phones   PhoneNormalizer
}

func NewValidator(products ProductChecker, phones PhoneNormalizer) *Validator {
	return &Validator{products: products, phones: phones}
}

// Parse decodes a JSON object keeping numbers as json.Number.
func (v *Validator) Parse(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &domain.ValidationError{Err: domain.ErrMalformedPayload, Detail: err.Error()}
	}
	if raw == nil {
		return nil, &domain.ValidationError{Err: domain.ErrMalformedPayload, Detail: "expected a JSON object"}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &domain.ValidationError{Err: domain.ErrMalformedPayload, Detail: "unexpected data after JSON object"}
	}
	return raw, nil
}

func (v *Validator) ParseAndValidate(ctx context.Context, body []byte) (*domain.ValidatedOrder, error) {
	raw, err := v.Parse(body)
	if err != nil {
		return nil, err
	}
	return v.Validate(ctx, raw)
}

func (v *Validator) Validate(ctx context.Context, raw map[string]any) (*domain.ValidatedOrder, error) {
	order := &domain.ValidatedOrder{Payment: domain.PaymentCash}

	texts := make(map[string]string, len(requiredTextFields))
	for _, field := range requiredTextFields {
		s, err := requiredString(raw, field.name, field.maxLen)
		if err != nil {
			return nil, err
		}
		texts[field.name] = s
	}
	order.Firstname = texts["firstname"]
	order.Lastname = texts["lastname"]
	order.Address = texts["address"]

	phone, err := requiredString(raw, "phonenumber", 0)
	if err != nil {
		return nil, err
	}
	if order.PhoneNumber, err = v.phones.Normalize(phone); err != nil {
		return nil, err
	}

	if err := optionalFields(raw, order); err != nil {
		return nil, err
	}

	if order.Lines, err = productLines(raw); err != nil {
		return nil, err
	}

	ids := make([]int64, len(order.Lines))
	for i, line := range order.Lines {
		ids[i] = line.ProductID
	}
	missing, err := v.products.MissingProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check products: %w", err)
	}
	if len(missing) > 0 {
		return nil, domain.ProductError(domain.ErrUnknownProduct, missing[0])
	}

	return order, nil
}

func requiredString(raw map[string]any, name string, maxLen int) (string, error) {
	value, ok := raw[name]
	if !ok || value == nil {
		return "", &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: name, Detail: "this field is required"}
	}
	s, ok := value.(string)
	if !ok {
		return "", &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: name, Detail: "must be a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: name, Detail: "must not be empty"}
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return "", &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: name, Detail: fmt.Sprintf("must be at most %d characters", maxLen)}
	}
	return s, nil
}

func optionalFields(raw map[string]any, order *domain.ValidatedOrder) error {
	if value, ok := raw["comment"]; ok && value != nil {
		s, ok := value.(string)
		if !ok {
			return &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: "comment", Detail: "must be a string"}
		}
		order.Comment = strings.TrimSpace(s)
	}

	if value, ok := raw["payment"]; ok && value != nil {
		s, ok := value.(string)
		method := domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
		if !ok || !method.Valid() {
			return &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: "payment", Detail: "must be CASH or ELECTRONIC"}
		}
		order.Payment = method
	}
	return nil
}

func productLines(raw map[string]any) ([]domain.OrderLine, error) {
	value, ok := raw["products"]
	if !ok || value == nil {
		return nil, &domain.ValidationError{Err: domain.ErrMissingOrWrongTypeField, Field: "products", Detail: "this field is required"}
	}
	list, ok := value.([]any)
	if !ok {
		return nil, domain.FieldError(domain.ErrInvalidProductListType, "products")
	}
	if len(list) == 0 {
		return nil, domain.FieldError(domain.ErrEmptyProductList, "products")
	}

	lines := make([]domain.OrderLine, 0, len(list))
	seen := make(map[int64]struct{}, len(list))
	for i, element := range list {
		field := fmt.Sprintf("products[%d]", i)
		record, ok := element.(map[string]any)
		if !ok {
			return nil, domain.FieldError(domain.ErrInvalidProductListType, field)
		}

		productID, ok := positiveInt(record["product"], math.MaxInt64)
		if !ok {
			return nil, &domain.ValidationError{Err: domain.ErrInvalidProductListType, Field: field, Detail: "product must be a positive integer id"}
		}
		quantity, ok := positiveInt(record["quantity"], maxQuantity)
		if !ok {
			return nil, &domain.ValidationError{Err: domain.ErrInvalidProductListType, Field: field, Detail: fmt.Sprintf("quantity must be an integer from 1 to %d", maxQuantity)}
		}

		if _, dup := seen[productID]; dup {
			return nil, domain.ProductError(domain.ErrDuplicateProduct, productID)
		}
		seen[productID] = struct{}{}

		lines = append(lines, domain.OrderLine{ProductID: productID, Quantity: int(quantity)})
	}
	return lines, nil
}

func positiveInt(value any, max int64) (int64, bool) {
	num, ok := value.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil || n <= 0 || n > max {
		return 0, false
	}
	return n, true
}
