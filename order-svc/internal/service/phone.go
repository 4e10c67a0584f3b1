package service

import (
	"strings"

	"foodcart/order-svc/internal/domain"

	"github.com/nyaruka/phonenumbers"
)

type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

// LibPhoneNormalizer parses numbers with libphonenumber rules, falling back
// to DefaultRegion for numbers written without a country code.
type LibPhoneNormalizer struct {
	DefaultRegion string
}

func NewPhoneNormalizer(region string) *LibPhoneNormalizer {
	return &LibPhoneNormalizer{DefaultRegion: strings.ToUpper(region)}
}

// Normalize returns the number in E.164 form.
func (n *LibPhoneNormalizer) Normalize(raw string) (string, error) {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), n.DefaultRegion)
	if err != nil {
		return "", domain.FieldError(domain.ErrInvalidPhoneNumber, "phonenumber")
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", domain.FieldError(domain.ErrInvalidPhoneNumber, "phonenumber")
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
