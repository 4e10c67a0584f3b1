package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productCheckerFunc func(ctx context.Context, ids []int64) ([]int64, error)

func (f productCheckerFunc) MissingProducts(ctx context.Context, ids []int64) ([]int64, error) {
	return f(ctx, ids)
}

// knownProducts reports every id outside known as missing and counts calls.
func knownProducts(calls *int, known ...int64) ProductChecker {
	set := make(map[int64]bool, len(known))
	for _, id := range known {
		set[id] = true
	}
	return productCheckerFunc(func(_ context.Context, ids []int64) ([]int64, error) {
		*calls++
		var missing []int64
		for _, id := range ids {
			if !set[id] {
				missing = append(missing, id)
			}
		}
		return missing, nil
	})
}

type stubPhones struct{}

func (stubPhones) Normalize(raw string) (string, error) {
	if !strings.HasPrefix(raw, "+") {
		return "", domain.FieldError(domain.ErrInvalidPhoneNumber, "phonenumber")
	}
	return strings.ReplaceAll(raw, " ", ""), nil
}

const validBody = `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1 202 555 0123","address":"1 Main St",
	"products":[{"product":1,"quantity":2},{"product":2,"quantity":3}]}`

func TestValidator_AcceptsValidOrder(t *testing.T) {
	calls := 0
	v := NewValidator(knownProducts(&calls, 1, 2), stubPhones{})

	order, err := v.ParseAndValidate(context.Background(), []byte(validBody))

	require.NoError(t, err)
	assert.Equal(t, "Ann", order.Firstname)
	assert.Equal(t, "+12025550123", order.PhoneNumber)
	assert.Equal(t, domain.PaymentCash, order.Payment)
	assert.Equal(t, []domain.OrderLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}, order.Lines)
	assert.Equal(t, 1, calls)
}

func TestValidator_OptionalFields(t *testing.T) {
	calls := 0
	v := NewValidator(knownProducts(&calls, 1), stubPhones{})
	body := `{"firstname":"Ann","lastname":"Lee","phonenumber":"+79161234567","address":"x",
		"comment":"  ring twice ","payment":"electronic","products":[{"product":1,"quantity":1}]}`

	order, err := v.ParseAndValidate(context.Background(), []byte(body))

	require.NoError(t, err)
	assert.Equal(t, "ring twice", order.Comment)
	assert.Equal(t, domain.PaymentElectronic, order.Payment)
}

func TestValidator_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    error
		wantMsg    string
		wantLookup bool
	}{
		{
			name:    "not json",
			body:    `{"firstname":`,
			wantErr: domain.ErrMalformedPayload,
		},
		{
			name:    "json array",
			body:    `[1,2]`,
			wantErr: domain.ErrMalformedPayload,
		},
		{
			name:    "json null",
			body:    `null`,
			wantErr: domain.ErrMalformedPayload,
		},
		{
			name:    "trailing data",
			body:    validBody + `{}`,
			wantErr: domain.ErrMalformedPayload,
		},
		{
			name:    "missing firstname",
			body:    `{"lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
			wantMsg: "firstname: missing or wrong type field: this field is required",
		},
		{
			name:    "firstname wrong type",
			body:    `{"firstname":5,"lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "blank lastname",
			body:    `{"firstname":"Ann","lastname":"   ","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "address too long",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"` + strings.Repeat("a", 101) + `","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "invalid phone",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"12345","address":"x","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrInvalidPhoneNumber,
		},
		{
			name:    "payment not supported",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","payment":"BARTER","products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "comment wrong type",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","comment":1,"products":[{"product":1,"quantity":1}]}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "products missing",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x"}`,
			wantErr: domain.ErrMissingOrWrongTypeField,
		},
		{
			name:    "products not a list",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":"1,2"}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "products empty",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[]}`,
			wantErr: domain.ErrEmptyProductList,
		},
		{
			name:    "element not an object",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[1]}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "quantity zero",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":0}]}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "quantity above line limit",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":2000000000}]}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "quantity fractional",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1.5}]}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "product id as string",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":"1","quantity":1}]}`,
			wantErr: domain.ErrInvalidProductListType,
		},
		{
			name:    "duplicate product",
			body:    `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1},{"product":1,"quantity":2}]}`,
			wantErr: domain.ErrDuplicateProduct,
			wantMsg: "product listed more than once: 1",
		},
		{
			name:       "unknown product",
			body:       `{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":1},{"product":42,"quantity":1}]}`,
			wantErr:    domain.ErrUnknownProduct,
			wantMsg:    "unknown product: 42",
			wantLookup: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			calls := 0
			v := NewValidator(knownProducts(&calls, 1, 2), stubPhones{})

			order, err := v.ParseAndValidate(context.Background(), []byte(testCase.body))

			assert.Nil(t, order)
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.True(t, domain.IsValidation(err))
			if testCase.wantMsg != "" {
				assert.EqualError(t, err, testCase.wantMsg)
			}
			if testCase.wantLookup {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls, "structural errors must not reach the product lookup")
			}
		})
	}
}

func TestValidator_FirstFailureWins(t *testing.T) {
	calls := 0
	v := NewValidator(knownProducts(&calls), stubPhones{})
	body := `{"lastname":"Lee","phonenumber":"bad","address":"x","products":[]}`

	_, err := v.ParseAndValidate(context.Background(), []byte(body))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "firstname", verr.Field)
}

func TestValidator_LookupFailure(t *testing.T) {
	v := NewValidator(productCheckerFunc(func(context.Context, []int64) ([]int64, error) {
		return nil, errors.New("connection refused")
	}), stubPhones{})

	_, err := v.ParseAndValidate(context.Background(), []byte(validBody))

	require.Error(t, err)
	assert.False(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "check products")
}

func TestValidator_QuantityLimit(t *testing.T) {
	calls := 0
	v := NewValidator(knownProducts(&calls, 1), stubPhones{})
	body := func(quantity string) []byte {
		return []byte(`{"firstname":"Ann","lastname":"Lee","phonenumber":"+1","address":"x","products":[{"product":1,"quantity":` + quantity + `}]}`)
	}

	order, err := v.ParseAndValidate(context.Background(), body("1000"))
	require.NoError(t, err)
	assert.Equal(t, 1000, order.Lines[0].Quantity)

	_, err = v.ParseAndValidate(context.Background(), body("1001"))
	assert.ErrorIs(t, err, domain.ErrInvalidProductListType)
	assert.Contains(t, err.Error(), "from 1 to 1000")
	assert.Equal(t, 1, calls)
}
