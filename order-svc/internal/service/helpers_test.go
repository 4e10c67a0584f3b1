package service

import (
	"bytes"
	"testing"

	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibPhoneNormalizer(t *testing.T) {
	n := NewPhoneNormalizer("ru")

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "international", raw: "+7 916 123-45-67", want: "+79161234567"},
		{name: "national with default region", raw: "8 (916) 123-45-67", want: "+79161234567"},
		{name: "foreign number", raw: "+1 202 456 1111", want: "+12024561111"},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "not a number", raw: "call me", wantErr: true},
		{name: "us number in international form", raw: "+12025550123", want: "+12025550123"},
		{name: "hyphenated text", raw: "not-a-phone", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := n.Normalize(testCase.raw)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPhoneNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestMediaURLResolver(t *testing.T) {
	r := MediaURLResolver{BaseURL: "/media/"}

	assert.Equal(t, "", r.URL(""))
	assert.Equal(t, "/media/soup.png", r.URL("soup.png"))
	assert.Equal(t, "/media/products/soup.png", r.URL("/products/soup.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", r.URL("https://cdn.example.com/a.png"))
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := DefaultQRGenerator{}.Generate(CallbackURI("+79161234567"))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	assert.Equal(t, "tel:+79161234567", CallbackURI("+79161234567"))
}
