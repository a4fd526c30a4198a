package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "eleven digits", phone: "79161234567", want: true},
		{name: "too short", phone: "9161234567", want: false},
		{name: "too long", phone: "791612345678", want: false},
		{name: "plus prefix", phone: "+7916123456", want: false},
		{name: "letters", phone: "7916123456a", want: false},
		{name: "spaces", phone: "7916 123456", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestClient_HasValidPhone(t *testing.T) {
	valid := Client{Phone: "79161234567"}
	invalid := Client{Phone: "not-a-phone"}

	assert.True(t, valid.HasValidPhone())
	assert.False(t, invalid.HasValidPhone())
}

func TestIsValidDiscount(t *testing.T) {
	assert.True(t, IsValidDiscount(0))
	assert.True(t, IsValidDiscount(15))
	assert.True(t, IsValidDiscount(30))
	assert.False(t, IsValidDiscount(-1))
	assert.False(t, IsValidDiscount(31))
}

func TestClient_FullName(t *testing.T) {
	c := Client{FirstName: "Анна", LastName: "Иванова"}
	assert.Equal(t, "Анна Иванова", c.FullName())
}
